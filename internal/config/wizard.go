package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/angeloflores/folio/internal/content"
)

// WizardAnswers are the values collected by RunWizard.
type WizardAnswers struct {
	Name  string
	Title string
	Email string
	Phone string
	Store StoreType
	Port  int
}

// DefaultContentFile is where RunWizard writes the starter content.
const DefaultContentFile = "content.yml"

// RunWizard runs an interactive setup wizard. It writes a starter content
// file seeded from the built-in page and a config file pointing at it.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio.")
	fmt.Println()

	def := content.Default()

	name, err := ask("Your name", def.Profile.Name, required)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	title, err := ask("Your title", def.Profile.Title, nil)
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	email, err := ask("Contact email (blank to hide)", "", nil)
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	phone, err := ask("Contact phone (blank to hide)", "", nil)
	if err != nil {
		return nil, fmt.Errorf("phone: %w", err)
	}

	storePrompt := promptui.Select{
		Label: "Where should visitor theme preferences be stored",
		Items: []string{
			"cookie  - in the visitor's browser",
			"sqlite  - in a local database",
		},
	}
	storeIdx, _, err := storePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("store selection: %w", err)
	}
	stores := []StoreType{StoreCookie, StoreSQLite}

	portStr, err := ask("Server port", "8080", validatePort)
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	answers := WizardAnswers{
		Name:  name,
		Title: title,
		Email: email,
		Phone: phone,
		Store: stores[storeIdx],
		Port:  port,
	}

	cfg, c := answers.Apply(DefaultConfig(), def)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if _, err := os.Stat(cfg.ContentFile); err == nil {
		return nil, fmt.Errorf("%s already exists, refusing to overwrite", cfg.ContentFile)
	}
	if err := c.Save(cfg.ContentFile); err != nil {
		return nil, fmt.Errorf("saving content: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nContent saved to %s\n", cfg.ContentFile)
	fmt.Printf("Configuration saved to %s\n", configPath)
	return cfg, nil
}

// Apply folds the answers into cfg and a copy of base content.
func (a WizardAnswers) Apply(cfg *Config, base *content.Content) (*Config, *content.Content) {
	c := *base
	c.Profile.Name = strings.TrimSpace(a.Name)
	c.Profile.Title = strings.TrimSpace(a.Title)
	c.Profile.Email = strings.TrimSpace(a.Email)
	c.Profile.Phone = strings.TrimSpace(a.Phone)
	c.Profile.Social = nil

	cfg.ContentFile = DefaultContentFile
	if a.Store != "" {
		cfg.Theme.Store = a.Store
	}
	if a.Port != 0 {
		cfg.Server.Port = a.Port
	}
	return cfg, &c
}

func ask(label, def string, validate promptui.ValidateFunc) (string, error) {
	p := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
	}
	return p.Run()
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
