// Package content loads the declarative data shown on the portfolio page.
package content

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// placeholderBase renders a labelled square when an image fails to load.
const placeholderBase = "https://placehold.co/400x400/1e293b/ffffff"

// Colors are the accent palette names the stylesheet defines.
var Colors = map[string]bool{
	"indigo":  true,
	"emerald": true,
	"rose":    true,
	"blue":    true,
	"amber":   true,
	"slate":   true,
}

var sectionIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Default returns the built-in content.
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads content from a YAML file. An empty path returns Default.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshalling content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the content as YAML.
func (c *Content) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling content: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing content to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the content can be rendered.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Profile.Name) == "" {
		return fmt.Errorf("profile.name is required")
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}

	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if !sectionIDPattern.MatchString(s.ID) {
			return fmt.Errorf("sections[%d]: invalid id %q", i, s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("sections[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
		if strings.TrimSpace(s.Label) == "" {
			return fmt.Errorf("sections[%d]: label is required", i)
		}
		switch s.ResolvedKind() {
		case KindAbout, KindProjects, KindCertificates:
		default:
			return fmt.Errorf("sections[%d]: cannot infer kind for %q, set kind to about, projects or certificates", i, s.ID)
		}
	}

	for i, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("projects[%d]: title is required", i)
		}
		if p.BadgeColor != "" && !Colors[p.BadgeColor] {
			return fmt.Errorf("projects[%d]: unknown badge_color %q", i, p.BadgeColor)
		}
		if err := checkURL(p.LiveURL); err != nil {
			return fmt.Errorf("projects[%d]: live_url: %w", i, err)
		}
	}

	for i, cert := range c.Certificates {
		if strings.TrimSpace(cert.Title) == "" {
			return fmt.Errorf("certificates[%d]: title is required", i)
		}
		if cert.Color != "" && !Colors[cert.Color] {
			return fmt.Errorf("certificates[%d]: unknown color %q", i, cert.Color)
		}
		if err := checkURL(cert.CredentialURL); err != nil {
			return fmt.Errorf("certificates[%d]: credential_url: %w", i, err)
		}
	}

	for i, l := range c.Profile.Social {
		if err := checkURL(l.URL); err != nil {
			return fmt.Errorf("profile.social[%d]: %w", i, err)
		}
	}
	return nil
}

// Initials returns the upper-case first letters of the profile name's words.
func (c *Content) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(c.Profile.Name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// FallbackImage returns the placeholder image URL for a label.
func FallbackImage(label string) string {
	return placeholderBase + "?text=" + url.QueryEscape(label)
}

// ShortLabel returns the first three characters of s, used as a
// certificate placeholder label.
func ShortLabel(s string) string {
	r := []rune(s)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

func checkURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https", "mailto", "tel":
		return nil
	default:
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
}
