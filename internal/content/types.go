package content

// Content is everything the portfolio page displays.
type Content struct {
	Profile      Profile       `yaml:"profile" json:"profile"`
	About        string        `yaml:"about" json:"about"`
	Sections     []Section     `yaml:"sections" json:"sections"`
	Projects     []Project     `yaml:"projects" json:"projects"`
	Certificates []Certificate `yaml:"certificates" json:"certificates"`
}

// Profile is the sidebar header and contact block.
type Profile struct {
	Name   string `yaml:"name" json:"name"`
	Title  string `yaml:"title" json:"title"`
	Photo  string `yaml:"photo" json:"photo"`
	Email  string `yaml:"email" json:"email,omitempty"`
	Phone  string `yaml:"phone" json:"phone,omitempty"`
	Social []Link `yaml:"social" json:"social,omitempty"`
}

// Link is an external link shown with a label.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
	Icon  string `yaml:"icon" json:"icon,omitempty"`
}

// Section is a navigable anchor target in the main column.
type Section struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	// Kind selects what the section body shows. Empty infers it from ID.
	Kind SectionKind `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// SectionKind is the body a section renders.
type SectionKind string

const (
	KindAbout        SectionKind = "about"
	KindProjects     SectionKind = "projects"
	KindCertificates SectionKind = "certificates"
)

// ResolvedKind returns Kind, or the kind implied by the section id.
func (s Section) ResolvedKind() SectionKind {
	if s.Kind != "" {
		return s.Kind
	}
	switch s.ID {
	case "about", "about-me":
		return KindAbout
	case "projects":
		return KindProjects
	case "certificates", "certifications":
		return KindCertificates
	}
	return ""
}

// Project is one card in the projects section.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Badge       string   `yaml:"badge" json:"badge,omitempty"`
	BadgeColor  string   `yaml:"badge_color" json:"badge_color,omitempty"`
	Description string   `yaml:"description" json:"description"`
	LiveURL     string   `yaml:"live_url" json:"live_url,omitempty"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
}

// Certificate is one card in the certificates section.
type Certificate struct {
	Title         string `yaml:"title" json:"title"`
	Issuer        string `yaml:"issuer" json:"issuer"`
	Image         string `yaml:"image" json:"image"`
	Color         string `yaml:"color" json:"color,omitempty"`
	CredentialURL string `yaml:"credential_url" json:"credential_url,omitempty"`
}
