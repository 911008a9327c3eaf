package page

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/angeloflores/folio/internal/content"
	"github.com/angeloflores/folio/internal/theme"
)

// ErrNotReady is returned when the theme has not been resolved yet. Nothing
// is written in that case.
var ErrNotReady = errors.New("theme not resolved")

// Mode tells the client script how the page was produced.
type Mode string

const (
	ModeServer Mode = "server"
	ModeStatic Mode = "static"
)

// View is everything needed to render one page load.
type View struct {
	Theme    *theme.Controller
	Content  *content.Content
	Viewport *Viewport
	Mode     Mode

	// StaticPath prefixes style.css and script.js; AssetPath prefixes images.
	StaticPath string
	AssetPath  string

	// LiveSync enables the websocket theme subscription.
	LiveSync bool
}

// Renderer executes the page template.
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) { r.now = now }
}

// NewRenderer parses the page template.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"icon":  iconHTML,
		"asset": func(string) string { return "" },
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

type sectionData struct {
	ID    string
	Label string
	Kind  content.SectionKind
}

type projectData struct {
	content.Project
}

type certificateData struct {
	content.Certificate
	Fallback string
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	RootClass       string
	Theme           theme.Preference
	ThemeSource     theme.Source
	Mode            Mode
	LiveSync        bool
	Static          bool
	Bootstrap       template.JS
	StaticPath      string
	ScrollTarget    string
	Profile         content.Profile
	ProfileFallback string
	About           template.HTML
	Sections        []sectionData
	Projects        []projectData
	Certificates    []certificateData
	Year            int
}

// Render writes the page for v. It refuses to render before the theme
// controller is ready, so no content is ever shown with an unresolved theme.
func (r *Renderer) Render(w io.Writer, v View) error {
	if v.Theme == nil || !v.Theme.IsReady() {
		return ErrNotReady
	}
	if v.Content == nil {
		return fmt.Errorf("rendering page: no content")
	}

	data, err := r.buildData(v)
	if err != nil {
		return err
	}

	tmpl, err := r.tmpl.Clone()
	if err != nil {
		return fmt.Errorf("cloning page template: %w", err)
	}
	tmpl.Funcs(template.FuncMap{"asset": assetFunc(v.AssetPath)})

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (r *Renderer) buildData(v View) (pageData, error) {
	c := v.Content
	about, err := c.RenderAbout()
	if err != nil {
		return pageData{}, err
	}

	mode := v.Mode
	if mode == "" {
		mode = ModeServer
	}

	data := pageData{
		RootClass:       v.Theme.Root().Class(),
		Theme:           v.Theme.Root().Preference(),
		ThemeSource:     v.Theme.Source(),
		Mode:            mode,
		LiveSync:        v.LiveSync && mode == ModeServer,
		Static:          mode == ModeStatic,
		StaticPath:      v.StaticPath,
		Profile:         c.Profile,
		ProfileFallback: content.FallbackImage(c.Initials()),
		About:           about,
		Year:            r.now().Year(),
	}
	if data.Static {
		data.Bootstrap = template.JS(Bootstrap)
	}
	if v.Viewport != nil {
		if req, ok := v.Viewport.Last(); ok {
			data.ScrollTarget = req.Target
		}
	}

	for _, s := range c.Sections {
		data.Sections = append(data.Sections, sectionData{ID: s.ID, Label: s.Label, Kind: s.ResolvedKind()})
	}
	for _, p := range c.Projects {
		if p.BadgeColor == "" {
			p.BadgeColor = "indigo"
		}
		data.Projects = append(data.Projects, projectData{Project: p})
	}
	for _, cert := range c.Certificates {
		if cert.Color == "" {
			cert.Color = "indigo"
		}
		data.Certificates = append(data.Certificates, certificateData{
			Certificate: cert,
			Fallback:    content.FallbackImage(content.ShortLabel(cert.Title)),
		})
	}
	return data, nil
}

// assetFunc resolves an image reference against prefix. Absolute URLs pass
// through unchanged.
func assetFunc(prefix string) func(string) string {
	return func(name string) string {
		if name == "" {
			return ""
		}
		if strings.Contains(name, "://") || strings.HasPrefix(name, "/") {
			return name
		}
		return prefix + name
	}
}

func iconHTML(name string) template.HTML {
	svg, ok := icons[name]
	if !ok {
		svg = icons["link"]
	}
	return template.HTML(svg)
}
