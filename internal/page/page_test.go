package page

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/angeloflores/folio/internal/content"
	"github.com/angeloflores/folio/internal/nav"
	"github.com/angeloflores/folio/internal/theme"
)

func fixedClock() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(WithClock(fixedClock))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func readyController(persisted string) *theme.Controller {
	store := theme.NewMemoryStore()
	if persisted != "" {
		store.Set(theme.StorageKey, persisted)
	}
	c := theme.NewController(store, nil)
	c.Initialize()
	return c
}

func TestDocumentAnchors(t *testing.T) {
	doc := NewDocument(content.Default())

	anchors := doc.Anchors()
	if len(anchors) != 3 {
		t.Fatalf("anchors = %d, want 3", len(anchors))
	}
	if anchors[0].ID() != "about-me" || anchors[0].Label != "About Me" {
		t.Errorf("first anchor = %q/%q", anchors[0].ID(), anchors[0].Label)
	}

	if el, ok := doc.ElementByID("projects"); !ok || el.ID() != "projects" {
		t.Errorf("ElementByID(projects) = %v, %v", el, ok)
	}
	if _, ok := doc.ElementByID("missing-id"); ok {
		t.Error("ElementByID(missing-id) should not be found")
	}

	empty := NewDocument(nil)
	if len(empty.Anchors()) != 0 {
		t.Error("nil content should produce an empty document")
	}
}

func TestNavigatorOverDocument(t *testing.T) {
	doc := NewDocument(content.Default())
	vp := &Viewport{}
	n := nav.New(doc, vp)

	if !n.NavigateTo("about-me") {
		t.Fatal("NavigateTo(about-me) = false")
	}
	reqs := vp.Requests()
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(reqs))
	}
	if reqs[0].Target != "about-me" || reqs[0].Options.Behavior != nav.BehaviorSmooth {
		t.Errorf("request = %+v", reqs[0])
	}

	if n.NavigateTo("missing-id") {
		t.Error("NavigateTo(missing-id) = true")
	}
	if len(vp.Requests()) != 1 {
		t.Error("missing target must not add a request")
	}

	n.NavigateTo("certificates")
	last, ok := vp.Last()
	if !ok || last.Target != "certificates" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
}

func TestRenderRequiresReady(t *testing.T) {
	r := newRenderer(t)
	ctrl := theme.NewController(theme.NewMemoryStore(), nil)

	var buf bytes.Buffer
	err := r.Render(&buf, View{Theme: ctrl, Content: content.Default()})
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written before ready, got %d bytes", buf.Len())
	}

	if err := r.Render(&buf, View{Content: content.Default()}); !errors.Is(err, ErrNotReady) {
		t.Errorf("nil controller: expected ErrNotReady, got %v", err)
	}
}

func TestRenderThemeMarker(t *testing.T) {
	r := newRenderer(t)

	var dark bytes.Buffer
	if err := r.Render(&dark, View{Theme: readyController("dark"), Content: content.Default()}); err != nil {
		t.Fatalf("Render dark: %v", err)
	}
	if !strings.Contains(dark.String(), `<html lang="en" class="dark"`) {
		t.Error("dark page should carry the dark class on the root")
	}
	if !strings.Contains(dark.String(), `data-theme="dark"`) {
		t.Error("dark page should carry data-theme=dark")
	}

	var light bytes.Buffer
	if err := r.Render(&light, View{Theme: readyController(""), Content: content.Default()}); err != nil {
		t.Fatalf("Render light: %v", err)
	}
	if strings.Contains(light.String(), `class="dark"`) {
		t.Error("light page must not carry the dark class")
	}
}

func TestRenderContent(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	err := r.Render(&buf, View{
		Theme:      readyController(""),
		Content:    content.Default(),
		StaticPath: "/static/",
		AssetPath:  "/assets/",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()

	wants := []string{
		`<section id="about-me"`,
		`<section id="projects"`,
		`<section id="certificates"`,
		`data-nav="about-me"`,
		`href="#projects"`,
		"Angelo Flores",
		"FCFS Scheduling Simulator",
		"E-commerce REST API",
		"https://fcsgelo.vercel.app/",
		"Shielded Metal Arc Welding NCI",
		"Issued By: TESDA",
		`src="/assets/gelo.jpg"`,
		`data-fallback="https://placehold.co/400x400/1e293b/ffffff?text=AF"`,
		`data-fallback="https://placehold.co/400x400/1e293b/ffffff?text=Cre"`,
		`href="/static/style.css"`,
		`src="/static/script.js"`,
		"&copy; 2026 All rights reserved.",
		`data-mode="server"`,
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(html, "localStorage") {
		t.Error("server-rendered page should not inline the client bootstrap")
	}
	if strings.Contains(html, "data-scroll-target") {
		t.Error("no scroll target expected without navigation")
	}
}

func TestRenderScrollTarget(t *testing.T) {
	r := newRenderer(t)
	c := content.Default()
	vp := &Viewport{}
	nav.New(NewDocument(c), vp).NavigateTo("projects")

	var buf bytes.Buffer
	if err := r.Render(&buf, View{Theme: readyController(""), Content: c, Viewport: vp}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), `data-scroll-target="projects"`) {
		t.Error("expected scroll target on body")
	}
}

func TestRenderStaticMode(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	err := r.Render(&buf, View{
		Theme:    readyController(""),
		Content:  content.Default(),
		Mode:     ModeStatic,
		LiveSync: true,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `localStorage.getItem("theme")`) {
		t.Error("static page should inline the theme bootstrap")
	}
	if !strings.Contains(html, `data-mode="static"`) {
		t.Error("static page should declare static mode")
	}
	if strings.Contains(html, `data-live="true"`) {
		t.Error("static page cannot use live sync")
	}
	if !strings.Contains(html, `src="gelo.jpg"`) {
		t.Error("static page should reference images relatively")
	}
}

func TestAssetFunc(t *testing.T) {
	f := assetFunc("/assets/")
	tests := []struct{ in, want string }{
		{"gelo.jpg", "/assets/gelo.jpg"},
		{"https://example.com/a.png", "https://example.com/a.png"},
		{"/img/a.png", "/img/a.png"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := f(tt.in); got != tt.want {
			t.Errorf("asset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderServerBootstrap(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	err := r.Render(&buf, View{Theme: readyController(""), Content: content.Default(), StaticPath: "/static/"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `<script src="/static/bootstrap.js"></script>`) {
		t.Error("served page should load the theme bootstrap in head")
	}
	if strings.Index(html, "bootstrap.js") > strings.Index(html, "</head>") {
		t.Error("bootstrap must run before the body is painted")
	}
	if !strings.Contains(html, `data-theme-source="default"`) {
		t.Error("page should expose the resolved theme source")
	}

	buf.Reset()
	if err := r.Render(&buf, View{Theme: readyController("dark"), Content: content.Default()}); err != nil {
		t.Fatalf("Render persisted: %v", err)
	}
	if !strings.Contains(buf.String(), `data-theme-source="persisted"`) {
		t.Error("a stored choice should be marked persisted so the bootstrap keeps it")
	}

	buf.Reset()
	if err := r.Render(&buf, View{Theme: readyController(""), Content: content.Default(), Mode: ModeStatic}); err != nil {
		t.Fatalf("Render static: %v", err)
	}
	if strings.Contains(buf.String(), "bootstrap.js") {
		t.Error("static page inlines the bootstrap instead of loading it")
	}
}

func TestBootstrapKeepsPersistedChoice(t *testing.T) {
	for _, want := range []string{
		`data-theme-source") === "persisted") return`,
		`prefers-color-scheme: dark`,
		`localStorage.getItem("theme")`,
	} {
		if !strings.Contains(Bootstrap, want) {
			t.Errorf("bootstrap missing %q", want)
		}
	}
}
