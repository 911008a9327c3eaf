package site

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/angeloflores/folio/internal/content"
	"github.com/angeloflores/folio/internal/page"
	"github.com/angeloflores/folio/internal/progress"
)

func newRenderer(t *testing.T) *page.Renderer {
	t.Helper()
	r, err := page.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate(t *testing.T) {
	assets := t.TempDir()
	writeFile(t, filepath.Join(assets, "gelo.jpg"), "photo")
	writeFile(t, filepath.Join(assets, "certs", "cwd.png"), "cert")
	writeFile(t, filepath.Join(assets, "notes.txt"), "skip me")

	out := filepath.Join(t.TempDir(), "dist")
	var log bytes.Buffer
	g := NewGenerator(Options{
		OutputDir: out,
		AssetsDir: assets,
		Assets:    []string{"**/*.{jpg,png}", "*.jpg"},
	}, content.Default(), newRenderer(t), &progress.CIReporter{Out: &log})

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 5 {
		t.Errorf("files written = %d, want 5", n)
	}

	for _, name := range []string{"index.html", "style.css", "script.js", "gelo.jpg", filepath.Join("certs", "cwd.png")} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s in output: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "notes.txt")); !os.IsNotExist(err) {
		t.Error("notes.txt should not be copied")
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	for _, want := range []string{
		`<section id="about-me"`,
		`<section id="projects"`,
		`<section id="certificates"`,
		`localStorage.getItem("theme")`,
		`data-mode="static"`,
		`href="style.css"`,
		`src="script.js"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
	if strings.Contains(html, `class="dark"`) {
		t.Error("index.html should default to light")
	}

	if !strings.Contains(log.String(), "[5/5]") {
		t.Errorf("progress should reach 5/5, got:\n%s", log.String())
	}
}

func TestGeneratePrefersDark(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(Options{OutputDir: out, PrefersDark: true}, content.Default(), newRenderer(t), nil)

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 3 {
		t.Errorf("files written = %d, want 3", n)
	}
	index, _ := os.ReadFile(filepath.Join(out, "index.html"))
	if !strings.Contains(string(index), `<html lang="en" class="dark"`) {
		t.Error("index.html should carry the dark marker")
	}
}

func TestGenerateMissingAssetsDir(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(Options{
		OutputDir: out,
		AssetsDir: filepath.Join(t.TempDir(), "nope"),
		Assets:    []string{"**/*.jpg"},
	}, content.Default(), newRenderer(t), nil)

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 3 {
		t.Errorf("files written = %d, want 3", n)
	}
}

func TestGenerateInvalidPattern(t *testing.T) {
	g := NewGenerator(Options{
		OutputDir: t.TempDir(),
		AssetsDir: t.TempDir(),
		Assets:    []string{"[unclosed"},
	}, content.Default(), newRenderer(t), nil)

	if _, err := g.Generate(); err == nil {
		t.Error("expected error for invalid asset pattern")
	}
}

func TestGenerateRequiresContent(t *testing.T) {
	g := NewGenerator(Options{OutputDir: t.TempDir()}, nil, newRenderer(t), nil)
	if _, err := g.Generate(); err == nil {
		t.Error("expected error without content")
	}
}

func TestPreviewHandler(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "<html>hi</html>")

	w := httptest.NewRecorder()
	PreviewHandler(dir, nil).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "hi") {
		t.Errorf("body = %q", w.Body.String())
	}
}
