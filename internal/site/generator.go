// Package site writes the portfolio as a static site.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/angeloflores/folio/internal/content"
	"github.com/angeloflores/folio/internal/page"
	"github.com/angeloflores/folio/internal/progress"
	"github.com/angeloflores/folio/internal/theme"
)

// Options controls a static build.
type Options struct {
	OutputDir string
	AssetsDir string
	// Assets are doublestar globs relative to AssetsDir.
	Assets []string
	// PrefersDark is the environment answer baked into index.html. The
	// inlined bootstrap re-resolves the theme in the browser before paint.
	PrefersDark bool
}

// Generator writes index.html, the stylesheet, the script and image assets.
type Generator struct {
	opts     Options
	content  *content.Content
	renderer *page.Renderer
	reporter progress.Reporter
}

// NewGenerator creates a Generator. A nil reporter discards progress.
func NewGenerator(opts Options, c *content.Content, r *page.Renderer, reporter progress.Reporter) *Generator {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Generator{opts: opts, content: c, renderer: r, reporter: reporter}
}

// Generate builds the site. Returns the number of files written.
func (g *Generator) Generate() (int, error) {
	if g.content == nil {
		return 0, fmt.Errorf("no content to build")
	}
	if g.renderer == nil {
		return 0, fmt.Errorf("no renderer")
	}

	assets, err := g.matchAssets()
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	index, err := g.renderIndex()
	if err != nil {
		return 0, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", index},
		{"style.css", []byte(page.CSS)},
		{"script.js", []byte(page.Script)},
	}

	total := len(files) + len(assets)
	g.reporter.Start(total)
	defer g.reporter.Finish()

	written := 0
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.opts.OutputDir, f.name), f.data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written++
		g.reporter.Update(written, f.name)
	}

	for _, rel := range assets {
		src := filepath.Join(g.opts.AssetsDir, filepath.FromSlash(rel))
		dst := filepath.Join(g.opts.OutputDir, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return written, fmt.Errorf("copying asset %s: %w", rel, err)
		}
		written++
		g.reporter.Update(written, rel)
	}

	return written, nil
}

// renderIndex resolves the theme the way a first-time visitor without a
// stored preference would see it and renders the page in static mode.
func (g *Generator) renderIndex() ([]byte, error) {
	ctrl := theme.NewController(theme.NewMemoryStore(), theme.StaticEnvironment(g.opts.PrefersDark))
	ctrl.Initialize()

	var buf bytes.Buffer
	err := g.renderer.Render(&buf, page.View{
		Theme:   ctrl,
		Content: g.content,
		Mode:    page.ModeStatic,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering index.html: %w", err)
	}
	return buf.Bytes(), nil
}

// matchAssets returns the files under AssetsDir matching any asset glob,
// sorted and de-duplicated. A missing AssetsDir yields no assets.
func (g *Generator) matchAssets() ([]string, error) {
	if g.opts.AssetsDir == "" || len(g.opts.Assets) == 0 {
		return nil, nil
	}
	info, err := os.Stat(g.opts.AssetsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("accessing assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %s is not a directory", g.opts.AssetsDir)
	}

	fsys := os.DirFS(g.opts.AssetsDir)
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range g.opts.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid asset pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
