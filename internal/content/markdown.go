package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// RenderAbout converts the About markdown to HTML. Raw HTML in the source is
// not passed through.
func (c *Content) RenderAbout() (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(c.About), &buf); err != nil {
		return "", fmt.Errorf("converting about markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
