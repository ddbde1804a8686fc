// Package html contains code relating specifically to rendering HTML.
package html

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown returns a component rendering md as HTML. Raw HTML in md is
// skipped.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := parser.NewWithExtensions(parser.CommonExtensions)
		r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML})
		_, err := w.Write(markdown.ToHTML([]byte(md), p, r))
		return err
	})
}
