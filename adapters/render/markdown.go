package render

import (
	"bytes"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/errors"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

// MarkdownRenderer renders a user-supplied Markdown message template. The
// executed Markdown becomes the text body as-is and is compiled to HTML for
// the HTML body. Templates see the same fields as the built-in ones:
// .Giver, .Receiver, .Budget and .EventName.
type MarkdownRenderer struct {
	config Config
	tmpl   *texttemplate.Template
}

// NewMarkdownRenderer loads and parses the template file at path.
func NewMarkdownRenderer(path string, config Config) (*MarkdownRenderer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.RenderFailed("failed to read message template", err)
	}

	tmpl, err := texttemplate.New(filepath.Base(path)).Parse(string(src))
	if err != nil {
		return nil, errors.RenderFailed("failed to parse message template", err)
	}

	return &MarkdownRenderer{config: config, tmpl: tmpl}, nil
}

// Render executes the template and compiles the result to HTML.
func (r *MarkdownRenderer) Render(giver, receiver roster.Participant) (ports.Message, error) {
	data := templateData{
		Giver:     giver,
		Receiver:  receiver,
		Budget:    r.config.Budget,
		EventName: r.config.EventName,
	}

	var text bytes.Buffer
	if err := r.tmpl.Execute(&text, data); err != nil {
		return ports.Message{}, errors.RenderFailed("failed to render message template", err)
	}

	// Parser state is single-use, so build one per render.
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	html := markdown.ToHTML(text.Bytes(), p, renderer)

	return ports.Message{
		Subject: r.config.Subject,
		Text:    text.String(),
		HTML:    string(html),
	}, nil
}

var _ ports.Renderer = (*MarkdownRenderer)(nil)
