package render

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/errors"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Config carries the rendered message knobs.
type Config struct {
	Subject   string
	Budget    string
	EventName string
}

// templateData is what both the built-in and custom templates see.
type templateData struct {
	Giver     roster.Participant
	Receiver  roster.Participant
	Budget    string
	EventName string
}

// EmailRenderer renders the built-in text and HTML notification bodies.
// The first wish is presented as the priority wish; remaining wishes are
// numbered in roster order.
type EmailRenderer struct {
	config Config
	text   *texttemplate.Template
	html   *htmltemplate.Template
}

// NewEmailRenderer parses the embedded templates at construction; a broken
// template surfaces here, before any draw.
func NewEmailRenderer(config Config) (*EmailRenderer, error) {
	text, err := texttemplate.ParseFS(templateFS, "templates/email.txt.tmpl")
	if err != nil {
		return nil, errors.RenderFailed("failed to parse text template", err)
	}

	html, err := htmltemplate.New("email.html.tmpl").
		Funcs(htmltemplate.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templateFS, "templates/email.html.tmpl")
	if err != nil {
		return nil, errors.RenderFailed("failed to parse HTML template", err)
	}

	return &EmailRenderer{config: config, text: text, html: html}, nil
}

// Render builds the notification for one giver/receiver pair.
func (r *EmailRenderer) Render(giver, receiver roster.Participant) (ports.Message, error) {
	data := templateData{
		Giver:     giver,
		Receiver:  receiver,
		Budget:    r.config.Budget,
		EventName: r.config.EventName,
	}

	var text bytes.Buffer
	if err := r.text.ExecuteTemplate(&text, "email.txt.tmpl", data); err != nil {
		return ports.Message{}, errors.RenderFailed("failed to render text body", err)
	}

	var html bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, "email.html.tmpl", data); err != nil {
		return ports.Message{}, errors.RenderFailed("failed to render HTML body", err)
	}

	return ports.Message{
		Subject: r.config.Subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

var _ ports.Renderer = (*EmailRenderer)(nil)
