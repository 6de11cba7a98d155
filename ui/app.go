package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/app"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/core"
)

//go:embed templates/*
var embeddedFiles embed.FS

// Preview is one drawn exchange ready for inspection.
type Preview struct {
	DrawnAt       core.Timestamp
	Notifications []app.Notification
}

// App serves a local preview of a drawn exchange: an index of assignments
// plus the rendered HTML and text body of every message. Nothing is
// delivered from here.
type App struct {
	router    *chi.Mux
	templates *template.Template
	preview   Preview
	addr      string
}

// Config holds preview server configuration.
type Config struct {
	Addr string
}

// NewApp creates a preview application over an already-rendered exchange.
func NewApp(config Config, preview Preview) (*App, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	addr := config.Addr
	if addr == "" {
		addr = ":8080"
	}

	a := &App{
		router:    chi.NewRouter(),
		templates: templates,
		preview:   preview,
		addr:      addr,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/messages/{idx}/html", a.handleMessageHTML)
	a.router.Get("/messages/{idx}/text", a.handleMessageText)

	// API endpoints
	a.router.Get("/api/assignments", a.handleAssignmentsJSON)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the HTTP server and blocks until it exits.
func (a *App) Start() error {
	log.Printf("Serving preview of %d messages on %s", len(a.preview.Notifications), a.addr)
	return http.ListenAndServe(a.addr, a.router)
}

// renderTemplate executes a template into a buffer first so a rendering
// error never leaves a half-written response.
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("Template error for %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing template response: %v", err)
	}
}
