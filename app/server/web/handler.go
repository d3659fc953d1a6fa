// Package web provides HTTP handlers for the web UI.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shade/app/page"
	"github.com/umputun/shade/app/prefs"
	"github.com/umputun/shade/app/server/internal"
	"github.com/umputun/shade/app/store"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// PrefStore defines the interface for scoped preference storage.
type PrefStore interface {
	Get(ctx context.Context, scope, key string) (string, error)
	Set(ctx context.Context, scope, key, value string) error
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Version string
}

// pages maps page names accepted by the toggle endpoint to their templates.
var pages = map[string]struct {
	template string
	path     string
	title    string
}{
	"index": {template: "index.html", path: "/", title: "Home"},
	"about": {template: "about.html", path: "/about", title: "About"},
}

// Handler handles web UI requests.
type Handler struct {
	store   PrefStore
	ctrl    *prefs.Controller
	tmpl    *template.Template
	baseURL string
	version string
}

// New creates a new web handler.
func New(st PrefStore, ctrl *prefs.Controller, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		store:   st,
		ctrl:    ctrl,
		tmpl:    tmpl,
		baseURL: cfg.BaseURL,
		version: cfg.Version,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /about", h.handleAbout)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses the layout and all page templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout.html: %w", err)
	}
	for _, p := range pages {
		if _, err := tmpl.ParseFS(templatesFS, "templates/"+p.template); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p.template, err)
		}
	}
	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Title   string
	Page    string // page name, posted back by the toggle form
	BaseURL string
	Version string
}

// renderDocument executes a page template and parses the output into a document.
func (h *Handler) renderDocument(name string) (*page.Document, error) {
	p, ok := pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	data := templateData{Title: p.title, Page: name, BaseURL: h.baseURL, Version: h.version}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, p.template, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", p.template, err)
	}
	doc, err := page.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse rendered %s: %w", p.template, err)
	}
	return doc, nil
}

// wire binds the preference controller to a document for the requesting visitor.
func (h *Handler) wire(r *http.Request, doc *page.Document) (*prefs.Binding, error) {
	st := store.NewScoped(h.store, internal.VisitorID(r.Context()))
	binding, err := h.ctrl.Wire(r.Context(), doc, st, internal.SystemPrefersDark(r))
	if err != nil {
		return nil, fmt.Errorf("wire preference controller: %w", err)
	}
	return binding, nil
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}
