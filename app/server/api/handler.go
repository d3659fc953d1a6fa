// Package api provides HTTP handlers for the JSON preference API.
package api

import (
	"context"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shade/app/prefs"
	"github.com/umputun/shade/app/server/internal"
	"github.com/umputun/shade/app/store"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

// PrefStore defines the interface for scoped preference storage.
type PrefStore interface {
	Get(ctx context.Context, scope, key string) (string, error)
	Set(ctx context.Context, scope, key, value string) error
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	store PrefStore
	ctrl  *prefs.Controller
}

// New creates a new API handler.
func New(st PrefStore, ctrl *prefs.Controller) *Handler {
	return &Handler{store: st, ctrl: ctrl}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGetTheme)
	r.HandleFunc("POST /theme/toggle", h.handleToggleTheme)
}

// themeResponse is the JSON view of a visitor's display mode.
type themeResponse struct {
	Theme      string `json:"theme"`       // stored preference: dark, light or unset
	Dark       bool   `json:"dark"`        // effective dark-mode flag
	SystemDark bool   `json:"system_dark"` // color-scheme hint sent with the request
}

// handleGetTheme returns the stored preference and the effective mode.
// GET /api/v1/theme
func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	st := store.NewScoped(h.store, internal.VisitorID(r.Context()))
	systemDark := internal.SystemPrefersDark(r)

	stored, err := h.ctrl.Stored(r.Context(), st)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read theme")
		return
	}
	dark := h.ctrl.Mode(stored, systemDark)

	rest.RenderJSON(w, themeResponse{Theme: stored.String(), Dark: dark, SystemDark: systemDark})
}

// handleToggleTheme flips the effective mode and stores it.
// POST /api/v1/theme/toggle
func (h *Handler) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	st := store.NewScoped(h.store, internal.VisitorID(r.Context()))
	systemDark := internal.SystemPrefersDark(r)

	flag := &prefs.Flag{}
	if err := h.ctrl.Initialize(r.Context(), flag, st, systemDark); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read theme")
		return
	}
	theme, err := h.ctrl.OnToggle(r.Context(), flag, st)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to store theme")
		return
	}

	log.Printf("[DEBUG] theme toggled to %s via api", theme)
	rest.RenderJSON(w, themeResponse{Theme: theme.String(), Dark: flag.IsDark(), SystemDark: systemDark})
}
