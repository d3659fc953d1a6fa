package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
)

// handleIndex renders the main page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "index")
}

// handleAbout renders the about page. It has no toggle control.
func (h *Handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "about")
}

// servePage renders a page with the visitor's display mode applied to its root.
func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, name string) {
	doc, err := h.renderDocument(name)
	if err != nil {
		log.Printf("[ERROR] failed to render %s page: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if _, err := h.wire(r, doc); err != nil {
		log.Printf("[ERROR] failed to apply theme on %s page: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := doc.Render(w); err != nil {
		log.Printf("[ERROR] failed to write %s page: %v", name, err)
	}
}

// handleThemeToggle handles a click on the theme toggle control.
// The page the click came from is rebuilt first, so the toggle flips the marker
// the visitor actually sees. Pages without the control store nothing.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("page")
	if name == "" {
		name = "index"
	}
	p, ok := pages[name]
	if !ok {
		http.Error(w, "unknown page", http.StatusBadRequest)
		return
	}

	doc, err := h.renderDocument(name)
	if err != nil {
		log.Printf("[ERROR] failed to render %s page: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	binding, err := h.wire(r, doc)
	if err != nil {
		log.Printf("[ERROR] failed to apply theme on %s page: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if binding == nil {
		log.Printf("[DEBUG] no theme toggle on %s page, ignoring click", name)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	theme, err := binding.Toggle(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to toggle theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	log.Printf("[DEBUG] theme toggled to %s on %s page", theme, name)

	if r.Header.Get("HX-Request") == "true" {
		// trigger full page refresh
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, h.url(p.path), http.StatusSeeOther)
}
