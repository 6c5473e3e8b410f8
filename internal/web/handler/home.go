package handler

import (
	"net/http"
	"path/filepath"
)

// HomeHandler serves the interactive checker page
type HomeHandler struct {
	staticDir string
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(staticDir string) *HomeHandler {
	return &HomeHandler{staticDir: staticDir}
}

// Home renders the checker page. The page is a static asset; evaluation
// happens through the JSON API it calls from the browser.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	if h.staticDir == "" {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
