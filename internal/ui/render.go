package ui

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	err := c.Render(r.Context(), w)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// RenderOOB writes c wrapped for an htmx out-of-band swap, e.g.
// target "innerHTML:#tile-pulse".
func RenderOOB(w http.ResponseWriter, r *http.Request, c templ.Component, target string) {
	// Write OOB wrapper start
	_, err := fmt.Fprintf(w, `<div hx-swap-oob="%s">`, templ.EscapeString(target))
	if err != nil {
		slog.Error("render oob write wrapper start failed", "error", err)
		return
	}

	// Render component
	err = c.Render(r.Context(), w)
	if err != nil {
		slog.Error("render oob component render failed", "error", err, "target", target)
		return
	}

	// Write OOB wrapper end
	_, err = w.Write([]byte(`</div>`))
	if err != nil {
		slog.Error("render oob write wrapper end failed", "error", err)
	}
}

func RenderJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("render json failed", "error", err, "path", r.URL.Path)
	}
}
