package handler

import (
	"log/slog"
	"net/http"

	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type FocusHandler struct {
	focusService *service.FocusService
	page         *Page
}

func NewFocusHandler(focusService *service.FocusService, page *Page) *FocusHandler {
	return &FocusHandler{
		focusService: focusService,
		page:         page,
	}
}

func (h *FocusHandler) Set(w http.ResponseWriter, r *http.Request) {
	_, err := h.focusService.Set(r.Context(), r.FormValue("text"))
	if err != nil {
		h.page.fail(w, r, "set focus", err)
		return
	}

	h.page.respond(w, r, pages.FeatureFocus, refresh{timeline: true})
}

func (h *FocusHandler) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := h.focusService.Clear(r.Context())
	if err != nil {
		h.page.fail(w, r, "clear focus", err)
		return
	}
	slog.Debug("focus cleared", "markers", n)

	h.page.respond(w, r, pages.FeatureFocus, refresh{timeline: true})
}
