package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type PulseHandler struct {
	pulseService *service.PulseService
	page         *Page
}

func NewPulseHandler(pulseService *service.PulseService, page *Page) *PulseHandler {
	return &PulseHandler{
		pulseService: pulseService,
		page:         page,
	}
}

func (h *PulseHandler) Log(w http.ResponseWriter, r *http.Request) {
	// An unparseable score is treated as missing.
	score, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("score")))

	_, err := h.pulseService.Log(r.Context(), score, r.FormValue("notes"), r.FormValue("date"))
	if err != nil {
		h.page.fail(w, r, "log pulse", err)
		return
	}

	h.page.respond(w, r, pages.FeaturePulse, refresh{timeline: true})
}
