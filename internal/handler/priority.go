package handler

import (
	"net/http"

	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type PriorityHandler struct {
	priorityService *service.PriorityService
	page            *Page
}

func NewPriorityHandler(priorityService *service.PriorityService, page *Page) *PriorityHandler {
	return &PriorityHandler{
		priorityService: priorityService,
		page:            page,
	}
}

func (h *PriorityHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, err := h.priorityService.Add(r.Context(), r.FormValue("title"), r.FormValue("impact"))
	if err != nil {
		h.page.fail(w, r, "add priority", err)
		return
	}

	h.page.respond(w, r, pages.FeaturePriorities, refresh{timeline: true})
}

func (h *PriorityHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	_, err := h.priorityService.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		h.page.fail(w, r, "toggle priority", err)
		return
	}

	h.page.respond(w, r, pages.FeaturePriorities, refresh{timeline: true})
}
