package handler

import (
	"net/http"

	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type OneOnOneHandler struct {
	oneOnOneService *service.OneOnOneService
	page            *Page
}

func NewOneOnOneHandler(oneOnOneService *service.OneOnOneService, page *Page) *OneOnOneHandler {
	return &OneOnOneHandler{
		oneOnOneService: oneOnOneService,
		page:            page,
	}
}

func (h *OneOnOneHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, err := h.oneOnOneService.Add(r.Context(), r.FormValue("name"), r.FormValue("date"), r.FormValue("agenda"))
	if err != nil {
		h.page.fail(w, r, "add one-on-one", err)
		return
	}

	h.page.respond(w, r, pages.FeatureOneOnOnes, refresh{})
}

func (h *OneOnOneHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	_, err := h.oneOnOneService.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		h.page.fail(w, r, "toggle one-on-one", err)
		return
	}

	h.page.respond(w, r, pages.FeatureOneOnOnes, refresh{})
}
