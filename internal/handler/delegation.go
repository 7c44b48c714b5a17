package handler

import (
	"net/http"

	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type DelegationHandler struct {
	delegationService *service.DelegationService
	page              *Page
}

func NewDelegationHandler(delegationService *service.DelegationService, page *Page) *DelegationHandler {
	return &DelegationHandler{
		delegationService: delegationService,
		page:              page,
	}
}

func (h *DelegationHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, err := h.delegationService.Add(r.Context(), r.FormValue("name"), r.FormValue("task"), r.FormValue("support"))
	if err != nil {
		h.page.fail(w, r, "add delegation", err)
		return
	}

	h.page.respond(w, r, pages.FeatureDelegations, refresh{})
}

func (h *DelegationHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	_, err := h.delegationService.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		h.page.fail(w, r, "toggle delegation", err)
		return
	}

	h.page.respond(w, r, pages.FeatureDelegations, refresh{})
}
