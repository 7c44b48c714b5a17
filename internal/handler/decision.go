package handler

import (
	"net/http"

	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type DecisionHandler struct {
	decisionService *service.DecisionService
	page            *Page
}

func NewDecisionHandler(decisionService *service.DecisionService, page *Page) *DecisionHandler {
	return &DecisionHandler{
		decisionService: decisionService,
		page:            page,
	}
}

func (h *DecisionHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, err := h.decisionService.Log(r.Context(), r.FormValue("topic"), r.FormValue("context"), r.FormValue("outcome"))
	if err != nil {
		h.page.fail(w, r, "log decision", err)
		return
	}

	h.page.respond(w, r, pages.FeatureDecisions, refresh{})
}
