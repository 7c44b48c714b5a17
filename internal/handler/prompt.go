package handler

import (
	"log/slog"
	"net/http"

	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type PromptHandler struct {
	promptService *service.PromptService
	page          *Page
}

func NewPromptHandler(promptService *service.PromptService, page *Page) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		page:          page,
	}
}

// Draw shows a new random prompt.
func (h *PromptHandler) Draw(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.promptService.Draw()
	if err != nil {
		h.page.fail(w, r, "draw prompt", err)
		return
	}

	if !ui.IsHTMX(r) {
		http.Redirect(w, r, "/details/"+pages.FeaturePrompts, http.StatusSeeOther)
		return
	}

	h.page.respond(w, r, pages.FeaturePrompts, refresh{prompt: prompt})
}

// Save stores the shown prompt as a favorite and keeps it on screen.
func (h *PromptHandler) Save(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")

	favorite, created, err := h.promptService.Save(r.Context(), text)
	if err != nil {
		h.page.fail(w, r, "save prompt", err)
		return
	}
	if !created {
		slog.Debug("prompt already a favorite", "id", favorite.ID)
	}

	h.page.respond(w, r, pages.FeaturePrompts, refresh{prompt: favorite.Text})
}

func (h *PromptHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.promptService.Remove(r.Context(), r.PathValue("id"))
	if err != nil {
		h.page.fail(w, r, "remove favorite", err)
		return
	}

	h.page.respond(w, r, pages.FeaturePrompts, refresh{prompt: r.FormValue("current")})
}
