package handler

import (
	"net/http"

	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type AdminHandler struct {
	adminService *service.AdminService
	page         *Page
}

func NewAdminHandler(adminService *service.AdminService, page *Page) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		page:         page,
	}
}

func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, err := h.adminService.Add(r.Context(), r.FormValue("task"), r.FormValue("due"))
	if err != nil {
		h.page.fail(w, r, "add admin task", err)
		return
	}

	h.page.respond(w, r, pages.FeatureAdmin, refresh{})
}

func (h *AdminHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	_, err := h.adminService.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		h.page.fail(w, r, "toggle admin task", err)
		return
	}

	h.page.respond(w, r, pages.FeatureAdmin, refresh{})
}
