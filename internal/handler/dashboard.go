package handler

import (
	"net/http"

	"github.com/kristofferme/leader/internal/ui"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type DashboardHandler struct {
	page *Page
}

func NewDashboardHandler(page *Page) *DashboardHandler {
	return &DashboardHandler{
		page: page,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	d := h.page.load(r, "")
	ui.Render(w, r, pages.Layout("", pages.Dashboard(d, "")))
}

// Details opens the detail view for a feature. Without htmx the whole page is
// rendered with the view already open.
func (h *DashboardHandler) Details(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !pages.KnownFeature(name) {
		http.NotFound(w, r)
		return
	}

	d := h.page.load(r, "")

	if ui.IsHTMX(r) {
		ui.Render(w, r, pages.Panel(name, d))
		return
	}

	ui.Render(w, r, pages.Layout(pages.FeatureTitle(name), pages.Dashboard(d, name)))
}

// CloseDetails empties the modal.
func (h *DashboardHandler) CloseDetails(w http.ResponseWriter, r *http.Request) {
	if !ui.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *DashboardHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
