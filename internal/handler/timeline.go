package handler

import (
	"net/http"

	"github.com/kristofferme/leader/internal/ui"
	"github.com/kristofferme/leader/internal/ui/pages"
)

type TimelineHandler struct {
	page *Page
}

func NewTimelineHandler(page *Page) *TimelineHandler {
	return &TimelineHandler{
		page: page,
	}
}

// Timeline renders the log and chart data fragment.
func (h *TimelineHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	d := h.page.load(r, "")
	ui.Render(w, r, pages.TimelineBody(d.Timeline))
}

// Data returns the chart series as JSON.
func (h *TimelineHandler) Data(w http.ResponseWriter, r *http.Request) {
	d := h.page.load(r, "")
	ui.RenderJSON(w, r, d.Timeline.Chart)
}
