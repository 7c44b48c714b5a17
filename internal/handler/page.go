package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kristofferme/leader/internal/ctxkeys"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/ui"
	"github.com/kristofferme/leader/internal/ui/pages"
	"github.com/kristofferme/leader/internal/validation"
	"github.com/kristofferme/leader/internal/view"
)

// Page rehydrates the dashboard from the store and writes the fragments a
// mutation has to refresh.
type Page struct {
	dashboard *service.DashboardService
	prompts   *service.PromptService
	views     *view.Builder
}

func NewPage(dashboard *service.DashboardService, prompts *service.PromptService, views *view.Builder) *Page {
	return &Page{
		dashboard: dashboard,
		prompts:   prompts,
		views:     views,
	}
}

// load builds the dashboard view. Collections that fail to load render empty.
// An empty prompt draws a fresh one.
func (p *Page) load(r *http.Request, prompt string) view.Dashboard {
	snap, err := p.dashboard.Load(r.Context())
	if err != nil {
		slog.Warn("dashboard loaded partially", "error", err, "path", r.URL.Path)
	}

	if prompt == "" {
		prompt, err = p.prompts.Draw()
		if err != nil {
			slog.Warn("failed to draw prompt", "error", err)
		}
	}

	return p.views.Dashboard(snap, prompt)
}

type refresh struct {
	timeline bool
	prompt   string
}

// respond answers a successful mutation. htmx requests get the feature panel
// plus out-of-band tile and timeline updates; plain form posts are redirected
// back to the dashboard.
func (p *Page) respond(w http.ResponseWriter, r *http.Request, feature string, opts refresh) {
	if !ui.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	d := p.load(r, opts.prompt)

	ui.Render(w, r, pages.Panel(feature, d))
	ui.RenderOOB(w, r, pages.Tile(feature, d), "innerHTML:#"+pages.TileID(feature))
	if opts.timeline {
		ui.RenderOOB(w, r, pages.TimelineBody(d.Timeline), "innerHTML:#"+pages.TimelineID)
	}
}

// fail answers a rejected or failed mutation. Nothing is swapped, so the page
// keeps its prior state.
func (p *Page) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := slog.With("op", op, "error", err, "request_id", ctxkeys.RequestID(r.Context()))

	switch {
	case errors.Is(err, validation.ErrRequired), errors.Is(err, validation.ErrInvalid):
		log.Debug("submission rejected")
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("record not found")
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrStorageUnavailable):
		log.Error("storage unavailable")
		w.WriteHeader(http.StatusNoContent)
	default:
		log.Error("operation failed")
		w.WriteHeader(http.StatusNoContent)
	}
}
