package routes

import (
	"net/http"

	"github.com/kristofferme/leader/assets"
	"github.com/kristofferme/leader/internal/app"
	"github.com/kristofferme/leader/internal/handler"
	"github.com/kristofferme/leader/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	page := handler.NewPage(app.DashboardService, app.PromptService, app.Views)
	dashboard := handler.NewDashboardHandler(page)
	focus := handler.NewFocusHandler(app.FocusService, page)
	pulse := handler.NewPulseHandler(app.PulseService, page)
	priority := handler.NewPriorityHandler(app.PriorityService, page)
	delegation := handler.NewDelegationHandler(app.DelegationService, page)
	oneOnOne := handler.NewOneOnOneHandler(app.OneOnOneService, page)
	decision := handler.NewDecisionHandler(app.DecisionService, page)
	admin := handler.NewAdminHandler(app.AdminService, page)
	prompt := handler.NewPromptHandler(app.PromptService, page)
	timeline := handler.NewTimelineHandler(page)

	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(assets.AssetsFS))))

	// Dashboard
	mux.HandleFunc("GET /{$}", dashboard.DashboardPage)
	mux.HandleFunc("GET /details/close", dashboard.CloseDetails)
	mux.HandleFunc("GET /details/{name}", dashboard.Details)

	// Focus
	mux.HandleFunc("POST /focus", focus.Set)
	mux.HandleFunc("DELETE /focus", focus.Clear)

	// Pulse
	mux.HandleFunc("POST /pulses", pulse.Log)

	// Priorities
	mux.HandleFunc("POST /priorities", priority.Create)
	mux.HandleFunc("PATCH /priorities/{id}/toggle", priority.Toggle)

	// Delegations
	mux.HandleFunc("POST /delegations", delegation.Create)
	mux.HandleFunc("PATCH /delegations/{id}/toggle", delegation.Toggle)

	// One-on-ones
	mux.HandleFunc("POST /one-on-ones", oneOnOne.Create)
	mux.HandleFunc("PATCH /one-on-ones/{id}/toggle", oneOnOne.Toggle)

	// Decisions
	mux.HandleFunc("POST /decisions", decision.Create)

	// Admin
	mux.HandleFunc("POST /admin-tasks", admin.Create)
	mux.HandleFunc("PATCH /admin-tasks/{id}/toggle", admin.Toggle)

	// Prompts
	mux.HandleFunc("GET /prompts/draw", prompt.Draw)
	mux.HandleFunc("POST /prompts/favorites", prompt.Save)
	mux.HandleFunc("DELETE /prompts/favorites/{id}", prompt.Remove)

	// Timeline
	mux.HandleFunc("GET /timeline", timeline.Timeline)
	mux.HandleFunc("GET /timeline/data", timeline.Data)

	// 404
	mux.HandleFunc("/{path...}", dashboard.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // before CSRF, which reads APP_ENV for the cookie
		middleware.NonceMiddleware, // before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
	)
}
