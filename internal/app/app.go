package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/kristofferme/leader"
	"github.com/kristofferme/leader/internal/config"
	"github.com/kristofferme/leader/internal/db"
	"github.com/kristofferme/leader/internal/markdown"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/view"
)

const promptsFile = "content/prompts.md"

type App struct {
	Cfg   *config.Config
	DB    *sqlx.DB
	Store *repository.Store

	PulseService      *service.PulseService
	FocusService      *service.FocusService
	PriorityService   *service.PriorityService
	DelegationService *service.DelegationService
	OneOnOneService   *service.OneOnOneService
	DecisionService   *service.DecisionService
	AdminService      *service.AdminService
	PromptService     *service.PromptService
	DashboardService  *service.DashboardService

	Views *view.Builder
}

// New wires the application. A store that cannot be opened is not fatal: the
// dashboard still renders and every write reports storage unavailable.
func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		slog.Error("journal store unavailable, continuing without persistence", "error", err)
		database = nil
	}

	if database != nil {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			slog.Error("failed to run migrations", "error", err)
		}
	}

	parser := markdown.NewParser()

	prompts, err := service.LoadPrompts(leader.ContentFS, promptsFile, parser)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}

	return newApp(cfg, database, prompts, parser, nil), nil
}

// newApp builds the services on top of an open (or nil) database.
func newApp(cfg *config.Config, database *sqlx.DB, prompts []string, parser *markdown.Parser, now service.Clock) *App {
	loc := cfg.Timezone
	store := repository.NewStore(database)

	a := &App{
		Cfg:   cfg,
		DB:    database,
		Store: store,

		PulseService:      service.NewPulseService(store.Pulses, now, loc),
		FocusService:      service.NewFocusService(store.Focus, now, loc),
		PriorityService:   service.NewPriorityService(store.Priorities, now, loc),
		DelegationService: service.NewDelegationService(store.Delegations, now, loc),
		OneOnOneService:   service.NewOneOnOneService(store.OneOnOnes, now, loc),
		DecisionService:   service.NewDecisionService(store.Decisions, now, loc),
		AdminService:      service.NewAdminService(store.AdminTasks, now, loc),
		PromptService:     service.NewPromptService(store.Favorites, prompts, nil, now),
	}

	a.DashboardService = service.NewDashboardService(
		service.Journal{
			Pulses:      a.PulseService,
			Focus:       a.FocusService,
			Priorities:  a.PriorityService,
			Delegations: a.DelegationService,
			OneOnOnes:   a.OneOnOneService,
			Decisions:   a.DecisionService,
			Admin:       a.AdminService,
			Prompts:     a.PromptService,
		},
		service.Limits{
			TrailingWindowDays: cfg.TrailingWindowDays,
			PulseLog:           cfg.PulseLogLimit,
			DecisionLog:        cfg.DecisionLogLimit,
			PriorityPreview:    cfg.PriorityPreviewLimit,
		},
		now,
		loc,
	)

	a.Views = view.NewBuilder(view.NewFormatter(cfg.Locale, loc), parser, cfg.PriorityPreviewLimit)

	return a
}

// NewWithDB builds the app on an already open and migrated database. A nil
// clock means time.Now.
func NewWithDB(cfg *config.Config, database *sqlx.DB, prompts []string, now service.Clock) *App {
	return newApp(cfg, database, prompts, markdown.NewParser(), now)
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
