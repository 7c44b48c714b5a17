package service

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Limits caps the lists shown on the dashboard.
type Limits struct {
	TrailingWindowDays int
	PulseLog           int
	DecisionLog        int
	PriorityPreview    int
}

// Journal groups the per-feature services behind the dashboard.
type Journal struct {
	Pulses      *PulseService
	Focus       *FocusService
	Priorities  *PriorityService
	Delegations *DelegationService
	OneOnOnes   *OneOnOneService
	Decisions   *DecisionService
	Admin       *AdminService
	Prompts     *PromptService
}

type DashboardService struct {
	journal Journal
	limits  Limits
	cal     calendar
}

func NewDashboardService(journal Journal, limits Limits, now Clock, loc *time.Location) *DashboardService {
	return &DashboardService{
		journal: journal,
		limits:  limits,
		cal:     newCalendar(now, loc),
	}
}

// Load reads every collection the dashboard renders. A collection that fails
// to load is left empty and its error is joined into the returned error, so
// callers can still render the rest.
func (s *DashboardService) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Now:                s.cal.Now(),
		Today:              s.cal.Today(),
		Location:           s.cal.loc,
		TrailingWindowDays: s.limits.TrailingWindowDays,
	}

	var errs []error
	collect := func(name string, err error) {
		if err == nil {
			return
		}
		slog.Error("failed to load dashboard collection", "collection", name, "error", err)
		errs = append(errs, err)
	}

	var err error

	snap.TodayFocus, err = s.journal.Focus.Today(ctx)
	collect("focus_today", err)

	snap.Focus, err = s.journal.Focus.All(ctx)
	collect("focus", err)

	snap.Pulses, err = s.journal.Pulses.All(ctx)
	collect("pulses", err)

	snap.RecentPulses, err = s.journal.Pulses.Recent(ctx, s.limits.PulseLog)
	collect("recent_pulses", err)

	snap.Priorities, err = s.journal.Priorities.List(ctx)
	collect("priorities", err)

	snap.Delegations, err = s.journal.Delegations.List(ctx)
	collect("delegations", err)

	snap.OneOnOnes, err = s.journal.OneOnOnes.List(ctx)
	collect("one_on_ones", err)

	snap.Decisions, err = s.journal.Decisions.Recent(ctx, s.limits.DecisionLog)
	collect("decisions", err)

	snap.AdminTasks, err = s.journal.Admin.List(ctx)
	collect("admin_tasks", err)

	snap.Favorites, err = s.journal.Prompts.Favorites(ctx)
	collect("favorites", err)

	return snap, errors.Join(errs...)
}
