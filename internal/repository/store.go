package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/kristofferme/leader/internal/model"
)

// Store bundles the journal's record collections. A nil db yields a store
// whose every operation reports ErrStorageUnavailable.
type Store struct {
	Pulses      Repository[model.Pulse]
	Focus       Repository[model.FocusMarker]
	Priorities  Repository[model.Priority]
	Delegations Repository[model.Delegation]
	OneOnOnes   Repository[model.OneOnOne]
	Decisions   Repository[model.Decision]
	AdminTasks  Repository[model.AdminTask]
	Favorites   Repository[model.FavoritePrompt]
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		Pulses:      NewPulseRepository(db),
		Focus:       NewFocusRepository(db),
		Priorities:  NewPriorityRepository(db),
		Delegations: NewDelegationRepository(db),
		OneOnOnes:   NewOneOnOneRepository(db),
		Decisions:   NewDecisionRepository(db),
		AdminTasks:  NewAdminTaskRepository(db),
		Favorites:   NewFavoriteRepository(db),
	}
}

func NewPulseRepository(db *sqlx.DB) Repository[model.Pulse] {
	return newCollection[model.Pulse](db, "pulses", []string{"score", "notes", "timestamp"})
}

func NewFocusRepository(db *sqlx.DB) Repository[model.FocusMarker] {
	return newCollection[model.FocusMarker](db, "focus_markers", []string{"text", "date_key"})
}

func NewPriorityRepository(db *sqlx.DB) Repository[model.Priority] {
	return newCollection[model.Priority](db, "priorities", []string{"title", "impact", "completed"}, "completed")
}

func NewDelegationRepository(db *sqlx.DB) Repository[model.Delegation] {
	return newCollection[model.Delegation](db, "delegations", []string{"name", "task", "support", "status"}, "status")
}

func NewOneOnOneRepository(db *sqlx.DB) Repository[model.OneOnOne] {
	return newCollection[model.OneOnOne](db, "one_on_ones", []string{"name", "date", "agenda", "status"}, "status")
}

func NewDecisionRepository(db *sqlx.DB) Repository[model.Decision] {
	return newCollection[model.Decision](db, "decisions", []string{"topic", "context", "outcome"})
}

func NewAdminTaskRepository(db *sqlx.DB) Repository[model.AdminTask] {
	return newCollection[model.AdminTask](db, "admin_tasks", []string{"task", "due", "completed"}, "completed")
}

func NewFavoriteRepository(db *sqlx.DB) Repository[model.FavoritePrompt] {
	return newCollection[model.FavoritePrompt](db, "favorite_prompts", []string{"text"})
}
