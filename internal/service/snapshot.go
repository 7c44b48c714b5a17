package service

import (
	"time"

	"github.com/kristofferme/leader/internal/model"
)

// Snapshot is everything the dashboard shows, read at one instant.
type Snapshot struct {
	Now                time.Time
	Today              string
	Location           *time.Location
	TrailingWindowDays int

	TodayFocus   *model.FocusMarker
	Focus        []*model.FocusMarker
	Pulses       []*model.Pulse // oldest first
	RecentPulses []*model.Pulse // newest first
	Priorities   []*model.Priority
	Delegations  []*model.Delegation
	OneOnOnes    []*model.OneOnOne
	Decisions    []*model.Decision
	AdminTasks   []*model.AdminTask
	Favorites    []*model.FavoritePrompt
}

func (s *Snapshot) Timeline() Timeline {
	return BuildTimeline(s.Pulses, s.Focus, s.Priorities, s.Today, s.Location)
}

// MoodAverage is the trailing pulse average; false when no pulse is in the window.
func (s *Snapshot) MoodAverage() (float64, bool) {
	return TrailingAverage(s.Pulses, s.Now, s.TrailingWindowDays)
}

func (s *Snapshot) LatestPulse() *model.Pulse {
	if len(s.RecentPulses) == 0 {
		return nil
	}
	return s.RecentPulses[0]
}

func (s *Snapshot) LatestDecision() *model.Decision {
	if len(s.Decisions) == 0 {
		return nil
	}
	return s.Decisions[0]
}

func (s *Snapshot) Upcoming() Upcoming {
	return SelectUpcoming(s.OneOnOnes, s.Today)
}
