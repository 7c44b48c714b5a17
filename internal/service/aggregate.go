package service

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/kristofferme/leader/internal/model"
)

// TrailingAverage averages the scores of pulses logged within the last days
// calendar days, today included. It reports false when no pulse falls inside
// the window.
func TrailingAverage(pulses []*model.Pulse, now time.Time, days int) (float64, bool) {
	if days <= 0 {
		return 0, false
	}

	y, m, d := now.Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	from := startOfToday.AddDate(0, 0, -(days - 1))
	until := startOfToday.AddDate(0, 0, 1)

	sum, n := 0, 0
	for _, p := range pulses {
		if p.Timestamp.Before(from) || !p.Timestamp.Before(until) {
			continue
		}
		sum += p.Score
		n++
	}

	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// CompletionPercent is round(100*completed/total), ties away from zero. It
// reports false when total is zero.
func CompletionPercent(completed, total int) (int, bool) {
	if total <= 0 {
		return 0, false
	}
	return int(math.Round(100 * float64(completed) / float64(total))), true
}

func PriorityCompletion(priorities []*model.Priority) (int, bool) {
	completed := 0
	for _, p := range priorities {
		if p.Completed {
			completed++
		}
	}
	return CompletionPercent(completed, len(priorities))
}

func OpenPriorities(priorities []*model.Priority) int {
	open := 0
	for _, p := range priorities {
		if !p.Completed {
			open++
		}
	}
	return open
}

// OpenPriorityTitles returns up to limit titles of open priorities, in list order.
func OpenPriorityTitles(priorities []*model.Priority, limit int) []string {
	titles := []string{}
	for _, p := range priorities {
		if len(titles) >= limit {
			break
		}
		if !p.Completed {
			titles = append(titles, p.Title)
		}
	}
	return titles
}

func OpenDelegations(delegations []*model.Delegation) int {
	open := 0
	for _, d := range delegations {
		if !d.Done() {
			open++
		}
	}
	return open
}

func OpenAdminTasks(tasks []*model.AdminTask) int {
	open := 0
	for _, t := range tasks {
		if !t.Completed {
			open++
		}
	}
	return open
}

type UpcomingState int

const (
	// UpcomingNone means no one-on-ones exist at all.
	UpcomingNone UpcomingState = iota
	// UpcomingNext points at the first meeting dated today or later.
	UpcomingNext
	// UpcomingLastPast points at the most recent past meeting; a new one should be planned.
	UpcomingLastPast
)

type Upcoming struct {
	State   UpcomingState
	Meeting *model.OneOnOne
}

// SelectUpcoming picks the one-on-one to surface on the dashboard.
func SelectUpcoming(meetings []*model.OneOnOne, today string) Upcoming {
	if len(meetings) == 0 {
		return Upcoming{State: UpcomingNone}
	}

	sorted := slices.Clone(meetings)
	slices.SortStableFunc(sorted, func(a, b *model.OneOnOne) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	for _, m := range sorted {
		if m.Date >= today {
			return Upcoming{State: UpcomingNext, Meeting: m}
		}
	}

	return Upcoming{State: UpcomingLastPast, Meeting: sorted[len(sorted)-1]}
}
