package service

import (
	"sort"
	"time"

	"github.com/kristofferme/leader/internal/model"
)

type TimelinePoint struct {
	DateKey string
	// Mood is the day's average pulse score, nil when no pulse was logged.
	Mood       *float64
	Pulses     int
	FocusSet   bool
	Completion int
}

// Timeline is the date-ordered series shared by the chart and the log.
type Timeline struct {
	Points []TimelinePoint
	// Completion is the priority completion as of now. It is broadcast to
	// every point; no per-day history is stored.
	Completion int
	// Synthetic is set when Points holds only the placeholder for today.
	Synthetic bool
}

type timelineBucket struct {
	scores []int
	focus  bool
}

// BuildTimeline merges pulses, focus markers and priority completion into one
// series keyed by calendar date. It never returns an empty series: with no
// pulses or focus markers it emits a single point for today.
func BuildTimeline(
	pulses []*model.Pulse,
	focus []*model.FocusMarker,
	priorities []*model.Priority,
	today string,
	loc *time.Location,
) Timeline {
	buckets := map[string]*timelineBucket{}
	bucket := func(key string) *timelineBucket {
		b, ok := buckets[key]
		if !ok {
			b = &timelineBucket{}
			buckets[key] = b
		}
		return b
	}

	for _, p := range pulses {
		b := bucket(model.DateKey(p.Timestamp, loc))
		b.scores = append(b.scores, p.Score)
	}

	for _, f := range focus {
		bucket(f.DateKey).focus = true
	}

	// The chart needs a number, so "no priorities" plots as 0.
	completion, _ := PriorityCompletion(priorities)

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	timeline := Timeline{Completion: completion}
	for _, key := range keys {
		b := buckets[key]
		point := TimelinePoint{
			DateKey:    key,
			Pulses:     len(b.scores),
			FocusSet:   b.focus,
			Completion: completion,
		}
		if len(b.scores) > 0 {
			sum := 0
			for _, s := range b.scores {
				sum += s
			}
			avg := float64(sum) / float64(len(b.scores))
			point.Mood = &avg
		}
		timeline.Points = append(timeline.Points, point)
	}

	if len(timeline.Points) == 0 {
		timeline.Synthetic = true
		timeline.Points = []TimelinePoint{{
			DateKey:    today,
			Completion: completion,
		}}
	}

	return timeline
}
