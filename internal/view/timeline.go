package view

import (
	"math"

	"github.com/kristofferme/leader/internal/service"
)

// ChartData is the single series both timeline charts are drawn from.
type ChartData struct {
	Labels     []string   `json:"labels"`
	Mood       []*float64 `json:"mood"`
	Completion []int      `json:"completion"`
}

type TimelineEntry struct {
	Label string
	Lines []string
}

type Timeline struct {
	Chart ChartData
	Log   []TimelineEntry
}

func (b *Builder) Timeline(snap *service.Snapshot) Timeline {
	return b.TimelineOf(snap.Timeline())
}

func (b *Builder) TimelineOf(tl service.Timeline) Timeline {
	v := Timeline{
		Chart: ChartData{
			Labels:     make([]string, 0, len(tl.Points)),
			Mood:       make([]*float64, 0, len(tl.Points)),
			Completion: make([]int, 0, len(tl.Points)),
		},
		Log: make([]TimelineEntry, 0, len(tl.Points)),
	}

	progress := "Priority progress: " + b.fmt.Percent(tl.Completion)

	for _, p := range tl.Points {
		label := b.fmt.Date(p.DateKey)

		var mood *float64
		if p.Mood != nil {
			rounded := math.Round(*p.Mood*100) / 100
			mood = &rounded
		}

		v.Chart.Labels = append(v.Chart.Labels, label)
		v.Chart.Mood = append(v.Chart.Mood, mood)
		v.Chart.Completion = append(v.Chart.Completion, p.Completion)

		if tl.Synthetic {
			v.Log = append(v.Log, TimelineEntry{
				Label: label,
				Lines: []string{"No entries yet – start with a pulse or a focus", progress},
			})
			continue
		}

		pulse := "No pulse logged"
		if p.Mood != nil {
			pulse = "Pulse: " + b.fmt.Decimal(*p.Mood)
		}
		focus := "Focus not set"
		if p.FocusSet {
			focus = "Focus anchored"
		}

		v.Log = append(v.Log, TimelineEntry{
			Label: label,
			Lines: []string{pulse, focus, progress},
		})
	}

	return v
}
