package pages

import (
	"github.com/a-h/templ"
	"github.com/kristofferme/leader/internal/view"
)

// TimelineDataID holds the chart series as JSON. Every canvas marked with
// data-timeline-chart is drawn from it.
const TimelineDataID = "timeline-data"

// TimelineBody is the swappable part of the timeline: the log and the chart
// data. Canvases live outside it so charts survive swaps.
func TimelineBody(v view.Timeline) templ.Component {
	return component(func(m *markup) {
		m.render(timelineLog(v))
		m.render(templ.JSONScript(TimelineDataID, v.Chart))
	})
}

func timelineLog(v view.Timeline) templ.Component {
	return component(func(m *markup) {
		m.open("ol", "class", "mt-4 grid gap-2 sm:grid-cols-2 lg:grid-cols-3")
		for _, entry := range v.Log {
			m.open("li", "class", "rounded-xl bg-slate-800/60 p-3 text-sm")
			m.el("strong", "block text-slate-100", entry.Label)
			for _, line := range entry.Lines {
				m.el("span", "block text-slate-400", line)
			}
			m.close("li")
		}
		m.close("ol")
	})
}
