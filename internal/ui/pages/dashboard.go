package pages

import (
	"slices"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/kristofferme/leader/internal/view"
)

const (
	FeatureFocus       = "focus"
	FeaturePulse       = "pulse"
	FeaturePriorities  = "priorities"
	FeatureDelegations = "delegations"
	FeatureOneOnOnes   = "one-on-ones"
	FeatureDecisions   = "decisions"
	FeatureAdmin       = "admin"
	FeaturePrompts     = "prompts"
	FeatureTimeline    = "timeline"
)

// Features lists the dashboard tiles in display order.
var Features = []string{
	FeatureFocus,
	FeaturePulse,
	FeaturePriorities,
	FeatureDelegations,
	FeatureOneOnOnes,
	FeatureDecisions,
	FeatureAdmin,
	FeaturePrompts,
	FeatureTimeline,
}

var featureTitles = map[string]string{
	FeatureFocus:       "Daily focus",
	FeaturePulse:       "Team pulse",
	FeaturePriorities:  "Priorities",
	FeatureDelegations: "Delegation",
	FeatureOneOnOnes:   "One-on-ones",
	FeatureDecisions:   "Decision log",
	FeatureAdmin:       "Admin",
	FeaturePrompts:     "Reflection",
	FeatureTimeline:    "Timeline",
}

func KnownFeature(name string) bool {
	return slices.Contains(Features, name)
}

func FeatureTitle(name string) string {
	return featureTitles[name]
}

// TileID and PanelID are the DOM ids swapped by htmx.
func TileID(name string) string  { return "tile-" + name }
func PanelID(name string) string { return "panel-" + name }

const (
	TimelineID = "timeline"
	ModalID    = "modal"
)

const (
	tileClass  = "group flex flex-col gap-2 rounded-2xl border border-slate-800 bg-slate-900/70 p-5 text-left transition hover:border-teal-400/60"
	labelClass = "text-xs font-medium uppercase tracking-wider text-slate-400"
	valueClass = "text-3xl font-semibold text-teal-200"
	hintClass  = "text-sm text-slate-400"
)

// Dashboard is the full page. When open names a feature its detail panel is
// rendered inside the modal.
func Dashboard(d view.Dashboard, open string) templ.Component {
	return component(func(m *markup) {
		m.open("section", "class", "grid gap-4 sm:grid-cols-2 lg:grid-cols-4")
		for _, name := range Features {
			if name == FeatureTimeline {
				continue
			}
			m.open("button",
				"type", "button",
				"id", TileID(name),
				"class", tileClass,
				"hx-get", "/details/"+name,
				"hx-target", "#"+ModalID,
				"hx-swap", "innerHTML",
			)
			m.render(Tile(name, d))
			m.close("button")
		}
		m.close("section")

		m.open("section", "class", "mt-6 rounded-2xl border border-slate-800 bg-slate-900/70 p-5")
		m.open("div", "class", "mb-3 flex items-center justify-between")
		m.el("h2", "text-lg font-semibold", FeatureTitle(FeatureTimeline))
		m.open("button",
			"type", "button",
			"class", "text-sm text-teal-300 hover:underline",
			"hx-get", "/details/"+FeatureTimeline,
			"hx-target", "#"+ModalID,
			"hx-swap", "innerHTML",
		)
		m.text("Expand")
		m.close("button")
		m.close("div")
		m.open("canvas", "class", "h-56 w-full", "data-timeline-chart", "compact")
		m.close("canvas")
		m.open("div", "id", TimelineID)
		m.render(TimelineBody(d.Timeline))
		m.close("div")
		m.close("section")

		m.open("div", "id", ModalID)
		if KnownFeature(open) {
			m.render(Panel(open, d))
		}
		m.close("div")
	})
}

// Tile is the inner content of a dashboard tile.
func Tile(name string, d view.Dashboard) templ.Component {
	return component(func(m *markup) {
		m.el("span", labelClass, FeatureTitle(name))

		switch name {
		case FeatureFocus:
			valueOrEmpty(m, d.Focus.Set, d.Focus.Status)
		case FeaturePulse:
			m.el("span", valueClass, d.Pulses.Average)
			m.el("span", hintClass, d.Pulses.Latest)
		case FeaturePriorities:
			m.el("span", valueClass, d.Priorities.Progress)
			m.open("ul", "class", "flex flex-wrap gap-1")
			for _, title := range d.Priorities.Preview {
				m.el("li", "rounded-full bg-slate-800 px-2 py-0.5 text-xs text-slate-300", title)
			}
			m.close("ul")
		case FeatureDelegations:
			m.el("span", hintClass, d.Delegations.Summary)
		case FeatureOneOnOnes:
			m.el("span", valueClass, d.OneOnOnes.Next)
			m.el("span", hintClass, d.OneOnOnes.Summary)
		case FeatureDecisions:
			m.el("span", hintClass, d.Decisions.Summary)
		case FeatureAdmin:
			m.el("span", badgeClass(d.Admin.Status == "All set"), d.Admin.Status)
			m.el("span", hintClass, d.Admin.Summary)
		case FeaturePrompts:
			m.el("span", "text-base italic text-slate-200", quote(d.Prompts.Current))
		}
	})
}

func valueOrEmpty(m *markup, set bool, s string) {
	class := "text-base text-slate-100"
	if !set {
		class = twmerge.Merge(class, "italic text-slate-500")
	}
	m.el("span", class, s)
}

func badgeClass(ok bool) string {
	base := "w-fit rounded-full px-2 py-0.5 text-xs font-medium bg-amber-500/20 text-amber-200"
	if ok {
		return twmerge.Merge(base, "bg-emerald-500/20 text-emerald-200")
	}
	return base
}

func quote(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return view.NoData
	}
	return "«" + s + "»"
}
