package pages

import (
	"strconv"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/view"
)

const (
	inputClass  = "w-full rounded-lg border border-slate-700 bg-slate-950 px-3 py-2 text-sm text-slate-100 focus:border-teal-400 focus:outline-none"
	buttonClass = "rounded-lg bg-teal-400 px-4 py-2 text-sm font-semibold text-slate-950 hover:bg-teal-300"
	itemClass   = "flex items-start justify-between gap-4 rounded-xl bg-slate-800/60 p-3"
)

// Panel is the detail view for one feature, shown in the modal.
func Panel(name string, d view.Dashboard) templ.Component {
	return component(func(m *markup) {
		m.open("div",
			"id", PanelID(name),
			"class", "fixed inset-0 z-40 flex items-start justify-center overflow-y-auto bg-slate-950/80 p-4 backdrop-blur-sm",
			"role", "dialog",
			"aria-modal", "true",
		)
		m.open("div", "class", "mt-12 w-full max-w-2xl rounded-2xl border border-slate-700 bg-slate-900 p-6 shadow-2xl")
		m.open("div", "class", "mb-4 flex items-center justify-between")
		m.el("h2", "text-xl font-semibold", FeatureTitle(name))
		m.open("button",
			"type", "button",
			"class", "text-slate-400 hover:text-slate-100",
			"aria-label", "Close",
			"hx-get", "/details/close",
			"hx-target", "#"+ModalID,
			"hx-swap", "innerHTML",
		)
		m.text("✕")
		m.close("button")
		m.close("div")

		switch name {
		case FeatureFocus:
			focusPanel(m, d.Focus)
		case FeaturePulse:
			pulsePanel(m, d.Pulses)
		case FeaturePriorities:
			priorityPanel(m, d.Priorities)
		case FeatureDelegations:
			delegationPanel(m, d.Delegations)
		case FeatureOneOnOnes:
			oneOnOnePanel(m, d.OneOnOnes)
		case FeatureDecisions:
			decisionPanel(m, d.Decisions)
		case FeatureAdmin:
			adminPanel(m, d.Admin)
		case FeaturePrompts:
			promptPanel(m, d.Prompts)
		case FeatureTimeline:
			m.open("canvas", "class", "h-80 w-full", "data-timeline-chart", "expanded")
			m.close("canvas")
			m.render(timelineLog(d.Timeline))
		}

		m.close("div")
		m.close("div")
	})
}

// form opens a form that posts to action and swaps the returned panel.
func form(m *markup, action, panel string, fields func()) {
	m.open("form",
		"method", "post",
		"action", action,
		"class", "mb-5 grid gap-3",
		"hx-post", action,
		"hx-target", "#"+PanelID(panel),
		"hx-swap", "outerHTML",
	)
	csrfField(m)
	fields()
	m.close("form")
}

func input(m *markup, typ, name, placeholder string, required bool) {
	attrs := []string{"type", typ, "name", name, "class", inputClass}
	if placeholder != "" {
		attrs = append(attrs, "placeholder", placeholder)
	}
	if required {
		attrs = append(attrs, "required", "")
	}
	m.open("input", attrs...)
}

func textarea(m *markup, name, placeholder string, required bool) {
	attrs := []string{"name", name, "rows", "3", "class", inputClass, "placeholder", placeholder}
	if required {
		attrs = append(attrs, "required", "")
	}
	m.open("textarea", attrs...)
	m.close("textarea")
}

func submit(m *markup, label string) {
	m.open("button", "type", "submit", "class", twmerge.Merge(buttonClass, "w-fit"))
	m.text(label)
	m.close("button")
}

// toggle is a checkbox that flips one record's status.
func toggle(m *markup, url, panel string, checked bool, label string) {
	m.open("label", "class", "flex shrink-0 items-center gap-2 text-xs text-slate-300")
	attrs := []string{
		"type", "checkbox",
		"class", "h-4 w-4 accent-teal-400",
		"hx-patch", url,
		"hx-target", "#" + PanelID(panel),
		"hx-swap", "outerHTML",
	}
	if checked {
		attrs = append(attrs, "checked", "")
	}
	m.open("input", attrs...)
	m.el("span", "", label)
	m.close("label")
}

func list(m *markup, empty int, fn func()) {
	if empty == 0 {
		m.el("p", hintClass, "Nothing here yet.")
		return
	}
	m.open("ul", "class", "grid gap-2")
	fn()
	m.close("ul")
}

func focusPanel(m *markup, v view.Focus) {
	class := "mb-4 text-sm text-slate-200"
	if !v.Set {
		class = twmerge.Merge(class, "italic text-slate-500")
	}
	m.el("p", class, v.Status)

	form(m, "/focus", FeatureFocus, func() {
		input(m, "text", "text", "What matters most today?", true)
		submit(m, "Set focus")
	})

	if v.Set {
		m.open("button",
			"type", "button",
			"class", "text-sm text-rose-300 hover:underline",
			"hx-delete", "/focus",
			"hx-target", "#"+PanelID(FeatureFocus),
			"hx-swap", "outerHTML",
		)
		m.text("Clear today's focus")
		m.close("button")
	}
}

func pulsePanel(m *markup, v view.Pulses) {
	m.open("p", "class", "mb-4 text-sm text-slate-300")
	m.text("Trailing average: ")
	m.el("strong", "text-teal-200", v.Average)
	m.close("p")

	form(m, "/pulses", FeaturePulse, func() {
		m.open("select", "name", "score", "class", inputClass, "required", "")
		m.open("option", "value", "")
		m.text("How is the team doing?")
		m.close("option")
		for score := model.PulseMinScore; score <= model.PulseMaxScore; score++ {
			m.open("option", "value", strconv.Itoa(score))
			m.text(model.PulseLabel(score))
			m.close("option")
		}
		m.close("select")
		textarea(m, "notes", "What are you noticing?", true)
		input(m, "datetime-local", "date", "", false)
		submit(m, "Log pulse")
	})

	list(m, len(v.Items), func() {
		for _, item := range v.Items {
			m.open("li", "class", "rounded-xl bg-slate-800/60 p-3 text-sm")
			m.open("div", "class", "flex justify-between")
			m.el("strong", "", item.Label)
			m.el("span", hintClass, item.When)
			m.close("div")
			m.el("p", "mt-1 text-slate-300", item.Notes)
			m.close("li")
		}
	})
}

func priorityPanel(m *markup, v view.Priorities) {
	form(m, "/priorities", FeaturePriorities, func() {
		input(m, "text", "title", "Priority", true)
		input(m, "text", "impact", "Expected impact (optional)", false)
		submit(m, "Add priority")
	})

	list(m, len(v.Items), func() {
		for _, item := range v.Items {
			m.open("li", "class", itemClass)
			m.open("div")
			m.el("strong", doneClass(item.Completed), item.Title)
			if item.Impact != "" {
				m.el("p", hintClass, item.Impact)
			}
			m.close("div")
			toggle(m, "/priorities/"+item.ID+"/toggle", FeaturePriorities, item.Completed, item.Status)
			m.close("li")
		}
	})
}

func delegationPanel(m *markup, v view.Delegations) {
	m.el("p", "mb-4 text-sm text-slate-300", v.Summary)

	form(m, "/delegations", FeatureDelegations, func() {
		input(m, "text", "name", "Who", true)
		input(m, "text", "task", "What", true)
		input(m, "text", "support", "Support they need (optional)", false)
		submit(m, "Add delegation")
	})

	list(m, len(v.Items), func() {
		for _, item := range v.Items {
			m.open("li", "class", itemClass)
			m.open("div")
			m.el("strong", doneClass(item.Done), item.Name)
			m.el("p", "text-sm text-slate-300", item.Task)
			if item.Support != "" {
				m.el("p", hintClass, "Support: "+item.Support)
			}
			m.close("div")
			toggle(m, "/delegations/"+item.ID+"/toggle", FeatureDelegations, item.Done, item.Status)
			m.close("li")
		}
	})
}

func oneOnOnePanel(m *markup, v view.OneOnOnes) {
	m.el("p", "mb-4 text-sm text-slate-300", v.Summary)

	form(m, "/one-on-ones", FeatureOneOnOnes, func() {
		input(m, "text", "name", "With", true)
		input(m, "date", "date", "", true)
		input(m, "text", "agenda", "Agenda (optional)", false)
		submit(m, "Plan one-on-one")
	})

	list(m, len(v.Items), func() {
		for _, item := range v.Items {
			m.open("li", "class", itemClass)
			m.open("div")
			m.el("strong", doneClass(item.Done), item.Name)
			m.el("p", "text-sm text-slate-300", item.Date)
			if item.Agenda != "" {
				m.el("p", hintClass, item.Agenda)
			}
			m.close("div")
			toggle(m, "/one-on-ones/"+item.ID+"/toggle", FeatureOneOnOnes, item.Done, item.Status)
			m.close("li")
		}
	})
}

func decisionPanel(m *markup, v view.Decisions) {
	form(m, "/decisions", FeatureDecisions, func() {
		input(m, "text", "topic", "Decision", true)
		textarea(m, "context", "Context (markdown)", false)
		input(m, "text", "outcome", "Next step (optional)", false)
		submit(m, "Log decision")
	})

	list(m, len(v.Items), func() {
		for _, item := range v.Items {
			m.open("li", "class", "rounded-xl bg-slate-800/60 p-3 text-sm")
			m.open("div", "class", "flex justify-between")
			m.el("strong", "", item.Topic)
			m.el("span", hintClass, item.When)
			m.close("div")
			if item.ContextHTML != "" {
				m.open("div", "class", "prose prose-invert prose-sm mt-1")
				// Rendered by goldmark with raw HTML disabled.
				m.raw(item.ContextHTML)
				m.close("div")
			}
			if item.Outcome != "" {
				m.el("p", hintClass, "Next step: "+item.Outcome)
			}
			m.close("li")
		}
	})
}

func adminPanel(m *markup, v view.Admin) {
	m.open("p", "class", "mb-4 flex items-center gap-3 text-sm text-slate-300")
	m.el("span", badgeClass(v.Status == "All set"), v.Status)
	m.text(v.Summary)
	m.close("p")

	form(m, "/admin-tasks", FeatureAdmin, func() {
		input(m, "text", "task", "Task", true)
		input(m, "date", "due", "", false)
		submit(m, "Add task")
	})

	list(m, len(v.Items), func() {
		for _, item := range v.Items {
			m.open("li", "class", itemClass)
			m.open("div")
			m.el("strong", doneClass(item.Completed), item.Task)
			if item.Due != "" {
				m.el("p", hintClass, item.Due)
			}
			m.close("div")
			toggle(m, "/admin-tasks/"+item.ID+"/toggle", FeatureAdmin, item.Completed, item.Status)
			m.close("li")
		}
	})
}

func promptPanel(m *markup, v view.Prompts) {
	m.el("blockquote", "mb-4 text-lg italic text-slate-100", quote(v.Current))

	m.open("div", "class", "mb-5 flex gap-3")
	m.open("button",
		"type", "button",
		"class", twmerge.Merge(buttonClass, "bg-slate-700 text-slate-100 hover:bg-slate-600"),
		"hx-get", "/prompts/draw",
		"hx-target", "#"+PanelID(FeaturePrompts),
		"hx-swap", "outerHTML",
	)
	m.text("New prompt")
	m.close("button")
	if v.Current != "" {
		m.open("form",
			"method", "post",
			"action", "/prompts/favorites",
			"hx-post", "/prompts/favorites",
			"hx-target", "#"+PanelID(FeaturePrompts),
			"hx-swap", "outerHTML",
		)
		csrfField(m)
		m.open("input", "type", "hidden", "name", "text", "value", v.Current)
		submit(m, "Save as favorite")
		m.close("form")
	}
	m.close("div")

	m.el("h3", labelClass+" mb-2", "Favorites")
	list(m, len(v.Favorites), func() {
		for _, item := range v.Favorites {
			m.open("li", "class", itemClass)
			m.el("p", "text-sm text-slate-200", item.Text)
			m.open("button",
				"type", "button",
				"class", "shrink-0 text-xs text-rose-300 hover:underline",
				"hx-delete", "/prompts/favorites/"+item.ID,
				"hx-vals", jsonAttr(map[string]string{"current": v.Current}),
				"hx-target", "#"+PanelID(FeaturePrompts),
				"hx-swap", "outerHTML",
			)
			m.text("Remove")
			m.close("button")
			m.close("li")
		}
	})
}

func doneClass(done bool) string {
	if done {
		return "text-slate-500 line-through"
	}
	return "text-slate-100"
}
