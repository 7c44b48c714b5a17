// Package view maps journal records to display-ready view models. Nothing in
// here knows about HTTP or templ, so every mapping is testable on its own.
package view

import (
	"log/slog"

	"github.com/kristofferme/leader/internal/markdown"
	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/service"
)

// Builder turns a dashboard snapshot into view models.
type Builder struct {
	fmt             *Formatter
	md              *markdown.Parser
	priorityPreview int
}

func NewBuilder(f *Formatter, md *markdown.Parser, priorityPreview int) *Builder {
	return &Builder{
		fmt:             f,
		md:              md,
		priorityPreview: priorityPreview,
	}
}

// Dashboard is every view model on the page.
type Dashboard struct {
	Focus       Focus
	Pulses      Pulses
	Priorities  Priorities
	Delegations Delegations
	OneOnOnes   OneOnOnes
	Decisions   Decisions
	Admin       Admin
	Prompts     Prompts
	Timeline    Timeline
}

func (b *Builder) Dashboard(snap *service.Snapshot, prompt string) Dashboard {
	return Dashboard{
		Focus:       b.Focus(snap),
		Pulses:      b.Pulses(snap),
		Priorities:  b.Priorities(snap),
		Delegations: b.Delegations(snap),
		OneOnOnes:   b.OneOnOnes(snap),
		Decisions:   b.Decisions(snap),
		Admin:       b.Admin(snap),
		Prompts:     b.Prompts(snap, prompt),
		Timeline:    b.Timeline(snap),
	}
}

type Focus struct {
	Set    bool
	Text   string
	Status string
}

func (b *Builder) Focus(snap *service.Snapshot) Focus {
	if snap.TodayFocus == nil {
		return Focus{Status: "No focus recorded yet."}
	}
	return Focus{
		Set:    true,
		Text:   snap.TodayFocus.Text,
		Status: "Today's focus: " + snap.TodayFocus.Text,
	}
}

type PulseItem struct {
	Label string
	When  string
	Notes string
}

type Pulses struct {
	Latest  string
	Average string
	Items   []PulseItem
}

func (b *Builder) Pulses(snap *service.Snapshot) Pulses {
	v := Pulses{
		Latest:  "No entries",
		Average: NoData,
		Items:   make([]PulseItem, 0, len(snap.RecentPulses)),
	}

	if latest := snap.LatestPulse(); latest != nil {
		v.Latest = model.PulseLabel(latest.Score) + " – " + latest.Notes
	}

	if avg, ok := snap.MoodAverage(); ok {
		v.Average = b.fmt.Decimal(avg)
	}

	for _, p := range snap.RecentPulses {
		v.Items = append(v.Items, PulseItem{
			Label: model.PulseLabel(p.Score),
			When:  b.fmt.DateTime(p.Timestamp),
			Notes: p.Notes,
		})
	}

	return v
}

type PriorityItem struct {
	ID        string
	Title     string
	Impact    string
	Completed bool
	Status    string
}

type Priorities struct {
	Items    []PriorityItem
	Preview  []string
	Progress string
	Open     int
}

const priorityPreviewEmpty = "All on track – consider a new initiative"

func (b *Builder) Priorities(snap *service.Snapshot) Priorities {
	v := Priorities{
		Items:    make([]PriorityItem, 0, len(snap.Priorities)),
		Preview:  service.OpenPriorityTitles(snap.Priorities, b.priorityPreview),
		Progress: NoData,
		Open:     service.OpenPriorities(snap.Priorities),
	}

	if len(v.Preview) == 0 {
		v.Preview = []string{priorityPreviewEmpty}
	}

	if pct, ok := service.PriorityCompletion(snap.Priorities); ok {
		v.Progress = b.fmt.Percent(pct)
	}

	for _, p := range snap.Priorities {
		status := "In progress"
		if p.Completed {
			status = "Completed"
		}
		v.Items = append(v.Items, PriorityItem{
			ID:        p.ID,
			Title:     p.Title,
			Impact:    p.Impact,
			Completed: p.Completed,
			Status:    status,
		})
	}

	return v
}

type DelegationItem struct {
	ID      string
	Name    string
	Task    string
	Support string
	Done    bool
	Status  string
}

type Delegations struct {
	Items   []DelegationItem
	Summary string
}

func (b *Builder) Delegations(snap *service.Snapshot) Delegations {
	v := Delegations{
		Items:   make([]DelegationItem, 0, len(snap.Delegations)),
		Summary: b.fmt.count(msgActivePlans, service.OpenDelegations(snap.Delegations)),
	}

	for _, d := range snap.Delegations {
		status := "Follow up"
		if d.Done() {
			status = "Completed"
		}
		v.Items = append(v.Items, DelegationItem{
			ID:      d.ID,
			Name:    d.Name,
			Task:    d.Task,
			Support: d.Support,
			Done:    d.Done(),
			Status:  status,
		})
	}

	return v
}

type OneOnOneItem struct {
	ID     string
	Name   string
	Date   string
	Agenda string
	Done   bool
	Status string
}

type OneOnOnes struct {
	Items   []OneOnOneItem
	Summary string
	// Next is the short date of the next meeting, "Plan a new one" when only
	// past meetings exist, or NoData.
	Next  string
	State service.UpcomingState
}

func (b *Builder) OneOnOnes(snap *service.Snapshot) OneOnOnes {
	up := snap.Upcoming()
	v := OneOnOnes{
		Items: make([]OneOnOneItem, 0, len(snap.OneOnOnes)),
		State: up.State,
	}

	switch up.State {
	case service.UpcomingNext:
		v.Summary = up.Meeting.Name + " – " + b.fmt.Date(up.Meeting.Date)
		v.Next = b.fmt.Short(up.Meeting.Date)
	case service.UpcomingLastPast:
		v.Summary = up.Meeting.Name + " – " + b.fmt.Date(up.Meeting.Date)
		v.Next = "Plan a new one"
	default:
		v.Summary = "No conversations planned"
		v.Next = NoData
	}

	for _, m := range snap.OneOnOnes {
		status := "Planned"
		if m.Done() {
			status = "Held"
		}
		v.Items = append(v.Items, OneOnOneItem{
			ID:     m.ID,
			Name:   m.Name,
			Date:   b.fmt.DateLong(m.Date),
			Agenda: m.Agenda,
			Done:   m.Done(),
			Status: status,
		})
	}

	return v
}

type DecisionItem struct {
	Topic string
	When  string
	// ContextHTML is the context rendered from markdown.
	ContextHTML string
	Outcome     string
}

type Decisions struct {
	Items   []DecisionItem
	Summary string
}

func (b *Builder) Decisions(snap *service.Snapshot) Decisions {
	v := Decisions{
		Items:   make([]DecisionItem, 0, len(snap.Decisions)),
		Summary: "No decisions logged",
	}

	if latest := snap.LatestDecision(); latest != nil {
		v.Summary = latest.Topic + " – " + b.fmt.DateOf(latest.CreatedAt)
	}

	for _, d := range snap.Decisions {
		html, err := b.md.RenderString(d.Context)
		if err != nil {
			slog.Warn("failed to render decision context", "id", d.ID, "error", err)
			html = ""
		}
		v.Items = append(v.Items, DecisionItem{
			Topic:       d.Topic,
			When:        b.fmt.DateTime(d.CreatedAt),
			ContextHTML: html,
			Outcome:     d.Outcome,
		})
	}

	return v
}

type AdminItem struct {
	ID        string
	Task      string
	Due       string
	Completed bool
	Status    string
}

type Admin struct {
	Items   []AdminItem
	Summary string
	Status  string
}

func (b *Builder) Admin(snap *service.Snapshot) Admin {
	open := service.OpenAdminTasks(snap.AdminTasks)
	v := Admin{
		Items:   make([]AdminItem, 0, len(snap.AdminTasks)),
		Summary: b.fmt.count(msgOpenTasks, open),
		Status:  b.fmt.count(msgOpenBadge, open),
	}

	for _, t := range snap.AdminTasks {
		status := "Open"
		if t.Completed {
			status = "Completed"
		}
		due := ""
		if t.Due != "" {
			due = "Due: " + b.fmt.Date(t.Due)
		}
		v.Items = append(v.Items, AdminItem{
			ID:        t.ID,
			Task:      t.Task,
			Due:       due,
			Completed: t.Completed,
			Status:    status,
		})
	}

	return v
}

type FavoriteItem struct {
	ID   string
	Text string
}

type Prompts struct {
	Current   string
	Favorites []FavoriteItem
}

func (b *Builder) Prompts(snap *service.Snapshot, current string) Prompts {
	v := Prompts{
		Current:   current,
		Favorites: make([]FavoriteItem, 0, len(snap.Favorites)),
	}
	for _, f := range snap.Favorites {
		v.Favorites = append(v.Favorites, FavoriteItem{ID: f.ID, Text: f.Text})
	}
	return v
}
