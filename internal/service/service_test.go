package service_test

import (
	"context"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/kristofferme/leader/internal/markdown"
	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/service"
	"github.com/kristofferme/leader/internal/testutil"
	"github.com/kristofferme/leader/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 20, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newJournal(t *testing.T, store *repository.Store) service.Journal {
	t.Helper()
	return service.Journal{
		Pulses:      service.NewPulseService(store.Pulses, clock, time.UTC),
		Focus:       service.NewFocusService(store.Focus, clock, time.UTC),
		Priorities:  service.NewPriorityService(store.Priorities, clock, time.UTC),
		Delegations: service.NewDelegationService(store.Delegations, clock, time.UTC),
		OneOnOnes:   service.NewOneOnOneService(store.OneOnOnes, clock, time.UTC),
		Decisions:   service.NewDecisionService(store.Decisions, clock, time.UTC),
		Admin:       service.NewAdminService(store.AdminTasks, clock, time.UTC),
		Prompts:     service.NewPromptService(store.Favorites, []string{"What energised you?", "Who needs you?"}, func(int) int { return 1 }, clock),
	}
}

func TestFocusSetTodayClear(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	focus := service.NewFocusService(store.Focus, clock, time.UTC)

	current, err := focus.Today(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	_, err = focus.Set(ctx, "   ")
	assert.ErrorIs(t, err, validation.ErrRequired)

	_, err = focus.Set(ctx, "Coach the new leads")
	require.NoError(t, err)
	_, err = focus.Set(ctx, "  Finish the hiring plan ")
	require.NoError(t, err)

	current, err = focus.Today(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Finish the hiring plan", current.Text)
	assert.Equal(t, "2024-05-20", current.DateKey)

	// A marker from another day survives clearing today.
	_, err = store.Focus.Create(ctx, &model.FocusMarker{Text: "Old", DateKey: "2024-05-19"})
	require.NoError(t, err)

	n, err := focus.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	current, err = focus.Today(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	all, err := focus.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Old", all[0].Text)
}

func TestPulseLog(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	pulses := service.NewPulseService(store.Pulses, clock, time.UTC)

	_, err := pulses.Log(ctx, 0, "fine", "")
	assert.ErrorIs(t, err, validation.ErrRequired)

	_, err = pulses.Log(ctx, 6, "fine", "")
	assert.ErrorIs(t, err, validation.ErrInvalid)

	_, err = pulses.Log(ctx, 3, "  ", "")
	assert.ErrorIs(t, err, validation.ErrRequired)

	_, err = pulses.Log(ctx, 3, "fine", "yesterday")
	assert.ErrorIs(t, err, validation.ErrInvalid)

	p, err := pulses.Log(ctx, 4, "Good standup", "")
	require.NoError(t, err)
	assert.True(t, p.Timestamp.Equal(fixedNow))

	p, err = pulses.Log(ctx, 2, "Tough review", "2024-05-18")
	require.NoError(t, err)
	assert.True(t, p.Timestamp.Equal(time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)))

	p, err = pulses.Log(ctx, 5, "Great offsite", "2024-05-19T16:45")
	require.NoError(t, err)
	assert.True(t, p.Timestamp.Equal(time.Date(2024, 5, 19, 16, 45, 0, 0, time.UTC)))

	recent, err := pulses.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Good standup", recent[0].Notes)
	assert.Equal(t, "Great offsite", recent[1].Notes)

	all, err := pulses.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Tough review", all[0].Notes)
}

func TestPriorityToggleTwiceRestoresState(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	priorities := service.NewPriorityService(store.Priorities, clock, time.UTC)

	_, err := priorities.Add(ctx, "", "high")
	assert.ErrorIs(t, err, validation.ErrRequired)

	p, err := priorities.Add(ctx, " Ship Q3 roadmap ", " Unblocks sales ")
	require.NoError(t, err)
	assert.Equal(t, "Ship Q3 roadmap", p.Title)
	assert.Equal(t, "Unblocks sales", p.Impact)
	assert.False(t, p.Completed)

	toggled, err := priorities.Toggle(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = priorities.Toggle(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	stored, err := store.Priorities.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)

	_, err = priorities.Toggle(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelegationToggle(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	delegations := service.NewDelegationService(store.Delegations, clock, time.UTC)

	_, err := delegations.Add(ctx, "Ana", "", "")
	assert.ErrorIs(t, err, validation.ErrRequired)

	d, err := delegations.Add(ctx, "Ana", "Run the retro", "")
	require.NoError(t, err)
	assert.Equal(t, model.DelegationStatusActive, d.Status)

	d, err = delegations.Toggle(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DelegationStatusDone, d.Status)

	d, err = delegations.Toggle(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DelegationStatusActive, d.Status)

	list, err := delegations.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.DelegationStatusActive, list[0].Status)
}

func TestOneOnOnes(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	meetings := service.NewOneOnOneService(store.OneOnOnes, clock, time.UTC)

	_, err := meetings.Add(ctx, "Ben", "", "")
	assert.ErrorIs(t, err, validation.ErrRequired)

	_, err = meetings.Add(ctx, "Ben", "next week", "")
	assert.ErrorIs(t, err, validation.ErrInvalid)

	_, err = meetings.Add(ctx, "Ben", "2024-05-10", "Growth plan")
	require.NoError(t, err)
	next, err := meetings.Add(ctx, "Cleo", "2024-05-20", "")
	require.NoError(t, err)

	list, err := meetings.List(ctx)
	require.NoError(t, err)

	up := service.SelectUpcoming(list, "2024-05-20")
	assert.Equal(t, service.UpcomingNext, up.State)
	assert.Equal(t, next.ID, up.Meeting.ID)

	toggled, err := meetings.Toggle(ctx, next.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OneOnOneStatusDone, toggled.Status)
}

func TestDecisionsAndAdmin(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	decisions := service.NewDecisionService(store.Decisions, clock, time.UTC)
	admin := service.NewAdminService(store.AdminTasks, clock, time.UTC)

	_, err := decisions.Log(ctx, " ", "ctx", "out")
	assert.ErrorIs(t, err, validation.ErrRequired)

	for _, topic := range []string{"Reorg", "Budget", "Hiring"} {
		_, err = decisions.Log(ctx, topic, "", "")
		require.NoError(t, err)
	}

	recent, err := decisions.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Hiring", recent[0].Topic)
	assert.Equal(t, "Budget", recent[1].Topic)

	_, err = admin.Add(ctx, "Expenses", "soon")
	assert.ErrorIs(t, err, validation.ErrInvalid)

	task, err := admin.Add(ctx, "Expenses", "2024-05-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-31", task.Due)

	_, err = admin.Add(ctx, "Approve PTO", "")
	require.NoError(t, err)

	task, err = admin.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, task.Completed)

	tasks, err := admin.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, service.OpenAdminTasks(tasks))
}

func TestPromptFavorites(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	prompts := newJournal(t, store).Prompts

	drawn, err := prompts.Draw()
	require.NoError(t, err)
	assert.Equal(t, "Who needs you?", drawn)

	first, created, err := prompts.Save(ctx, drawn)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := prompts.Save(ctx, "  "+drawn+" ")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	favorites, err := prompts.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	err = prompts.Remove(ctx, first.ID)
	require.NoError(t, err)

	err = prompts.Remove(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	empty := service.NewPromptService(store.Favorites, nil, nil, clock)
	_, err = empty.Draw()
	assert.ErrorIs(t, err, service.ErrNoPrompts)
}

func TestPromptSaveFromManyRequestsKeepsOneFavorite(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	prompts := newJournal(t, store).Prompts

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ids     = map[string]int{}
		created int
		errs    []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fav, isNew, err := prompts.Save(ctx, "What would make next week lighter?")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			ids[fav.ID]++
			if isNew {
				created++
			}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Equal(t, 1, created)
	assert.Len(t, ids, 1)

	favorites, err := prompts.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "What would make next week lighter?", favorites[0].Text)
}

func TestConcurrentTogglesAreNotLost(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	journal := newJournal(t, store)

	p, err := journal.Priorities.Add(ctx, "Close hiring loop", "")
	require.NoError(t, err)
	d, err := journal.Delegations.Add(ctx, "Ana", "Run the retro", "")
	require.NoError(t, err)

	const toggles = 10
	var wg sync.WaitGroup
	errs := make(chan error, 2*toggles)
	for range toggles {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := journal.Priorities.Toggle(ctx, p.ID)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := journal.Delegations.Toggle(ctx, d.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := store.Priorities.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)

	delegation, err := store.Delegations.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DelegationStatusActive, delegation.Status)
}

func TestLoadPrompts(t *testing.T) {
	parser := markdown.NewParser()
	fsys := fstest.MapFS{
		"prompts.md": {Data: []byte("---\nprompts:\n  - What went well?\n  - \"  \"\n  - Who deserves thanks?\n---\n# Prompts\n")},
		"empty.md":   {Data: []byte("---\nprompts: []\n---\n")},
		"plain.md":   {Data: []byte("# No frontmatter\n")},
	}

	prompts, err := service.LoadPrompts(fsys, "prompts.md", parser)
	require.NoError(t, err)
	assert.Equal(t, []string{"What went well?", "Who deserves thanks?"}, prompts)

	_, err = service.LoadPrompts(fsys, "empty.md", parser)
	assert.ErrorIs(t, err, service.ErrNoPrompts)

	_, err = service.LoadPrompts(fsys, "plain.md", parser)
	assert.Error(t, err)

	_, err = service.LoadPrompts(fsys, "missing.md", parser)
	assert.Error(t, err)
}

func TestDashboardLoad(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))
	journal := newJournal(t, store)
	limits := service.Limits{TrailingWindowDays: 7, PulseLog: 25, DecisionLog: 15, PriorityPreview: 3}
	dashboard := service.NewDashboardService(journal, limits, clock, time.UTC)

	snap, err := dashboard.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-20", snap.Today)
	assert.Nil(t, snap.TodayFocus)
	assert.Nil(t, snap.LatestPulse())
	_, ok := snap.MoodAverage()
	assert.False(t, ok)
	assert.True(t, snap.Timeline().Synthetic)
	assert.Equal(t, service.UpcomingNone, snap.Upcoming().State)

	_, err = journal.Pulses.Log(ctx, 3, "today", "")
	require.NoError(t, err)
	_, err = journal.Pulses.Log(ctx, 5, "long ago", "2024-05-12")
	require.NoError(t, err)
	_, err = journal.Focus.Set(ctx, "Coach")
	require.NoError(t, err)
	_, err = journal.Decisions.Log(ctx, "Reorg", "", "Announce Friday")
	require.NoError(t, err)

	snap, err = dashboard.Load(ctx)
	require.NoError(t, err)

	avg, ok := snap.MoodAverage()
	assert.True(t, ok)
	assert.InDelta(t, 3.0, avg, 0.0001)
	assert.Equal(t, "today", snap.LatestPulse().Notes)
	require.NotNil(t, snap.TodayFocus)
	assert.Equal(t, "Coach", snap.TodayFocus.Text)
	assert.Equal(t, "Reorg", snap.LatestDecision().Topic)
	assert.Len(t, snap.Timeline().Points, 2)
}

func TestDashboardLoadWithoutStorage(t *testing.T) {
	store := repository.NewStore(nil)
	dashboard := service.NewDashboardService(newJournal(t, store), service.Limits{TrailingWindowDays: 7}, clock, time.UTC)

	snap, err := dashboard.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)
	require.NotNil(t, snap)
	assert.Empty(t, snap.Pulses)
	assert.True(t, snap.Timeline().Synthetic)
}
