package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	seen := map[string]bool{}
	for _, title := range []string{"hire", "budget", "roadmap"} {
		priority := &model.Priority{Title: title}
		id, err := store.Priorities.Create(ctx, priority)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, priority.ID)
		assert.False(t, priority.CreatedAt.IsZero())
		assert.False(t, seen[id], "id %s reused", id)
		seen[id] = true
	}

	priorities, err := store.Priorities.List(ctx, repository.ListOptions{})
	require.NoError(t, err)
	require.Len(t, priorities, 3)

	count := map[string]int{}
	for _, p := range priorities {
		count[p.ID]++
	}
	for id := range seen {
		assert.Equal(t, 1, count[id])
	}
}

func TestListOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	for i, score := range []int{3, 5, 1, 4} {
		_, err := store.Pulses.Create(ctx, &model.Pulse{
			Score:     score,
			Notes:     "note",
			Timestamp: base.Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
	}

	newest, err := store.Pulses.List(ctx, repository.ListOptions{OrderBy: "timestamp", Desc: true, Limit: 2})
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, 4, newest[0].Score)
	assert.Equal(t, 1, newest[1].Score)
	assert.True(t, newest[0].Timestamp.Equal(base.Add(72*time.Hour)))

	oldest, err := store.Pulses.List(ctx, repository.ListOptions{OrderBy: "timestamp"})
	require.NoError(t, err)
	require.Len(t, oldest, 4)
	assert.Equal(t, 3, oldest[0].Score)
}

func TestListTieBreaksOnCreationOrder(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	var ids []string
	for _, notes := range []string{"first", "second", "third"} {
		id, err := store.Pulses.Create(ctx, &model.Pulse{Score: 3, Notes: notes, Timestamp: at})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	pulses, err := store.Pulses.List(ctx, repository.ListOptions{OrderBy: "timestamp"})
	require.NoError(t, err)
	require.Len(t, pulses, 3)
	for i, p := range pulses {
		assert.Equal(t, ids[i], p.ID)
	}
}

func TestListFilter(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	for _, m := range []*model.FocusMarker{
		{Text: "hiring", DateKey: "2026-10-18"},
		{Text: "planning", DateKey: "2026-10-19"},
		{Text: "one-on-ones", DateKey: "2026-10-19"},
	} {
		_, err := store.Focus.Create(ctx, m)
		require.NoError(t, err)
	}

	today, err := store.Focus.List(ctx, repository.ListOptions{
		Where: []repository.Filter{{Field: "date_key", Value: "2026-10-19"}},
	})
	require.NoError(t, err)
	require.Len(t, today, 2)

	latest, err := store.Focus.First(ctx, repository.ListOptions{
		Where:   []repository.Filter{{Field: "date_key", Value: "2026-10-19"}},
		OrderBy: "id",
		Desc:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "one-on-ones", latest.Text)

	_, err = store.Focus.First(ctx, repository.ListOptions{
		Where: []repository.Filter{{Field: "date_key", Value: "2026-10-20"}},
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	_, err := store.Focus.List(ctx, repository.ListOptions{OrderBy: "1; DROP TABLE focus_markers"})
	assert.ErrorIs(t, err, repository.ErrUnknownField)

	_, err = store.Focus.List(ctx, repository.ListOptions{
		Where: []repository.Filter{{Field: "nope", Value: 1}},
	})
	assert.ErrorIs(t, err, repository.ErrUnknownField)

	id, err := store.Decisions.Create(ctx, &model.Decision{Topic: "reorg"})
	require.NoError(t, err)

	err = store.Decisions.Update(ctx, id, repository.Fields{"topic": "changed"})
	assert.ErrorIs(t, err, repository.ErrUnknownField)

	err = store.Decisions.Update(ctx, id, repository.Fields{})
	assert.ErrorIs(t, err, repository.ErrNoFields)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	id, err := store.AdminTasks.Create(ctx, &model.AdminTask{Task: "expense report", Due: "2026-10-21"})
	require.NoError(t, err)

	err = store.AdminTasks.Update(ctx, id, repository.Fields{"completed": true})
	require.NoError(t, err)

	task, err := store.AdminTasks.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, "2026-10-21", task.Due)

	open, err := store.AdminTasks.List(ctx, repository.ListOptions{
		Where: []repository.Filter{{Field: "completed", Value: false}},
	})
	require.NoError(t, err)
	assert.Empty(t, open)

	err = store.AdminTasks.Update(ctx, "missing", repository.Fields{"completed": true})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateDuplicateFavoriteConflicts(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	first := &model.FavoritePrompt{Text: "What should I stop doing?"}
	_, err := store.Favorites.Create(ctx, first)
	require.NoError(t, err)

	dup := &model.FavoritePrompt{Text: "What should I stop doing?"}
	_, err = store.Favorites.Create(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.NotErrorIs(t, err, repository.ErrStorageUnavailable)
	assert.Empty(t, dup.ID)

	favorites, err := store.Favorites.List(ctx, repository.ListOptions{})
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, first.ID, favorites[0].ID)
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	id, err := store.Priorities.Create(ctx, &model.Priority{Title: "hire lead"})
	require.NoError(t, err)

	priority, err := store.Priorities.Toggle(ctx, id, "completed")
	require.NoError(t, err)
	assert.Equal(t, id, priority.ID)
	assert.Equal(t, "hire lead", priority.Title)
	assert.True(t, priority.Completed)

	priority, err = store.Priorities.Toggle(ctx, id, "completed")
	require.NoError(t, err)
	assert.False(t, priority.Completed)

	_, err = store.Priorities.Toggle(ctx, "missing", "completed")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = store.Priorities.Toggle(ctx, id, "title")
	assert.ErrorIs(t, err, repository.ErrUnknownField)
}

func TestAlternate(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	id, err := store.Delegations.Create(ctx, &model.Delegation{Name: "Ana", Task: "retro", Status: model.DelegationStatusActive})
	require.NoError(t, err)

	d, err := store.Delegations.Alternate(ctx, id, "status", model.DelegationStatusDone, model.DelegationStatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.DelegationStatusDone, d.Status)

	d, err = store.Delegations.Alternate(ctx, id, "status", model.DelegationStatusDone, model.DelegationStatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.DelegationStatusActive, d.Status)

	_, err = store.Delegations.Alternate(ctx, "missing", "status", model.DelegationStatusDone, model.DelegationStatusActive)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	id, err := store.Favorites.Create(ctx, &model.FavoritePrompt{Text: "What needs removing?"})
	require.NoError(t, err)

	err = store.Favorites.Delete(ctx, id)
	require.NoError(t, err)

	_, err = store.Favorites.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = store.Favorites.Delete(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteWhere(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(testutil.NewDB(t))

	for _, key := range []string{"2026-10-18", "2026-10-19", "2026-10-19"} {
		_, err := store.Focus.Create(ctx, &model.FocusMarker{Text: "focus", DateKey: key})
		require.NoError(t, err)
	}

	_, err := store.Focus.DeleteWhere(ctx)
	assert.ErrorIs(t, err, repository.ErrEmptyPredicate)

	n, err := store.Focus.DeleteWhere(ctx, repository.Filter{Field: "date_key", Value: "2026-10-19"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	remaining, err := store.Focus.List(ctx, repository.ListOptions{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2026-10-18", remaining[0].DateKey)
}

func TestStorageUnavailable(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(nil)

	_, err := store.Pulses.Create(ctx, &model.Pulse{Score: 3, Notes: "n", Timestamp: time.Now()})
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)

	_, err = store.Pulses.List(ctx, repository.ListOptions{})
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)

	_, err = store.Priorities.Get(ctx, "id")
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)

	err = store.Priorities.Update(ctx, "id", repository.Fields{"completed": true})
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)

	err = store.Favorites.Delete(ctx, "id")
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)

	_, err = store.Priorities.Toggle(ctx, "id", "completed")
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)

	_, err = store.Focus.DeleteWhere(ctx, repository.Filter{Field: "date_key", Value: "2026-10-19"})
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)
}

func TestClosedDatabaseIsUnavailable(t *testing.T) {
	conn := testutil.NewDB(t)
	store := repository.NewStore(conn)
	require.NoError(t, conn.Close())

	_, err := store.Decisions.List(context.Background(), repository.ListOptions{})
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)
}

func TestUndecodableRowFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NewDB(t)
	store := repository.NewStore(conn)

	_, err := store.Pulses.Create(ctx, &model.Pulse{Score: 4, Notes: "fine", Timestamp: time.Now()})
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO pulses (id, score, notes, timestamp, created_at)
	                    VALUES ('broken', 'not-a-number', 'x', '2026-10-19 10:00:00+00:00', '2026-10-19 10:00:00+00:00')`)
	require.NoError(t, err)

	pulses, err := store.Pulses.List(ctx, repository.ListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, pulses)
	assert.Empty(t, pulses)
}
