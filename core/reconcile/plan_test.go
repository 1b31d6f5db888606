package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMutator struct {
	inserted []Item
	deleted  []string
	synced   []Item
	err      error
}

func (m *mockMutator) InsertDB(ctx context.Context, items []Item) error {
	m.inserted = append(m.inserted, items...)
	return m.err
}

func (m *mockMutator) DeleteDB(ctx context.Context, keys []string) error {
	m.deleted = append(m.deleted, keys...)
	return m.err
}

func (m *mockMutator) SyncDB(ctx context.Context, items []Item) error {
	m.synced = append(m.synced, items...)
	return nil
}

func newPlanAdapter() *mockAdapter {
	return &mockAdapter{
		dbIndex:  map[string]Item{"b": "same", "c": "old", "d": "orphan"},
		docIndex: map[string]Item{"a": "new", "b": "same", "c": "fresh"},
	}
}

func TestPlanFor(t *testing.T) {
	t.Run("ReportOnly", func(t *testing.T) {
		plan, err := PlanFor(context.Background(), newPlanAdapter(), Options{})
		require.NoError(t, err)

		assert.Empty(t, plan.Actions)
		assert.Equal(t, 4, plan.Summary.TotalItems)
		assert.Equal(t, 1, plan.Summary.MissingDB)
		assert.Equal(t, 1, plan.Summary.MissingDocument)
		assert.Equal(t, 1, plan.Summary.Mismatches)
	})

	t.Run("PurgeAndSync", func(t *testing.T) {
		plan, err := PlanFor(context.Background(), newPlanAdapter(), Options{DoPurge: true, DoSync: true})
		require.NoError(t, err)

		require.Len(t, plan.Actions, 3)
		assert.Equal(t, Action{Type: ActionInsertDB, Key: "a", Reason: "missing in database", Item: "new"}, plan.Actions[0])
		assert.Equal(t, ActionSyncDB, plan.Actions[1].Type)
		assert.Equal(t, "fresh", plan.Actions[1].Item)
		assert.Equal(t, Action{Type: ActionDeleteDB, Key: "d", Reason: "missing in document"}, plan.Actions[2])

		assert.Equal(t, 1, plan.Summary.InsertActions)
		assert.Equal(t, 1, plan.Summary.SyncActions)
		assert.Equal(t, 1, plan.Summary.PurgeActions)
	})

	t.Run("LoadError", func(t *testing.T) {
		adapter := newPlanAdapter()
		adapter.docErr = errors.New("bucket offline")

		_, err := PlanFor(context.Background(), adapter, Options{})
		assert.ErrorContains(t, err, "bucket offline")
	})
}

func TestApply_ConfirmationGating(t *testing.T) {
	plan := &Plan{
		Actions: []Action{
			{Type: ActionDeleteDB, Key: "1"},
			{Type: ActionInsertDB, Key: "2", Item: "two"},
			{Type: ActionSyncDB, Key: "3", Item: "three"},
		},
	}
	mutator := &mockMutator{}

	executed, err := Apply(context.Background(), mutator, plan, Options{Confirmed: false})
	assert.NoError(t, err)
	assert.Equal(t, 0, executed)

	executed, err = Apply(context.Background(), mutator, plan, Options{Confirmed: true, DryRun: true})
	assert.NoError(t, err)
	assert.Equal(t, 0, executed)
	assert.Empty(t, mutator.deleted)

	executed, err = Apply(context.Background(), mutator, plan, Options{Confirmed: true})
	assert.NoError(t, err)
	assert.Equal(t, 3, executed)
	assert.Equal(t, []string{"1"}, mutator.deleted)
	assert.Equal(t, []Item{"two"}, mutator.inserted)
	assert.Equal(t, []Item{"three"}, mutator.synced)
}

func TestApply_StopsOnError(t *testing.T) {
	plan := &Plan{Actions: []Action{
		{Type: ActionDeleteDB, Key: "1"},
		{Type: ActionInsertDB, Key: "2", Item: "two"},
	}}
	mutator := &mockMutator{err: errors.New("locked")}

	executed, err := Apply(context.Background(), mutator, plan, Options{Confirmed: true})
	assert.ErrorContains(t, err, "locked")
	assert.Equal(t, 0, executed)
	assert.Empty(t, mutator.inserted)
}

func TestPlanAndApply(t *testing.T) {
	mutator := &mockMutator{}
	plan, executed, err := PlanAndApply(context.Background(), newPlanAdapter(), mutator, Options{DoSync: true, Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Len(t, plan.Actions, 2)
	assert.Empty(t, mutator.deleted)
}
