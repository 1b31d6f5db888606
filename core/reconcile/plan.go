package reconcile

import (
	"context"
	"fmt"
)

// PlanFor loads both sources and returns the results and planned actions.
// It does not execute anything; use Apply for that.
func PlanFor(ctx context.Context, adapter Adapter, opts Options) (*Plan, error) {
	idx, err := LoadIndices(ctx, adapter)
	if err != nil {
		return nil, err
	}
	results := Reconcile(idx, adapter)
	summary, actions := buildPlan(results, idx, opts)
	return &Plan{Results: results, Actions: actions, Summary: summary}, nil
}

// Apply executes a plan's actions grouped by type. Nothing runs unless
// opts.Confirmed is set and opts.DryRun is not.
func Apply(ctx context.Context, mutator Mutator, plan *Plan, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	var (
		inserts []Item
		deletes []string
		syncs   []Item
	)
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionInsertDB:
			inserts = append(inserts, action.Item)
		case ActionDeleteDB:
			deletes = append(deletes, action.Key)
		case ActionSyncDB:
			syncs = append(syncs, action.Item)
		}
	}

	if len(deletes) > 0 {
		if err := mutator.DeleteDB(ctx, deletes); err != nil {
			return executed, fmt.Errorf("failed to delete %d db entries: %w", len(deletes), err)
		}
		executed += len(deletes)
	}
	if len(inserts) > 0 {
		if err := mutator.InsertDB(ctx, inserts); err != nil {
			return executed, fmt.Errorf("failed to insert %d db entries: %w", len(inserts), err)
		}
		executed += len(inserts)
	}
	if len(syncs) > 0 {
		if err := mutator.SyncDB(ctx, syncs); err != nil {
			return executed, fmt.Errorf("failed to sync %d db entries: %w", len(syncs), err)
		}
		executed += len(syncs)
	}
	return executed, nil
}

// PlanAndApply plans and, when confirmed, applies in one call.
func PlanAndApply(ctx context.Context, adapter Adapter, mutator Mutator, opts Options) (*Plan, int, error) {
	plan, err := PlanFor(ctx, adapter, opts)
	if err != nil {
		return nil, 0, err
	}
	executed, err := Apply(ctx, mutator, plan, opts)
	return plan, executed, err
}

func buildPlan(results []Result, idx *Indices, opts Options) (Summary, []Action) {
	var summary Summary
	var actions []Action

	summary.TotalItems = len(results)
	for _, result := range results {
		if !result.DBPresent {
			summary.MissingDB++
		}
		if !result.DocumentPresent {
			summary.MissingDocument++
		}
		if len(result.Mismatch) > 0 {
			summary.Mismatches++
		}

		switch {
		case !result.DocumentPresent:
			if opts.DoPurge {
				actions = append(actions, Action{
					Type:   ActionDeleteDB,
					Key:    result.Key,
					Reason: "missing in document",
				})
				summary.PurgeActions++
			}
		case !result.DBPresent:
			if opts.DoSync {
				actions = append(actions, Action{
					Type:   ActionInsertDB,
					Key:    result.Key,
					Reason: "missing in database",
					Item:   idx.Document[result.Key],
				})
				summary.InsertActions++
			}
		case len(result.Mismatch) > 0:
			if opts.DoSync {
				actions = append(actions, Action{
					Type:   ActionSyncDB,
					Key:    result.Key,
					Reason: fmt.Sprintf("mismatch: %v", result.Mismatch),
					Item:   idx.Document[result.Key],
				})
				summary.SyncActions++
			}
		}
	}
	return summary, actions
}
