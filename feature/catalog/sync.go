package catalog

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"furnishing-helper/core/reconcile"
	"furnishing-helper/feature/catalog/models"
)

// SyncAdapter reconciles the catalog tables against the catalog document.
// It implements both reconcile.Adapter and reconcile.Mutator.
type SyncAdapter struct {
	store    *Store
	document func(ctx context.Context) (*models.Catalog, error)

	// Invalid collects document entries rejected by validation during the
	// last LoadDocumentIndex call.
	Invalid []string
}

// NewSyncAdapter creates an adapter reading the document through load.
func NewSyncAdapter(store *Store, load func(ctx context.Context) (*models.Catalog, error)) *SyncAdapter {
	return &SyncAdapter{store: store, document: load}
}

func (a *SyncAdapter) Name() string {
	return "catalog"
}

func (a *SyncAdapter) LoadDBIndex(ctx context.Context) (map[string]reconcile.Item, error) {
	cat, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return toIndex(cat.Entries()), nil
}

func (a *SyncAdapter) LoadDocumentIndex(ctx context.Context) (map[string]reconcile.Item, error) {
	cat, err := a.document(ctx)
	if err != nil {
		return nil, err
	}
	valid, problems := ValidSets(cat)
	a.Invalid = problems

	filtered := *cat
	filtered.GiftSets = valid
	return toIndex(filtered.Entries()), nil
}

func (a *SyncAdapter) CompareFields(dbItem, docItem reconcile.Item) []string {
	db, doc := dbItem.(models.Entry), docItem.(models.Entry)
	if db.Set == nil || doc.Set == nil {
		return nil
	}

	var mismatch []string
	if db.Set.Type != doc.Set.Type {
		mismatch = append(mismatch, fmt.Sprintf("type: doc=%q db=%q", doc.Set.Type, db.Set.Type))
	}
	if !slices.Equal(db.Set.Characters, doc.Set.Characters) {
		mismatch = append(mismatch, fmt.Sprintf("characters: doc=%v db=%v", doc.Set.Characters, db.Set.Characters))
	}
	if !reflect.DeepEqual(normalize(db.Set.Requirements), normalize(doc.Set.Requirements)) {
		mismatch = append(mismatch, fmt.Sprintf("materials: doc=%d lines db=%d lines", len(doc.Set.Requirements), len(db.Set.Requirements)))
	}
	return mismatch
}

func (a *SyncAdapter) Metadata(dbItem, docItem reconcile.Item) map[string]string {
	e, ok := dbItem.(models.Entry)
	if !ok {
		e, _ = docItem.(models.Entry)
	}
	return map[string]string{"kind": e.Kind, "name": e.Name}
}

func (a *SyncAdapter) InsertDB(ctx context.Context, items []reconcile.Item) error {
	return a.store.Insert(ctx, toEntries(items))
}

func (a *SyncAdapter) DeleteDB(ctx context.Context, keys []string) error {
	entries := make([]models.Entry, 0, len(keys))
	for _, key := range keys {
		kind, name, ok := splitKey(key)
		if !ok {
			return fmt.Errorf("malformed catalog key %q", key)
		}
		entries = append(entries, models.Entry{Kind: kind, Name: name})
	}
	return a.store.Delete(ctx, entries)
}

func (a *SyncAdapter) SyncDB(ctx context.Context, items []reconcile.Item) error {
	sets := make([]models.GiftSet, 0, len(items))
	for _, e := range toEntries(items) {
		if e.Set != nil {
			sets = append(sets, *e.Set)
		}
	}
	return a.store.UpdateSets(ctx, sets)
}

func toIndex(entries map[string]models.Entry) map[string]reconcile.Item {
	out := make(map[string]reconcile.Item, len(entries))
	for k, e := range entries {
		out[k] = e
	}
	return out
}

func toEntries(items []reconcile.Item) []models.Entry {
	out := make([]models.Entry, 0, len(items))
	for _, it := range items {
		if e, ok := it.(models.Entry); ok {
			out = append(out, e)
		}
	}
	return out
}

func splitKey(key string) (kind, name string, ok bool) {
	kind, name, ok = strings.Cut(key, "/")
	return kind, name, ok && kind != "" && name != ""
}

// normalize maps nil recipes to empty ones so JSON round trips compare equal.
func normalize(reqs []models.Requirement) []models.Requirement {
	out := make([]models.Requirement, len(reqs))
	for i, r := range reqs {
		if r.Recipe == nil {
			r.Recipe = []models.Ingredient{}
		}
		out[i] = r
	}
	return out
}
