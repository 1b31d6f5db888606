package reconcile

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Indices holds both loaded sources.
type Indices struct {
	DB       map[string]Item
	Document map[string]Item
}

// LoadIndices loads both sources concurrently.
func LoadIndices(ctx context.Context, adapter Adapter) (*Indices, error) {
	var idx Indices

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		db, err := adapter.LoadDBIndex(gctx)
		if err != nil {
			return fmt.Errorf("%s: load db index: %w", adapter.Name(), err)
		}
		idx.DB = db
		return nil
	})
	g.Go(func() error {
		doc, err := adapter.LoadDocumentIndex(gctx)
		if err != nil {
			return fmt.Errorf("%s: load document index: %w", adapter.Name(), err)
		}
		idx.Document = doc
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &idx, nil
}

// Reconcile builds one result per key in the union of both sources,
// sorted by key.
func Reconcile(idx *Indices, adapter Adapter) []Result {
	union := make(map[string]struct{}, len(idx.DB)+len(idx.Document))
	for key := range idx.DB {
		union[key] = struct{}{}
	}
	for key := range idx.Document {
		union[key] = struct{}{}
	}

	results := make([]Result, 0, len(union))
	for key := range union {
		results = append(results, buildResult(key, idx, adapter))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
	return results
}

func buildResult(key string, idx *Indices, adapter Adapter) Result {
	dbItem, dbPresent := idx.DB[key]
	docItem, docPresent := idx.Document[key]

	result := Result{
		Key:             key,
		DBPresent:       dbPresent,
		DocumentPresent: docPresent,
		Mismatch:        []string{},
		Metadata:        adapter.Metadata(dbItem, docItem),
	}
	if dbPresent && docPresent {
		result.Mismatch = adapter.CompareFields(dbItem, docItem)
	}
	return result
}
