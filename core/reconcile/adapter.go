package reconcile

import "context"

// Adapter defines how a model is loaded from both sources and compared.
type Adapter interface {
	// Name returns the adapter name used in logs and errors.
	Name() string

	// LoadDBIndex loads all database entities keyed by entity key.
	LoadDBIndex(ctx context.Context) (map[string]Item, error)

	// LoadDocumentIndex loads all catalog document entities keyed by entity key.
	LoadDocumentIndex(ctx context.Context) (map[string]Item, error)

	// CompareFields describes differences between the two versions of an
	// entity. Both items are non-nil.
	CompareFields(dbItem, docItem Item) []string

	// Metadata returns labels for the result. Either item may be nil.
	Metadata(dbItem, docItem Item) map[string]string
}

// Mutator applies planned actions to the database.
type Mutator interface {
	InsertDB(ctx context.Context, items []Item) error
	DeleteDB(ctx context.Context, keys []string) error
	SyncDB(ctx context.Context, items []Item) error
}
