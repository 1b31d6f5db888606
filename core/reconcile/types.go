package reconcile

// Item is an entity loaded from one of the two sources. Adapters define the
// concrete type.
type Item any

// Result is the reconciliation output for a single entity key.
type Result struct {
	// Key uniquely identifies the entity across both sources.
	Key string `json:"key"`

	// DBPresent indicates whether the entity exists in the database.
	DBPresent bool `json:"db_present"`

	// DocumentPresent indicates whether the entity exists in the catalog document.
	DocumentPresent bool `json:"document_present"`

	// Mismatch lists field differences between the two sources,
	// e.g. "characters: doc=[Amber] db=[]".
	Mismatch []string `json:"mismatch"`

	// Metadata carries adapter specific labels such as the entity kind.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionInsertDB inserts an entity found only in the document.
	ActionInsertDB ActionType = "insert_db"
	// ActionDeleteDB deletes an entity missing from the document.
	ActionDeleteDB ActionType = "delete_db"
	// ActionSyncDB overwrites database fields with the document values.
	ActionSyncDB ActionType = "sync_db"
)

// Action is a planned mutation.
type Action struct {
	Type   ActionType `json:"type"`
	Key    string     `json:"key"`
	Reason string     `json:"reason"`

	// Item is the document entity for insert and sync actions.
	Item Item `json:"-"`
}

// Plan contains reconciliation results and the actions derived from them.
type Plan struct {
	Results []Result `json:"results"`
	Actions []Action `json:"actions"`
	Summary Summary  `json:"summary"`
}

// Summary provides aggregate counts for a plan.
type Summary struct {
	TotalItems      int `json:"total_items"`
	MissingDB       int `json:"missing_db"`
	MissingDocument int `json:"missing_document"`
	Mismatches      int `json:"mismatches"`
	InsertActions   int `json:"insert_actions"`
	PurgeActions    int `json:"purge_actions"`
	SyncActions     int `json:"sync_actions"`
}

// Options controls which actions are planned and whether they execute.
type Options struct {
	// DryRun prevents execution of any mutations.
	DryRun bool

	// DoPurge plans deletion of database entities missing from the document.
	DoPurge bool

	// DoSync plans inserts of missing entities and updates of mismatched ones.
	DoSync bool

	// Confirmed must be set for mutations to execute.
	Confirmed bool
}
