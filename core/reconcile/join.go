package reconcile

// Row is one keyed entry of a reconciled table.
type Row[V any] struct {
	Key   string
	Value V
}

// LeftJoin builds one row per catalog key, in catalog order, taking the
// value from values when present and def otherwise. Keys present in values
// but absent from the catalog are dropped. Repeated catalog keys yield a
// single row.
func LeftJoin[V any](keys []string, values map[string]V, def V) []Row[V] {
	rows := make([]Row[V], 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		v, ok := values[key]
		if !ok {
			v = def
		}
		rows = append(rows, Row[V]{Key: key, Value: v})
	}
	return rows
}

// Collapse turns rows back into a key to value map. When a key repeats,
// the last row wins.
func Collapse[V any](rows []Row[V]) map[string]V {
	out := make(map[string]V, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out
}
