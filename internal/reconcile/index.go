package reconcile

import "strings"

// Entry is one directory row handed to the engine: a stable employee id and
// the display name as stored in the directory.
type Entry struct {
	ID   int
	Name string
}

// Collision records two directory entries whose display names normalize to
// the same key. The later entry wins the index slot; the caller decides what
// to do about it (the import pipeline logs a warning).
type Collision struct {
	Key       string
	KeptID    int
	DroppedID int
}

// Index maps normalized name keys to employee ids. It is built once per
// reconciliation batch from a directory snapshot and never mutated afterwards,
// so concurrent batches over separate indexes need no synchronization.
type Index struct {
	ids  map[string]int
	keys []string // construction order; fuzzy tie-breaks depend on it
}

// BuildIndex normalizes every directory entry and inserts it into the index.
// On a key collision the later entry overwrites the earlier one
// (last-write-wins); every collision is returned so the caller can surface
// it instead of guessing silently. Entries whose names normalize to the
// empty string carry no usable key and are skipped.
func BuildIndex(directory []Entry) (*Index, []Collision) {
	idx := &Index{ids: make(map[string]int, len(directory))}
	var collisions []Collision
	for _, e := range directory {
		key := Normalize(strings.TrimSpace(e.Name))
		if key == "" {
			continue
		}
		if prev, ok := idx.ids[key]; ok {
			collisions = append(collisions, Collision{Key: key, KeptID: e.ID, DroppedID: prev})
			idx.ids[key] = e.ID
			continue
		}
		idx.ids[key] = e.ID
		idx.keys = append(idx.keys, key)
	}
	return idx, collisions
}

// Lookup returns the employee id for an exact normalized key.
func (x *Index) Lookup(key string) (int, bool) {
	id, ok := x.ids[key]
	return id, ok
}

// Keys returns every normalized key in construction order.
func (x *Index) Keys() []string {
	return x.keys
}

// Len returns the number of distinct keys in the index.
func (x *Index) Len() int {
	return len(x.keys)
}
