// Package reconcile maps free-text technician names onto stable employee ids.
// It is pure and I/O-free: given an in-memory directory snapshot it
// normalizes names, resolves them exact-then-fuzzy, and accumulates the names
// nobody could place for human follow-up.
package reconcile

import "sort"

// Batch reconciles technician names against one directory snapshot. It owns
// the index and the running unmatched set for a single import call: create a
// Batch per call, resolve row by row, and discard it with the result. Nothing
// is shared across batches.
type Batch struct {
	idx        *Index
	collisions []Collision
	unmatched  map[string]struct{}
}

// NewBatch builds the directory index once for the whole batch. Indexing is
// O(employees) and amortizes over every lookup in the call.
func NewBatch(directory []Entry) *Batch {
	idx, collisions := BuildIndex(directory)
	return &Batch{
		idx:        idx,
		collisions: collisions,
		unmatched:  make(map[string]struct{}),
	}
}

// Resolve resolves one raw name, recording it verbatim in the unmatched set
// when no directory entry qualifies.
func (b *Batch) Resolve(raw string) Outcome {
	o := Resolve(raw, b.idx)
	if !o.Matched() {
		b.unmatched[o.RawName] = struct{}{}
	}
	return o
}

// Collisions returns the directory name collisions found at index build time.
// The engine keeps last-write-wins; callers are expected to log these rather
// than let them pass silently.
func (b *Batch) Collisions() []Collision {
	return b.collisions
}

// Unmatched returns every raw name whose outcome was unmatched, sorted for
// deterministic output. The set lives only as long as the batch.
func (b *Batch) Unmatched() []string {
	names := make([]string, 0, len(b.unmatched))
	for n := range b.unmatched {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ResolveBatch resolves raw names in input order against a directory
// snapshot. The returned outcomes match the input's length and order exactly;
// the second value is the set of raw names that stayed unmatched.
func ResolveBatch(names []string, directory []Entry) ([]Outcome, []string) {
	b := NewBatch(directory)
	outcomes := make([]Outcome, len(names))
	for i, name := range names {
		outcomes[i] = b.Resolve(name)
	}
	return outcomes, b.Unmatched()
}
