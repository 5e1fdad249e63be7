// Package dict builds the per-column dictionaries used by the
// LowCardinality codec: first-seen insertion order, deduplicated by an
// xxHash64 of the value's wire-comparable key, with index 0 reserved for
// the null placeholder.
package dict

import "github.com/cespare/xxhash/v2"

// Builder accumulates distinct keys in first-seen order starting at index
// 1; index 0 is reserved by the caller for the null/default placeholder.
// It is modeled on mebo's collision.Tracker, adapted from metric-name
// deduplication to dictionary-value deduplication: a hash match is only
// the start of the lookup, same as Tracker's "existingName != name" check
// on a hash hit — the bucket is still verified against the actual key
// before a slot is reused, so two distinct keys that happen to share an
// xxHash64 still get distinct dictionary slots.
type Builder struct {
	buckets map[uint64][]int // hash(key) -> candidate slots (>=1) sharing that hash
	keys    []string         // ordered keys, keys[i] lives at slot i+1
}

// NewBuilder creates an empty dictionary builder.
func NewBuilder() *Builder {
	return &Builder{
		buckets: make(map[uint64][]int),
	}
}

// Slot returns the dictionary index (>=1) for key, inserting it in
// first-seen order if not already present.
func (b *Builder) Slot(key string) int {
	h := xxhash.Sum64String(key)
	for _, idx := range b.buckets[h] {
		if b.keys[idx-1] == key {
			return idx
		}
	}

	b.keys = append(b.keys, key)
	idx := len(b.keys) // slots start at 1, index 0 is the placeholder
	b.buckets[h] = append(b.buckets[h], idx)

	return idx
}

// Keys returns the dictionary's distinct keys in first-seen insertion
// order; Keys()[i] occupies dictionary slot i+1.
func (b *Builder) Keys() []string {
	return b.keys
}

// Len returns the number of distinct keys tracked, excluding the reserved
// placeholder slot.
func (b *Builder) Len() int {
	return len(b.keys)
}
