package hashtable

import "hash/fnv"

// entry is one (key, value) pair on a bucket chain.
type entry[V any] struct {
	key   string
	value V
}

// Table is a separate-chaining hash table with string keys.
// Construct it with New; the zero value has no buckets.
type Table[V any] struct {
	buckets     [][]entry[V]
	size        int
	maxLoad     float64
	growEnabled bool
}

// New returns an empty Table configured by opts.
func New[V any](opts ...Option) *Table[V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Table[V]{
		buckets:     make([][]entry[V], cfg.buckets),
		maxLoad:     cfg.maxLoad,
		growEnabled: cfg.growEnabled,
	}
}

// Put stores value under key, overwriting any previous value for key.
//
// Complexity: O(1) expected
func (t *Table[V]) Put(key string, value V) {
	idx := t.bucketIndex(key)
	chain := t.buckets[idx]
	for i := range chain {
		if chain[i].key == key {
			chain[i].value = value
			return
		}
	}
	if t.growEnabled && float64(t.size+1) > t.maxLoad*float64(len(t.buckets)) {
		t.rehash(len(t.buckets) * 2)
		idx = t.bucketIndex(key)
	}
	t.buckets[idx] = append(t.buckets[idx], entry[V]{key: key, value: value})
	t.size++
}

// Get returns the value stored under key.
// It returns (zero, false) when the key is absent.
//
// Complexity: O(1) expected
func (t *Table[V]) Get(key string) (V, bool) {
	chain := t.buckets[t.bucketIndex(key)]
	for i := range chain {
		if chain[i].key == key {
			return chain[i].value, true
		}
	}
	var zero V

	return zero, false
}

// Remove deletes the entry under key and reports whether it existed.
//
// Complexity: O(1) expected
func (t *Table[V]) Remove(key string) bool {
	idx := t.bucketIndex(key)
	chain := t.buckets[idx]
	for i := range chain {
		if chain[i].key == key {
			t.buckets[idx] = append(chain[:i], chain[i+1:]...)
			t.size--
			return true
		}
	}

	return false
}

// Len returns the number of stored pairs.
func (t *Table[V]) Len() int {
	return t.size
}

// IsEmpty reports whether the table holds no pairs.
func (t *Table[V]) IsEmpty() bool {
	return t.size == 0
}

// Keys returns every stored key in bucket order. The order is an
// artifact of hashing, not of insertion.
func (t *Table[V]) Keys() []string {
	var keys []string
	for _, chain := range t.buckets {
		for i := range chain {
			keys = append(keys, chain[i].key)
		}
	}

	return keys
}

// Buckets returns the current bucket count.
func (t *Table[V]) Buckets() int {
	return len(t.buckets)
}

// bucketIndex hashes key with FNV-1a and folds it into the bucket range.
func (t *Table[V]) bucketIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return int(h.Sum32() % uint32(len(t.buckets)))
}

// rehash redistributes every entry across n fresh buckets.
func (t *Table[V]) rehash(n int) {
	old := t.buckets
	t.buckets = make([][]entry[V], n)
	for _, chain := range old {
		for _, e := range chain {
			idx := t.bucketIndex(e.key)
			t.buckets[idx] = append(t.buckets[idx], e)
		}
	}
}
