// Package hashtable implements a string-keyed hash table with separate
// chaining.
//
// What
//
//   - Table[V]: Put, Get, Remove, Len, Keys over buckets of (key, value)
//     entries. Keys hash with FNV-1a; the bucket is the hash modulo the
//     bucket count.
//   - Put overwrites in place on an equal key, so a key occurs in at most
//     one entry at all times.
//   - WithBuckets fixes the bucket count (default 10). WithMaxLoadFactor
//     opts in to growth: once len/buckets would exceed the factor, the
//     table doubles its buckets and rehashes every entry.
//
// Why
//
//   - Average O(1) lookups without ordering requirements on values, and
//     a transparent collision story: colliding keys simply share a
//     bucket chain, degrading that chain to a linear scan.
//
// Complexity
//
//	Put / Get / Remove: O(1) expected, O(n) when every key collides.
//	Rehash: O(n), amortized away by doubling.
//
// Iteration order of Keys follows bucket layout, not insertion order.
// Tests that care about contents should compare as sets.
package hashtable
