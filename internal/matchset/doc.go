// Package matchset provides a fixed-capacity set of positions used to record
// which bytes of a string took part in a match.
//
// A Set picks its representation at construction time:
//   - KindBitmask: capacity up to InlineCapacity, held inline in two machine
//     words, no heap allocation
//   - KindSlice: larger capacities, backed by a []bool of exactly that length
//
// The representation only changes allocation behaviour, never results.
package matchset
