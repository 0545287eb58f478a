// Package counter provides the dense, saturating k-mer count array.
//
// A counter owns one contiguous array of 2^(2k-1) unsigned elements, one
// per canonical address (see package kmer). The element width is a type
// parameter chosen at construction and fixed for the array's lifetime;
// every element saturates at its maximum instead of wrapping.
//
// Two variants implement the same capability set:
//
//   - Seq is exclusively owned by a single writer.
//   - Atomic is shared by any number of concurrent writers. Elements live
//     as fixed-width lanes inside 64-bit words and are incremented with a
//     CAS loop that is linearizable and saturating under racing writers.
//
// Allocation of the array is the dominant memory cost of a counting
// session and happens once, at construction. A k outside [1, 32] is a
// configuration error reported at construction, never at first increment.
package counter
