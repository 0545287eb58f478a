// Package bucketizer reorders a high-rate stream of canonical addresses
// into batched, bucket-local writes against a counter.
//
// Raw sequence scanning produces effectively random addresses into a huge
// array; applying them one by one thrashes the cache. A bucketizer stages
// addresses in fixed-capacity buckets keyed by a partition id and flushes
// each full bucket through the counter's batch-increment entry point, so
// consecutive writes land close together.
//
// Three interchangeable policies implement the same contract:
//
//   - Prefix partitions by the high-order bits of the address.
//   - Minimizer partitions by the smallest mixed-hash value over the
//     address's bit sub-windows, which correlates with genomic locality.
//   - Rehash is a degenerate, unbuffered policy kept for layout
//     comparison: it rewrites the address around its minimizer and
//     increments directly.
//
// FlushAll is part of the counting protocol, not an optimization: buckets
// are only guaranteed drained by an explicit FlushAll once scanning ends.
// Skipping it silently drops every count still staged in a partially
// filled bucket. Counters deliberately do not auto-flush on read, which
// would reintroduce the per-address cost this package exists to avoid.
//
// A bucketizer's buckets are private to it. The expected concurrent
// topology is one bucketizer per worker, all draining into one shared
// atomic counter.
package bucketizer
