// Package serialize persists counters and solid filters.
//
// The native "pcon" layout is two header bytes (k, element width in
// bytes) followed by independently compressed gzip members. Each member's
// plaintext is one chunk of the raw count array as little-endian
// fixed-width integers. Members compress in parallel but are concatenated
// in chunk order; readers treat everything after the header as one
// multistream gzip and decompress it as a single logical stream.
//
// Two human-facing dumps complement it: a CSV of kmer,count lines above
// an abundance threshold, and the solid bitvector dump (see package
// solid). All outputs are pure functions of (k, raw counts, threshold).
package serialize
