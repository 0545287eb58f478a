// Package solid provides the solid-kmer bitvector filter.
//
// A Solid holds one bit per canonical address; a set bit means the
// abundance observed at that address exceeded a configured threshold.
// Bits are packed LSB-first: bit 0 of byte 0 is address 0. That layout is
// also the persisted one, so serialization is the raw buffer behind a
// gzip stream prefixed with the k byte.
//
// Out-of-range addresses are tolerated, not fatal: writes are ignored and
// reads return false. Combining two filters with Union requires matching
// k values; mismatched spaces are a caller error.
package solid
