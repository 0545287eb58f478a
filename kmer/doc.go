// Package kmer packs fixed-length nucleotide substrings into machine words.
//
// A k-mer over {A, C, T, G} is encoded 2 bits per base, most significant
// base first, with the bit pattern derived arithmetically from the ASCII
// byte: A=00, C=01, T=10, G=11. Lowercase input folds to the same codes.
//
// Canonicalization does not pick the lexicographically smaller strand.
// A packed value is canonical when its popcount is even, otherwise its
// reverse complement is. Since a value and its reverse complement differ
// only in the lowest bit under this parity scheme, dropping that bit yields
// a half-sized address space of 2^(2k-1) slots shared by both strands.
// Every persistent structure in this module (counters, solid filters) is
// indexed by that address.
//
// Input bytes outside {A,C,T,G,a,c,t,g} are a caller contract violation:
// the codec derives codes arithmetically and will produce an address for a
// bogus base without detecting it. Upstream sequence scanning must filter.
package kmer
