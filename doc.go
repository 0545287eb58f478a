// Package pcon counts fixed-length DNA substrings (k-mers) and persists
// the frequency table in a compact, chunk-compressed binary format.
//
// The core is built from small, composable pieces:
//
//   - kmer packs substrings over {A,C,T,G} into 2-bit-per-base words and
//     maps both strands of a location onto one canonical address.
//   - counter holds the dense saturating count array, in a single-writer
//     and a lock-free shared variant.
//   - bucketizer turns the effectively random address stream produced by
//     sequence scanning into batched, cache-friendly counter writes.
//   - solid marks high-abundance addresses in a bitvector filter.
//   - serialize writes the pcon binary format, CSV dumps and solid dumps;
//     rle is a standalone run-length transform for raw count buffers.
//
// This package ties them together into counting pipelines. The caller
// supplies tokenized input: a TokenSource yielding successive k-length
// windows. Sequence-file parsing (FASTA/FASTQ) and transparent input
// decompression live outside the core.
//
// # Counting
//
//	src := pcon.NewSliceSource(5, []byte("GTTCTGCAAAT..."))
//	counts, err := pcon.Count[uint8](src, 5)
//
// Parallel counting shares one atomic counter between workers, each with
// a private bucketizer:
//
//	counts, err := pcon.CountParallel[uint8](ctx, src, 5,
//	    pcon.WithWorkers(8),
//	    pcon.WithPolicy(pcon.PolicyMinimizer),
//	)
//
// # Persistence
//
//	err = serialize.New[uint8](counts).Pcon(file)
//	counts, err = serialize.Deserialize[uint8](file)
package pcon
