package pcon

import "runtime"

// Policy selects the bucketizer partitioning strategy.
type Policy int

const (
	// PolicyPrefix partitions by high-order address bits (default).
	PolicyPrefix Policy = iota
	// PolicyMinimizer partitions by the minimizer of the address's bit
	// windows.
	PolicyMinimizer
	// PolicyRehash remaps each address around its minimizer and writes
	// directly, without buffering. Comparison layout only: counts land in
	// a synthetic address space.
	PolicyRehash
)

// Options configure the counting pipelines.
type Options struct {
	// Policy is the bucketizer partitioning strategy.
	Policy Policy

	// MinimizerBits is the minimizer width in bits for PolicyMinimizer
	// and PolicyRehash.
	MinimizerBits uint8

	// Workers is the worker count for CountParallel.
	// Defaults to runtime.GOMAXPROCS(0).
	Workers int

	// BatchSize is the number of canonical k-mers handed to a worker at
	// once by CountParallel.
	BatchSize int

	// Logger receives pipeline progress. Defaults to NoopLogger.
	Logger *Logger
}

func defaultOptions() Options {
	return Options{
		Policy:        PolicyPrefix,
		MinimizerBits: 10,
		Workers:       runtime.GOMAXPROCS(0),
		BatchSize:     4096,
		Logger:        NoopLogger(),
	}
}

// WithPolicy selects the bucketizer partitioning strategy.
func WithPolicy(p Policy) func(*Options) {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithMinimizerBits sets the minimizer width for the minimizer-based
// policies.
func WithMinimizerBits(m uint8) func(*Options) {
	return func(o *Options) {
		o.MinimizerBits = m
	}
}

// WithWorkers sets the worker count for CountParallel.
func WithWorkers(n int) func(*Options) {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithBatchSize sets the producer batch size for CountParallel.
func WithBatchSize(n int) func(*Options) {
	return func(o *Options) {
		if n > 0 {
			o.BatchSize = n
		}
	}
}

// WithLogger sets the pipeline logger. A nil logger disables logging.
func WithLogger(l *Logger) func(*Options) {
	return func(o *Options) {
		if l == nil {
			l = NoopLogger()
		}
		o.Logger = l
	}
}
