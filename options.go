package snipmatch

import (
	"github.com/hupe1980/snipmatch/bloom"
	"github.com/hupe1980/snipmatch/rkhash"
)

type options struct {
	algorithm    Algorithm
	chunkSize    int
	modulus      rkhash.Modulus
	hashCount    int
	bitsPerChunk int
	parallelism  int
	logger       *Logger
}

// Option configures a Matcher.
type Option func(*options)

// WithAlgorithm selects the matching engine. The engine is fixed for the
// lifetime of the Matcher.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithChunkSize sets the chunk length k. The query is cut into
// non-overlapping chunks of this many bytes; a trailing remainder shorter
// than k is discarded. Default 20.
func WithChunkSize(k int) Option {
	return func(o *options) {
		o.chunkSize = k
	}
}

// WithModulus sets the prime modulus of the rolling-hash field.
// Default rkhash.DefaultModulus.
func WithModulus(m rkhash.Modulus) Option {
	return func(o *options) {
		o.modulus = m
	}
}

// WithHashCount sets the number of derived Bloom hash functions used by the
// batch engine. Values <= 0 select bloom.DefaultHashCount.
func WithHashCount(h int) Option {
	return func(o *options) {
		o.hashCount = h
	}
}

// WithBloomBitsPerChunk sets the Bloom filter budget in bits per query
// chunk. Values <= 0 select bloom.DefaultBitsPerChunk.
func WithBloomBitsPerChunk(bits int) Option {
	return func(o *options) {
		o.bitsPerChunk = bits
	}
}

// WithParallelism splits the batch engine's query phase across this many
// goroutines. The filter is read-only once populated, so the scan
// parallelizes safely; results are identical to the serial scan. Values <= 1
// keep the scan serial.
func WithParallelism(p int) Option {
	return func(o *options) {
		o.parallelism = p
	}
}

// WithLogger configures structured logging. Pass nil to keep logging disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		algorithm:    AlgorithmSimple,
		chunkSize:    DefaultChunkSize,
		modulus:      rkhash.DefaultModulus,
		hashCount:    bloom.DefaultHashCount,
		bitsPerChunk: bloom.DefaultBitsPerChunk,
		parallelism:  1,
		logger:       NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
