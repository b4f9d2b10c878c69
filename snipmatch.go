package snipmatch

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the default chunk length k.
const DefaultChunkSize = 20

// Algorithm selects one of the four matching engines. It is chosen once when
// the Matcher is built, never switched mid-run.
type Algorithm int

const (
	// AlgorithmExact compares the whole query against the whole target.
	AlgorithmExact Algorithm = iota
	// AlgorithmSimple scans the target by brute force for each chunk.
	AlgorithmSimple
	// AlgorithmRabinKarp scans with a rolling hash and byte verification.
	AlgorithmRabinKarp
	// AlgorithmBatch probes one Bloom filter of all chunk hashes in a
	// single rolling scan of the target.
	AlgorithmBatch
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmExact:
		return "exact"
	case AlgorithmSimple:
		return "simple"
	case AlgorithmRabinKarp:
		return "rk"
	case AlgorithmBatch:
		return "batch"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm resolves an algorithm name. The classic numeric codes 0-3
// are accepted as aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "exact", "0":
		return AlgorithmExact, nil
	case "simple", "1":
		return AlgorithmSimple, nil
	case "rk", "rabin-karp", "2":
		return AlgorithmRabinKarp, nil
	case "batch", "rkbatch", "3":
		return AlgorithmBatch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
	}
}

// Matcher runs one configured matching engine over query/target pairs.
// It is immutable after construction and safe for concurrent use.
type Matcher struct {
	opts options
}

// New creates a Matcher. Configuration errors (non-positive chunk size,
// modulus out of range) are reported here, before any document is touched.
func New(optFns ...Option) (*Matcher, error) {
	opts := applyOptions(optFns)

	if opts.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, opts.chunkSize)
	}
	if err := opts.modulus.Validate(); err != nil {
		return nil, translateError(err)
	}

	return &Matcher{opts: opts}, nil
}

// Report summarizes one query/target run.
type Report struct {
	// Algorithm is the engine that produced the report.
	Algorithm Algorithm

	// TotalChunks is the number of whole k-byte chunks in the query.
	TotalChunks int

	// MatchedChunks counts query chunks judged present in the target. For
	// the batch engine this is the probabilistic per-chunk reading: a chunk
	// whose hash appeared among the probable window hits.
	MatchedChunks int

	// MatchedWindows counts target window positions with probable hits.
	// Only the batch engine fills it. A chunk occurring in several windows,
	// or several chunks colliding into the same bits, both add to it, and
	// Bloom false positives can push it above the true occurrence count.
	MatchedWindows int

	// Chunks holds the indexes of matched query chunks.
	Chunks *roaring.Bitmap

	// Windows holds matched target window positions (batch engine only).
	Windows *roaring.Bitmap

	// Traces holds per-chunk scan diagnostics (Rabin-Karp engine only).
	Traces []*ScanTrace

	// BloomDump is the hex rendering of the filter's leading bits after the
	// insertion phase (batch engine only).
	BloomDump string
}

// Percentage returns the matched fraction in [0, 1]. A query with no whole
// chunks yields 0 rather than dividing by zero.
func (r *Report) Percentage() float64 {
	if r.TotalChunks == 0 {
		return 0
	}
	return float64(r.MatchedChunks) / float64(r.TotalChunks)
}

// Match runs the configured engine for one query/target pair. Both documents
// are read-only; they must already be normalized.
func (m *Matcher) Match(ctx context.Context, query, target []byte) (*Report, error) {
	r := &Report{Algorithm: m.opts.algorithm, Chunks: roaring.New()}
	k := m.opts.chunkSize

	switch m.opts.algorithm {
	case AlgorithmExact:
		r.TotalChunks = 1
		if exactMatch(query, target) {
			r.MatchedChunks = 1
			r.Chunks.Add(0)
		}

	case AlgorithmSimple:
		r.TotalChunks = len(query) / k
		for i := 0; i+k <= len(query); i += k {
			if simpleMatch(query[i:i+k], target) {
				r.MatchedChunks++
				r.Chunks.Add(uint32(i / k))
			}
		}

	case AlgorithmRabinKarp:
		r.TotalChunks = len(query) / k
		for i := 0; i+k <= len(query); i += k {
			found, trace, err := MatchOne(query[i:i+k], target, m.opts.modulus)
			if err != nil {
				return nil, translateError(err)
			}
			r.Traces = append(r.Traces, trace)
			if found {
				r.MatchedChunks++
				r.Chunks.Add(uint32(i / k))
			}
		}

	case AlgorithmBatch:
		if err := m.batchMatch(ctx, query, target, r); err != nil {
			return nil, translateError(err)
		}

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(m.opts.algorithm))
	}

	m.opts.logger.LogMatch(ctx, m.opts.algorithm, r.MatchedChunks, r.TotalChunks)
	return r, nil
}

// MatchAll matches one query against several targets concurrently. Reports
// come back in target order; the first failure cancels the rest.
func (m *Matcher) MatchAll(ctx context.Context, query []byte, targets [][]byte) ([]*Report, error) {
	g, ctx := errgroup.WithContext(ctx)

	reports := make([]*Report, len(targets))
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			rep, err := m.Match(ctx, query, target)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
