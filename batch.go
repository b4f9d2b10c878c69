package snipmatch

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/snipmatch/bloom"
	"github.com/hupe1980/snipmatch/rkhash"
)

// bloomDumpBits is how much of the filter Report.BloomDump renders.
const bloomDumpBits = 160

// batchMatch tests every query chunk against the target in one linear scan.
//
// Phase one inserts each chunk's full-window hash into a Bloom filter sized
// from the query length. Phase two rolls one hash over all target windows
// and queries the filter per position. The filter is read-only in phase two,
// which is what makes the parallel scan safe.
//
// Unlike MatchOne there is no byte verification: keeping chunk bytes around
// for verification would defeat the space savings the filter buys, so Bloom
// false positives are accepted and quantifiable.
func (m *Matcher) batchMatch(ctx context.Context, query, target []byte, r *Report) error {
	k := m.opts.chunkSize
	r.TotalChunks = len(query) / k
	r.Windows = roaring.New()
	if r.TotalChunks == 0 {
		return nil
	}

	f, err := bloom.New(bloom.SizeForQuery(len(query), k, m.opts.bitsPerChunk), m.opts.hashCount)
	if err != nil {
		return err
	}

	chunkHashes := make([]uint64, 0, r.TotalChunks)
	for i := 0; i+k <= len(query); i += k {
		h, err := rkhash.Hash(query[i:i+k], m.opts.modulus)
		if err != nil {
			return err
		}
		f.Insert(h)
		chunkHashes = append(chunkHashes, h)
	}

	dump, err := f.Dump(bloomDumpBits)
	if err != nil {
		return err
	}
	r.BloomDump = dump

	if len(target) < k {
		return nil
	}

	windows := len(target) - k + 1
	segs, err := m.scanTarget(ctx, target, f, windows)
	if err != nil {
		return err
	}

	matchedHashes := make(map[uint64]struct{})
	for _, seg := range segs {
		r.Windows.Or(seg.windows)
		for h := range seg.hashes {
			matchedHashes[h] = struct{}{}
		}
	}
	r.MatchedWindows = int(r.Windows.GetCardinality())

	// Per-chunk reading: a chunk counts once if its hash showed up among
	// the probable window hits, no matter how many windows hit.
	for idx, h := range chunkHashes {
		if _, ok := matchedHashes[h]; ok {
			r.MatchedChunks++
			r.Chunks.Add(uint32(idx))
		}
	}

	m.opts.logger.LogBatchScan(ctx, f.Capacity(), r.MatchedWindows)
	return nil
}

// segmentScan is one scanner's share of the query phase.
type segmentScan struct {
	windows *roaring.Bitmap
	hashes  map[uint64]struct{}
}

// scanTarget queries the filter for all window positions [0, windows),
// splitting the range across opts.parallelism scanners.
func (m *Matcher) scanTarget(ctx context.Context, target []byte, f *bloom.Filter, windows int) ([]*segmentScan, error) {
	p := m.opts.parallelism
	if p > windows {
		p = windows
	}
	if p <= 1 {
		seg, err := m.scanWindows(target, f, 0, windows)
		if err != nil {
			return nil, err
		}
		return []*segmentScan{seg}, nil
	}

	g, _ := errgroup.WithContext(ctx)
	segs := make([]*segmentScan, p)

	for i := 0; i < p; i++ {
		i := i
		lo := i * windows / p
		hi := (i + 1) * windows / p
		g.Go(func() error {
			seg, err := m.scanWindows(target, f, lo, hi)
			if err != nil {
				return err
			}
			segs[i] = seg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return segs, nil
}

// scanWindows rolls one hash over window positions [lo, hi) and records the
// probable hits.
func (m *Matcher) scanWindows(target []byte, f *bloom.Filter, lo, hi int) (*segmentScan, error) {
	k := m.opts.chunkSize

	w, err := rkhash.New(target[lo:], k, m.opts.modulus)
	if err != nil {
		return nil, err
	}

	seg := &segmentScan{
		windows: roaring.New(),
		hashes:  make(map[uint64]struct{}),
	}

	for i := lo; i < hi; i++ {
		if f.Query(w.Sum()) {
			seg.windows.Add(uint32(i))
			seg.hashes[w.Sum()] = struct{}{}
		}
		if i+1 < hi {
			w.Advance(target[i], target[i+k])
		}
	}

	return seg, nil
}
