package snipmatch

import (
	"bytes"

	"github.com/hupe1980/snipmatch/rkhash"
)

// traceHashCount bounds the window-hash prefix captured in a ScanTrace.
const traceHashCount = 5

// ScanTrace captures the diagnostic hash values of a single-pattern scan.
// The values are reproducible bit-for-bit for the same inputs and modulus;
// they are not needed by callers interested only in the match result.
type ScanTrace struct {
	// PatternHash is the full-window hash of the pattern.
	PatternHash uint64

	// WindowHashes holds the hashes of the first few target windows, at
	// most traceHashCount of them.
	WindowHashes []uint64
}

// MatchOne reports whether pattern occurs anywhere in target as a contiguous
// substring, using a rolling-hash scan. Hash equality alone is never
// trusted: each candidate window is byte-verified against the pattern, so a
// true result is exact.
//
// A target shorter than the pattern cannot match and yields false without
// error. An empty pattern or an out-of-range modulus is an error.
func MatchOne(pattern, target []byte, mod rkhash.Modulus) (bool, *ScanTrace, error) {
	k := len(pattern)

	patternHash, err := rkhash.Hash(pattern, mod)
	if err != nil {
		return false, nil, err
	}
	trace := &ScanTrace{PatternHash: patternHash}

	if len(target) < k {
		return false, trace, nil
	}

	w, err := rkhash.New(target, k, mod)
	if err != nil {
		return false, nil, err
	}

	found := false
	for i := 0; ; i++ {
		if len(trace.WindowHashes) < traceHashCount {
			trace.WindowHashes = append(trace.WindowHashes, w.Sum())
		}

		if !found && w.Sum() == patternHash && bytes.Equal(target[i:i+k], pattern) {
			found = true
		}
		// Keep rolling until the trace prefix is complete, then stop early.
		if found && len(trace.WindowHashes) >= traceHashCount {
			break
		}

		if i == len(target)-k {
			break
		}
		w.Advance(target[i], target[i+k])
	}

	return found, trace, nil
}
