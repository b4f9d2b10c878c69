package snipmatch

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/snipmatch/rkhash"
	"github.com/hupe1980/snipmatch/textnorm"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(WithChunkSize(0))
	require.ErrorIs(t, err, ErrInvalidChunkSize)

	_, err = New(WithChunkSize(-3))
	require.ErrorIs(t, err, ErrInvalidChunkSize)

	_, err = New(WithModulus(rkhash.Modulus(100)))
	require.ErrorIs(t, err, ErrInvalidModulus)

	var im *rkhash.ErrInvalidModulus
	_, err = New(WithModulus(rkhash.Modulus(100)))
	require.ErrorAs(t, err, &im)

	m, err := New()
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestParseAlgorithm(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Algorithm
	}{
		{"exact", AlgorithmExact},
		{"0", AlgorithmExact},
		{"simple", AlgorithmSimple},
		{"1", AlgorithmSimple},
		{"rk", AlgorithmRabinKarp},
		{"rabin-karp", AlgorithmRabinKarp},
		{"2", AlgorithmRabinKarp},
		{"batch", AlgorithmBatch},
		{"rkbatch", AlgorithmBatch},
		{"3", AlgorithmBatch},
	} {
		got, err := ParseAlgorithm(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := ParseAlgorithm("fuzzy")
	require.ErrorIs(t, err, ErrInvalidAlgorithm)
}

func mustParse(t *testing.T, s string) Algorithm {
	t.Helper()
	a, err := ParseAlgorithm(s)
	require.NoError(t, err)
	return a
}

func TestMatch_Exact(t *testing.T) {
	ctx := context.Background()
	m, err := New(WithAlgorithm(AlgorithmExact))
	require.NoError(t, err)

	r, err := m.Match(ctx, []byte("same doc"), []byte("same doc"))
	require.NoError(t, err)
	assert.Equal(t, 1, r.MatchedChunks)
	assert.Equal(t, 1, r.TotalChunks)
	assert.InDelta(t, 1.0, r.Percentage(), 1e-9)

	r, err = m.Match(ctx, []byte("same doc"), []byte("other doc"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.MatchedChunks)
}

func TestMatchOne(t *testing.T) {
	pattern := []byte("needle in")
	target := []byte("hay hay hay needle in the stack")

	found, trace, err := MatchOne(pattern, target, rkhash.DefaultModulus)
	require.NoError(t, err)
	assert.True(t, found)

	wantHash, err := rkhash.Hash(pattern, rkhash.DefaultModulus)
	require.NoError(t, err)
	assert.Equal(t, wantHash, trace.PatternHash)
	assert.Len(t, trace.WindowHashes, traceHashCount)

	// First window hash must equal the direct hash of the first window.
	firstWindow, err := rkhash.Hash(target[:len(pattern)], rkhash.DefaultModulus)
	require.NoError(t, err)
	assert.Equal(t, firstWindow, trace.WindowHashes[0])

	found, _, err = MatchOne([]byte("absent!!!"), target, rkhash.DefaultModulus)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMatchOne_ShortTarget(t *testing.T) {
	// A target shorter than the pattern cannot match, but is not an error.
	found, trace, err := MatchOne([]byte("longer pattern"), []byte("tiny"), rkhash.DefaultModulus)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NotNil(t, trace)
	assert.Empty(t, trace.WindowHashes)
}

func TestMatchOne_EmptyPattern(t *testing.T) {
	_, _, err := MatchOne(nil, []byte("whatever"), rkhash.DefaultModulus)
	require.Error(t, err)
}

func TestMatchOne_ShortWindowPrefix(t *testing.T) {
	// Only 3 windows exist, so the trace holds 3 hashes, not 5.
	found, trace, err := MatchOne([]byte("ab"), []byte("xyab"), rkhash.DefaultModulus)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, trace.WindowHashes, 3)
}

// MatchOne must agree with the brute-force baseline on inputs designed to
// provoke hash collisions (tiny alphabet, many repeats).
func TestMatchOne_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	alphabet := []byte("ab")

	randomDoc := func(n int) []byte {
		doc := make([]byte, n)
		for i := range doc {
			doc[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return doc
	}

	for trial := 0; trial < 200; trial++ {
		pattern := randomDoc(3 + rng.Intn(5))
		target := randomDoc(10 + rng.Intn(50))

		found, _, err := MatchOne(pattern, target, rkhash.DefaultModulus)
		require.NoError(t, err)
		assert.Equal(t, bytes.Contains(target, pattern), found,
			"pattern=%q target=%q", pattern, target)
	}
}

// The documented end-to-end scenario: a 40-byte query, k=20, two chunks,
// a target containing an exact copy of the first chunk only.
func TestMatch_TwoChunkScenario(t *testing.T) {
	ctx := context.Background()

	query := textnorm.Normalize([]byte("The QUICK brown fox JUMPS over a lazy do"))
	require.Len(t, query, 40)
	target := textnorm.Normalize([]byte("zzzz the quick brown fox zzzz"))

	for _, algo := range []Algorithm{AlgorithmSimple, AlgorithmRabinKarp} {
		m, err := New(WithAlgorithm(algo), WithChunkSize(20))
		require.NoError(t, err)

		r, err := m.Match(ctx, query, target)
		require.NoError(t, err, algo)
		assert.Equal(t, 2, r.TotalChunks, algo)
		assert.Equal(t, 1, r.MatchedChunks, algo)
		assert.True(t, r.Chunks.Contains(0), algo)
		assert.False(t, r.Chunks.Contains(1), algo)
		assert.InDelta(t, 0.5, r.Percentage(), 1e-9, algo)
	}

	// The batch path may overcount through false positives but must never
	// miss the genuinely present chunk.
	m, err := New(WithAlgorithm(AlgorithmBatch), WithChunkSize(20))
	require.NoError(t, err)

	r, err := m.Match(ctx, query, target)
	require.NoError(t, err)
	assert.Equal(t, 2, r.TotalChunks)
	assert.GreaterOrEqual(t, r.MatchedWindows, 1)
	assert.GreaterOrEqual(t, r.MatchedChunks, 1)
	assert.True(t, r.Chunks.Contains(0))
}

func TestMatch_QueryShorterThanChunk(t *testing.T) {
	ctx := context.Background()

	for _, algo := range []Algorithm{AlgorithmSimple, AlgorithmRabinKarp, AlgorithmBatch} {
		m, err := New(WithAlgorithm(algo), WithChunkSize(20))
		require.NoError(t, err)

		r, err := m.Match(ctx, []byte("short query"), []byte("a perfectly ordinary target document"))
		require.NoError(t, err, algo)
		assert.Equal(t, 0, r.TotalChunks, algo)
		assert.Equal(t, 0, r.MatchedChunks, algo)
		assert.Zero(t, r.Percentage(), algo)
	}
}

// Simple and Rabin-Karp are exact engines and must agree chunk for chunk.
func TestMatch_SimpleAgreesWithRabinKarp(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))
	alphabet := []byte("abc ")

	randomDoc := func(n int) []byte {
		doc := make([]byte, n)
		for i := range doc {
			doc[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return doc
	}

	simple, err := New(WithAlgorithm(AlgorithmSimple), WithChunkSize(5))
	require.NoError(t, err)
	rk, err := New(WithAlgorithm(AlgorithmRabinKarp), WithChunkSize(5))
	require.NoError(t, err)

	for trial := 0; trial < 100; trial++ {
		query := randomDoc(20 + rng.Intn(30))
		target := randomDoc(50 + rng.Intn(100))

		rs, err := simple.Match(ctx, query, target)
		require.NoError(t, err)
		rr, err := rk.Match(ctx, query, target)
		require.NoError(t, err)

		assert.Equal(t, rs.TotalChunks, rr.TotalChunks)
		assert.Equal(t, rs.MatchedChunks, rr.MatchedChunks)
		assert.True(t, rs.Chunks.Equals(rr.Chunks))
	}
}

func TestMatch_RabinKarpTraces(t *testing.T) {
	ctx := context.Background()
	m, err := New(WithAlgorithm(AlgorithmRabinKarp), WithChunkSize(10))
	require.NoError(t, err)

	query := []byte("0123456789abcdefghij")
	target := []byte("xx0123456789xx")

	r, err := m.Match(ctx, query, target)
	require.NoError(t, err)
	require.Len(t, r.Traces, 2)

	for i, trace := range r.Traces {
		want, err := rkhash.Hash(query[i*10:(i+1)*10], rkhash.DefaultModulus)
		require.NoError(t, err)
		assert.Equal(t, want, trace.PatternHash)
		assert.NotEmpty(t, trace.WindowHashes)
	}
}

func TestMatchAll(t *testing.T) {
	ctx := context.Background()
	m, err := New(WithAlgorithm(AlgorithmSimple), WithChunkSize(4))
	require.NoError(t, err)

	query := []byte("abcdwxyz")
	targets := [][]byte{
		[]byte("zzabcdzz"),     // first chunk only
		[]byte("zzabcdwxyzzz"), // both chunks
		[]byte("nothing here"), // neither
	}

	reports, err := m.MatchAll(ctx, query, targets)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, 1, reports[0].MatchedChunks)
	assert.Equal(t, 2, reports[1].MatchedChunks)
	assert.Equal(t, 0, reports[2].MatchedChunks)
}
