package bloom

import (
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/snipmatch/internal/bitbuf"
)

// The derived hash family mixes two fixed primes, both independent of the
// rolling-hash modulus.
const (
	hashPrime1 = 4189793
	hashPrime2 = 3296731
)

// DefaultHashCount is the number of derived bit positions per value.
const DefaultHashCount = 10

// ErrInvalidCapacity indicates a bit count that is not a positive multiple
// of 8 and therefore cannot be byte-packed.
type ErrInvalidCapacity struct {
	Bits int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid bit capacity %d: must be a positive multiple of 8", e.Bits)
}

// Filter is a fixed-size Bloom filter over rolling-hash values. It is
// populated during the insertion phase of a batch match and read-only
// thereafter, so concurrent Query calls are safe once Insert is done.
type Filter struct {
	buf    *bitbuf.Buffer
	hashes int
	count  int
}

// New allocates a zeroed filter of the given bit capacity. The capacity must
// be a positive multiple of 8; hashes <= 0 selects DefaultHashCount.
func New(capacity, hashes int) (*Filter, error) {
	if capacity <= 0 || capacity%8 != 0 {
		return nil, &ErrInvalidCapacity{Bits: capacity}
	}
	if hashes <= 0 {
		hashes = DefaultHashCount
	}
	return &Filter{buf: bitbuf.New(capacity), hashes: hashes}, nil
}

// derivedHash is the i-th member of the hash family for value v. The result
// is not reduced; callers must take it modulo the bit capacity before
// addressing a bit.
func derivedHash(i int, v uint64) uint64 {
	return v%hashPrime1 + uint64(i)*(v%hashPrime2) + 1 + uint64(i)*uint64(i)
}

func (f *Filter) position(i int, v uint64) int {
	return int(derivedHash(i, v) % uint64(f.buf.Len()))
}

// Insert adds v to the set by setting one bit per derived hash.
// Inserting the same value twice leaves the bit state unchanged.
func (f *Filter) Insert(v uint64) {
	for i := 0; i < f.hashes; i++ {
		f.buf.Set(f.position(i, v))
	}
	f.count++
}

// Query reports whether v is probably in the set. It returns false as soon
// as any derived bit is unset; a false result is definitive, a true result
// may be a false positive.
func (f *Filter) Query(v uint64) bool {
	for i := 0; i < f.hashes; i++ {
		if !f.buf.Test(f.position(i, v)) {
			return false
		}
	}
	return true
}

// Capacity returns the filter size in bits.
func (f *Filter) Capacity() int { return f.buf.Len() }

// HashCount returns the number of derived hash functions.
func (f *Filter) HashCount() int { return f.hashes }

// Count returns the number of Insert calls, duplicates included.
func (f *Filter) Count() int { return f.count }

// EstimatedFalsePositiveRate returns (1 - e^(-h*n/m))^h for the current
// fill, the standard Bloom bound.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	if f.count == 0 {
		return 0
	}
	hn := float64(f.hashes) * float64(f.count)
	m := float64(f.buf.Len())
	return math.Pow(1-math.Exp(-hn/m), float64(f.hashes))
}

// Dump renders the first count bits as space-separated hex bytes for
// inspection. count must be a positive multiple of 8; counts beyond the
// capacity are clamped. The output is reproducible bit-for-bit for the same
// insertions and parameters.
func (f *Filter) Dump(count int) (string, error) {
	if count <= 0 || count%8 != 0 {
		return "", &ErrInvalidCapacity{Bits: count}
	}

	raw := f.buf.Bytes()
	n := count / 8
	if n > len(raw) {
		n = len(raw)
	}

	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", raw[i])
	}
	return sb.String(), nil
}

// equalBits reports identical bit state; it exists for idempotence tests.
func (f *Filter) equalBits(o *Filter) bool {
	return f.buf.Equal(o.buf)
}
