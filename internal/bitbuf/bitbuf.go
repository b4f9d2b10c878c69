// Package bitbuf provides a fixed-size, byte-packed bit buffer with
// big-endian bit addressing: bit index b lives in byte b/8, and bit 0 of a
// byte is its most significant bit. The convention is stated here once and
// reused by every caller instead of being re-derived per call site.
package bitbuf

import (
	"bytes"
	"math/bits"
)

// Buffer is an exclusively owned, fixed-size bit array.
// It is not safe for concurrent mutation.
type Buffer struct {
	nbits int
	buf   []byte
}

// New allocates a zeroed buffer holding nbits bits.
// nbits must be a non-negative multiple of 8; callers validate before allocating.
func New(nbits int) *Buffer {
	return &Buffer{nbits: nbits, buf: make([]byte, nbits/8)}
}

// Len returns the capacity in bits.
func (b *Buffer) Len() int { return b.nbits }

// Set sets bit i to 1.
func (b *Buffer) Set(i int) {
	b.buf[i>>3] |= 0x80 >> (i & 7)
}

// Test reports whether bit i is set.
func (b *Buffer) Test(i int) bool {
	return b.buf[i>>3]&(0x80>>(i&7)) != 0
}

// Count returns the number of set bits.
func (b *Buffer) Count() int {
	n := 0
	for _, c := range b.buf {
		n += bits.OnesCount8(c)
	}
	return n
}

// Bytes exposes the backing array. Callers must treat it as read-only.
func (b *Buffer) Bytes() []byte { return b.buf }

// Equal reports whether two buffers have the same length and bit state.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.nbits == o.nbits && bytes.Equal(b.buf, o.buf)
}
