package rkhash

import "fmt"

// ErrInvalidLength indicates a sequence too short for the requested window.
type ErrInvalidLength struct {
	Have int
	Need int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("sequence of %d bytes is shorter than window length %d", e.Have, e.Need)
}

// Window maintains the rolling hash of a sliding k-byte window over a byte
// sequence. A Window is created once per scan and mutated in place by
// Advance; it is not safe for concurrent use.
type Window struct {
	hash    uint64
	baseExp uint64 // Base^(k-1) mod m, the weight of the outgoing byte
	k       int
	mod     Modulus
}

// New computes the hash of seq[0:k] and precomputes Base^(k-1).
// It fails with ErrInvalidLength when the sequence is shorter than k, and
// with ErrInvalidModulus when the modulus is out of range.
func New(seq []byte, k int, mod Modulus) (*Window, error) {
	if err := mod.Validate(); err != nil {
		return nil, err
	}
	if k <= 0 || len(seq) < k {
		return nil, &ErrInvalidLength{Have: len(seq), Need: k}
	}

	w := &Window{k: k, mod: mod, baseExp: 1}
	for i := 0; i < k-1; i++ {
		w.baseExp = mod.Mul(w.baseExp, Base)
	}
	for _, c := range seq[:k] {
		w.hash = mod.Add(mod.Mul(w.hash, Base), uint64(c))
	}

	return w, nil
}

// Sum returns the hash of the current window.
func (w *Window) Sum() uint64 { return w.hash }

// Len returns the window length k.
func (w *Window) Len() int { return w.k }

// Advance rolls the window one position: the outgoing byte loses its
// high-order contribution, the remainder shifts up by one base power, and
// the incoming byte enters at the low end.
//
// The subtraction is fully normalized into [0, m) before the multiply; an
// unnormalized intermediate feeding the multiply is the classic rolling-hash
// bug.
func (w *Window) Advance(outgoing, incoming byte) {
	h := w.mod.Sub(w.hash, w.mod.Mul(uint64(outgoing), w.baseExp))
	w.hash = w.mod.Add(w.mod.Mul(h, Base), uint64(incoming))
}

// Hash computes the full-window hash of chunk in one shot. It is the
// non-rolling entry point used to hash query chunks.
func Hash(chunk []byte, mod Modulus) (uint64, error) {
	w, err := New(chunk, len(chunk), mod)
	if err != nil {
		return 0, err
	}
	return w.Sum(), nil
}
