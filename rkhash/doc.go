// Package rkhash implements the Rabin-Karp rolling polynomial hash over a
// prime field.
//
// A window hash is the polynomial
//
//	H(w) = w[0]*Base^(k-1) + w[1]*Base^(k-2) + ... + w[k-1]  (mod m)
//
// for a window w of k bytes. After the O(k) initial computation, Advance
// rolls the window by one byte in O(1), which is what makes a full document
// scan linear in the document length.
//
// The modulus is an explicit value threaded through every operation, never
// package state, so concurrent runs with different moduli cannot interfere.
package rkhash
