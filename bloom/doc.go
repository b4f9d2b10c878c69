// Package bloom implements the byte-packed probabilistic set behind the
// batch matcher.
//
// A Filter answers membership questions about rolling-hash values with one
// asymmetry: a negative answer is definitive, a positive answer is only
// probable. That trade buys a single linear scan of the target document for
// an entire batch of query chunks:
//
//   - "not present" -> the window matches no query chunk, guaranteed
//   - "maybe present" -> counted as a probable match (false positives possible)
//
// Bits are addressed big-endian within each byte: bit index b maps to byte
// b/8, and bit 0 of a byte is its most significant bit. Deletion is not
// supported; clearing a bit could erase other members, and the counting
// machinery that would make removal safe is deliberately absent.
package bloom
