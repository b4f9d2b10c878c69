// Package textnorm canonicalizes raw document bytes before matching:
// uppercase ASCII letters fold to lowercase, any run of whitespace collapses
// to a single space, and leading and trailing whitespace is dropped.
//
// Both documents of a match must pass through the same normalization, or
// chunk boundaries and hashes will not line up.
package textnorm

// Normalize rewrites buf in place and returns the shortened slice. The
// output never writes ahead of the read position, so aliasing is safe.
func Normalize(buf []byte) []byte {
	j := 0
	pending := false
	for _, c := range buf {
		if isSpace(c) {
			// A space is only emitted between two non-space runs.
			pending = j > 0
			continue
		}
		if pending {
			buf[j] = ' '
			j++
			pending = false
		}
		buf[j] = toLower(c)
		j++
	}
	return buf[:j]
}

// NormalizeCopy normalizes into a fresh slice, leaving src untouched.
func NormalizeCopy(src []byte) []byte {
	dst := make([]byte, len(src))
	copy(dst, src)
	return Normalize(dst)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
