package snipmatch

import "bytes"

// exactMatch reports whole-document byte equality.
func exactMatch(query, target []byte) bool {
	return bytes.Equal(query, target)
}

// simpleMatch reports whether pattern occurs in target as a contiguous
// substring, by brute force. It is the ground-truth baseline the hashed
// engines are tested against.
func simpleMatch(pattern, target []byte) bool {
	if len(pattern) == 0 {
		return true
	}
	for i := 0; i+len(pattern) <= len(target); i++ {
		j := 0
		for ; j < len(pattern); j++ {
			if target[i+j] != pattern[j] {
				break
			}
		}
		if j == len(pattern) {
			return true
		}
	}
	return false
}
