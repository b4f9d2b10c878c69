package snipmatch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/snipmatch/bloom"
	"github.com/hupe1980/snipmatch/rkhash"
)

var (
	// ErrInvalidChunkSize is returned when the configured chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidAlgorithm is returned for an unknown algorithm selection.
	ErrInvalidAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidLength unifies length preconditions from the hashing layer.
	ErrInvalidLength = errors.New("sequence shorter than window length")

	// ErrInvalidCapacity unifies Bloom capacity violations.
	ErrInvalidCapacity = errors.New("bloom bit capacity must be a positive multiple of 8")

	// ErrInvalidModulus unifies modulus range violations.
	ErrInvalidModulus = errors.New("modulus outside the supported range")
)

// translateError maps package-level error types onto the root sentinels so
// callers can test with errors.Is without importing the subpackages. The
// original error stays reachable via errors.Unwrap / errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var il *rkhash.ErrInvalidLength
	if errors.As(err, &il) {
		return fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}

	var im *rkhash.ErrInvalidModulus
	if errors.As(err, &im) {
		return fmt.Errorf("%w: %w", ErrInvalidModulus, err)
	}

	var ic *bloom.ErrInvalidCapacity
	if errors.As(err, &ic) {
		return fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}

	return err
}
