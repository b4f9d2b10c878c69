// Package docstore resolves document names to their raw bytes.
//
// The matching core only ever sees in-memory byte sequences; stores cover
// where those bytes come from (memory, local files, object storage) and how
// they are packaged (optionally compressed).
package docstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a document does not exist.
//
// Implementations return an error that satisfies errors.Is(err, ErrNotFound).
// The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// Store resolves a document name to its full contents.
//
// The returned slice is owned by the caller; normalization rewrites document
// bytes in place, so implementations must not retain or share it.
type Store interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}
