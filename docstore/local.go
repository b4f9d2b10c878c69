package docstore

import (
	"context"
	"path/filepath"

	"github.com/hupe1980/snipmatch/internal/mmap"
)

// Local serves documents from a directory tree. Files are memory-mapped for
// the read; the store hands back an owned copy because matching normalizes
// its input in place.
type Local struct {
	root string
}

// NewLocal creates a Local store rooted at the given directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Fetch reads the full contents of the named file.
func (s *Local) Fetch(_ context.Context, name string) ([]byte, error) {
	m, err := mmap.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, err
	}
	defer m.Close()

	data := make([]byte, len(m.Data))
	copy(data, m.Data)
	return data, nil
}
