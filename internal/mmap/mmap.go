// Package mmap maps files into memory read-only where the platform supports
// it, falling back to a plain read elsewhere. Whole documents are consumed
// sequentially, so the mapping only saves the copy for large corpora.
package mmap

// File is a read-only view of a file's contents.
type File struct {
	// Data holds the full file contents. Valid until Close.
	Data []byte

	closeFn func() error
}

// Open opens the file at path.
func Open(path string) (*File, error) {
	return open(path)
}

// Close releases the mapping (or buffer) and the underlying file.
func (m *File) Close() error {
	if m == nil || m.closeFn == nil {
		return nil
	}
	err := m.closeFn()
	m.Data, m.closeFn = nil, nil
	return err
}
