package docstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Decompressing wraps a Store and transparently decodes documents whose
// names end in ".zst" (zstd) or ".lz4" (LZ4 frame). Other names pass
// through untouched.
type Decompressing struct {
	inner Store
}

// NewDecompressing wraps inner with suffix-based decompression.
func NewDecompressing(inner Store) *Decompressing {
	return &Decompressing{inner: inner}
}

// Fetch retrieves and, when the suffix asks for it, decompresses a document.
func (s *Decompressing) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(name, ".zst"):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		plain, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", name, err)
		}
		return plain, nil

	case strings.HasSuffix(name, ".lz4"):
		plain, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", name, err)
		}
		return plain, nil

	default:
		return data, nil
	}
}
