//go:build !unix

package mmap

import "os"

func open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{Data: data, closeFn: func() error { return nil }}, nil
}
