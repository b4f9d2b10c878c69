//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &File{closeFn: f.Close}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{
		Data: data,
		closeFn: func() error {
			err := unix.Munmap(data)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		},
	}, nil
}
