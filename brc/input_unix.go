//go:build unix

package brc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Load maps the file at path into memory read-only.
func Load(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open measurements: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("unable to stat measurements: %w", err)
	}
	// mmap rejects zero-length mappings.
	if fi.Size() == 0 {
		return &Input{}, nil
	}

	length, err := mapLength(fi.Size(), maxInputLen)
	if err != nil {
		return nil, err
	}

	data, err := unix.Mmap(int(f.Fd()), 0, length, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unable to mmap %s: %w", path, err)
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &Input{
		Data:  data,
		close: func() error { return unix.Munmap(data) },
	}, nil
}
