//go:build !unix

package brc

import (
	"fmt"

	"golang.org/x/exp/mmap"
)

// Load reads the file at path through a memory mapping and copies it into
// a private buffer.
func Load(path string) (*Input, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open measurements: %w", err)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return &Input{Data: data}, nil
}
