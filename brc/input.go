package brc

import (
	"errors"
	"fmt"
	"io"
	"math"
)

var ErrInputTooLarge = errors.New("input does not fit in memory")

// Input is a fully resident view of a measurements file. Data must not be
// written to and is invalid after Close.
type Input struct {
	Data  []byte
	close func() error
}

// ReadInput reads r fully into memory.
func ReadInput(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}
	return &Input{Data: data}, nil
}

func (in *Input) Close() error {
	if in.close == nil {
		return nil
	}
	err := in.close()
	in.close = nil
	in.Data = nil
	return err
}

// mapLength converts a file size to a mapping length, refusing sizes that
// do not fit in limit bytes.
func mapLength(size, limit int64) (int, error) {
	if size < 0 || size > limit {
		return 0, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, size)
	}
	return int(size), nil
}

const maxInputLen = math.MaxInt
