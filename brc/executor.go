package brc

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Execute aggregates every range of buf on its own goroutine and returns the
// partial tables in range order once all of them have finished. buf is shared
// read-only; each worker owns its table until Execute returns it.
func Execute(buf []byte, ranges []Range) ([]*Table, error) {
	partials := make([]*Table, len(ranges))

	var g errgroup.Group
	for i, r := range ranges {
		g.Go(func() error {
			t, err := Aggregate(buf[r.Start:r.End])
			if err != nil {
				return fmt.Errorf("range [%d, %d): %w", r.Start, r.End, err)
			}
			partials[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}
