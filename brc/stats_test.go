package brc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsAdd(t *testing.T) {
	s := NewStats(100)
	s.Add(-50)
	s.Add(0)

	assert.Equal(t, Stats{Min: -50, Max: 100, Sum: 50, Count: 3}, s)
	assert.Equal(t, Reading(17), s.Mean())
}

func TestStatsMerge(t *testing.T) {
	a := NewStats(10)
	a.Add(30)
	b := NewStats(-20)

	ab, ba := a, b
	ab.Merge(b)
	ba.Merge(a)

	assert.Equal(t, ab, ba)
	assert.Equal(t, Stats{Min: -20, Max: 30, Sum: 20, Count: 3}, ab)
}

func TestStatsMean(t *testing.T) {
	var tests = []struct {
		name  string
		sum   int64
		count uint64
		want  Reading
	}{
		{"exact", 30, 3, 10},
		{"exact negative", -30, 3, -10},
		{"below half", 24, 10, 2},
		{"above half", 26, 10, 3},
		{"tie rounds up", 1, 2, 1},
		{"tie rounds down", -1, 2, -1},
		{"larger tie up", 25, 10, 3},
		{"larger tie down", -25, 10, -3},
		{"small negative to zero", -1, 3, 0},
		{"negative above half", -2, 3, -1},
		{"billions", 999 * 3_000_000_000, 3_000_000_000, 999},
	}

	for _, tt := range tests {
		s := Stats{Min: -999, Max: 999, Sum: tt.sum, Count: tt.count}
		assert.Equal(t, tt.want, s.Mean(), tt.name)
	}
}
