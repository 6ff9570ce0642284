package brc

// Stats accumulates the readings of a single station. The zero value is not
// meaningful; use NewStats so that Count is always at least one.
type Stats struct {
	Min   Reading
	Max   Reading
	Sum   int64
	Count uint64
}

func NewStats(r Reading) Stats {
	return Stats{
		Min:   r,
		Max:   r,
		Sum:   int64(r),
		Count: 1,
	}
}

func (s *Stats) Add(r Reading) {
	s.Min = min(s.Min, r)
	s.Max = max(s.Max, r)
	s.Sum += int64(r)
	s.Count++
}

// Merge folds o into s. It is associative and commutative.
func (s *Stats) Merge(o Stats) {
	s.Min = min(s.Min, o.Min)
	s.Max = max(s.Max, o.Max)
	s.Sum += o.Sum
	s.Count += o.Count
}

// Mean returns Sum/Count rounded half away from zero, so a mean of 0.05
// reports 0.1 and a mean of -0.05 reports -0.1.
func (s Stats) Mean() Reading {
	n := int64(s.Count)
	q, rem := s.Sum/n, s.Sum%n
	if rem < 0 {
		rem = -rem
	}
	if rem >= n-rem {
		if s.Sum < 0 {
			q--
		} else {
			q++
		}
	}
	return Reading(q)
}
