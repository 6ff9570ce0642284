package brc

import "github.com/cespare/xxhash/v2"

const defaultTableSize = 1 << 10

type slot struct {
	hash  uint64
	key   string
	stats Stats
	used  bool
}

// Table is an open-addressed hash table from station name to Stats, keyed by
// xxhash. It is owned by a single goroutine and never locked.
type Table struct {
	slots []slot
	mask  uint64
	size  int
}

func NewTable() *Table {
	return newTableSize(defaultTableSize)
}

// newTableSize rounds n up to a power of two.
func newTableSize(n int) *Table {
	c := 1
	for c < n {
		c <<= 1
	}
	return &Table{
		slots: make([]slot, c),
		mask:  uint64(c - 1),
	}
}

// Add folds r into the entry for key. The key is only copied the first time
// it is seen; after that the entry is updated in place.
func (t *Table) Add(key []byte, r Reading) {
	h := xxhash.Sum64(key)
	i := h & t.mask
	for {
		s := &t.slots[i]
		if !s.used {
			break
		}
		if s.hash == h && s.key == string(key) {
			s.stats.Add(r)
			return
		}
		i = (i + 1) & t.mask
	}
	t.insert(h, string(key), NewStats(r))
}

func (t *Table) get(key string) (Stats, bool) {
	h := xxhash.Sum64String(key)
	for i := h & t.mask; t.slots[i].used; i = (i + 1) & t.mask {
		if t.slots[i].hash == h && t.slots[i].key == key {
			return t.slots[i].stats, true
		}
	}
	return Stats{}, false
}

func (t *Table) Len() int {
	return t.size
}

// Each calls f for every entry in unspecified order.
func (t *Table) Each(f func(key string, stats Stats)) {
	for i := range t.slots {
		if t.slots[i].used {
			f(t.slots[i].key, t.slots[i].stats)
		}
	}
}

func (t *Table) insert(h uint64, key string, stats Stats) {
	if 2*(t.size+1) > len(t.slots) {
		t.grow()
	}
	i := h & t.mask
	for t.slots[i].used {
		i = (i + 1) & t.mask
	}
	t.slots[i] = slot{hash: h, key: key, stats: stats, used: true}
	t.size++
}

func (t *Table) grow() {
	old := t.slots
	t.slots = make([]slot, 2*len(old))
	t.mask = uint64(len(t.slots) - 1)
	for _, s := range old {
		if !s.used {
			continue
		}
		i := s.hash & t.mask
		for t.slots[i].used {
			i = (i + 1) & t.mask
		}
		t.slots[i] = s
	}
}
