package brc

// Reduce merges the partial tables into a single map. The result does not
// depend on the order of partials.
func Reduce(partials ...*Table) map[string]Stats {
	final := make(map[string]Stats)
	for _, p := range partials {
		p.Each(func(key string, stats Stats) {
			fs, ok := final[key]
			if !ok {
				final[key] = stats
				return
			}
			fs.Merge(stats)
			final[key] = fs
		})
	}
	return final
}
