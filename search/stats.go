package search

// Stats collects per-search diagnostics: how many sibling branches were
// pruned at each remaining depth, and the score of the last chosen move.
// Purely observational; nothing in the search reads it back. One Stats
// value belongs to one searcher instance and is never shared.
type Stats struct {
	// Cutoffs[d] counts prunes at nodes with d plies left to search.
	Cutoffs []int
	// LastScore is the root score of the most recent completed search.
	LastScore int32
}

// Reset clears the cutoff counters for a search of the given depth. Called
// at the start of every top-level search.
func (s *Stats) Reset(depth int) {
	if cap(s.Cutoffs) < depth {
		s.Cutoffs = make([]int, depth)
		return
	}
	s.Cutoffs = s.Cutoffs[:depth]
	for i := range s.Cutoffs {
		s.Cutoffs[i] = 0
	}
}

func (s *Stats) cutoff(depth int) {
	if depth >= 0 && depth < len(s.Cutoffs) {
		s.Cutoffs[depth]++
	}
}

// TotalCutoffs sums the cutoff counters across all depths.
func (s *Stats) TotalCutoffs() int {
	var total int
	for _, n := range s.Cutoffs {
		total += n
	}
	return total
}
