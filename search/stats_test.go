package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsReset(t *testing.T) {
	s := &Stats{}
	s.Reset(3)
	s.cutoff(0)
	s.cutoff(2)
	s.cutoff(2)
	assert.Equal(t, []int{1, 0, 2}, s.Cutoffs)
	assert.Equal(t, 3, s.TotalCutoffs())

	s.Reset(3)
	if diff := cmp.Diff([]int{0, 0, 0}, s.Cutoffs); diff != "" {
		t.Errorf("cutoffs not cleared (-want +got):\n%s", diff)
	}
}

func TestStatsResetGrowsAndShrinks(t *testing.T) {
	s := &Stats{}
	s.Reset(2)
	assert.Len(t, s.Cutoffs, 2)
	s.Reset(5)
	assert.Len(t, s.Cutoffs, 5)
	s.Reset(1)
	assert.Len(t, s.Cutoffs, 1)
	assert.Equal(t, 0, s.TotalCutoffs())
}

func TestStatsOutOfRangeCutoffIgnored(t *testing.T) {
	s := &Stats{}
	s.Reset(2)
	assert.NotPanics(t, func() {
		s.cutoff(-1)
		s.cutoff(2)
	})
	assert.Equal(t, 0, s.TotalCutoffs())
}

// Diagnostics are observational: searching the same position twice must
// pick the same move no matter what the counters held before.
func TestStatsDoNotInfluenceChoice(t *testing.T) {
	pos := fromFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	m := NewMinimax(chess.White, Config{Depth: 2})

	first := m.Search(pos)
	require.NotNil(t, first)
	statsAfterFirst := append([]int(nil), m.Stats().Cutoffs...)

	second := m.Search(pos)
	require.NotNil(t, second)
	assert.Equal(t, first.String(), second.String())
	if diff := cmp.Diff(statsAfterFirst, m.Stats().Cutoffs); diff != "" {
		t.Errorf("identical searches produced different diagnostics (-first +second):\n%s", diff)
	}
}
