package search

// Score is the value an evaluation strategy assigns to a position. It comes
// in two flavours: an additive nudge meant to be summed with other nudges,
// and an absolute judgment (mate, forced draw) that overrides any additive
// accumulation.
type Score struct {
	value    int32
	absolute bool
}

// Additive returns a relative score that combines by summation.
// Additive(0) is the identity of Combine.
func Additive(v int32) Score {
	return Score{value: v}
}

// Absolute returns an overriding terminal judgment.
func Absolute(v int32) Score {
	return Score{value: v, absolute: true}
}

// Combine folds o into s, left to right:
//
//	additive + additive -> their sum
//	additive + absolute -> the absolute operand
//	absolute + additive -> s unchanged
//	absolute + absolute -> the operand with the smaller magnitude
//
// The least-magnitude rule keeps a forced draw (0) from being drowned out
// by a mate score when both judgments apply to the same position.
func (s Score) Combine(o Score) Score {
	switch {
	case !s.absolute && !o.absolute:
		return Additive(s.value + o.value)
	case !s.absolute:
		return o
	case !o.absolute:
		return s
	}
	if abs32(o.value) < abs32(s.value) {
		return o
	}
	return s
}

// Value collapses the score to a plain integer for ranking and pruning.
func (s Score) Value() int32 {
	return s.value
}

// IsAbsolute reports whether the score is an overriding judgment.
func (s Score) IsAbsolute() bool {
	return s.absolute
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
