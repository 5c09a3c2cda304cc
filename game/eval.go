package game

// EvaluateMargin compares disc counts, giving a score between -1 and 1 from side's perspective.
func EvaluateMargin(m ReadOnly, side Side) float64 {
	own, err := m.Score(side)
	if err != nil {
		return 0
	}
	opp, err := m.Score(side.Opponent())
	if err != nil {
		return 0
	}
	return normalize(float64(own), float64(opp))
}

// EvaluateMobility compares the number of legal moves available to each side.
func EvaluateMobility(m ReadOnly, side Side) float64 {
	b := m.Board()
	return normalize(float64(len(b.LegalMoves(side))), float64(len(b.LegalMoves(side.Opponent()))))
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
