package mines

// ToggleFlag switches x:y between unknown and flagged. Cleared cells are
// left as they are. It returns the resulting status.
//
// panics [AssertionError] if x:y is out of bounds
func (g *Game) ToggleFlag(x, y int) Status {
	b := g.board
	switch b.StatusAt(x, y) {
	case Unknown:
		b.SetStatus(x, y, Flagged)
	case Flagged:
		b.SetStatus(x, y, Unknown)
	}
	return b.StatusAt(x, y)
}
