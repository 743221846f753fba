package mines

import "github.com/gammazero/deque"

type Outcome uint8

const (
	NoOp Outcome = iota
	Safe
	MineHit
	Win
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Safe:
		return "safe"
	case MineHit:
		return "mine hit"
	case Win:
		return "win"
	default:
		return "!"
	}
}

// Reveal digs at x:y. Flagged and cleared cells are left alone. The first
// attempted reveal of a game never hits a mine: a mine under it is moved
// elsewhere before digging.
//
// panics [AssertionError] if x:y is out of bounds
func (g *Game) Reveal(x, y int) Outcome {
	b := g.board
	if b.StatusAt(x, y) != Unknown {
		return NoOp
	}

	if g.firstMove {
		g.firstMove = false
		g.layout.Relocate(b, x, y)
	}

	if b.CellAt(x, y).Mine {
		return MineHit
	}

	g.flood(x, y)

	if b.AllSafeCleared() {
		return Win
	}
	return Safe
}

// flood clears x:y and cascades through zero-adjacency cells. Cascading
// only follows the four orthogonal neighbours, while adjacency itself is
// counted over all eight. Returns the number of cells cleared.
func (g *Game) flood(x, y int) (cleared int) {
	b := g.board

	var work deque.Deque[int]
	work.PushBack(b.index(x, y))

	for work.Len() > 0 {
		i := work.PopBack()
		if b.cells[i].Status == Cleared {
			continue
		}
		b.cells[i].Status = Cleared
		cleared++

		if b.adj[i] != 0 {
			continue
		}
		/*
		 * A zero cell has no mined neighbours, so nothing pushed here is
		 * a mine. Flagged neighbours are pushed as well and get cleared.
		 */
		xx, yy := b.point(i)
		b.neighbors(xx, yy, false, func(nx, ny int) {
			work.PushBack(ny*b.width + nx)
		})
	}

	return cleared
}
