package mines

type Status uint8

const (
	Unknown Status = iota
	Flagged
	Cleared
)

func (s Status) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Flagged:
		return "flagged"
	case Cleared:
		return "cleared"
	default:
		return "!"
	}
}

type Cell struct {
	Mine   bool
	Status Status
}

// Board is the grid of cells plus the parallel adjacency grid, both
// stored row-major. Out-of-bounds access panics with [AssertionError].
type Board struct {
	width, height int
	cells         []Cell
	adj           []uint8 /* mines among the eight neighbours */
}

func NewBoard(width, height int) *Board {
	must(width > 0 && height > 0, "invalid board size %dx%d", width, height)
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		adj:    make([]uint8, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Size() int   { return len(b.cells) }

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

// panics [AssertionError]
func (b *Board) index(x, y int) int {
	must(b.InBounds(x, y), "point %d:%d is out of %dx%d board", x, y, b.width, b.height)
	return y*b.width + x
}

func (b *Board) point(i int) (x, y int) {
	return i % b.width, i / b.width
}

func (b *Board) CellAt(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b *Board) StatusAt(x, y int) Status {
	return b.cells[b.index(x, y)].Status
}

func (b *Board) AdjAt(x, y int) int {
	return int(b.adj[b.index(x, y)])
}

func (b *Board) SetStatus(x, y int, s Status) {
	b.cells[b.index(x, y)].Status = s
}

func (b *Board) SetMine(x, y int, mine bool) {
	b.cells[b.index(x, y)].Mine = mine
}

func (b *Board) MineCount() (n int) {
	for _, c := range b.cells {
		if c.Mine {
			n++
		}
	}
	return
}

func (b *Board) FlagCount() (n int) {
	for _, c := range b.cells {
		if c.Status == Flagged {
			n++
		}
	}
	return
}

func (b *Board) ClearedCount() (n int) {
	for _, c := range b.cells {
		if c.Status == Cleared {
			n++
		}
	}
	return
}

// AllSafeCleared reports whether every cell without a mine is cleared.
func (b *Board) AllSafeCleared() bool {
	for _, c := range b.cells {
		if !c.Mine && c.Status != Cleared {
			return false
		}
	}
	return true
}

// neighbors calls fn for every in-bounds neighbour of x:y, the four
// orthogonal ones only unless corners is set. The cell itself is never
// visited.
func (b *Board) neighbors(x, y int, corners bool, fn func(x, y int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !corners && dx != 0 && dy != 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if b.InBounds(xx, yy) {
				fn(xx, yy)
			}
		}
	}
}
