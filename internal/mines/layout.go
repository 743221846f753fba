package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Shuffler is the source of randomness for mine placement.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Layout is a permutation of all cell indices. The first MineCount entries
// are the initial mines; the tail is kept so a mine can be moved off the
// first revealed cell without another draw of randomness.
type Layout struct {
	perm      []int
	mineCount int
}

func NewLayout(size, mineCount int, r Shuffler) *Layout {
	must(0 <= mineCount && mineCount < size, "cannot lay %d mines on %d cells", mineCount, size)
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	r.Shuffle(size, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return &Layout{perm: perm, mineCount: mineCount}
}

// LayoutFromPermutation wraps an explicit permutation, e.g. one recorded
// from an earlier game.
func LayoutFromPermutation(perm []int, mineCount int) (*Layout, error) {
	if mineCount < 0 || mineCount >= len(perm) {
		return nil, fmt.Errorf(
			"%w: cannot lay %d mines on %d cells",
			ErrInvalidParams, mineCount, len(perm),
		)
	}
	seen := make([]bool, len(perm))
	for pos, i := range perm {
		if i < 0 || i >= len(perm) || seen[i] {
			return nil, fmt.Errorf(
				"%w: not a permutation (index %d at position %d)",
				ErrInvalidParams, i, pos,
			)
		}
		seen[i] = true
	}
	return &Layout{perm: append([]int(nil), perm...), mineCount: mineCount}, nil
}

func (l *Layout) MineCount() int { return l.mineCount }

func (l *Layout) Permutation() []int {
	return append([]int(nil), l.perm...)
}

// Apply marks the initial mines on b and builds its adjacency grid.
func (l *Layout) Apply(b *Board) {
	must(b.Size() == len(l.perm), "layout of %d cells applied to %d cells", len(l.perm), b.Size())
	for i := range b.cells {
		b.cells[i].Mine = false
	}
	for _, i := range l.perm[:l.mineCount] {
		b.cells[i].Mine = true
	}
	b.RecomputeAdjacency()
}

// Relocate moves the mine at x:y to the first cell of the permutation tail
// that holds no mine, then rebuilds adjacency. It returns the new mine's
// index; ok is false when x:y had no mine and nothing changed.
//
// panics [AssertionError]
func (l *Layout) Relocate(b *Board, x, y int) (to int, ok bool) {
	from := b.index(x, y)
	if !b.cells[from].Mine {
		return -1, false
	}

	to = -1
	for _, i := range l.perm[l.mineCount:] {
		if i != from && !b.cells[i].Mine {
			to = i
			break
		}
	}
	must(to >= 0, "no free cell to relocate mine at %d:%d", x, y)

	b.cells[from].Mine = false
	b.cells[to].Mine = true
	b.RecomputeAdjacency()

	tx, ty := b.point(to)
	Log.WithFields(logrus.Fields{
		"from": fmt.Sprintf("%d:%d", x, y),
		"to":   fmt.Sprintf("%d:%d", tx, ty),
	}).Debug("relocated first-move mine")

	return to, true
}
