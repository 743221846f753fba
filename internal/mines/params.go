package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Size() int {
	return p.Width * p.Height
}

// Seed renders the params as "W:H:M", the format [ParseParams] accepts.
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseParams(seed string) (*GameParams, error) {
	if parts := strings.Split(seed, ":"); len(parts) != 3 {
		return nil, fmt.Errorf(
			`%w: malformed params seed (seed = "%s", fields = %d)`,
			ErrInvalidParams, seed, len(parts),
		)
	}
	p := &GameParams{}
	var rest string
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed+" .", "%d %d %d %s", &p.Width, &p.Height, &p.MineCount, &rest)
	if n != 4 || rest != "." || err != nil {
		return nil, fmt.Errorf(
			`%w: malformed params seed (seed = "%s", n = %d, err = %v)`,
			ErrInvalidParams, seed, n, err,
		)
	}
	return p, nil
}

// MaxCells bounds the grid size accepted by [GameParams.Validate].
const MaxCells = 1 << 20

// Validate checks the engine constraints: a non-empty grid of at most
// [MaxCells] cells and 0 <= MineCount < Width*Height.
func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf(
			"%w: grid must be at least 1x1 (got %dx%d)",
			ErrInvalidParams, p.Width, p.Height,
		)
	}
	if p.Width > MaxCells || p.Height > MaxCells || p.Size() > MaxCells {
		return fmt.Errorf(
			"%w: grid must have at most %d cells (got %dx%d)",
			ErrInvalidParams, MaxCells, p.Width, p.Height,
		)
	}
	if p.MineCount < 0 || p.MineCount >= p.Size() {
		return fmt.Errorf(
			"%w: mine count must be in [0, %d) (got %d)",
			ErrInvalidParams, p.Size(), p.MineCount,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
