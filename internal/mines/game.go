package mines

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Game is the engine state owned by a single driver: the board, the
// retained mine layout and the first-move immunity flag.
type Game struct {
	GameParams
	board     *Board
	layout    *Layout
	firstMove bool
}

func NewGame(params GameParams, r Shuffler) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newGame(params, NewLayout(params.Size(), params.MineCount, r))
}

func NewGameFromPermutation(params GameParams, perm []int) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(perm) != params.Size() {
		return nil, errors.Join(ErrInvalidParams, errors.New("permutation does not cover the grid"))
	}
	layout, err := LayoutFromPermutation(perm, params.MineCount)
	if err != nil {
		return nil, err
	}
	return newGame(params, layout)
}

func newGame(params GameParams, layout *Layout) (game *Game, err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				game, err = nil, ae
				return
			}
			panic(r)
		}
	}()

	board := NewBoard(params.Width, params.Height)
	layout.Apply(board)

	game = &Game{
		GameParams: params,
		board:      board,
		layout:     layout,
		firstMove:  true,
	}
	if board.MineCount() != params.MineCount {
		return nil, AssertionError{"laid mine count differs from params"}
	}
	return game, nil
}

func (g *Game) Board() *Board { return g.board }

// FirstMove reports whether no reveal has been attempted yet.
func (g *Game) FirstMove() bool { return g.firstMove }

func (g *Game) Layout() *Layout { return g.layout }
