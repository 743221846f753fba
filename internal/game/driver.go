package game

import (
	"iter"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

var Log = logrus.New()

// Driver owns a game for its whole lifetime. It consumes one event at a
// time, moves the cursor or forwards the event to the engine, and asks the
// renderer for a frame after each of them. Once the state is terminal no
// more events are consumed.
type Driver struct {
	id       uuid.UUID
	game     *mines.Game
	renderer Renderer
	cursor   Point
	state    State
	last     Event
	log      *logrus.Entry

	reveals int
}

func NewDriver(game *mines.Game, renderer Renderer) *Driver {
	id := uuid.New()
	d := &Driver{
		id:       id,
		game:     game,
		renderer: renderer,
		state:    StateRunning,
		log: Log.WithFields(logrus.Fields{
			"game_id": id.String(),
		}),
	}
	d.log.WithFields(logrus.Fields{
		"width":  game.Width,
		"height": game.Height,
		"mines":  game.MineCount,
	}).Info("game started")
	return d
}

func (d *Driver) ID() uuid.UUID { return d.id }

func (d *Driver) State() State { return d.state }

func (d *Driver) Cursor() Point { return d.cursor }

func (d *Driver) Game() *mines.Game { return d.game }

func (d *Driver) Frame() Frame {
	return Frame{
		Board:  d.game.Board(),
		Cursor: d.cursor,
		State:  d.state,
		Event:  d.last,
	}
}

// Refresh renders the current frame without consuming an event, e.g. for
// the first frame or after the terminal was resized.
func (d *Driver) Refresh() {
	if err := d.renderer.Render(d.Frame()); err != nil {
		d.log.WithError(err).Debug("frame skipped")
	}
}

// Handle applies a single event and renders the result. Events that
// arrive after the game ended are dropped.
func (d *Driver) Handle(e Event) State {
	if d.state.Terminal() {
		return d.state
	}
	d.last = e

	w, h := d.game.Width, d.game.Height
	switch e {
	case MoveUp:
		d.cursor.Y = max(d.cursor.Y-1, 0)
	case MoveDown:
		d.cursor.Y = min(d.cursor.Y+1, h-1)
	case MoveLeft:
		d.cursor.X = max(d.cursor.X-1, 0)
	case MoveRight:
		d.cursor.X = min(d.cursor.X+1, w-1)
	case Reveal:
		d.reveal()
	case ToggleFlag:
		d.game.ToggleFlag(d.cursor.X, d.cursor.Y)
	case Quit:
		d.finish(StateQuit)
	}

	d.Refresh()
	return d.state
}

// Run feeds events to [Driver.Handle] until the sequence ends or the game
// reaches a terminal state.
func (d *Driver) Run(events iter.Seq[Event]) State {
	for e := range events {
		if d.Handle(e).Terminal() {
			break
		}
	}
	return d.state
}

func (d *Driver) reveal() {
	first := d.game.FirstMove()
	outcome := d.game.Reveal(d.cursor.X, d.cursor.Y)
	if outcome != mines.NoOp {
		d.reveals++
	}

	d.log.WithFields(logrus.Fields{
		"x":       d.cursor.X,
		"y":       d.cursor.Y,
		"first":   first,
		"outcome": outcome.String(),
	}).Debug("reveal")

	switch outcome {
	case mines.MineHit:
		d.finish(StateLost)
	case mines.Win:
		d.finish(StateWon)
	}
}

func (d *Driver) finish(state State) {
	d.state = state
	board := d.game.Board()
	d.log.WithFields(logrus.Fields{
		"state":   state.String(),
		"reveals": d.reveals,
		"cleared": board.ClearedCount(),
		"flags":   board.FlagCount(),
	}).Info("game ended")
	if state == StateLost {
		d.log.Debug("mine layout:\n" + board.MineMap())
	}
}
