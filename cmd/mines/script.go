package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/vancomm/minesweeper-tui/internal/game"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/tui"
)

// playScript feeds a fixed list of events to the driver and prints the
// last frame and the final state. The cursor starts at 0:0 as usual.
func playScript(out io.Writer, g *mines.Game, script string) error {
	events, err := game.ParseEvents(script)
	if err != nil {
		return err
	}

	renderer := tui.NewRenderer()
	driver := game.NewDriver(g, renderer)
	driver.Refresh()
	state := driver.Run(slices.Values(events))

	_, err = fmt.Fprintf(out, "%s\nstate: %s\n", renderer.Plain(), state)
	return err
}
