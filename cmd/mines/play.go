package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-tui/internal/game"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/tui"
)

var errNotATerminal = errors.New("stdout is not a terminal, use --script to play without one")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// play runs the interactive game on the alternate screen. The terminal is
// restored on every exit path, after which the final frame is printed to
// out so the result stays visible.
func play(out io.Writer, g *mines.Game) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotATerminal
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	renderer := tui.NewRenderer()
	driver := game.NewDriver(g, renderer)
	program := tea.NewProgram(
		tui.NewModel(driver, renderer),
		tea.WithAltScreen(),
		tea.WithOutput(out),
	)

	var final tea.Model
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer stop()
		var err error
		final, err = program.Run()
		return err
	})
	eg.Go(func() error {
		<-egCtx.Done()
		program.Quit()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("terminal program failed: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		fmt.Fprintln(out, m.FinalFrame())
	}
	if !driver.State().Terminal() {
		log.WithField("game_id", driver.ID().String()).Info("interrupted")
	}
	return nil
}
