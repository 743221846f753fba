package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/game"
	"github.com/vancomm/minesweeper-tui/internal/mines"
)

var log = logrus.New()

func createRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 2
	}

	cfg, err := config.Load(args, os.Environ())
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 2
	}

	var logOut io.Writer = io.Discard
	if cfg.Script != "" {
		logOut = os.Stderr
	}
	if err := config.SetupLogging(cfg, logOut, log, game.Log, mines.Log); err != nil {
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 2
	}

	log.WithFields(cfg.Fields()).Info("config loaded")

	g, err := mines.NewGame(cfg.Params(), createRand(cfg.Seed))
	if err != nil {
		log.WithError(err).Error("unable to create a game")
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 1
	}

	if cfg.Script != "" {
		err = playScript(os.Stdout, g, cfg.Script)
	} else {
		err = play(os.Stdout, g)
	}
	if err != nil {
		log.WithError(err).Error("exit reason")
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 1
	}
	return 0
}
