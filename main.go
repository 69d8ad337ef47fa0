package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stranded/internal/config"
	"stranded/internal/game"
	"stranded/internal/runlog"
	"stranded/internal/sim"

	"github.com/gdamore/tcell/v2"
)

func main() {
	tuningFile := flag.String("tuning", "", "Optional YAML tuning file")
	logFile := flag.String("log", "", "Write debug logs to this file")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	flag.Parse()

	if err := run(*tuningFile, *logFile, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(tuningFile, logFile string, seed int64) error {
	cfg, err := config.Load(tuningFile)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	var out io.Writer = io.Discard
	level := slog.LevelInfo
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out, level = f, slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := sim.New(cfg, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("game started", "seed", seed)
	runErr := game.New(screen, session, game.WithLogger(logger)).Run(ctx)
	if err := runlog.Save(runlog.FromSession(session, "terminal", runErr)); err != nil {
		logger.Warn("run history not saved", "error", err)
	}
	if runErr != nil {
		return runErr
	}
	logger.Info("game ended", "stats", session.Stats())
	return nil
}
