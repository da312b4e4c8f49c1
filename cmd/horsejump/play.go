package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/horse-jump/internal/config"
	"github.com/vovakirdan/horse-jump/internal/core"
	"github.com/vovakirdan/horse-jump/internal/games/horse"
	"github.com/vovakirdan/horse-jump/internal/platform/tui"
	"github.com/vovakirdan/horse-jump/internal/registry"
)

// readPause gives the player time to read the chosen difficulty.
const readPause = time.Second

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// errViewport is returned after the too-small message has been printed.
var errViewport = errors.New("terminal too small")

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	answer, err := tui.RunPrompt(ctx)
	if errors.Is(err, tui.ErrPromptCancelled) {
		logger.Info("prompt cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	difficulty := config.ParseDifficulty(answer, rng)
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("You chose difficulty: %d", difficulty)))
	fmt.Fprintln(out, `To exit the game, press "q"`)
	if !sleepCtx(ctx, readPause) {
		return nil
	}

	width, height := viewportSize()
	if err := horse.CheckViewport(width, height, cfg.Viewport); err != nil {
		logger.Error("viewport rejected", "err", err)
		fmt.Fprintln(out, errorStyle.Render(viewportMessage(err)))
		return errViewport
	}

	game := horse.New(cfg, difficulty, rng, core.SystemClock{}, logger)
	if err := game.Setup(width, height); err != nil {
		return fmt.Errorf("set up game: %w", err)
	}

	backend, err := registry.Create(cfg.Terminal.Backend, registry.Options{
		Logger: logger,
		Clock:  core.SystemClock{},
		Width:  width,
		Height: height,
	})
	if err != nil {
		return err
	}

	state, err := backend.Run(ctx, game)
	if err != nil {
		return err
	}

	printScore(out, state.Score)
	return nil
}

// viewportSize queries the terminal once, falling back to 80x24 when
// stdout is not a terminal.
func viewportSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func viewportMessage(err error) string {
	if errors.Is(err, horse.ErrViewportTooShort) {
		return "Please increase the console height and try again"
	}
	return "Please increase the console width and try again"
}

func printScore(w io.Writer, score int) {
	fmt.Fprintln(w, scoreStyle.Render(fmt.Sprintf("Game is over! Your score is: %d", score)))
	fmt.Fprintln(w, "Thanks for playing!")
}

// sleepCtx waits for d and reports false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
