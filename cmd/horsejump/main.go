// horsejump is a terminal side-scroller: a horse gallops in place while
// stepped obstacles scroll in from the right, and space makes it jump.
//
// Usage:
//
//	horsejump
//
// The game asks for a difficulty from 1 to 3, then runs on the full
// terminal until the horse hits an obstacle or "q" is pressed.
// Settings are read from ~/.horsejump/config.yaml or ./configs/horsejump.yaml
// when present.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/horse-jump/internal/platform/console"
	_ "github.com/vovakirdan/horse-jump/internal/platform/tui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The viewport message has already been printed
		if !errors.Is(err, errViewport) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "horsejump",
	Short: "Jump a horse over obstacles in your terminal",
	Long: `horsejump is a terminal side-scroller. Obstacles scroll towards the
horse from the right; press space to jump over them. The score counts
survived ticks and the game speeds up every few seconds.

Controls:
  Space   - Jump
  Q       - Quit
  Ctrl+C  - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}
