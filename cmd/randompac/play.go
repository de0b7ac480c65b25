package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/randompac/internal/core"
	"github.com/vovakirdan/randompac/internal/games/randompac"
	"github.com/vovakirdan/randompac/internal/platform/tui"
	"github.com/vovakirdan/randompac/internal/registry"
)

var (
	flagDifficulty string
	flagAlgorithm  string
	flagLevel      string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play RandomPac",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/hjkl - Move
  P/Esc/Space      - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty tiers:
  classic - player 3.2, ghosts 3.0
  hard    - player 3.8, ghosts 3.6
  extreme - player 4.4, ghosts 4.2

Generators:
  lcg, middle-square, pam, xorshift

Examples:
  randompac play
  randompac play --rng xorshift --seed 42
  randompac play --difficulty extreme --level ./levels/cross.yaml
  randompac play --player ana --config ./my-randompac.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addSessionFlags(playCmd)
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the scoreboard (default: current user)")
}

// addSessionFlags registers the flags that select a session.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty tier: classic, hard, extreme")
	cmd.Flags().StringVar(&flagAlgorithm, "rng", "", "Ghost generator: lcg, middle-square, pam, xorshift")
	cmd.Flags().StringVar(&flagLevel, "level", "", "Level: classic, a level ID or a level file")
}

// applySessionFlags passes the selected options to the game package.
func applySessionFlags() {
	randompac.SetConfigPath(flagConfig)
	randompac.SetDifficulty(flagDifficulty)
	randompac.SetAlgorithm(flagAlgorithm)
	randompac.SetLevel(flagLevel)
}

func runPlay(cmd *cobra.Command, args []string) {
	applySessionFlags()
	logger := newLogger("randompac")

	player := flagPlayer
	if player == "" {
		player = defaultPlayer()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seedFlag(logger),
		Player:   player,
	}

	game, err := registry.Create(randompac.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, player, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if reporter, ok := game.(registry.OutcomeReporter); ok {
		if outcome, over := reporter.Outcome(); over {
			fmt.Printf("%s: %d points in %s (%s, seed %d)\n",
				resultWord(outcome.Won), outcome.Score, tui.FormatDuration(outcome.Duration), outcome.Algorithm, outcome.Seed)
		}
	}
}

func resultWord(won bool) string {
	if won {
		return "Won"
	}
	return "Game over"
}
