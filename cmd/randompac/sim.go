package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randompac/internal/games/randompac"
	pac "github.com/vovakirdan/randompac/internal/games/randompac/core"
	"github.com/vovakirdan/randompac/internal/platform/tui"
	"github.com/vovakirdan/randompac/internal/storage"
)

var (
	flagTicks     int
	flagVerbose   bool
	flagSave      bool
	flagSimPlayer string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Run a session without a terminal UI. The player receives no input and
keeps its spawn direction, so the outcome depends only on the level, the
difficulty and the ghost generator with its seed. Two runs with the same
flags print the same result when the seed is fixed by --seed or rng.seed
in the config; otherwise the clock supplies a new seed each run.

Examples:
  randompac sim --rng lcg --seed 12345
  randompac sim --rng middle-square --seed 1234 --ticks 20000 -v
  randompac sim --rng xorshift --seed 7 --save --player bot`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addSessionFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every event")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Store the outcome in the sessions database")
	simCmd.Flags().StringVar(&flagSimPlayer, "player", "sim", "Player name used with --save")
}

func runSim(cmd *cobra.Command, args []string) {
	applySessionFlags()
	logger := newLogger("randompac-sim")

	session, warnings, err := randompac.NewSession(randompac.CurrentOptions(seedFlag(logger)))
	for _, w := range warnings {
		logger.Warn("using defaults", "error", w)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	dt := float64(time.Second/time.Duration(fps)) / float64(time.Millisecond)

	sim := session.Sim
	ticks := 0
	for ticks < flagTicks && !sim.Over() {
		res := sim.Step(pac.Input{}, dt)
		ticks++
		if flagVerbose {
			for _, ev := range res.Events {
				logger.Info(ev.Kind.String(), "t", res.Now, "tile", ev.Tile, "points", ev.Points, "ghost", ev.Ghost, "score", sim.Score())
			}
		}
	}

	outcome := sim.Outcome()
	fmt.Printf("Level:      %s\n", outcome.Level)
	fmt.Printf("Difficulty: %s\n", outcome.Difficulty)
	fmt.Printf("Generator:  %s (seed %d)\n", outcome.Algorithm, outcome.Seed)
	fmt.Printf("Ticks:      %d\n", ticks)
	fmt.Printf("Duration:   %s\n", tui.FormatDuration(outcome.Duration))
	fmt.Printf("Score:      %d\n", outcome.Score)
	fmt.Printf("Lives:      %d\n", sim.Lives())
	fmt.Printf("Pellets:    %d left\n", sim.Grid().Remaining())
	switch {
	case outcome.Won:
		fmt.Println("Result:     won")
	case sim.Over():
		fmt.Println("Result:     game over")
	default:
		fmt.Println("Result:     unfinished")
	}

	if !flagSave || !sim.Over() {
		return
	}
	id, err := saveSimOutcome(flagSimPlayer, outcome)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved:      %s\n", id)
}

// saveSimOutcome stores a finished headless session. The store is closed
// before returning so callers may exit on error.
func saveSimOutcome(player string, outcome pac.Outcome) (string, error) {
	store, err := openStore()
	if err != nil {
		return "", fmt.Errorf("opening sessions database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveSession(storage.NewRecord(player, randompac.ToPlatformOutcome(outcome)))
	if err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return id, nil
}
