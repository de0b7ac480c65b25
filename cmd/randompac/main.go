// randompac is a terminal Pac-Man whose ghosts are driven by classic
// pseudo-random generators.
//
// Usage:
//
//	randompac play           - Play in the terminal
//	randompac sim            - Run a headless, seeded session
//	randompac rng            - Inspect a random generator
//	randompac levels [path]  - Validate or list level files
//	randompac scores [name]  - Show top sessions or a player profile
//	randompac board          - Interactive scoreboard
//	randompac serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a custom config file
//	--db <path>      - Set database path (default: from config)
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/randompac/internal/config"
	"github.com/vovakirdan/randompac/internal/games/randompac"
	"github.com/vovakirdan/randompac/internal/storage"

)

var (
	// Global flags
	flagFPS    int
	flagSeed   string
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "randompac",
	Short: "RandomPac - Pac-Man with pluggable random ghosts",
	Long: `RandomPac is a terminal maze game. Ghosts pick their turns with one of
four classic pseudo-random generators, so every run can be replayed from
its algorithm and seed.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless session and print the outcome
  rng      - Print the first values of a generator
  levels   - Validate a level file or list a level directory
  scores   - Show top sessions or a player profile
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play

Examples:
  randompac play --rng xorshift --difficulty hard
  randompac sim --rng lcg --seed 12345 --ticks 5000
  randompac rng --rng middle-square --seed 1234 -n 10
  randompac serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "RNG seed (empty or invalid = from config, then from the clock)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to sessions database (default: storage.path from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(rngCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the CLI logger.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// seedFlag resolves --seed. Invalid text is logged and replaced by 0, which
// selects the configured seed or the clock.
func seedFlag(logger *log.Logger) uint64 {
	seed, err := randompac.SeedFromText(flagSeed)
	if err != nil {
		logger.Warn("invalid seed, using default", "seed", flagSeed, "error", err)
	}
	return seed
}

// dbPath returns --db, or the storage path of the configuration.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	cfg, err := config.LoadRandomPac(flagConfig)
	if err != nil || cfg.Storage.Path == "" {
		return config.DefaultRandomPacConfig().Storage.Path
	}
	return cfg.Storage.Path
}

// openStore opens the sessions database.
func openStore() (*storage.Store, error) {
	return storage.Open(dbPath())
}

// defaultPlayer returns the name of the local user.
func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
