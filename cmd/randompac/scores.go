package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/randompac/internal/platform/tui"
	"github.com/vovakirdan/randompac/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show top sessions or a player profile",
	Long: `Without arguments, display the best sessions of all players.
With a player name, display that player's profile and recent sessions.

Examples:
  randompac scores
  randompac scores ana
  randompac scores ana --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive scoreboard",
	Long: `Browse top sessions and player profiles in a full-screen table.

Controls:
  Up/Down   - Scroll
  Tab       - Switch between sessions and players
  Q/Esc     - Quit`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every session of the player")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printTopSessions(store)
		return
	}

	player := args[0]
	if flagClear {
		n, err := store.ClearPlayer(player)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d sessions of %s\n", n, player)
		return
	}
	printProfile(store, player)
}

func printTopSessions(store *storage.Store) {
	sessions, err := store.TopSessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - RandomPac")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'randompac play' to set the first high score!")
		return
	}

	printSessions(sessions, true)
}

func printProfile(store *storage.Store, player string) {
	stats, err := store.PlayerStats(player)
	if errors.Is(err, storage.ErrPlayerNotFound) {
		fmt.Printf("No sessions recorded for %s.\n", player)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving profile: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Profile - %s\n\n", stats.Player)
	fmt.Printf("  Games:          %d (%d won)\n", stats.Games, stats.Wins)
	fmt.Printf("  Best score:     %d\n", stats.BestScore)
	fmt.Printf("  Time played:    %s\n", tui.FormatDuration(stats.TotalTime))
	fmt.Printf("  Best generator: %s\n", stats.BestAlgorithm)
	fmt.Printf("  Best tier:      %s\n", stats.BestDifficulty)
	fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))

	recent, err := store.RecentSessions(player, flagLimit)
	if err != nil || len(recent) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent sessions:")
	printSessions(recent, false)
}

func printSessions(sessions []storage.SessionRecord, withPlayer bool) {
	fmt.Printf("  %-4s  %-12s  %-7s  %-6s  %-13s  %-8s  %s\n", "Rank", "Player", "Score", "Result", "Generator", "Tier", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-6s  %-13s  %-8s  %s\n", "----", "------", "-----", "------", "---------", "----", "----")
	for i, s := range sessions {
		player := s.Player
		if !withPlayer {
			player = "-"
		}
		result := "lost"
		if s.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-12s  %-7d  %-6s  %-13s  %-8s  %s\n",
			i+1, player, s.Score, result, s.Algorithm, s.Difficulty, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if !withPlayer {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", sessions[0].Score)
}

func runBoard(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
