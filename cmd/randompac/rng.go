package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randompac/internal/prng"
)

var (
	flagRNGAlgorithm string
	flagCount        int
)

var rngCmd = &cobra.Command{
	Use:   "rng",
	Short: "Inspect a random generator",
	Long: `Print the description of a generator and its first values, as raw
integers and normalized to [0, 1). Without --rng every generator is shown.

Examples:
  randompac rng
  randompac rng --rng lcg --seed 12345
  randompac rng --rng middle-square --seed 1234 -n 20`,
	Args: cobra.NoArgs,
	Run:  runRNG,
}

func init() {
	rngCmd.Flags().StringVar(&flagRNGAlgorithm, "rng", "", "Generator: lcg, middle-square, pam, xorshift (default: all)")
	rngCmd.Flags().IntVarP(&flagCount, "count", "n", 8, "Number of values to print")
}

func runRNG(cmd *cobra.Command, args []string) {
	requested := seedFlag(newLogger("randompac-rng"))
	algs := prng.Algorithms()
	if flagRNGAlgorithm != "" {
		alg, err := prng.ParseAlgorithm(flagRNGAlgorithm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		algs = []prng.Algorithm{alg}
	}

	for i, alg := range algs {
		if i > 0 {
			fmt.Println()
		}
		info, _ := prng.Describe(alg)

		seed := requested
		if seed == 0 {
			seed = prng.DefaultSeed(alg, time.Now())
		}

		// Two generators from the same seed so both columns show the same
		// positions of the sequence.
		ints, err := prng.New(alg, seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		units, _ := prng.New(alg, seed)

		fmt.Printf("%s [%s]\n", info.Name, alg)
		fmt.Printf("  %s\n", info.Description)
		fmt.Printf("  seed %d\n\n", seed)
		fmt.Printf("  %-3s  %-20s  %s\n", "#", "Int", "Unit")
		fmt.Printf("  %-3s  %-20s  %s\n", "-", "---", "----")
		for n := range flagCount {
			fmt.Printf("  %-3d  %-20d  %.6f\n", n+1, ints.NextInt(), units.NextUnit())
		}
	}
}
