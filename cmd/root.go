/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"log"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/feltwork/hearts/hearts"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hearts",
	Short: "The Hearts card game",
	Long: `Hearts against three computer opponents.

Pass three cards, avoid taking hearts and the queen of spades, and
stay under a hundred points. Run "hearts play" for the windowed table,
"hearts tui" for the terminal client or "hearts sim" for headless
strategy self-play.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	seed     int64
	traceDir string
)

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "deal seed, 0 for random")
	rootCmd.PersistentFlags().StringVar(&traceDir, "trace", "", "directory for game trace logs")
}

// gameOptions turns the persistent flags into game options.
func gameOptions() []hearts.Option {
	var opts []hearts.Option
	if seed != 0 {
		opts = append(opts, hearts.WithSeed(seed))
	}
	if traceDir != "" {
		t, err := hearts.NewTrace(traceDir, ulid.Make())
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, hearts.WithTrace(t))
	}
	return opts
}
