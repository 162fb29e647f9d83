/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/feltwork/hearts/cli"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play a game in the terminal",
	Long: `Play Hearts in the terminal. Move the cursor with the arrow keys,
select cards with space and commit with enter.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.Run(gameOptions()...); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
