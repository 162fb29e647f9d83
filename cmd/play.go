/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/feltwork/hearts/ui"
	"github.com/feltwork/hearts/ui/screens"
)

const (
	screenWidth  = 800
	screenHeight = 800
)

var showDebug bool

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game at the windowed table",
	Long: `Open the table window and play a game of Hearts against three
computer opponents. Click cards to select them, press any key to
commit a play.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Window setup
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("Hearts")

		// Start the game loop
		prog := &ui.Program{
			M:         screens.NewTable(screenWidth, screenHeight, gameOptions()...),
			Width:     screenWidth,
			Height:    screenHeight,
			ShowDebug: showDebug,
		}
		if err := ebiten.RunGame(prog); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	playCmd.Flags().BoolVar(&showDebug, "debug", false, "show tps and fps")
	rootCmd.AddCommand(playCmd)
}
