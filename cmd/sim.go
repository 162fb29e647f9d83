/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/feltwork/hearts/hearts"
)

var (
	simGames    int
	simScript   string
	simStrategy string
	simCheck    bool
)

// simCmd represents the sim command
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless self-play games",
	Long: `Play a number of full games without a display and report wins and
average points per seat. Seat one plays the chosen strategy, the other
seats play the stock rules. A strategy script can be loaded with
--script:

    lead:    suit spades ? lowest : lowest
    follow:  under ? highest : lowest
    discard: card queen of spades ? take queen of spades : highest
    pass:    count hearts 3 ? highest : highest`,
	Run: func(cmd *cobra.Command, args []string) {
		strat, name := pickStrategy()
		var wins [4]int
		var points [4]int

		for i := 0; i < simGames; i++ {
			players := [4]*hearts.Player{
				hearts.NewPlayer(name, strat),
				hearts.NewPlayer("Sarah", hearts.ComputerStrategy{}),
				hearts.NewPlayer("Jane", hearts.ComputerStrategy{}),
				hearts.NewPlayer("Smith", hearts.ComputerStrategy{}),
			}
			opts := append(gameOptions(),
				hearts.WithPlayers(players),
				hearts.WithClock(fastClock()))
			if seed != 0 {
				opts = append(opts, hearts.WithSeed(seed+int64(i)))
			}
			g := hearts.NewGame(opts...)
			for steps := 0; !g.Over() && steps < 1_000_000; steps++ {
				g.Update()
				if simCheck {
					checkConservation(g, i, steps)
				}
			}
			if !g.Over() {
				log.Fatalf("game %d did not finish", i)
			}
			winner := g.Winner()
			for seat, p := range g.Players {
				points[seat] += p.TotalPoints
				if p == winner {
					wins[seat]++
				}
			}
		}

		fmt.Printf("%d games\n", simGames)
		names := [4]string{name, "Sarah", "Jane", "Smith"}
		for seat := range wins {
			fmt.Printf("%-8s %4d wins  %6.1f avg points\n",
				names[seat], wins[seat], float64(points[seat])/float64(simGames))
		}
	},
}

// pickStrategy resolves the seat-one strategy from the flags.
func pickStrategy() (hearts.Strategy, string) {
	if simScript != "" {
		src, err := os.ReadFile(simScript)
		if err != nil {
			log.Fatal(err)
		}
		strat, err := hearts.ParseStrategy(string(src))
		if err != nil {
			log.Fatal(err)
		}
		return strat, "Script"
	}
	switch simStrategy {
	case "tree":
		return hearts.DefaultTreeStrategy(), "Tree"
	case "rules":
		return hearts.ComputerStrategy{}, "Rules"
	}
	log.Fatalf("unknown strategy %q", simStrategy)
	return nil, ""
}

// checkConservation verifies that every card is in exactly one place
// while tricks are being played.
func checkConservation(g *hearts.Game, game, step int) {
	if g.State() != hearts.StatePlaying {
		return
	}
	total := len(g.Trick)
	for _, p := range g.Players {
		total += len(p.Hand) + len(p.Tricks)
	}
	if total != 52 {
		log.Fatalf("game %d step %d: %d cards on the table", game, step, total)
	}
}

// fastClock jumps a second per reading so trick sweeps never wait on
// wall time.
func fastClock() func() time.Time {
	now := time.Now()
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func init() {
	simCmd.Flags().IntVar(&simGames, "games", 100, "number of games to play")
	simCmd.Flags().StringVar(&simScript, "script", "", "strategy script file for seat one")
	simCmd.Flags().StringVar(&simStrategy, "strategy", "rules", "seat one strategy: rules or tree")
	simCmd.Flags().BoolVar(&simCheck, "check", false, "verify card conservation every tick")
	rootCmd.AddCommand(simCmd)
}
