package hearts

import (
	"testing"
	"time"
)

// fastClock jumps a second per reading so trick sweeps resolve on the
// next tick instead of waiting on wall time.
func fastClock() func() time.Time {
	now := time.Now()
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func autoGame(seed int64) *Game {
	return NewGame(
		WithPlayers([4]*Player{
			NewPlayer("a", ComputerStrategy{}),
			NewPlayer("b", ComputerStrategy{}),
			NewPlayer("c", ComputerStrategy{}),
			NewPlayer("d", ComputerStrategy{}),
		}),
		WithSeed(seed),
		WithClock(fastClock()),
	)
}

func TestSelfPlayFinishes(t *testing.T) {
	g := autoGame(7)
	for steps := 0; !g.Over() && steps < 1_000_000; steps++ {
		g.Update()
	}
	if !g.Over() {
		t.Fatalf("Game did not finish")
	}
	busted := false
	for _, p := range g.Players {
		if p.TotalPoints >= 100 {
			busted = true
		}
	}
	if !busted {
		t.Fatalf("Game ended with every total under 100")
	}
	winner := g.Winner()
	if winner == nil {
		t.Fatalf("No winner after game over")
	}
	for _, p := range g.Players {
		if p.TotalPoints < winner.TotalPoints {
			t.Fatalf("%s has fewer points than the winner", p.Name)
		}
	}
}

func TestRoundPointsAlwaysSumToTwentySix(t *testing.T) {
	g := autoGame(11)
	for steps := 0; !g.Over() && steps < 1_000_000; steps++ {
		g.Update()
	}
	rounds := len(g.Players[0].RoundPoints)
	if rounds == 0 {
		t.Fatalf("No rounds recorded")
	}
	for r := 0; r < rounds; r++ {
		sum := 0
		for _, p := range g.Players {
			sum += p.RoundPoints[r]
		}
		// 26 normally, 78 when someone shot the moon.
		if sum != 26 && sum != 78 {
			t.Fatalf("Round %d points sum to %d", r, sum)
		}
	}
}

func TestCardConservation(t *testing.T) {
	g := autoGame(3)
	for steps := 0; steps < 2000; steps++ {
		g.Update()
		if g.State() != StatePlaying {
			continue
		}
		total := len(g.Trick)
		for _, p := range g.Players {
			total += len(p.Hand) + len(p.Tricks)
		}
		if total != 52 {
			t.Fatalf("Step %d: %d cards on the table", steps, total)
		}
	}
}

func TestPassTargets(t *testing.T) {
	g := autoGame(1)
	cases := []struct {
		order PassingOrder
		seat  int
		want  int
	}{
		{PassLeft, 0, 1},
		{PassLeft, 3, 0},
		{PassRight, 0, 3},
		{PassStraight, 0, 2},
		{PassNone, 2, 2},
	}
	for _, tc := range cases {
		g.Order = tc.order
		if got := g.passTarget(tc.seat); got != tc.want {
			t.Fatalf("%s from seat %d went to %d, want %d", tc.order, tc.seat, got, tc.want)
		}
	}
}

func TestPassingOrderCycles(t *testing.T) {
	o := PassLeft
	want := []PassingOrder{PassRight, PassStraight, PassNone, PassLeft}
	for _, w := range want {
		o = o.Next()
		if o != w {
			t.Fatalf("Cycle reached %s, want %s", o, w)
		}
	}
}

func TestTrickSweep(t *testing.T) {
	g := &Game{
		Players: [4]*Player{
			NewPlayer("a", ComputerStrategy{}),
			NewPlayer("b", ComputerStrategy{}),
			NewPlayer("c", ComputerStrategy{}),
			NewPlayer("d", ComputerStrategy{}),
		},
		table: NopTable{},
		now:   time.Now,
	}
	s := &playingState{g: g}
	g.CurrentSuit = Clubs
	g.Trick = []Played{
		{Card: c(Clubs, Two), By: g.Players[0]},
		{Card: c(Clubs, Seven), By: g.Players[1]},
		{Card: c(Clubs, King), By: g.Players[2]},
		{Card: c(Clubs, Ace), By: g.Players[3]},
	}
	s.sweep()

	winner := g.Players[3]
	if len(winner.Tricks) != 4 {
		t.Fatalf("Winner holds %d cards, want 4", len(winner.Tricks))
	}
	for _, card := range winner.Tricks {
		if card.Owner != winner {
			t.Fatalf("Swept card %s not owned by the winner", card)
		}
	}
	if g.Trick != nil || g.CurrentSuit != NoSuit {
		t.Fatalf("Trick state not reset")
	}
	if s.current != 3 {
		t.Fatalf("Next lead at seat %d, want the winner", s.current)
	}
}

func TestOffSuitCardNeverWinsTrick(t *testing.T) {
	g := &Game{
		Players: [4]*Player{
			NewPlayer("a", ComputerStrategy{}),
			NewPlayer("b", ComputerStrategy{}),
			NewPlayer("c", ComputerStrategy{}),
			NewPlayer("d", ComputerStrategy{}),
		},
		table: NopTable{},
		now:   time.Now,
	}
	s := &playingState{g: g}
	g.CurrentSuit = Clubs
	g.Trick = []Played{
		{Card: c(Clubs, Two), By: g.Players[0]},
		{Card: c(Hearts, Ace), By: g.Players[1]},
		{Card: c(Spades, Ace), By: g.Players[2]},
		{Card: c(Clubs, Three), By: g.Players[3]},
	}
	s.sweep()
	if len(g.Players[3].Tricks) != 4 {
		t.Fatalf("High off-suit card beat the led suit")
	}
}

func TestFullTrickIgnoresInput(t *testing.T) {
	h := NewHumanStrategy()
	g := &Game{
		Players: [4]*Player{
			NewPlayer("you", h),
			NewPlayer("b", ComputerStrategy{}),
			NewPlayer("c", ComputerStrategy{}),
			NewPlayer("d", ComputerStrategy{}),
		},
		table: NopTable{},
		now:   time.Now,
	}
	s := &playingState{g: g, current: 0}
	g.CurrentSuit = Clubs
	g.Players[0].Hand = []*Card{c(Clubs, Nine)}
	g.Players[0].ClaimHand()
	g.Trick = []Played{
		{Card: c(Clubs, Two), By: g.Players[1]},
		{Card: c(Clubs, Seven), By: g.Players[2]},
		{Card: c(Clubs, King), By: g.Players[3]},
		{Card: c(Clubs, Ace), By: g.Players[0]},
	}

	// The rotation can land on the human before the sweep tick runs; a
	// click and a confirm key in that window must not reach the pile.
	s.HandleCardClick(g.Players[0].Hand[0])
	s.HandleKey()
	if len(g.Trick) != 4 {
		t.Fatalf("Trick pile holds %d cards after the keypress, want 4", len(g.Trick))
	}
	if h.Selected() != nil {
		t.Fatalf("Selection staged on a full trick")
	}
	if len(g.Players[0].Hand) != 1 {
		t.Fatalf("Card left the hand on a full trick")
	}
}

func TestSweepClearsStaleSelection(t *testing.T) {
	h := NewHumanStrategy()
	g := &Game{
		Players: [4]*Player{
			NewPlayer("you", h),
			NewPlayer("b", ComputerStrategy{}),
			NewPlayer("c", ComputerStrategy{}),
			NewPlayer("d", ComputerStrategy{}),
		},
		table: NopTable{},
		now:   time.Now,
	}
	s := &playingState{g: g, current: 0}
	g.CurrentSuit = Clubs
	g.Players[0].Hand = []*Card{c(Clubs, Nine)}
	g.Players[0].ClaimHand()
	g.Trick = []Played{
		{Card: c(Clubs, Two), By: g.Players[1]},
		{Card: c(Clubs, Seven), By: g.Players[2]},
		{Card: c(Clubs, King), By: g.Players[3]},
	}
	if !h.HandleCardClick(g, g.Players[0], g.Players[0].Hand[0]) {
		t.Fatalf("Could not select a legal club")
	}
	g.Trick = append(g.Trick, Played{Card: c(Clubs, Ace), By: g.Players[0]})
	s.sweep()
	if h.Selected() != nil {
		t.Fatalf("Selection survived the sweep")
	}
}

func TestHeartsBreakOnPlay(t *testing.T) {
	g := &Game{
		Players: [4]*Player{
			NewPlayer("a", ComputerStrategy{}),
			NewPlayer("b", ComputerStrategy{}),
			NewPlayer("c", ComputerStrategy{}),
			NewPlayer("d", ComputerStrategy{}),
		},
		table: NopTable{},
		now:   time.Now,
	}
	s := &playingState{g: g}
	g.CurrentSuit = Clubs
	s.playCard(g.Players[1], c(Hearts, Four))
	if !g.HeartsBroken {
		t.Fatalf("Hearts not broken by a discarded heart")
	}
}

func TestPassingRoutesToTheLeftNeighbor(t *testing.T) {
	g := NewGame(WithSeed(9), WithClock(fastClock()))
	g.Update()
	if g.State() != StatePassing {
		t.Fatalf("Not passing after setup: %s", g.State())
	}
	staged := make([]*Card, 3)
	copy(staged, g.Players[0].Hand[:3])
	for _, card := range staged {
		g.HandleCardClick(card)
	}
	g.HandleKey()
	g.Update()

	// PassLeft sends seat 0's cards to seat 1.
	for _, card := range staged {
		if !contains(g.Players[1].Hand, card) {
			t.Fatalf("%s did not reach the left neighbor", card)
		}
		if contains(g.Players[0].Hand, card) {
			t.Fatalf("%s still in the sender's hand", card)
		}
	}
	for _, p := range g.Players {
		if len(p.Hand) != 13 {
			t.Fatalf("%s holds %d cards after the exchange", p.Name, len(p.Hand))
		}
	}
}

func TestHumanRoundFlow(t *testing.T) {
	g := NewGame(WithSeed(5), WithClock(fastClock()))
	h := g.Players[0].Strategy.(*HumanStrategy)

	g.Update()
	if g.State() != StatePassing {
		t.Fatalf("Not passing after setup: %s", g.State())
	}
	for _, card := range g.Players[0].Hand[:3] {
		g.HandleCardClick(card)
	}
	if len(g.Players[0].Passing) != 3 {
		t.Fatalf("Staged %d cards", len(g.Players[0].Passing))
	}
	g.HandleKey()
	g.Update()
	if g.State() != StatePlaying {
		t.Fatalf("Not playing after the exchange: %s", g.State())
	}

	for steps := 0; g.State() == StatePlaying && steps < 10000; steps++ {
		g.Update()
		if h.Selected() == nil {
			for _, card := range g.Players[0].Hand {
				g.HandleCardClick(card)
				if h.Selected() != nil {
					break
				}
			}
		}
		g.HandleKey()
	}
	if g.State() != StateScoring {
		t.Fatalf("Round did not reach scoring: %s", g.State())
	}
	sum := 0
	for _, p := range g.Players {
		if len(p.RoundPoints) != 1 {
			t.Fatalf("%s has %d scored rounds", p.Name, len(p.RoundPoints))
		}
		sum += p.RoundPoints[0]
	}
	if sum != 26 && sum != 78 {
		t.Fatalf("Round points sum to %d", sum)
	}

	g.HandleKey()
	g.Update()
	g.Update()
	if g.State() != StatePassing {
		t.Fatalf("Next round did not start: %s", g.State())
	}
	if g.Order != PassRight {
		t.Fatalf("Passing order is %s, want Right", g.Order)
	}
}
