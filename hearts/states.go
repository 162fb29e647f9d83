package hearts

import (
	"fmt"
	"time"
)

// setupState builds a fresh round: shuffle, deal 13 each round-robin,
// sort, and hand the layout to the table.
type setupState struct {
	g    *Game
	next StateID
}

func (s *setupState) Enter() {
	g := s.g
	g.log("Setup: shuffling and dealing")
	g.shuffled = Shuffle(g.deck, g.rng)
	for i := 0; i < 13; i++ {
		for _, p := range g.Players {
			Deal(&g.shuffled, &p.Hand, 1)
		}
	}
	for _, p := range g.Players {
		p.ClaimHand()
		p.SortHand()
	}
	g.HeartsBroken = false
	g.table.HandsDealt(g)
	s.next = StatePassing
}

func (s *setupState) Exit()                  { s.next = StateNone }
func (s *setupState) HandleCardClick(*Card)  {}
func (s *setupState) HandleKey()             {}
func (s *setupState) Update() StateID        { return s.next }

// passingState stages three cards per player and routes them to the
// neighbor given by the passing order. The human picks by clicking;
// a confirm key triggers the computer picks and the exchange. Rounds
// with order None skip straight to playing.
type passingState struct {
	g    *Game
	next StateID
}

func (s *passingState) Enter() {
	g := s.g
	for _, p := range g.Players {
		p.Passing = nil
	}
	s.next = StateNone
	if g.Order == PassNone {
		g.log("Passing: no exchange this round")
		g.Order = g.Order.Next()
		s.next = StatePlaying
	}
}

func (s *passingState) Exit() {
	g := s.g
	for _, p := range g.Players {
		p.ClaimHand()
		p.SortHand()
	}
	g.table.HandsDealt(g)
	s.next = StateNone
}

func (s *passingState) HandleCardClick(c *Card) {
	// A click can race the transition out of this state.
	if s.next != StateNone {
		return
	}
	seat, _ := s.g.human()
	if seat < 0 {
		return
	}
	p := s.g.Players[seat]
	if !contains(p.Hand, c) {
		return
	}
	if contains(p.Passing, c) {
		for i, o := range p.Passing {
			if o.Eq(c) {
				p.Passing = append(p.Passing[:i], p.Passing[i+1:]...)
				break
			}
		}
		s.g.table.LowerCard(c)
	} else if len(p.Passing) < 3 {
		p.Passing = append(p.Passing, c)
		s.g.table.RaiseCard(c)
	}
}

func (s *passingState) HandleKey() {
	if s.next != StateNone {
		return
	}
	seat, _ := s.g.human()
	if seat < 0 || len(s.g.Players[seat].Passing) == 3 {
		s.passRound()
		s.next = StatePlaying
	}
}

func (s *passingState) Update() StateID {
	if s.next == StateNone {
		if seat, _ := s.g.human(); seat < 0 {
			s.passRound()
			s.next = StatePlaying
		}
	}
	return s.next
}

func (s *passingState) passRound() {
	g := s.g
	for _, p := range g.Players {
		if p.Strategy.Auto() {
			p.PassCards()
		}
		g.log(fmt.Sprintf("Passing: %s stages %d cards", p.Name, len(p.Passing)))
	}
	g.log("Passing: exchanging " + g.Order.String())
	for i, p := range g.Players {
		target := g.Players[g.passTarget(i)]
		TransferCards(p.Passing, &p.Hand, &target.Hand)
	}
	g.Order = g.Order.Next()
}

// playingState runs the thirteen tricks. The two of clubs holder
// leads and must lead that card; computer seats act on their tick,
// the human seat selects by click and commits by keypress. A full
// trick rests face up for a moment before it is swept to the winner.
type playingState struct {
	g        *Game
	current  int
	sweeping bool
	sweepAt  time.Time
	next     StateID
}

func (s *playingState) Enter() {
	g := s.g
	g.Trick = nil
	g.CurrentSuit = NoSuit
	s.sweeping = false
	s.next = StateNone
	s.current = 0
	for i, p := range g.Players {
		if p.holds(Clubs, Two) {
			s.current = i
			break
		}
	}
	g.log(fmt.Sprintf("Playing: %s leads the two of clubs", g.Players[s.current].Name))
}

func (s *playingState) Exit() { s.next = StateNone }

func (s *playingState) HandleCardClick(c *Card) {
	// Input can land between the fourth card and the sweep tick; the
	// full trick must not accept a fifth.
	if s.sweeping || len(s.g.Trick) >= 4 {
		return
	}
	seat, h := s.g.human()
	if seat != s.current || h == nil {
		return
	}
	h.HandleCardClick(s.g, s.g.Players[seat], c)
}

func (s *playingState) HandleKey() {
	seat, h := s.g.human()
	if seat != s.current || h == nil || s.sweeping || len(s.g.Trick) >= 4 {
		return
	}
	c := h.TakeSelected()
	if c == nil {
		return
	}
	p := s.g.Players[seat]
	if got := p.removeFromHand(c); got != nil {
		s.playCard(p, got)
	}
}

func (s *playingState) Update() StateID {
	g := s.g
	if s.sweeping {
		if g.now().Sub(s.sweepAt) >= 0 {
			s.sweep()
		}
		return s.next
	}
	switch {
	case len(g.Trick) == 4:
		s.sweeping = true
		s.sweepAt = g.now().Add(trickDelay)
	case s.isDone():
		s.next = StateScoring
	case g.Players[s.current].Strategy.Auto():
		s.computerTurn()
	}
	return s.next
}

func (s *playingState) computerTurn() {
	g := s.g
	p := g.Players[s.current]
	var c *Card
	// The opening lead is forced regardless of strategy.
	if g.CurrentSuit == NoSuit && p.holds(Clubs, Two) {
		c = p.removeFromHand(&Card{Suit: Clubs, Value: Two})
	} else {
		c = p.PlayCard(g.CurrentSuit, g.Trick)
	}
	if c != nil {
		s.playCard(p, c)
	}
}

// playCard commits a card already removed from the hand onto the
// trick pile.
func (s *playingState) playCard(p *Player, c *Card) {
	g := s.g
	if g.CurrentSuit == NoSuit {
		g.CurrentSuit = c.Suit
	}
	if c.Suit == Hearts && !g.HeartsBroken {
		g.HeartsBroken = true
		g.log("Playing: hearts broken")
	}
	c.Owner = p
	g.Trick = append(g.Trick, Played{Card: c, By: p})
	g.log(fmt.Sprintf("Playing: %s plays %s", p.Name, c))
	g.table.CardPlayed(c, s.current)
	if c.Is(Spades, Ace) {
		g.table.PlayAceCue()
	}
	s.current = nextSeat(s.current)
}

// sweep resolves a completed trick: the highest card of the led suit
// takes all four cards, its owner leads the next trick.
func (s *playingState) sweep() {
	g := s.g
	var winning *Played
	for i := range g.Trick {
		p := &g.Trick[i]
		if p.Card.Suit != g.CurrentSuit {
			continue
		}
		if winning == nil || p.Card.Value > winning.Card.Value {
			winning = p
		}
	}
	winner := winning.By
	for _, played := range g.Trick {
		played.Card.Owner = winner
		winner.Tricks = append(winner.Tricks, played.Card)
	}
	g.log(fmt.Sprintf("Playing: %s takes the trick with %s", winner.Name, winning.Card))
	g.Trick = nil
	g.CurrentSuit = NoSuit
	s.current = g.seatOf(winner)
	s.sweeping = false
	// A selection left over from the previous trick must pass a fresh
	// legality check before it can be played.
	if _, h := g.human(); h != nil {
		if c := h.TakeSelected(); c != nil {
			g.table.LowerCard(c)
		}
	}
	g.table.TrickTaken(s.current)
}

func (s *playingState) isDone() bool {
	for _, p := range s.g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// scoringState tallies the round, applies the shoot-the-moon rule,
// accumulates totals and waits for a confirm to start the next round
// or end the game at a hundred points.
type scoringState struct {
	g    *Game
	rows [][4]string
	over bool
	next StateID
}

func newScoringState(g *Game) *scoringState {
	return &scoringState{g: g, rows: [][4]string{{"0", "0", "0", "0"}}}
}

func (s *scoringState) Enter() {
	g := s.g
	var pts [4]int
	for i, p := range g.Players {
		pts[i] = roundPoints(p)
	}
	pts = applyMoon(pts)
	var row [4]string
	for i, p := range g.Players {
		p.RoundPoints = append(p.RoundPoints, pts[i])
		p.TotalPoints += pts[i]
		row[i] = fmt.Sprintf("%d", p.TotalPoints)
		g.log(fmt.Sprintf("Scoring: %s takes %d, total %d", p.Name, pts[i], p.TotalPoints))
	}
	s.rows = append(s.rows, row)
	s.over = false
	winner := ""
	for _, p := range g.Players {
		if p.TotalPoints >= 100 {
			s.over = true
		}
	}
	if s.over {
		winner = lowestTotal(g.Players).Name
	}
	g.table.ShowScores(s.rows, s.over, winner)
}

func (s *scoringState) Exit() {
	for _, p := range s.g.Players {
		p.Tricks = nil
	}
	s.g.table.HideScores()
	s.next = StateNone
}

func (s *scoringState) HandleCardClick(*Card) {}

func (s *scoringState) HandleKey() {
	if s.over {
		s.next = StateOver
	} else {
		s.next = StateSetup
	}
}

func (s *scoringState) Update() StateID {
	if s.next == StateNone {
		if seat, _ := s.g.human(); seat < 0 {
			s.HandleKey()
		}
	}
	return s.next
}

// overState is terminal: a player reached a hundred points and the
// session is finished. The winner stays available through
// Game.Winner.
type overState struct {
	g *Game
}

func (s *overState) Enter() {
	s.g.log("Over: " + lowestTotal(s.g.Players).Name + " wins")
}

func (s *overState) Exit()                 {}
func (s *overState) HandleCardClick(*Card) {}
func (s *overState) HandleKey()            {}
func (s *overState) Update() StateID       { return StateNone }
