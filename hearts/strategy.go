package hearts

// Strategy decides which cards a player passes and plays. Computer
// strategies are pure functions over the hand and trick pile; the
// human strategy is fed by UI clicks and only commits on confirm.
type Strategy interface {
	// PassCards stages exactly three cards from the hand into the
	// player's passing pile.
	PassCards(p *Player)
	// PlayCard returns one card removed from the hand, or nil for
	// strategies that wait on external selection.
	PlayCard(p *Player, current Suit, trick []Played) *Card
	// Auto reports whether the strategy acts without user input.
	Auto() bool
}

// HumanStrategy holds the single card selected for play. Selection is
// driven by the Playing state routing clicks here; pressing a key
// commits the selection.
type HumanStrategy struct {
	selected *Card
}

func NewHumanStrategy() *HumanStrategy { return &HumanStrategy{} }

func (h *HumanStrategy) Auto() bool { return false }

func (h *HumanStrategy) PassCards(p *Player) {}

func (h *HumanStrategy) PlayCard(p *Player, current Suit, trick []Played) *Card { return nil }

// Selected returns the currently selected card, if any.
func (h *HumanStrategy) Selected() *Card { return h.selected }

// TakeSelected clears and returns the selection.
func (h *HumanStrategy) TakeSelected() *Card {
	c := h.selected
	h.selected = nil
	return c
}

// HandleCardClick toggles the play selection. Clicking the selected
// card deselects it; clicking another legal card swaps the selection.
// Legality: the two of clubs must open the round, the led suit must be
// followed when held, and hearts may not be led before they are broken
// unless the hand is nothing but hearts.
func (h *HumanStrategy) HandleCardClick(g *Game, p *Player, c *Card) bool {
	if h.selected != nil && h.selected.Eq(c) {
		g.table.LowerCard(c)
		h.selected = nil
		return false
	}
	if !contains(p.Hand, c) {
		return false
	}
	switch {
	case p.holds(Clubs, Two):
		if !c.Is(Clubs, Two) {
			return false
		}
	case g.CurrentSuit != NoSuit && p.hasSuit(g.CurrentSuit):
		if c.Suit != g.CurrentSuit {
			return false
		}
	case g.CurrentSuit == NoSuit && !g.HeartsBroken && c.Suit == Hearts:
		if countOf(p.Hand, Hearts) < len(p.Hand) {
			return false
		}
	}
	if h.selected != nil {
		g.table.LowerCard(h.selected)
	}
	h.selected = c
	g.table.RaiseCard(c)
	if c.Is(Spades, Ace) {
		g.table.PlayAceCue()
	}
	return true
}

// ComputerStrategy is the rule-of-thumb opponent. The play policy is
// evaluated tier by tier, first match wins; the passing policy sheds
// dangerous spades first, then whole short suits, then high fillers.
type ComputerStrategy struct{}

func (ComputerStrategy) Auto() bool { return true }

func (s ComputerStrategy) PlayCard(p *Player, current Suit, trick []Played) *Card {
	var pick *Card

	switch current {
	case Spades:
		// Dump the queen on a king or ace already on the pile.
		if top := highestInTrick(trick, Spades); top != nil && top.Value >= King {
			pick = find(p.Hand, Spades, Queen)
		}
		// Last to play: discharge the highest spade held.
		if pick == nil && len(trick) == 3 {
			pick = highestOf(p.Hand, Spades)
		}
		if pick == nil {
			pick = highestUnderTrick(p.Hand, current, trick)
		}
		if pick == nil {
			pick = lowestOf(p.Hand, current)
		}
	case Hearts, Clubs, Diamonds:
		pick = highestUnderTrick(p.Hand, current, trick)
		if pick == nil {
			pick = lowestOf(p.Hand, current)
		}
	case NoSuit:
		// Leading: low spades are safe, low hearts bleed points out
		// slowly, high leads of any suit are avoided.
		for _, lead := range []Suit{Spades, Hearts, Clubs, Diamonds} {
			if pick = lowestOf(p.Hand, lead); pick != nil {
				break
			}
		}
	}

	if pick != nil {
		return p.removeFromHand(pick)
	}

	// No card of the led suit: discard the most dangerous card held.
	for _, want := range []struct {
		s Suit
		v Value
	}{{Spades, Queen}, {Spades, Ace}, {Spades, King}} {
		if pick = find(p.Hand, want.s, want.v); pick != nil {
			return p.removeFromHand(pick)
		}
	}
	for _, dump := range []Suit{Hearts, Spades, Diamonds, Clubs} {
		if pick = highestOf(p.Hand, dump); pick != nil {
			return p.removeFromHand(pick)
		}
	}
	for i, c := range p.Hand {
		if c.Suit == current {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return c
		}
	}
	if len(p.Hand) == 0 {
		return nil
	}
	c := p.Hand[len(p.Hand)-1]
	p.Hand = p.Hand[:len(p.Hand)-1]
	return c
}

func (s ComputerStrategy) PassCards(p *Player) {
	var picked []*Card

	for _, want := range []struct {
		s Suit
		v Value
	}{{Spades, Queen}, {Spades, Ace}, {Spades, King}} {
		if len(picked) == 3 {
			break
		}
		if c := find(p.Hand, want.s, want.v); c != nil {
			picked = append(picked, c)
		}
	}

	// Clear out a whole short suit to open up void-suit discards.
	for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
		passEntireSuit(p, suit, &picked)
	}

	// Fill remaining slots with the highest cards left.
	for _, suit := range []Suit{Diamonds, Clubs, Hearts, Spades} {
		TransferList(highestNotPicked(p, suit, picked), &picked)
	}
	for _, c := range p.Hand {
		if len(picked) == 3 {
			break
		}
		if !contains(picked, c) {
			picked = append(picked, c)
		}
	}

	p.Passing = picked
}

// passEntireSuit stages the rest of the suit when the player holds no
// more of it than the slots still open. The count covers the whole
// hand, staged cards included.
func passEntireSuit(p *Player, s Suit, picked *[]*Card) {
	n := countOf(p.Hand, s)
	if n > 0 && n <= 3-len(*picked) {
		TransferList(highestNotPicked(p, s, *picked), picked)
	}
}

// highestNotPicked returns up to the remaining slot count of the
// highest unstaged cards of the suit, high to low.
func highestNotPicked(p *Player, s Suit, picked []*Card) []*Card {
	want := 3 - len(picked)
	if want <= 0 {
		return nil
	}
	var candidates []*Card
	for _, c := range p.Hand {
		if c.Suit == s && !contains(picked, c) {
			candidates = append(candidates, c)
		}
	}
	var out []*Card
	for len(out) < want && len(candidates) > 0 {
		hi := 0
		for i, c := range candidates {
			if c.Value > candidates[hi].Value {
				hi = i
			}
		}
		out = append(out, candidates[hi])
		candidates = append(candidates[:hi], candidates[hi+1:]...)
	}
	return out
}

// highestUnderTrick returns the highest card of the suit in hand that
// still ducks under the highest card of that suit on the pile.
func highestUnderTrick(hand []*Card, s Suit, trick []Played) *Card {
	top := highestInTrick(trick, s)
	if top == nil {
		return nil
	}
	var best *Card
	for _, c := range hand {
		if c.Suit != s || c.Value >= top.Value {
			continue
		}
		if best == nil || c.Value > best.Value {
			best = c
		}
	}
	return best
}
