package hearts

import "sort"

// Player holds one seat's cards for the whole session. The hand,
// tricks and passing piles are cleared and refilled every round; the
// Player itself and its strategy live as long as the game.
type Player struct {
	Name     string
	Strategy Strategy

	Hand    []*Card
	Tricks  []*Card
	Passing []*Card

	TotalPoints int
	RoundPoints []int
}

func NewPlayer(name string, strategy Strategy) *Player {
	return &Player{Name: name, Strategy: strategy}
}

// SortHand orders the hand by value ascending, suit breaking ties.
// Display code relies on this order; play logic does not.
func (p *Player) SortHand() {
	sort.SliceStable(p.Hand, func(i, j int) bool {
		if p.Hand[i].Value != p.Hand[j].Value {
			return p.Hand[i].Value < p.Hand[j].Value
		}
		return p.Hand[i].Suit < p.Hand[j].Suit
	})
}

// ClaimHand marks every card in the hand as owned by this player.
// Called after dealing and after a passing exchange.
func (p *Player) ClaimHand() {
	for _, c := range p.Hand {
		c.Owner = p
	}
}

// PassCards asks the strategy to fill the passing pile with exactly
// three cards from the hand.
func (p *Player) PassCards() {
	p.Strategy.PassCards(p)
}

// PlayCard asks the strategy for one card, removed from the hand.
// It never returns nil while the hand has cards; a strategy that
// comes up empty falls back to the last card in the hand.
func (p *Player) PlayCard(current Suit, trick []Played) *Card {
	c := p.Strategy.PlayCard(p, current, trick)
	if c == nil && len(p.Hand) > 0 {
		c = p.Hand[len(p.Hand)-1]
		p.Hand = p.Hand[:len(p.Hand)-1]
	}
	return c
}

// removeFromHand takes a specific card out of the hand by equality.
func (p *Player) removeFromHand(c *Card) *Card {
	for i, o := range p.Hand {
		if o.Eq(c) {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return o
		}
	}
	return nil
}

func (p *Player) holds(s Suit, v Value) bool { return find(p.Hand, s, v) != nil }

func (p *Player) hasSuit(s Suit) bool { return countOf(p.Hand, s) > 0 }
