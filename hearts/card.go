package hearts

import (
	"fmt"
	"math/rand"
)

type Suit int8

const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Spades
	Hearts
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	}
	return "none"
}

type Value int8

const (
	Two   Value = 2
	Three Value = 3
	Four  Value = 4
	Five  Value = 5
	Six   Value = 6
	Seven Value = 7
	Eight Value = 8
	Nine  Value = 9
	Ten   Value = 10
	Jack  Value = 11
	Queen Value = 12
	King  Value = 13
	Ace   Value = 14
)

func (v Value) String() string {
	switch v {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	return fmt.Sprintf("%d", int8(v))
}

// Suits and Values are the standard deck dimensions, in sort order.
var (
	Suits  = []Suit{Clubs, Diamonds, Spades, Hearts}
	Values = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// Card is a single playing card. Suit and Value never change after
// creation; Owner is reassigned whenever the card changes hands.
// Two cards compare equal when their suit and value match, regardless
// of which physical slot they live in.
type Card struct {
	Suit  Suit
	Value Value
	Owner *Player
}

func (c *Card) Is(s Suit, v Value) bool { return c.Suit == s && c.Value == v }

func (c *Card) Eq(o *Card) bool { return o != nil && c.Suit == o.Suit && c.Value == o.Value }

func (c *Card) String() string { return c.Value.String() + " of " + c.Suit.String() }

// NewDeck builds the cross product of suits and values, one card each.
func NewDeck(suits []Suit, values []Value) []*Card {
	deck := make([]*Card, 0, len(suits)*len(values))
	for _, s := range suits {
		for _, v := range values {
			deck = append(deck, &Card{Suit: s, Value: v})
		}
	}
	return deck
}

// Shuffle returns a new slice with the same cards in uniformly random
// order. The input deck is left untouched.
func Shuffle(deck []*Card, rng *rand.Rand) []*Card {
	tmp := make([]*Card, len(deck))
	copy(tmp, deck)
	shuffled := make([]*Card, 0, len(deck))
	for len(tmp) > 0 {
		i := rng.Intn(len(tmp))
		shuffled = append(shuffled, tmp[i])
		tmp = append(tmp[:i], tmp[i+1:]...)
	}
	return shuffled
}

// Deal moves up to n cards from the end of deck to hand and reports how
// many actually moved. Dealing from a short deck is not an error.
func Deal(deck, hand *[]*Card, n int) int {
	if len(*deck) < n {
		n = len(*deck)
	}
	for i := 0; i < n; i++ {
		last := len(*deck) - 1
		*hand = append(*hand, (*deck)[last])
		*deck = (*deck)[:last]
	}
	return n
}

// TransferCard moves the first card equal to c from src to dst.
// A card that is not in src is a no-op.
func TransferCard(c *Card, src, dst *[]*Card) bool {
	for i, o := range *src {
		if o.Eq(c) {
			*src = append((*src)[:i], (*src)[i+1:]...)
			*dst = append(*dst, o)
			return true
		}
	}
	return false
}

// TransferCards moves every card in list from src to dst, preserving
// list order. Cards missing from src are skipped.
func TransferCards(list []*Card, src, dst *[]*Card) {
	for _, c := range list {
		TransferCard(c, src, dst)
	}
}

// TransferList appends every card in list to dst without removing it
// from anywhere. Used while staging a passing selection.
func TransferList(list []*Card, dst *[]*Card) {
	*dst = append(*dst, list...)
}

func contains(cards []*Card, c *Card) bool {
	for _, o := range cards {
		if o.Eq(c) {
			return true
		}
	}
	return false
}

func find(cards []*Card, s Suit, v Value) *Card {
	for _, c := range cards {
		if c.Is(s, v) {
			return c
		}
	}
	return nil
}

func ofSuit(cards []*Card, s Suit) []*Card {
	var out []*Card
	for _, c := range cards {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

func countOf(cards []*Card, s Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == s {
			n++
		}
	}
	return n
}

func highestOf(cards []*Card, s Suit) *Card {
	var best *Card
	for _, c := range cards {
		if c.Suit != s {
			continue
		}
		if best == nil || c.Value > best.Value {
			best = c
		}
	}
	return best
}

func lowestOf(cards []*Card, s Suit) *Card {
	var best *Card
	for _, c := range cards {
		if c.Suit != s {
			continue
		}
		if best == nil || c.Value < best.Value {
			best = c
		}
	}
	return best
}

// Played is one card on the trick pile together with who played it.
type Played struct {
	Card *Card
	By   *Player
}

// highestInTrick returns the highest card of the given suit currently
// on the trick pile, or nil when the suit has not been played.
func highestInTrick(trick []Played, s Suit) *Card {
	var best *Card
	for _, p := range trick {
		if p.Card.Suit != s {
			continue
		}
		if best == nil || p.Card.Value > best.Value {
			best = p.Card
		}
	}
	return best
}
