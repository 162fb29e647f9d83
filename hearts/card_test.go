package hearts

import (
	"math/rand"
	"testing"
)

func c(s Suit, v Value) *Card { return &Card{Suit: s, Value: v} }

func TestNewDeck(t *testing.T) {
	deck := NewDeck(Suits, Values)
	if len(deck) != 52 {
		t.Fatalf("Deck size not 52: %d", len(deck))
	}
	seen := map[string]bool{}
	for _, card := range deck {
		if seen[card.String()] {
			t.Fatalf("Duplicate card: %s", card)
		}
		seen[card.String()] = true
	}
}

func TestShuffle(t *testing.T) {
	deck := NewDeck(Suits, Values)
	shuffled := Shuffle(deck, rand.New(rand.NewSource(1)))
	if len(shuffled) != len(deck) {
		t.Fatalf("Shuffle changed deck size: %d", len(shuffled))
	}
	if len(deck) != 52 {
		t.Fatalf("Shuffle consumed the input deck: %d", len(deck))
	}
	for _, card := range deck {
		if !contains(shuffled, card) {
			t.Fatalf("Card lost in shuffle: %s", card)
		}
	}
	again := Shuffle(deck, rand.New(rand.NewSource(1)))
	for i := range shuffled {
		if !shuffled[i].Eq(again[i]) {
			t.Fatalf("Same seed gave different order at %d", i)
		}
	}
}

func TestShuffleIsRoughlyUniform(t *testing.T) {
	// The first deck card should land in the first shuffled slot about
	// 1 in 52 times. Loose bounds, enough to catch a biased shuffle.
	deck := NewDeck(Suits, Values)
	rng := rand.New(rand.NewSource(2))
	hits := 0
	const trials = 5200
	for i := 0; i < trials; i++ {
		if Shuffle(deck, rng)[0].Eq(deck[0]) {
			hits++
		}
	}
	if hits < 50 || hits > 160 {
		t.Fatalf("Card stayed in place %d/%d times", hits, trials)
	}
}

func TestDeal(t *testing.T) {
	deck := []*Card{c(Clubs, Two), c(Clubs, Three), c(Clubs, Four)}
	var hand []*Card
	if n := Deal(&deck, &hand, 2); n != 2 {
		t.Fatalf("Dealt %d cards, want 2", n)
	}
	if len(deck) != 1 || len(hand) != 2 {
		t.Fatalf("Deal left deck %d hand %d", len(deck), len(hand))
	}
	if !hand[0].Is(Clubs, Four) {
		t.Fatalf("Deal not from the end of the deck: %s", hand[0])
	}
	if n := Deal(&deck, &hand, 5); n != 1 {
		t.Fatalf("Short deal moved %d cards, want 1", n)
	}
	if len(deck) != 0 {
		t.Fatalf("Deck not empty after short deal")
	}
}

func TestTransferCard(t *testing.T) {
	src := []*Card{c(Hearts, Ace), c(Spades, Queen)}
	var dst []*Card
	if !TransferCard(c(Spades, Queen), &src, &dst) {
		t.Fatalf("Transfer of held card failed")
	}
	if len(src) != 1 || len(dst) != 1 || !dst[0].Is(Spades, Queen) {
		t.Fatalf("Transfer left src %v dst %v", src, dst)
	}
	if TransferCard(c(Clubs, Two), &src, &dst) {
		t.Fatalf("Transfer of missing card reported success")
	}
	if len(src) != 1 || len(dst) != 1 {
		t.Fatalf("Failed transfer moved cards")
	}
}

func TestTransferCards(t *testing.T) {
	src := []*Card{c(Hearts, Two), c(Hearts, Three), c(Hearts, Four)}
	var dst []*Card
	TransferCards([]*Card{c(Hearts, Four), c(Hearts, Two), c(Diamonds, Ten)}, &src, &dst)
	if len(src) != 1 || !src[0].Is(Hearts, Three) {
		t.Fatalf("Wrong cards left in src: %v", src)
	}
	if len(dst) != 2 || !dst[0].Is(Hearts, Four) || !dst[1].Is(Hearts, Two) {
		t.Fatalf("Transfer order not preserved: %v", dst)
	}
}

func TestHighestInTrick(t *testing.T) {
	trick := []Played{
		{Card: c(Clubs, Ten)},
		{Card: c(Hearts, Ace)},
		{Card: c(Clubs, King)},
	}
	if top := highestInTrick(trick, Clubs); top == nil || !top.Is(Clubs, King) {
		t.Fatalf("Wrong top club: %v", top)
	}
	if top := highestInTrick(trick, Diamonds); top != nil {
		t.Fatalf("Found a diamond in a trick without one: %v", top)
	}
}
