package hearts

// The decision tree is an immutable graph of check and leaf nodes,
// built once when a strategy is constructed. A check node filters the
// candidate cards by its predicate: a non-empty result recurses into
// the pass branch with the filtered set, anything else recurses into
// the fail branch with the original set. Leaves pick a single card.
// A nil branch terminates with no card; callers fall back to any
// legal card rather than playing nothing.

type Node interface {
	Process(p *Player, cards []*Card, trick []Played) *Card
}

func processBranch(n Node, p *Player, cards []*Card, trick []Played) *Card {
	if n == nil {
		return nil
	}
	return n.Process(p, cards, trick)
}

type Cmp int8

const (
	CmpEq Cmp = iota
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

func (c Cmp) apply(a, b Value) bool {
	switch c {
	case CmpEq:
		return a == b
	case CmpLt:
		return a < b
	case CmpLe:
		return a <= b
	case CmpGt:
		return a > b
	case CmpGe:
		return a >= b
	}
	return false
}

// SuitCheck narrows the candidates to a single suit.
type SuitCheck struct {
	Suit       Suit
	Pass, Fail Node
}

func (n SuitCheck) Process(p *Player, cards []*Card, trick []Played) *Card {
	matched := ofSuit(cards, n.Suit)
	if len(matched) > 0 {
		return processBranch(n.Pass, p, matched, trick)
	}
	return processBranch(n.Fail, p, cards, trick)
}

// ValueCheck narrows the candidates by comparing values to a
// threshold.
type ValueCheck struct {
	Value      Value
	Cmp        Cmp
	Pass, Fail Node
}

func (n ValueCheck) Process(p *Player, cards []*Card, trick []Played) *Card {
	var matched []*Card
	for _, c := range cards {
		if n.Cmp.apply(c.Value, n.Value) {
			matched = append(matched, c)
		}
	}
	if len(matched) > 0 {
		return processBranch(n.Pass, p, matched, trick)
	}
	return processBranch(n.Fail, p, cards, trick)
}

// CardCheck narrows the candidates to one exact card.
type CardCheck struct {
	Suit       Suit
	Value      Value
	Pass, Fail Node
}

func (n CardCheck) Process(p *Player, cards []*Card, trick []Played) *Card {
	var matched []*Card
	for _, c := range cards {
		if c.Is(n.Suit, n.Value) {
			matched = append(matched, c)
		}
	}
	if len(matched) > 0 {
		return processBranch(n.Pass, p, matched, trick)
	}
	return processBranch(n.Fail, p, cards, trick)
}

// CountCheck passes when the candidates hold between one and Max cards
// of the suit, narrowing to those cards. Used to spot short suits
// worth dumping entirely.
type CountCheck struct {
	Suit       Suit
	Max        int
	Pass, Fail Node
}

func (n CountCheck) Process(p *Player, cards []*Card, trick []Played) *Card {
	matched := ofSuit(cards, n.Suit)
	if len(matched) > 0 && len(matched) <= n.Max {
		return processBranch(n.Pass, p, matched, trick)
	}
	return processBranch(n.Fail, p, cards, trick)
}

// UnderTopCheck narrows the candidates of the led suit to those that
// duck strictly under the highest card of that suit on the trick
// pile. With no such card on the pile the check fails.
type UnderTopCheck struct {
	Suit       Suit
	Pass, Fail Node
}

func (n UnderTopCheck) Process(p *Player, cards []*Card, trick []Played) *Card {
	top := highestInTrick(trick, n.Suit)
	var matched []*Card
	if top != nil {
		for _, c := range cards {
			if c.Suit == n.Suit && c.Value < top.Value {
				matched = append(matched, c)
			}
		}
	}
	if len(matched) > 0 {
		return processBranch(n.Pass, p, matched, trick)
	}
	return processBranch(n.Fail, p, cards, trick)
}

// HighestLeaf selects the highest-value candidate.
type HighestLeaf struct{}

func (HighestLeaf) Process(p *Player, cards []*Card, trick []Played) *Card {
	var best *Card
	for _, c := range cards {
		if best == nil || c.Value > best.Value {
			best = c
		}
	}
	return best
}

// LowestLeaf selects the lowest-value candidate.
type LowestLeaf struct{}

func (LowestLeaf) Process(p *Player, cards []*Card, trick []Played) *Card {
	var best *Card
	for _, c := range cards {
		if best == nil || c.Value < best.Value {
			best = c
		}
	}
	return best
}

// CardLeaf selects one exact card, or nothing when absent.
type CardLeaf struct {
	Suit  Suit
	Value Value
}

func (n CardLeaf) Process(p *Player, cards []*Card, trick []Played) *Card {
	for _, c := range cards {
		if c.Is(n.Suit, n.Value) {
			return c
		}
	}
	return nil
}

// TreeStrategy drives a computer player from decision trees instead of
// hard-coded tiers: one follow tree per led suit, one lead tree, one
// discard tree, and a pass tree evaluated once per passing slot.
type TreeStrategy struct {
	Follow  map[Suit]Node
	Lead    Node
	Discard Node
	Pass    Node
}

func (t *TreeStrategy) Auto() bool { return true }

func (t *TreeStrategy) PlayCard(p *Player, current Suit, trick []Played) *Card {
	var pick *Card
	if current == NoSuit {
		pick = processBranch(t.Lead, p, p.Hand, trick)
	} else if p.hasSuit(current) {
		pick = processBranch(t.Follow[current], p, p.Hand, trick)
		if pick == nil {
			pick = lowestOf(p.Hand, current)
		}
	} else {
		pick = processBranch(t.Discard, p, p.Hand, trick)
	}
	if pick == nil && len(p.Hand) > 0 {
		pick = p.Hand[len(p.Hand)-1]
	}
	return p.removeFromHand(pick)
}

func (t *TreeStrategy) PassCards(p *Player) {
	var picked []*Card
	for len(picked) < 3 {
		var candidates []*Card
		for _, c := range p.Hand {
			if !contains(picked, c) {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			break
		}
		pick := processBranch(t.Pass, p, candidates, nil)
		if pick == nil {
			pick = candidates[len(candidates)-1]
		}
		picked = append(picked, pick)
	}
	p.Passing = picked
}

// DefaultTreeStrategy encodes the stock heuristics declaratively:
// duck under the trick when following, lead low spades first, unload
// the queen of spades and high hearts when discarding, and pass the
// dangerous spades, short hearts, then high fillers.
func DefaultTreeStrategy() *TreeStrategy {
	follow := make(map[Suit]Node, len(Suits))
	for _, s := range Suits {
		follow[s] = UnderTopCheck{
			Suit: s,
			Pass: HighestLeaf{},
			Fail: SuitCheck{Suit: s, Pass: LowestLeaf{}},
		}
	}

	lead := SuitCheck{
		Suit: Spades,
		Pass: LowestLeaf{},
		Fail: SuitCheck{
			Suit: Hearts,
			Pass: LowestLeaf{},
			Fail: SuitCheck{
				Suit: Clubs,
				Pass: LowestLeaf{},
				Fail: SuitCheck{Suit: Diamonds, Pass: LowestLeaf{}, Fail: LowestLeaf{}},
			},
		},
	}

	discard := CardCheck{
		Suit: Spades, Value: Queen,
		Pass: CardLeaf{Spades, Queen},
		Fail: CardCheck{
			Suit: Spades, Value: Ace,
			Pass: CardLeaf{Spades, Ace},
			Fail: CardCheck{
				Suit: Spades, Value: King,
				Pass: CardLeaf{Spades, King},
				Fail: SuitCheck{
					Suit: Hearts,
					Pass: HighestLeaf{},
					Fail: SuitCheck{
						Suit: Spades,
						Pass: HighestLeaf{},
						Fail: SuitCheck{
							Suit: Diamonds,
							Pass: HighestLeaf{},
							Fail: HighestLeaf{},
						},
					},
				},
			},
		},
	}

	pass := CardCheck{
		Suit: Spades, Value: Queen,
		Pass: CardLeaf{Spades, Queen},
		Fail: CardCheck{
			Suit: Spades, Value: Ace,
			Pass: CardLeaf{Spades, Ace},
			Fail: CardCheck{
				Suit: Spades, Value: King,
				Pass: CardLeaf{Spades, King},
				Fail: CountCheck{
					Suit: Hearts, Max: 3,
					Pass: HighestLeaf{},
					Fail: SuitCheck{
						Suit: Diamonds,
						Pass: HighestLeaf{},
						Fail: SuitCheck{
							Suit: Clubs,
							Pass: HighestLeaf{},
							Fail: HighestLeaf{},
						},
					},
				},
			},
		},
	}

	return &TreeStrategy{Follow: follow, Lead: lead, Discard: discard, Pass: pass}
}
