package hearts

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// PassingOrder is the neighbor rotation for the passing phase,
// cycling Left, Right, Straight, None between rounds.
type PassingOrder int8

const (
	PassLeft PassingOrder = iota
	PassRight
	PassStraight
	PassNone
)

func (o PassingOrder) Next() PassingOrder {
	switch o {
	case PassLeft:
		return PassRight
	case PassRight:
		return PassStraight
	case PassStraight:
		return PassNone
	}
	return PassLeft
}

func (o PassingOrder) String() string {
	switch o {
	case PassLeft:
		return "Left"
	case PassRight:
		return "Right"
	case PassStraight:
		return "Straight"
	}
	return "None"
}

// Table is the contract the core needs from the UI collaborator. The
// core pushes semantic events; placement, sprites and sounds are the
// collaborator's concern. Every method must return promptly, the game
// loop runs on a single tick.
type Table interface {
	// HandsDealt repositions every hand after dealing or passing.
	HandsDealt(g *Game)
	// CardPlayed moves a card from the seat's hand to the trick pile.
	CardPlayed(c *Card, seat int)
	// TrickTaken clears the trick pile display toward the winner.
	TrickTaken(winner int)
	// RaiseCard and LowerCard show and clear selection.
	RaiseCard(c *Card)
	LowerCard(c *Card)
	// ShowScores pushes per-round point rows as strings, newest last.
	ShowScores(rows [][4]string, over bool, winner string)
	HideScores()
	// PlayAceCue triggers the ace-of-spades sound, debounced until the
	// clip has finished.
	PlayAceCue()
}

// NopTable is the headless collaborator used by tests and self-play.
type NopTable struct{}

func (NopTable) HandsDealt(*Game)                     {}
func (NopTable) CardPlayed(*Card, int)                {}
func (NopTable) TrickTaken(int)                       {}
func (NopTable) RaiseCard(*Card)                      {}
func (NopTable) LowerCard(*Card)                      {}
func (NopTable) ShowScores([][4]string, bool, string) {}
func (NopTable) HideScores()                          {}
func (NopTable) PlayAceCue()                          {}

// trickDelay is how long a completed trick stays face up before it is
// swept to the winner. Checked against the clock each tick, never
// slept on, so rendering and input continue during the pause.
const trickDelay = 500 * time.Millisecond

// Game owns all shared round state: the four seats, the master deck,
// the trick pile, the led suit and hearts-broken flag, and the state
// machine that mutates them. One Game is one session; rounds reshuffle
// and redeal but reuse the same card slots.
type Game struct {
	ID      ulid.ULID
	Players [4]*Player

	// Trick holds up to four (card, player) pairs for the trick in
	// progress. CurrentSuit is NoSuit until the trick is led.
	Trick        []Played
	CurrentSuit  Suit
	HeartsBroken bool
	Order        PassingOrder

	deck     []*Card
	shuffled []*Card
	machine  *Machine
	table    Table
	rng      *rand.Rand
	now      func() time.Time
	trace    *Trace
}

type Option func(*Game)

func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

func WithTable(t Table) Option {
	return func(g *Game) { g.table = t }
}

func WithPlayers(players [4]*Player) Option {
	return func(g *Game) { g.Players = players }
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

func WithTrace(t *Trace) Option {
	return func(g *Game) { g.trace = t }
}

// NewGame builds a session with the default seats (a human at the
// bottom, three computer opponents clockwise) and enters Setup.
func NewGame(opts ...Option) *Game {
	g := &Game{
		ID: ulid.Make(),
		Players: [4]*Player{
			NewPlayer("You", NewHumanStrategy()),
			NewPlayer("Sarah", ComputerStrategy{}),
			NewPlayer("Jane", ComputerStrategy{}),
			NewPlayer("Smith", ComputerStrategy{}),
		},
		Order: PassLeft,
		table: NopTable{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.deck = NewDeck(Suits, Values)

	g.machine = NewMachine()
	g.machine.Add(StateSetup, &setupState{g: g})
	g.machine.Add(StatePassing, &passingState{g: g})
	g.machine.Add(StatePlaying, &playingState{g: g})
	g.machine.Add(StateScoring, newScoringState(g))
	g.machine.Add(StateOver, &overState{g: g})
	g.machine.Start(StateSetup)
	return g
}

// Update advances the game by one tick.
func (g *Game) Update() { g.machine.Update() }

// HandleCardClick routes a card click into the current state.
func (g *Game) HandleCardClick(c *Card) { g.machine.HandleCardClick(c) }

// HandleKey routes a confirm keypress or button press into the
// current state.
func (g *Game) HandleKey() { g.machine.HandleKey() }

// State returns the active state id.
func (g *Game) State() StateID { return g.machine.Current() }

// Over reports whether a player has reached 100 points and the
// session has ended.
func (g *Game) Over() bool { return g.machine.Current() == StateOver }

// Winner returns the player with the lowest total once the game is
// over, nil before that. Ties go to the earliest seat.
func (g *Game) Winner() *Player {
	if !g.Over() {
		return nil
	}
	best := g.Players[0]
	for _, p := range g.Players[1:] {
		if p.TotalPoints < best.TotalPoints {
			best = p
		}
	}
	return best
}

// human returns the seat waiting on user input, or -1 when every seat
// is automatic.
func (g *Game) human() (int, *HumanStrategy) {
	for i, p := range g.Players {
		if h, ok := p.Strategy.(*HumanStrategy); ok {
			return i, h
		}
	}
	return -1, nil
}

// seatOf maps a player back to its seat index.
func (g *Game) seatOf(target *Player) int {
	for i, p := range g.Players {
		if p == target {
			return i
		}
	}
	return -1
}

// nextSeat is the play rotation. Seats are numbered bottom, left,
// top, right; play proceeds bottom, right, top, left as at a real
// table viewed from above.
func nextSeat(i int) int { return (i + 3) % 4 }

// passTarget is the receiving seat for the active passing order.
func (g *Game) passTarget(i int) int {
	switch g.Order {
	case PassLeft:
		return (i + 1) % 4
	case PassRight:
		return (i + 3) % 4
	case PassStraight:
		return (i + 2) % 4
	}
	return i
}

func (g *Game) log(msg string) { g.trace.Log(msg) }
