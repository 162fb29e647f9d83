package hearts

import "fmt"

type StateID int8

const (
	StateNone StateID = iota
	StateSetup
	StatePassing
	StatePlaying
	StateScoring
	StateOver
)

func (s StateID) String() string {
	switch s {
	case StateSetup:
		return "Setup"
	case StatePassing:
		return "Passing"
	case StatePlaying:
		return "Playing"
	case StateScoring:
		return "Scoring"
	case StateOver:
		return "Over"
	}
	return "none"
}

// State is one phase of a round. Enter and Exit run side effects on
// transition; Update runs once per tick and returns the next state id
// or StateNone to stay. Input events are routed to the current state
// only.
type State interface {
	Enter()
	Exit()
	HandleCardClick(c *Card)
	HandleKey()
	Update() StateID
}

// Machine drives the per-frame update of the current state and swaps
// states when Update asks for a transition.
type Machine struct {
	states  map[StateID]State
	current StateID
}

func NewMachine() *Machine {
	return &Machine{states: make(map[StateID]State)}
}

// Add registers a state. Registering the same id twice is a
// programming error.
func (m *Machine) Add(id StateID, s State) {
	if _, ok := m.states[id]; ok {
		panic(fmt.Sprintf("state %s registered twice", id))
	}
	m.states[id] = s
}

// Start enters the initial state.
func (m *Machine) Start(id StateID) {
	if m.current != StateNone {
		m.states[m.current].Exit()
	}
	m.current = id
	m.states[id].Enter()
}

// Current returns the active state id.
func (m *Machine) Current() StateID { return m.current }

func (m *Machine) HandleCardClick(c *Card) {
	if s, ok := m.states[m.current]; ok {
		s.HandleCardClick(c)
	}
}

func (m *Machine) HandleKey() {
	if s, ok := m.states[m.current]; ok {
		s.HandleKey()
	}
}

func (m *Machine) Update() {
	s, ok := m.states[m.current]
	if !ok {
		return
	}
	next := s.Update()
	if next == StateNone {
		return
	}
	if _, ok := m.states[next]; !ok {
		panic(fmt.Sprintf("transition to unregistered state %s", next))
	}
	s.Exit()
	m.current = next
	m.states[next].Enter()
}
