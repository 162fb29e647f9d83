package hearts

import "testing"

// recordingState notes its lifecycle calls and transitions when told.
type recordingState struct {
	entered, exited int
	next            StateID
}

func (s *recordingState) Enter()                { s.entered++ }
func (s *recordingState) Exit()                 { s.exited++; s.next = StateNone }
func (s *recordingState) HandleCardClick(*Card) {}
func (s *recordingState) HandleKey()            {}
func (s *recordingState) Update() StateID       { return s.next }

func TestMachineTransitions(t *testing.T) {
	first := &recordingState{}
	second := &recordingState{}
	m := NewMachine()
	m.Add(StateSetup, first)
	m.Add(StatePassing, second)
	m.Start(StateSetup)

	if m.Current() != StateSetup || first.entered != 1 {
		t.Fatalf("Start did not enter the initial state")
	}
	m.Update()
	if m.Current() != StateSetup {
		t.Fatalf("Machine moved without a transition")
	}
	first.next = StatePassing
	m.Update()
	if m.Current() != StatePassing {
		t.Fatalf("Machine did not follow the transition")
	}
	if first.exited != 1 || second.entered != 1 {
		t.Fatalf("Exit and Enter not paired: %d %d", first.exited, second.entered)
	}
}

func TestMachineRejectsDuplicateState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Duplicate registration did not panic")
		}
	}()
	m := NewMachine()
	m.Add(StateSetup, &recordingState{})
	m.Add(StateSetup, &recordingState{})
}

func TestMachineRejectsUnknownTransition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Transition to an unregistered state did not panic")
		}
	}()
	s := &recordingState{}
	m := NewMachine()
	m.Add(StateSetup, s)
	m.Start(StateSetup)
	s.next = StateOver
	m.Update()
}
