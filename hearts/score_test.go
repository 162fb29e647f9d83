package hearts

import "testing"

func TestRoundPoints(t *testing.T) {
	p := NewPlayer("test", ComputerStrategy{})
	p.Tricks = []*Card{
		c(Hearts, Two), c(Hearts, Ten), c(Hearts, Ace),
		c(Spades, Queen), c(Clubs, Five),
	}
	if got := roundPoints(p); got != 16 {
		t.Fatalf("Scored %d, want 16", got)
	}
	p.Tricks = nil
	if got := roundPoints(p); got != 0 {
		t.Fatalf("Empty pile scored %d", got)
	}
}

func TestApplyMoon(t *testing.T) {
	got := applyMoon([4]int{0, 26, 0, 0})
	if got != [4]int{26, 0, 26, 26} {
		t.Fatalf("Moon gave %v", got)
	}
	plain := applyMoon([4]int{3, 13, 10, 0})
	if plain != [4]int{3, 13, 10, 0} {
		t.Fatalf("Ordinary round changed to %v", plain)
	}
}

func TestScoringAccumulates(t *testing.T) {
	g := &Game{
		Players: [4]*Player{
			NewPlayer("a", ComputerStrategy{}),
			NewPlayer("b", ComputerStrategy{}),
			NewPlayer("c", ComputerStrategy{}),
			NewPlayer("d", ComputerStrategy{}),
		},
		table: NopTable{},
	}
	g.Players[1].Tricks = []*Card{c(Hearts, Two), c(Hearts, Three)}
	g.Players[2].Tricks = []*Card{c(Spades, Queen)}

	s := newScoringState(g)
	s.Enter()

	want := [4]int{0, 2, 13, 0}
	for i, p := range g.Players {
		if p.TotalPoints != want[i] {
			t.Fatalf("%s has %d points, want %d", p.Name, p.TotalPoints, want[i])
		}
	}
	if s.over {
		t.Fatalf("Game over below 100 points")
	}
	s.HandleKey()
	if s.next != StateSetup {
		t.Fatalf("Confirm did not start the next round")
	}
}

func TestScoringEndsAtHundred(t *testing.T) {
	g := &Game{
		Players: [4]*Player{
			NewPlayer("a", ComputerStrategy{}),
			NewPlayer("b", ComputerStrategy{}),
			NewPlayer("c", ComputerStrategy{}),
			NewPlayer("d", ComputerStrategy{}),
		},
		table: NopTable{},
	}
	g.Players[3].TotalPoints = 99
	g.Players[3].Tricks = []*Card{c(Hearts, Six)}

	s := newScoringState(g)
	s.Enter()
	if !s.over {
		t.Fatalf("Game not over at 100 points")
	}
	s.HandleKey()
	if s.next != StateOver {
		t.Fatalf("Confirm did not end the game")
	}
	if best := lowestTotal(g.Players); best != g.Players[0] {
		t.Fatalf("Winner is %s, want the lowest total", best.Name)
	}
}
