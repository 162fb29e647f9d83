package hearts

// roundPoints tallies one player's trick pile: a point per heart and
// thirteen for the queen of spades.
func roundPoints(p *Player) int {
	pts := 0
	for _, c := range p.Tricks {
		switch {
		case c.Suit == Hearts:
			pts++
		case c.Is(Spades, Queen):
			pts += 13
		}
	}
	return pts
}

// applyMoon inverts the round when one player swept all twenty-six
// points: the shooter scores zero and everyone else twenty-six.
func applyMoon(pts [4]int) [4]int {
	for i, p := range pts {
		if p == 26 {
			for j := range pts {
				pts[j] = 26
			}
			pts[i] = 0
			break
		}
	}
	return pts
}

// lowestTotal returns the player with the fewest total points, the
// earliest seat on ties.
func lowestTotal(players [4]*Player) *Player {
	best := players[0]
	for _, p := range players[1:] {
		if p.TotalPoints < best.TotalPoints {
			best = p
		}
	}
	return best
}
