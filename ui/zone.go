package ui

// Zone is a clickable rectangle. Z orders overlapping zones; the
// topmost one under the cursor receives clicks and hover events.
type Zone struct {
	X, Y, W, H int
	Z          float64
	Click      func(msg Msg) Cmd
	Enter      func(msg Msg) Cmd
	Leave      func(msg Msg) Cmd
	hovered    bool
}

func (z *Zone) InBounds(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

func (z *Zone) Move(dx, dy int) {
	z.X += dx
	z.Y += dy
}
