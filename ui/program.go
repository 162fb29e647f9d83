package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseEnter
	MouseLeave
)

type Msg interface{}

// Tick is delivered once per frame after input events.
type Tick struct{}

type MouseEvent struct {
	X, Y   int
	Action MouseAction
	Button ebiten.MouseButton
	Zone   *Zone
}

type KeyEvent struct {
	Key ebiten.Key
}

type Cmd func() Msg

// Model is one screen of the application.
type Model interface {
	Init() Cmd
	Update(msg Msg) (Model, Cmd)
	Draw(screen *ebiten.Image)
	// Zones lists the clickable areas, bottom to top.
	Zones() []*Zone
}

// Program adapts a Model to the ebiten game loop, translating raw
// input into messages and routing clicks to the topmost zone under
// the cursor.
type Program struct {
	M                      Model
	Width, Height          int
	ShowDebug              bool
	LastMouseX, LastMouseY int
	initialized            bool
}

func (p *Program) Update() error {
	if !p.initialized {
		p.initialized = true
		p.runUpdate(p.M.Init())
	}
	mx, my := ebiten.CursorPosition()
	zones := p.M.Zones()
	if mx != p.LastMouseX || my != p.LastMouseY {
		top := topZoneAt(zones, mx, my)
		for _, z := range zones {
			hovered := z == top
			if hovered && !z.hovered && z.Enter != nil {
				p.runUpdate(z.Enter(MouseEvent{X: mx, Y: my, Action: MouseEnter, Zone: z}))
			}
			if !hovered && z.hovered && z.Leave != nil {
				p.runUpdate(z.Leave(MouseEvent{X: mx, Y: my, Action: MouseLeave, Zone: z}))
			}
			z.hovered = hovered
		}
		p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseMotion})
		p.LastMouseX = mx
		p.LastMouseY = my
	}
	for i := range ebiten.MouseButtonMax {
		b := ebiten.MouseButton(i)
		if inpututil.IsMouseButtonJustPressed(b) {
			ev := MouseEvent{X: mx, Y: my, Action: MousePress, Button: b}
			if z := topZoneAt(p.M.Zones(), mx, my); z != nil && z.Click != nil && b == ebiten.MouseButtonLeft {
				ev.Zone = z
				p.runUpdate(z.Click(ev))
			} else {
				p.runUpdate(ev)
			}
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseRelease, Button: b})
		}
	}
	for i := range ebiten.KeyMax {
		k := ebiten.Key(i)
		if inpututil.IsKeyJustReleased(k) {
			p.runUpdate(KeyEvent{Key: k})
		}
	}
	p.runUpdate(Tick{})
	return nil
}

func (p *Program) runUpdate(msg Msg) {
	var cmd Cmd
	for {
		if msg == nil {
			return
		}
		p.M, cmd = p.M.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.M.Draw(screen)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}

// topZoneAt finds the highest-Z zone containing the point.
func topZoneAt(zones []*Zone, x, y int) *Zone {
	var top *Zone
	for _, z := range zones {
		if z.InBounds(x, y) && (top == nil || z.Z >= top.Z) {
			top = z
		}
	}
	return top
}
