package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the toolkit font. No font assets ship with the game; the
// fixed basicfont covers everything the table needs.
var Face font.Face = basicfont.Face7x13

const lineHeight = 14

// Label is a block of text at a fixed position.
type Label struct {
	X, Y    int
	Text    string
	Color   color.Color
	Visible bool
}

func NewLabel(x, y int, s string) *Label {
	return &Label{X: x, Y: y, Text: s, Color: color.White, Visible: true}
}

func (l *Label) Draw(screen *ebiten.Image) {
	if !l.Visible || l.Text == "" {
		return
	}
	for i, line := range strings.Split(l.Text, "\n") {
		text.Draw(screen, line, Face, l.X, l.Y+lineHeight*(i+1), l.Color)
	}
}

// Button is a labelled rectangle with a click callback.
type Button struct {
	X, Y, W, H int
	Text       string
	Visible    bool
	OnClick    func()

	zone *Zone
}

func NewButton(x, y, w, h int, s string, onClick func()) *Button {
	b := &Button{X: x, Y: y, W: w, H: h, Text: s, OnClick: onClick}
	b.zone = &Zone{X: x, Y: y, W: w, H: h, Z: 100, Click: func(Msg) Cmd {
		if b.Visible && b.OnClick != nil {
			b.OnClick()
		}
		return nil
	}}
	return b
}

func (b *Button) Zone() *Zone { return b.zone }

func (b *Button) Draw(screen *ebiten.Image) {
	if !b.Visible {
		return
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
		color.NRGBA{0x3a, 0x5f, 0x3a, 0xff}, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1,
		color.White, false)
	tw := font.MeasureString(Face, b.Text).Ceil()
	text.Draw(screen, b.Text, Face, b.X+(b.W-tw)/2, b.Y+(b.H+lineHeight)/2-2, color.White)
}
