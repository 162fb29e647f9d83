package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Card faces are drawn procedurally rather than loaded from sprite
// sheets, so the game needs no image assets. Faces are cached per
// (rank, suit) on first use.

const (
	CardW = 75
	CardH = 105
)

var (
	faceCache = map[string]*ebiten.Image{}
	backCache *ebiten.Image

	cardWhite = color.NRGBA{0xf8, 0xf8, 0xf0, 0xff}
	cardRed   = color.NRGBA{0xc0, 0x20, 0x20, 0xff}
	cardBlack = color.NRGBA{0x10, 0x10, 0x10, 0xff}
	cardBlue  = color.NRGBA{0x20, 0x30, 0x80, 0xff}
)

// CardFace returns the front image for a rank label ("2".."10", "J",
// "Q", "K", "A") and a suit label ("C", "D", "S", "H"). Diamonds and
// hearts render red.
func CardFace(rank, suit string, red bool) *ebiten.Image {
	key := rank + suit
	if img, ok := faceCache[key]; ok {
		return img
	}
	ink := color.Color(cardBlack)
	if red {
		ink = cardRed
	}
	img := ebiten.NewImage(CardW, CardH)
	vector.DrawFilledRect(img, 0, 0, CardW, CardH, cardWhite, false)
	vector.StrokeRect(img, 0.5, 0.5, CardW-1, CardH-1, 1, cardBlack, false)

	corner := rank + suit
	text.Draw(img, corner, Face, 4, 14, ink)
	w := font.MeasureString(Face, corner).Ceil()
	text.Draw(img, corner, Face, CardW-4-w, CardH-6, ink)

	cw := font.MeasureString(Face, suit).Ceil()
	text.Draw(img, suit, Face, (CardW-cw)/2, CardH/2+4, ink)

	faceCache[key] = img
	return img
}

// CardBack returns the shared back image.
func CardBack() *ebiten.Image {
	if backCache != nil {
		return backCache
	}
	img := ebiten.NewImage(CardW, CardH)
	vector.DrawFilledRect(img, 0, 0, CardW, CardH, cardBlue, false)
	vector.StrokeRect(img, 0.5, 0.5, CardW-1, CardH-1, 1, cardWhite, false)
	vector.StrokeRect(img, 5.5, 5.5, CardW-11, CardH-11, 1, cardWhite, false)
	backCache = img
	return img
}
