package ui

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a double-sided image with a screen position, a rotation
// in degrees and a draw order. Cards are sprites: the front face
// shows when FaceUp is set, the back otherwise.
type Sprite struct {
	Front, Back *ebiten.Image
	X, Y        float64
	Z           float64
	Angle       float64
	Visible     bool
	FaceUp      bool

	zone *Zone
}

func NewSprite(front, back *ebiten.Image) *Sprite {
	return &Sprite{Front: front, Back: back, Visible: true, FaceUp: true}
}

// SetLocation moves the sprite and its click zone to an absolute
// position.
func (s *Sprite) SetLocation(x, y float64) {
	s.X = x
	s.Y = y
	s.syncZone()
}

// Move shifts the sprite by a delta.
func (s *Sprite) Move(dx, dy float64) {
	s.X += dx
	s.Y += dy
	s.syncZone()
}

// Zone lazily creates the sprite's click area, kept in step with the
// sprite's position and rotation.
func (s *Sprite) Zone() *Zone {
	if s.zone == nil {
		s.zone = &Zone{}
		s.syncZone()
	}
	return s.zone
}

func (s *Sprite) syncZone() {
	if s.zone == nil {
		return
	}
	w, h := s.bounds()
	s.zone.X = int(s.X)
	s.zone.Y = int(s.Y)
	s.zone.W = w
	s.zone.H = h
	s.zone.Z = s.Z
}

// bounds is the axis-aligned size after rotation. Only quarter turns
// occur on the table, so swapping the sides is enough.
func (s *Sprite) bounds() (int, int) {
	img := s.Front
	if !s.FaceUp {
		img = s.Back
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if q := int(math.Round(s.Angle/90)) % 2; q != 0 {
		w, h = h, w
	}
	return w, h
}

func (s *Sprite) Draw(screen *ebiten.Image) {
	if !s.Visible {
		return
	}
	img := s.Front
	if !s.FaceUp {
		img = s.Back
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	bw, bh := s.bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(s.Angle * math.Pi / 180)
	op.GeoM.Translate(s.X+float64(bw)/2, s.Y+float64(bh)/2)
	screen.DrawImage(img, op)
}

// DrawSprites renders sprites in Z order without disturbing the
// caller's slice.
func DrawSprites(screen *ebiten.Image, sprites []*Sprite) {
	ordered := make([]*Sprite, len(sprites))
	copy(ordered, sprites)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })
	for _, s := range ordered {
		s.Draw(screen)
	}
}
