package screens

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/feltwork/hearts/hearts"
	"github.com/feltwork/hearts/ui"
)

// Seat layout on the 800x800 table: the human sits at the bottom with
// cards face up, opponents fan out left, top and right, face down.
var (
	handStart = [4][2]float64{{212, 645}, {150, 200}, {588, 150}, {650, 575}}
	handStep  = [4][2]float64{{25, 0}, {0, 25}, {-25, 0}, {0, -25}}
	handAngle = [4]float64{0, 270, 180, 90}
	trickSlot = [4][2]float64{{362, 400}, {400, 362}, {438, 400}, {400, 438}}
	scoreCols = [4]int{280, 340, 400, 460}
)

var felt = color.NRGBA{0x1e, 0x5c, 0x2e, 0xff}

// Table is the game screen. It implements hearts.Table for the core
// and ui.Model for the program loop.
type Table struct {
	game    *hearts.Game
	sprites map[*hearts.Card]*ui.Sprite
	zones   []*ui.Zone
	button  *ui.Button
	names   [4]*ui.Label
	audio   *ui.Audio
	aceCue  *ui.Sound

	rows       [][4]string
	showScores bool
	over       bool
	winner     string

	Width, Height int
}

func NewTable(width, height int, opts ...hearts.Option) *Table {
	t := &Table{
		sprites: make(map[*hearts.Card]*ui.Sprite, 52),
		Width:   width,
		Height:  height,
	}
	t.audio = ui.NewAudio()
	t.aceCue = t.audio.NewTone(220, 1500*time.Millisecond)
	t.button = ui.NewButton(340, 400, 120, 30, "Start next round", func() {
		t.game.HandleKey()
	})
	opts = append(opts, hearts.WithTable(t))
	t.game = hearts.NewGame(opts...)
	for i, p := range t.game.Players {
		x := int(handStart[i][0])
		y := int(handStart[i][1]) - 40
		if i != 0 {
			y = int(handStart[i][1]) - 25
		}
		t.names[i] = ui.NewLabel(x, y, p.Name)
	}
	return t
}

// Game exposes the running session, mainly for tests.
func (t *Table) Game() *hearts.Game { return t.game }

// spriteFor lazily creates the sprite for a card.
func (t *Table) spriteFor(c *hearts.Card) *ui.Sprite {
	if s, ok := t.sprites[c]; ok {
		return s
	}
	rank := c.Value.String()
	switch c.Value {
	case hearts.Jack, hearts.Queen, hearts.King, hearts.Ace:
		rank = rank[:1]
	}
	suit := c.Suit.String()[:1]
	red := c.Suit == hearts.Diamonds || c.Suit == hearts.Hearts
	s := ui.NewSprite(ui.CardFace(rank, suit, red), ui.CardBack())
	t.sprites[c] = s
	return s
}

// HandsDealt lays every hand out along its seat's fan and rebuilds
// the human hand's click zones.
func (t *Table) HandsDealt(g *hearts.Game) {
	t.zones = t.zones[:0]
	for seat, p := range g.Players {
		for i, c := range p.Hand {
			s := t.spriteFor(c)
			s.Visible = true
			s.FaceUp = seat == 0
			s.Angle = handAngle[seat]
			s.Z = 1 + float64(i)*0.1
			s.SetLocation(
				handStart[seat][0]+float64(i)*handStep[seat][0],
				handStart[seat][1]+float64(i)*handStep[seat][1],
			)
			if seat == 0 {
				card := c
				z := s.Zone()
				z.Click = func(ui.Msg) ui.Cmd {
					t.game.HandleCardClick(card)
					return nil
				}
				t.zones = append(t.zones, z)
			}
		}
	}
}

func (t *Table) CardPlayed(c *hearts.Card, seat int) {
	s := t.spriteFor(c)
	s.FaceUp = true
	s.Angle = 0
	s.Z = 50 + float64(len(t.game.Trick))
	s.SetLocation(trickSlot[seat][0], trickSlot[seat][1])
}

func (t *Table) TrickTaken(winner int) {
	// Swept cards leave the table until the next deal.
	for _, p := range t.game.Players {
		for _, c := range p.Tricks {
			if s, ok := t.sprites[c]; ok {
				s.Visible = false
			}
		}
	}
}

func (t *Table) RaiseCard(c *hearts.Card) { t.spriteFor(c).Move(0, -25) }
func (t *Table) LowerCard(c *hearts.Card) { t.spriteFor(c).Move(0, 25) }

func (t *Table) ShowScores(rows [][4]string, over bool, winner string) {
	t.rows = rows
	t.showScores = true
	t.over = over
	t.winner = winner
	t.button.Visible = true
	if over {
		t.button.Text = "Game over"
	}
}

func (t *Table) HideScores() {
	t.showScores = false
	t.button.Visible = false
}

func (t *Table) PlayAceCue() { t.aceCue.PlayIfNotPlaying() }

func (t *Table) Init() ui.Cmd { return nil }

func (t *Table) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	switch m := msg.(type) {
	case ui.Tick:
		t.game.Update()
	case ui.KeyEvent:
		// The scoring screen advances by button only.
		if m.Key != ebiten.KeyEscape && t.game.State() != hearts.StateScoring {
			t.game.HandleKey()
		}
	}
	return t, nil
}

func (t *Table) Zones() []*ui.Zone {
	zones := make([]*ui.Zone, 0, len(t.zones)+1)
	zones = append(zones, t.zones...)
	zones = append(zones, t.button.Zone())
	return zones
}

func (t *Table) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(t.Width), float32(t.Height), felt, false)
	for _, l := range t.names {
		l.Draw(screen)
	}
	sprites := make([]*ui.Sprite, 0, len(t.sprites))
	for _, s := range t.sprites {
		sprites = append(sprites, s)
	}
	ui.DrawSprites(screen, sprites)

	if t.showScores {
		for i, p := range t.game.Players {
			ui.NewLabel(scoreCols[i], 0, p.Name).Draw(screen)
		}
		for r, row := range t.rows {
			for i, cell := range row {
				ui.NewLabel(scoreCols[i], 30*(r+1)-14, cell).Draw(screen)
			}
		}
		if t.over {
			ui.NewLabel(340, 440, t.winner+" wins!").Draw(screen)
		}
	}
	t.button.Draw(screen)
}
