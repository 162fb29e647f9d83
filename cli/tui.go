// Package cli is the terminal client. It drives the same game core as
// the windowed table, with a cursor over the hand instead of a mouse.
package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/feltwork/hearts/hearts"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	raisedStyle = lipgloss.NewStyle().Underline(true).Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	scoreBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	cueStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))

	cueFor    = time.Second
	tickEvery = 50 * time.Millisecond
)

var suitGlyphs = map[hearts.Suit]string{
	hearts.Clubs:    "♣",
	hearts.Diamonds: "♦",
	hearts.Spades:   "♠",
	hearts.Hearts:   "♥",
}

// label renders a card as a short colored token like "Q♠" or "10♥".
func label(c *hearts.Card) string {
	rank := c.Value.String()
	switch c.Value {
	case hearts.Jack, hearts.Queen, hearts.King, hearts.Ace:
		rank = rank[:1]
	}
	s := rank + suitGlyphs[c.Suit]
	if c.Suit == hearts.Diamonds || c.Suit == hearts.Hearts {
		return redStyle.Render(s)
	}
	return blackStyle.Render(s)
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model. It doubles as the game's table
// collaborator: the core pushes score rows and the ace cue here, and
// everything else is rendered straight from game state each frame.
type Model struct {
	game   *hearts.Game
	human  *hearts.Player
	cursor int

	rows       [][4]string
	showScores bool
	over       bool
	winner     string
	cueUntil   time.Time
}

func New(opts ...hearts.Option) *Model {
	m := &Model{}
	opts = append(opts, hearts.WithTable(m))
	m.game = hearts.NewGame(opts...)
	m.human = m.game.Players[0]
	return m
}

func (m *Model) Game() *hearts.Game { return m.game }

func (m *Model) HandsDealt(g *hearts.Game) {
	if m.human != nil && m.cursor >= len(m.human.Hand) {
		m.cursor = 0
	}
}

func (m *Model) CardPlayed(c *hearts.Card, seat int) {
	if m.human != nil && m.cursor >= len(m.human.Hand) && m.cursor > 0 {
		m.cursor = len(m.human.Hand) - 1
	}
}

func (m *Model) TrickTaken(winner int) {}
func (m *Model) RaiseCard(*hearts.Card) {}
func (m *Model) LowerCard(*hearts.Card) {}

func (m *Model) ShowScores(rows [][4]string, over bool, winner string) {
	m.rows = rows
	m.showScores = true
	m.over = over
	m.winner = winner
}

func (m *Model) HideScores() { m.showScores = false }

func (m *Model) PlayAceCue() { m.cueUntil = time.Now().Add(cueFor) }

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.Update()
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.human.Hand)-1 {
				m.cursor++
			}
		case " ":
			if m.cursor < len(m.human.Hand) {
				m.game.HandleCardClick(m.human.Hand[m.cursor])
			}
		case "enter":
			if m.game.Over() {
				return m, tea.Quit
			}
			m.game.HandleKey()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	g := m.game

	b.WriteString(titleStyle.Render("Hearts"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  pass: %s", g.Order)))
	if g.HeartsBroken {
		b.WriteString(redStyle.Render("  ♥ broken"))
	}
	if time.Now().Before(m.cueUntil) {
		b.WriteString(cueStyle.Render("  ♠ the ace of spades!"))
	}
	b.WriteString("\n\n")

	for _, p := range g.Players[1:] {
		b.WriteString(fmt.Sprintf("  %-8s %s  %s\n",
			p.Name,
			dimStyle.Render(strings.Repeat("▮", len(p.Hand))),
			dimStyle.Render(fmt.Sprintf("%d pts", p.TotalPoints))))
	}
	b.WriteString("\n")

	b.WriteString("  trick: ")
	for _, played := range g.Trick {
		b.WriteString(fmt.Sprintf("%s %s  ", dimStyle.Render(played.By.Name), label(played.Card)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.handView())
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(m.prompt()))
	b.WriteString("\n")

	if m.showScores {
		b.WriteString("\n" + m.scoreView() + "\n")
	}
	return b.String()
}

func (m *Model) handView() string {
	var cells []string
	staged := m.human.Passing
	sel := m.selected()
	for i, c := range m.human.Hand {
		cell := label(c)
		if c == sel || contains(staged, c) {
			cell = raisedStyle.Render(cell)
		}
		if i == m.cursor {
			cell = cursorStyle.Render(cell)
		}
		cells = append(cells, cell)
	}
	return "  you:   " + strings.Join(cells, " ") +
		dimStyle.Render(fmt.Sprintf("   %d pts", m.human.TotalPoints))
}

func (m *Model) selected() *hearts.Card {
	if h, ok := m.human.Strategy.(*hearts.HumanStrategy); ok {
		return h.Selected()
	}
	return nil
}

func (m *Model) prompt() string {
	switch m.game.State() {
	case hearts.StatePassing:
		return fmt.Sprintf("  stage 3 cards to pass %s with space, enter to exchange (%d/3)",
			m.game.Order, len(m.human.Passing))
	case hearts.StatePlaying:
		return "  space selects a card, enter plays it"
	case hearts.StateScoring:
		if m.over {
			return "  enter to finish"
		}
		return "  enter for the next round"
	case hearts.StateOver:
		return "  " + m.winner + " wins! enter or q to quit"
	}
	return ""
}

func (m *Model) scoreView() string {
	var b strings.Builder
	for _, p := range m.game.Players {
		fmt.Fprintf(&b, "%-8s", p.Name)
	}
	for _, row := range m.rows {
		b.WriteString("\n")
		for _, cell := range row {
			fmt.Fprintf(&b, "%-8s", cell)
		}
	}
	if m.over {
		b.WriteString("\n\n" + m.winner + " wins!")
	}
	return scoreBox.Render(b.String())
}

func contains(cards []*hearts.Card, c *hearts.Card) bool {
	for _, o := range cards {
		if o == c {
			return true
		}
	}
	return false
}

// Run starts the terminal client and blocks until it quits.
func Run(opts ...hearts.Option) error {
	_, err := tea.NewProgram(New(opts...), tea.WithAltScreen()).Run()
	return err
}
