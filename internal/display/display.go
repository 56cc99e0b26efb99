// Package display renders room snapshots for terminal output.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-rules/internal/deck"
	"github.com/lox/holdem-rules/internal/engine"
)

// Styles contains styling for game output
type Styles struct {
	Header    lipgloss.Style
	Winner    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Pot       lipgloss.Style
	Muted     lipgloss.Style
	Dealer    lipgloss.Style
}

// NewStyles creates the default style set
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Dealer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
	}
}

// Renderer writes formatted game snapshots to an output stream.
type Renderer struct {
	w      io.Writer
	styles *Styles
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: NewStyles()}
}

// HandHeader prints a compact one-line header for a new hand.
func (r *Renderer) HandHeader(g *engine.GameState) {
	fmt.Fprintf(r.w, "Hand #%d at %s: %d players, blinds %d/%d\n",
		g.CompletedRounds+1, g.TableName, len(g.Players), g.SmallBlind, g.BigBlind)
}

// Street prints the street banner and the board dealt so far.
func (r *Renderer) Street(g *engine.GameState) {
	banner := fmt.Sprintf("*** %s ***", strings.ToUpper(g.Street.String()))
	fmt.Fprintln(r.w, r.styles.Header.Render(banner))
	if len(g.Community) > 0 {
		fmt.Fprintf(r.w, "Board: %s\n", r.Cards(g.Community))
	}
	fmt.Fprintf(r.w, "Pot: %s\n", r.styles.Pot.Render(fmt.Sprintf("%d", g.Pot)))
}

// Table prints every seat with its stack and current state.
func (r *Renderer) Table(g *engine.GameState) {
	for _, p := range g.Players {
		var marks []string
		if p.Seat == g.DealerSeat {
			marks = append(marks, r.styles.Dealer.Render("BTN"))
		}
		if p.Folded {
			marks = append(marks, r.styles.Muted.Render("folded"))
		}
		if p.AllIn {
			marks = append(marks, "all-in")
		}
		if g.CurrentPlayerSeat != nil && p.Seat == *g.CurrentPlayerSeat {
			marks = append(marks, "to act")
		}

		line := fmt.Sprintf("  %d. %-10s %6d", p.Seat, p.Name, p.Chips)
		if p.CurrentBet > 0 {
			line += fmt.Sprintf("  bet %d", p.CurrentBet)
		}
		if len(marks) > 0 {
			line += "  " + strings.Join(marks, " ")
		}
		fmt.Fprintln(r.w, line)
	}
}

// Action prints one accepted action.
func (r *Renderer) Action(g *engine.GameState, entry engine.HistoryEntry) {
	p := g.PlayerByID(entry.PlayerID)
	name := entry.PlayerID
	if p != nil {
		name = p.Name
	}
	switch {
	case entry.Type == engine.AllIn:
		fmt.Fprintf(r.w, "%s goes all-in for %d (pot %d)\n", name, entry.Amount, entry.Pot)
	case entry.Amount > 0:
		fmt.Fprintf(r.w, "%s %ss %d (pot %d)\n", name, entry.Type, entry.Amount, entry.Pot)
	default:
		fmt.Fprintf(r.w, "%s %ss\n", name, entry.Type)
	}
}

// Winners prints the hand result.
func (r *Renderer) Winners(g *engine.GameState) {
	if len(g.RoundWinners) == 0 {
		return
	}
	names := make([]string, 0, len(g.RoundWinners))
	for _, id := range g.RoundWinners {
		if p := g.PlayerByID(id); p != nil {
			names = append(names, p.Name)
		} else {
			names = append(names, id)
		}
	}
	fmt.Fprintln(r.w, r.styles.Winner.Render(fmt.Sprintf("Winner: %s", strings.Join(names, ", "))))
}

// Cards renders a card list with suit-colored codes.
func (r *Renderer) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = r.styles.CardRed.Render(c.String())
		} else {
			parts[i] = r.styles.CardBlack.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
