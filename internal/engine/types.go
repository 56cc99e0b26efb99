package engine

import (
	"fmt"
	"time"

	"github.com/lox/holdem-rules/internal/deck"
)

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// ActionType represents a player action
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a ActionType) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// ParseActionType parses an action name as it appears in the wire form
// ("fold", "check", "call", "bet", "raise", "allin").
func ParseActionType(s string) (ActionType, error) {
	for a := Fold; a <= AllIn; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Player represents a seated player. The seat index is fixed for the
// duration of a hand and is the key for turn order; it is never re-derived
// from slice position mid-hand.
type Player struct {
	ID             string
	Name           string
	Seat           int
	Chips          int
	CurrentBet     int // chips committed this street; resets every street
	TotalBet       int // chips committed this hand; feeds side-pot math
	Folded         bool
	AllIn          bool
	HoleCards      []deck.Card
	ActedThisRound bool
}

func (p *Player) clone() *Player {
	cp := *p
	if p.HoleCards != nil {
		cp.HoleCards = append([]deck.Card(nil), p.HoleCards...)
	}
	return &cp
}

// SidePot is a pot tier with a restricted set of eligible winners, created
// when all-in amounts differ among players.
type SidePot struct {
	ID       string
	Amount   int
	Eligible []string // player IDs
}

func (sp SidePot) clone() SidePot {
	cp := sp
	cp.Eligible = append([]string(nil), sp.Eligible...)
	return cp
}

// HistoryEntry is an immutable record of one accepted action.
type HistoryEntry struct {
	ID        string
	Type      ActionType
	PlayerID  string
	Amount    int
	Street    Street
	Pot       int // pot total after the action
	Timestamp time.Time
}

// GameState is a snapshot of a room. Transitions never mutate their input:
// every accepted operation returns a newly constructed state, and a rejected
// one returns the input unchanged.
type GameState struct {
	RoomID    string
	TableName string

	// Players ordered by seat; between hands seats are compacted so that
	// Players[i].Seat == i.
	Players []*Player

	DealerSeat int
	SmallBlind int
	BigBlind   int
	Rake       float64 // fraction of each pot retained, in [0, 1]

	Pot             int
	SidePots        []SidePot
	CurrentBet      int
	LastRaiseAmount int

	// CurrentPlayerSeat is nil exactly when the betting round is closed.
	CurrentPlayerSeat *int

	Street    Street
	Community []deck.Card
	Deck      *deck.Deck

	History []HistoryEntry

	HandActive       bool
	RoundWinners     []string
	CompletedRounds  int
	ChipLeader       string
	ShowdownRequired bool
}

// Clone deep-copies the snapshot.
func (g *GameState) Clone() *GameState {
	cp := *g

	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp.Players[i] = p.clone()
	}

	if g.SidePots != nil {
		cp.SidePots = make([]SidePot, len(g.SidePots))
		for i, sp := range g.SidePots {
			cp.SidePots[i] = sp.clone()
		}
	}

	if g.CurrentPlayerSeat != nil {
		seat := *g.CurrentPlayerSeat
		cp.CurrentPlayerSeat = &seat
	}

	cp.Community = append([]deck.Card(nil), g.Community...)
	cp.Deck = g.Deck.Clone()
	cp.History = append([]HistoryEntry(nil), g.History...)
	cp.RoundWinners = append([]string(nil), g.RoundWinners...)

	return &cp
}

// PlayerBySeat returns the player at the given seat, or nil. Seats map
// one-to-one onto the players slice, which keeps the lookup O(1) and the
// invariant checkable.
func (g *GameState) PlayerBySeat(seat int) *Player {
	if seat < 0 || seat >= len(g.Players) {
		return nil
	}
	p := g.Players[seat]
	if p.Seat != seat {
		// Seats must stay aligned with slice positions between hands.
		for _, q := range g.Players {
			if q.Seat == seat {
				return q
			}
		}
		return nil
	}
	return p
}

// PlayerByID returns the player with the given ID, or nil.
func (g *GameState) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// LivePlayers returns the players still contesting the hand (not folded),
// in seat order.
func (g *GameState) LivePlayers() []*Player {
	live := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if !p.Folded {
			live = append(live, p)
		}
	}
	return live
}

// TotalChips returns the chips in play: stacks plus pot plus side pots.
// Outside of rake deduction this total is conserved by every transition.
func (g *GameState) TotalChips() int {
	total := g.Pot
	for _, sp := range g.SidePots {
		total += sp.Amount
	}
	for _, p := range g.Players {
		total += p.Chips
	}
	return total
}
