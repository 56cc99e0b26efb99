package engine

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-rules/internal/randutil"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(log.New(io.Discard), quartz.NewMock(t))
}

// testRoom creates a room and immediately starts a hand with a fixed seed.
func testRoom(t *testing.T, e *Engine, names []string, chips, sb, bb int, rake float64) *GameState {
	t.Helper()
	g := NewRoom(RoomOptions{
		TableName:    "test",
		PlayerNames:  names,
		InitialChips: chips,
		SmallBlind:   sb,
		BigBlind:     bb,
		Rake:         rake,
	})
	g, err := e.StartHand(g, randutil.New(42))
	if err != nil {
		t.Fatalf("StartHand failed: %v", err)
	}
	return g
}

// seatPtr is a convenience for literal states in tests.
func seatPtr(seat int) *int {
	return &seat
}

// mustApply applies an action and fails the test on rejection.
func mustApply(t *testing.T, e *Engine, g *GameState, playerID string, action ActionType, amount int) *GameState {
	t.Helper()
	next, rej := e.ApplyAction(g, playerID, action, amount)
	if rej != nil {
		t.Fatalf("action %s by %s rejected: %s", action, playerID, rej.Message)
	}
	return next
}

// currentPlayer returns the player whose seat is open to act.
func currentPlayer(t *testing.T, g *GameState) *Player {
	t.Helper()
	if g.CurrentPlayerSeat == nil {
		t.Fatal("no seat open to act")
	}
	return g.PlayerBySeat(*g.CurrentPlayerSeat)
}
