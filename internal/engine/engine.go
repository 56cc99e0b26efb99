// Package engine implements a no-limit Texas Hold'em rules engine. It owns
// the authoritative game state for a room: stacks, betting rounds, community
// cards and pots, and it enforces the legal-action rules of the game.
//
// The engine is a pure, synchronous state machine. Every operation takes a
// state snapshot and returns a new snapshot; rejected actions return the
// input unchanged. Callers serialize actions per room; independent rooms may
// be driven in parallel.
package engine

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Engine applies transitions to room snapshots. It holds no game state of
// its own, only the logger and clock shared by transitions.
type Engine struct {
	logger *log.Logger
	clock  quartz.Clock
}

// New creates an engine. A nil logger discards output; a nil clock uses the
// real time source.
func New(logger *log.Logger, clock quartz.Clock) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Engine{logger: logger, clock: clock}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// minRaiseTo returns the smallest legal raise target: the current bet plus
// the last full raise increment, floored at the big blind.
func minRaiseTo(g *GameState) int {
	return g.CurrentBet + max(g.LastRaiseAmount, g.BigBlind)
}

// chipLeader returns the ID of the player with the largest stack, ties
// broken by seat order.
func chipLeader(g *GameState) string {
	leader := ""
	best := -1
	for _, p := range g.Players {
		if p.Chips > best {
			best = p.Chips
			leader = p.ID
		}
	}
	return leader
}
