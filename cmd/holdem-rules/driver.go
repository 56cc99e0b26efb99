package main

import (
	"errors"
	"fmt"
	"os"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-rules/internal/config"
	"github.com/lox/holdem-rules/internal/display"
	"github.com/lox/holdem-rules/internal/engine"
	"github.com/lox/holdem-rules/internal/randutil"
)

// setupLogger builds the CLI logger. Debug output goes to stderr so that
// rendered game output on stdout stays clean.
func setupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// tableResult summarizes one table's run.
type tableResult struct {
	Table      string
	Hands      int
	Survivors  int
	ChipLeader string
}

// runTable plays the configured number of hands at one table, driven by a
// simple seeded policy. A nil renderer runs silently.
func runTable(e *engine.Engine, table config.TableConfig, seed int64, renderer *display.Renderer) (tableResult, error) {
	g := engine.NewRoom(engine.RoomOptions{
		TableName:    table.Name,
		PlayerNames:  table.Players,
		InitialChips: table.InitialChips,
		SmallBlind:   table.SmallBlind,
		BigBlind:     table.BigBlind,
		Rake:         table.Rake,
	})
	rng := randutil.New(seed)

	played := 0
	for hand := 0; hand < table.Hands && len(g.Players) >= 2; hand++ {
		next, err := e.StartHand(g, rng)
		if errors.Is(err, engine.ErrInsufficientChipsForBlind) {
			break
		}
		if err != nil {
			return tableResult{}, fmt.Errorf("table %s hand %d: %w", table.Name, hand+1, err)
		}
		g = next
		played++

		if renderer != nil {
			renderer.HandHeader(g)
			renderer.Table(g)
		}

		g, err = playHand(e, g, rng, renderer)
		if err != nil {
			return tableResult{}, fmt.Errorf("table %s hand %d: %w", table.Name, hand+1, err)
		}

		if renderer != nil {
			renderer.Winners(g)
		}
	}

	leader := ""
	if p := g.PlayerByID(g.ChipLeader); p != nil {
		leader = p.Name
	}
	return tableResult{
		Table:      table.Name,
		Hands:      played,
		Survivors:  len(g.Players),
		ChipLeader: leader,
	}, nil
}

// playHand drives one hand to completion.
func playHand(e *engine.Engine, g *engine.GameState, rng *rand.Rand, renderer *display.Renderer) (*engine.GameState, error) {
	for g.HandActive && !g.ShowdownRequired {
		for g.CurrentPlayerSeat != nil {
			p := g.PlayerBySeat(*g.CurrentPlayerSeat)
			action, amount := choose(g, p, rng)

			next, rej := e.ApplyAction(g, p.ID, action, amount)
			if rej != nil {
				return g, fmt.Errorf("policy picked an illegal action %s: %s", action, rej.Message)
			}
			g = next

			if renderer != nil && len(g.History) > 0 {
				renderer.Action(g, g.History[len(g.History)-1])
			}
		}

		prev := g.Street
		g = e.AdvanceStreet(g)
		if renderer != nil && g.HandActive && g.Street != prev {
			renderer.Street(g)
		}
	}

	if g.ShowdownRequired {
		results := engine.ShowdownWinners(g)
		if len(g.SidePots) > 0 {
			g = e.DistributePots(g, results)
		} else if len(results) == 1 {
			g = e.SelectMultipleWinners(g, results[0].WinnerIDs)
		}
	}
	return g, nil
}

// choose picks an action for the seat to act: mostly passive with
// occasional raises and folds, which keeps hands short and deterministic
// for a given seed.
func choose(g *engine.GameState, p *engine.Player, rng *rand.Rand) (engine.ActionType, int) {
	actions := engine.ValidActions(g)
	can := func(a engine.ActionType) bool {
		for _, x := range actions {
			if x == a {
				return true
			}
		}
		return false
	}

	roll := rng.IntN(10)
	switch {
	case roll == 0 && can(engine.Bet):
		return engine.Bet, g.BigBlind
	case roll == 0 && can(engine.Raise):
		return engine.Raise, g.CurrentBet + max(g.LastRaiseAmount, g.BigBlind)
	case roll == 1 && can(engine.Call) && p.CurrentBet+p.Chips > g.CurrentBet:
		return engine.Fold, 0
	case can(engine.Check):
		return engine.Check, 0
	case can(engine.Call):
		return engine.Call, 0
	default:
		return engine.AllIn, 0
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
