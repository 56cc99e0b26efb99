package engine

import (
	"github.com/lox/holdem-rules/internal/deck"
	"github.com/lox/holdem-rules/internal/evaluator"
)

// ShowdownWinners evaluates every live player's best hand and names the
// winner(s) of each pot, so a driver can resolve a showdown automatically
// instead of picking winners by hand. Ties split the pot; winners are listed
// in seat order.
//
// When the hand has no side pots the single result carries an empty PotID
// and should be settled with SelectWinner or SelectMultipleWinners;
// otherwise pass the results to DistributePots.
func ShowdownWinners(g *GameState) []PotResult {
	if !g.ShowdownRequired {
		return nil
	}

	values := make(map[string]evaluator.HandValue)
	for _, p := range g.LivePlayers() {
		if len(p.HoleCards) != 2 {
			continue
		}
		cards := append(append([]deck.Card{}, p.HoleCards...), g.Community...)
		values[p.ID] = evaluator.Evaluate(cards)
	}

	if len(g.SidePots) == 0 {
		return []PotResult{{WinnerIDs: bestOf(g, values, nil)}}
	}

	results := make([]PotResult, 0, len(g.SidePots))
	for _, pot := range g.SidePots {
		results = append(results, PotResult{
			PotID:     pot.ID,
			WinnerIDs: bestOf(g, values, pot.Eligible),
		})
	}
	return results
}

// bestOf returns the IDs of the strongest hands among the eligible players
// (all live players when eligible is nil), in seat order.
func bestOf(g *GameState, values map[string]evaluator.HandValue, eligible []string) []string {
	allowed := func(id string) bool { return true }
	if eligible != nil {
		set := make(map[string]bool, len(eligible))
		for _, id := range eligible {
			set[id] = true
		}
		allowed = func(id string) bool { return set[id] }
	}

	var winners []string
	var best evaluator.HandValue
	for _, p := range g.Players {
		v, ok := values[p.ID]
		if !ok || !allowed(p.ID) {
			continue
		}
		if len(winners) == 0 {
			winners = []string{p.ID}
			best = v
			continue
		}
		switch v.Compare(best) {
		case 1:
			winners = []string{p.ID}
			best = v
		case 0:
			winners = append(winners, p.ID)
		}
	}
	return winners
}
