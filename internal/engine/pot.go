package engine

import (
	"fmt"
	"sort"
)

// PotResult names the winners of one pot for distribution. WinnerIDs order
// matters: odd chips left by the even split go to earlier winners first.
type PotResult struct {
	PotID     string
	WinnerIDs []string
}

// ComputeSidePots derives the pot tiers created by unequal all-in
// contributions. It is a pure query: the state is not modified.
//
// Tiers are built from the distinct hand totals of un-folded all-in players,
// ascending. Each tier holds (level - previousLevel) chips from every
// un-folded player who reached the level and is winnable only by those
// players. Whatever the tiers do not account for (bets beyond the top all-in
// level, and dead money from folded players) forms a final pot for the
// un-folded players who bet at least the top level. With no all-ins the
// result is empty and the main pot stands as-is.
func ComputeSidePots(g *GameState) []SidePot {
	var levels []int
	seen := make(map[int]bool)
	for _, p := range g.Players {
		if p.AllIn && !p.Folded && p.TotalBet > 0 && !seen[p.TotalBet] {
			seen[p.TotalBet] = true
			levels = append(levels, p.TotalBet)
		}
	}
	if len(levels) == 0 {
		return nil
	}
	sort.Ints(levels)

	var pots []SidePot
	remaining := g.Pot
	prev := 0

	for _, level := range levels {
		var eligible []string
		count := 0
		for _, p := range g.Players {
			if !p.Folded && p.TotalBet >= level {
				eligible = append(eligible, p.ID)
				count++
			}
		}

		amount := (level - prev) * count
		if amount > 0 {
			pots = append(pots, SidePot{
				ID:       fmt.Sprintf("pot-%d", len(pots)+1),
				Amount:   amount,
				Eligible: eligible,
			})
			remaining -= amount
		}
		prev = level
	}

	if remaining > 0 {
		// Money beyond the top all-in level, plus dead money from folded
		// players, goes to the players who bet past that level. If the
		// excess is dead money only, it falls to the top tier's players.
		top := levels[len(levels)-1]
		var eligible []string
		for _, p := range g.Players {
			if !p.Folded && p.TotalBet > top {
				eligible = append(eligible, p.ID)
			}
		}
		if len(eligible) == 0 {
			for _, p := range g.Players {
				if !p.Folded && p.TotalBet >= top {
					eligible = append(eligible, p.ID)
				}
			}
		}
		pots = append(pots, SidePot{
			ID:       fmt.Sprintf("pot-%d", len(pots)+1),
			Amount:   remaining,
			Eligible: eligible,
		})
	}

	return pots
}

// DistributePots pays out the materialized side pots to the given winners
// and ends the hand. Each pot is raked, split evenly among its eligible
// winners, and the remainder handed out one chip at a time in winner-list
// order. Winners not eligible for a pot are ignored; a pot with no eligible
// winner named is left unsettled and logged.
func (e *Engine) DistributePots(g *GameState, results []PotResult) *GameState {
	n := g.Clone()

	var winners []string
	for _, result := range results {
		var pot *SidePot
		for i := range n.SidePots {
			if n.SidePots[i].ID == result.PotID {
				pot = &n.SidePots[i]
				break
			}
		}
		if pot == nil || pot.Amount == 0 {
			e.logger.Warn("unknown or settled pot in distribution", "potID", result.PotID)
			continue
		}

		eligible := make(map[string]bool, len(pot.Eligible))
		for _, id := range pot.Eligible {
			eligible[id] = true
		}
		var paid []string
		for _, id := range result.WinnerIDs {
			if eligible[id] && n.PlayerByID(id) != nil {
				paid = append(paid, id)
			}
		}
		if len(paid) == 0 {
			e.logger.Warn("no eligible winners for pot", "potID", result.PotID)
			continue
		}

		e.payout(n, pot.Amount, paid)
		pot.Amount = 0

		for _, id := range paid {
			winners = append(winners, id)
		}
	}

	settled := true
	for _, sp := range n.SidePots {
		if sp.Amount > 0 {
			settled = false
		}
	}
	if settled {
		n.SidePots = nil
	}

	n.Pot = 0
	n.RoundWinners = winners
	e.finishHand(n)

	return n
}

// SelectWinner awards the entire main pot to a single player, for showdowns
// resolved manually or hands with no side pots.
func (e *Engine) SelectWinner(g *GameState, winnerID string) *GameState {
	return e.SelectMultipleWinners(g, []string{winnerID})
}

// SelectMultipleWinners splits the main pot among the given winners after
// rake, remainder chips going to earlier winners in the list.
func (e *Engine) SelectMultipleWinners(g *GameState, winnerIDs []string) *GameState {
	if len(winnerIDs) == 0 {
		return g
	}
	for _, id := range winnerIDs {
		if g.PlayerByID(id) == nil {
			e.logger.Warn("unknown winner", "playerID", id)
			return g
		}
	}

	n := g.Clone()
	e.payout(n, n.Pot, winnerIDs)
	n.Pot = 0
	n.RoundWinners = append([]string(nil), winnerIDs...)
	e.finishHand(n)

	return n
}

// payout rakes an amount and splits the rest among winners. The integer
// remainder goes one chip per winner in list order until exhausted; this
// order dependence is part of the contract so that replays reproduce chip
// counts exactly.
func (e *Engine) payout(g *GameState, amount int, winnerIDs []string) {
	rake := int(float64(amount) * g.Rake)
	payable := amount - rake

	share := payable / len(winnerIDs)
	remainder := payable % len(winnerIDs)

	for i, id := range winnerIDs {
		w := g.PlayerByID(id)
		w.Chips += share
		if i < remainder {
			w.Chips++
		}
	}

	e.logger.Debug("pot paid",
		"amount", amount,
		"rake", rake,
		"winners", len(winnerIDs))
}

// finishHand closes out a settled hand: clears the showdown flag, bumps the
// completed-hand counter, recomputes the chip leader and removes busted
// players.
func (e *Engine) finishHand(g *GameState) {
	g.ShowdownRequired = false
	g.HandActive = false
	g.CurrentPlayerSeat = nil
	g.CompletedRounds++
	g.ChipLeader = chipLeader(g)
	pruneBusted(g)
}
