package engine

// AdvanceStreet moves a closed betting round to the next street: burns and
// deals community cards, resets per-street fields and seats the first actor
// left of the button. It is a no-op unless the hand is active and the round
// is closed (CurrentPlayerSeat == nil).
//
// When one un-folded player remains the hand ends immediately with a
// walkover award. When the river round closes with two or more un-folded
// players the side pots are materialized and the hand waits for winner
// resolution (ShowdownRequired).
func (e *Engine) AdvanceStreet(g *GameState) *GameState {
	if !g.HandActive || g.CurrentPlayerSeat != nil || g.ShowdownRequired {
		return g
	}

	n := g.Clone()

	for _, p := range n.Players {
		p.CurrentBet = 0
		p.ActedThisRound = false
	}
	n.CurrentBet = 0
	n.LastRaiseAmount = 0
	// TotalBet is deliberately not reset: side-pot math needs it

	live := n.LivePlayers()
	if len(live) <= 1 {
		// No street to deal: the hand was won by folds
		if len(live) == 1 {
			e.awardWalkover(n, live[0])
		} else {
			n.HandActive = false
		}
		pruneBusted(n)
		return n
	}

	if n.Street < River {
		n.Street++
		n.Deck.Burn()
		switch n.Street {
		case Flop:
			n.Community = append(n.Community, n.Deck.DealN(3)...)
		case Turn, River:
			n.Community = append(n.Community, n.Deck.DealN(1)...)
		}

		// First actor is the first live seat left of the button; nil when
		// everyone left is all-in, so repeated AdvanceStreet calls run the
		// board out.
		n.CurrentPlayerSeat = nextToAct(n, (n.DealerSeat+1)%len(n.Players))

		e.logger.Debug("street advanced",
			"street", n.Street,
			"board", len(n.Community),
			"pot", n.Pot)
	} else {
		// River betting is complete
		n.SidePots = ComputeSidePots(n)
		if len(n.SidePots) > 0 {
			// The pot moves into its tiers so that chips are counted
			// exactly once
			n.Pot = 0
		}
		n.ShowdownRequired = true
		e.logger.Debug("showdown required",
			"live", len(live),
			"sidePots", len(n.SidePots))
	}

	pruneBusted(n)

	return n
}

// awardWalkover pays the whole pot (minus rake) to the last un-folded
// player and ends the hand.
func (e *Engine) awardWalkover(g *GameState, winner *Player) {
	rake := int(float64(g.Pot) * g.Rake)
	g.Pot -= rake
	winner.Chips += g.Pot
	g.Pot = 0
	g.RoundWinners = []string{winner.ID}
	g.CompletedRounds++
	g.ChipLeader = chipLeader(g)
	g.HandActive = false

	e.logger.Debug("hand won by fold",
		"winner", winner.Name,
		"rake", rake)
}

// pruneBusted removes busted players from the roster. A player is busted
// only once they are no longer contesting the hand: an all-in player has an
// empty stack but stays seated until the pots resolve. After a completed
// hand the surviving seats are compacted and the button pinned to the
// nearest surviving seat at or before its old position, so the next hand's
// rotation lands on the correct player.
func pruneBusted(g *GameState) {
	survivors := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		contesting := g.HandActive && !p.Folded
		if p.Chips > 0 || contesting {
			survivors = append(survivors, p)
		}
	}
	if len(survivors) == len(g.Players) {
		return
	}

	if g.HandActive {
		// Mid-hand removal would shift seats under an open round; zero-chip
		// players here are all-in contenders and were kept above.
		g.Players = survivors
		return
	}

	newDealer := -1
	for i, p := range survivors {
		if p.Seat <= g.DealerSeat {
			newDealer = i
		}
	}
	if newDealer == -1 {
		// Button sat before every survivor; it wraps to the last seat
		newDealer = len(survivors) - 1
	}

	for i, p := range survivors {
		p.Seat = i
	}
	g.Players = survivors
	g.DealerSeat = newDealer
}
