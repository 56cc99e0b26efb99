package engine

import (
	"errors"
	rand "math/rand/v2"

	"github.com/lox/holdem-rules/internal/deck"
)

// Setup errors raised by StartHand. These are hard failures: the caller must
// not start the hand. Rule violations during play are soft Rejections, not
// errors.
var (
	ErrInsufficientPlayers       = errors.New("need at least 2 players to start a hand")
	ErrInsufficientChipsForBlind = errors.New("not enough chips to post blind")
)

// StartHand begins a new hand: rotates the dealer button, reshuffles a fresh
// deck from the provided random source, deals two hole cards to each seat and
// posts the blinds. Blinds are posted in full; a blind seat that cannot cover
// its blind is a setup error, not an all-in.
//
// The random source is explicit so that hands can be replayed
// deterministically in tests.
func (e *Engine) StartHand(g *GameState, rng *rand.Rand) (*GameState, error) {
	if g.HandActive {
		return g, nil
	}
	if len(g.Players) < 2 {
		return g, ErrInsufficientPlayers
	}

	n := g.Clone()
	numPlayers := len(n.Players)

	n.HandActive = true
	n.Street = Preflop
	n.Community = nil
	n.History = nil
	n.RoundWinners = nil
	n.SidePots = nil
	n.ShowdownRequired = false
	n.Pot = 0
	n.Deck = deck.New(rng)

	for _, p := range n.Players {
		p.CurrentBet = 0
		p.TotalBet = 0
		p.Folded = false
		p.AllIn = false
		p.HoleCards = nil
		p.ActedThisRound = false
	}

	n.DealerSeat = (n.DealerSeat + 1) % numPlayers

	// Two passes of one card each, in seat order from the top of the deck
	for pass := 0; pass < 2; pass++ {
		for _, p := range n.Players {
			card, _ := n.Deck.Deal()
			p.HoleCards = append(p.HoleCards, card)
		}
	}

	// Heads-up the dealer posts the small blind and acts first; otherwise
	// the blinds sit left of the button and action opens left of the big
	// blind.
	headsUp := numPlayers == 2
	var sbSeat, bbSeat int
	if headsUp {
		sbSeat = n.DealerSeat
		bbSeat = (n.DealerSeat + 1) % numPlayers
	} else {
		sbSeat = (n.DealerSeat + 1) % numPlayers
		bbSeat = (n.DealerSeat + 2) % numPlayers
	}

	sb := n.PlayerBySeat(sbSeat)
	bb := n.PlayerBySeat(bbSeat)
	if sb.Chips < n.SmallBlind || bb.Chips < n.BigBlind {
		return g, ErrInsufficientChipsForBlind
	}

	postBlind(sb, n.SmallBlind)
	postBlind(bb, n.BigBlind)

	n.Pot = n.SmallBlind + n.BigBlind
	n.CurrentBet = n.BigBlind
	n.LastRaiseAmount = n.BigBlind

	firstSeat := (bbSeat + 1) % numPlayers
	if headsUp {
		firstSeat = sbSeat
	}
	// A blind that consumed the whole stack is already all-in; scan past it
	n.CurrentPlayerSeat = nextToAct(n, firstSeat)

	e.logger.Debug("hand started",
		"room", n.RoomID,
		"dealer", n.DealerSeat,
		"sb", sbSeat,
		"bb", bbSeat,
		"firstToAct", firstSeat)

	return n, nil
}

// postBlind commits a full blind. The player keeps the option to act when
// the action returns to them, so ActedThisRound stays false.
func postBlind(p *Player, amount int) {
	p.Chips -= amount
	p.CurrentBet = amount
	p.TotalBet = amount
	p.ActedThisRound = false
	if p.Chips == 0 {
		p.AllIn = true
	}
}
