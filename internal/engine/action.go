package engine

import (
	"fmt"

	"github.com/lox/holdem-rules/internal/gameid"
)

// RejectCode classifies why an action was refused.
type RejectCode int

const (
	RejectNoActiveHand RejectCode = iota
	RejectRoundClosed
	RejectUnknownPlayer
	RejectPlayerFolded
	RejectPlayerAllIn
	RejectOutOfTurn
	RejectInvalidAmount
	RejectCheckFacingBet
	RejectBetAlreadyMade
	RejectBetTooSmall
	RejectRaiseTooSmall
	RejectInsufficientChips
)

// Rejection is the soft-failure channel for rule violations. A rejected
// action is never applied; the prior state is returned untouched.
type Rejection struct {
	Code    RejectCode
	Message string
}

func (r *Rejection) String() string {
	if r == nil {
		return "ok"
	}
	return r.Message
}

func reject(code RejectCode, format string, args ...any) *Rejection {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ValidateAction checks whether the player may take the given action right
// now. A nil return means the action is legal. Amount is the raise-to /
// bet-to total for bet and raise and is ignored otherwise.
func (e *Engine) ValidateAction(g *GameState, playerID string, action ActionType, amount int) *Rejection {
	if !g.HandActive {
		return reject(RejectNoActiveHand, "no active hand")
	}
	if g.CurrentPlayerSeat == nil {
		return reject(RejectRoundClosed, "betting round is closed")
	}

	player := g.PlayerByID(playerID)
	if player == nil {
		return reject(RejectUnknownPlayer, "player %s not found", playerID)
	}
	if player.Folded {
		return reject(RejectPlayerFolded, "player has folded")
	}
	if player.AllIn {
		return reject(RejectPlayerAllIn, "player is all-in")
	}
	if player.Seat != *g.CurrentPlayerSeat {
		return reject(RejectOutOfTurn, "not your turn")
	}

	switch action {
	case Bet, Raise:
		if amount <= 0 {
			return reject(RejectInvalidAmount, "invalid amount %d", amount)
		}
	}

	switch action {
	case Check:
		if player.CurrentBet < g.CurrentBet {
			return reject(RejectCheckFacingBet, "cannot check when facing a bet")
		}

	case Bet:
		if g.CurrentBet > 0 {
			return reject(RejectBetAlreadyMade, "cannot bet when there is already a bet")
		}
		if amount < g.BigBlind {
			return reject(RejectBetTooSmall, "bet must be at least the big blind (%d)", g.BigBlind)
		}
		if amount > player.Chips {
			return reject(RejectInsufficientChips, "bet of %d exceeds stack of %d", amount, player.Chips)
		}

	case Raise:
		if amount < minRaiseTo(g) {
			return reject(RejectRaiseTooSmall, "raise must be at least %d", minRaiseTo(g))
		}
		if amount-player.CurrentBet > player.Chips {
			return reject(RejectInsufficientChips, "raise to %d exceeds stack", amount)
		}

	case Call:
		if min(g.CurrentBet-player.CurrentBet, player.Chips) < 0 {
			return reject(RejectInvalidAmount, "invalid call amount")
		}
	}

	return nil
}

// ApplyAction validates and applies a single action. On success it returns a
// new state with the action applied, the acting seat advanced and a history
// entry appended. On rejection it returns the input state unchanged together
// with the reason; no partial mutation ever escapes.
func (e *Engine) ApplyAction(g *GameState, playerID string, action ActionType, amount int) (*GameState, *Rejection) {
	if rej := e.ValidateAction(g, playerID, action, amount); rej != nil {
		e.logger.Warn("action rejected",
			"player", playerID,
			"action", action,
			"amount", amount,
			"reason", rej.Message)
		return g, rej
	}

	n := g.Clone()
	player := n.PlayerByID(playerID)

	moved := 0      // chips leaving the player's stack
	fullRaise := false

	switch action {
	case Fold:
		player.Folded = true

	case Check:
		// no chip movement

	case Call:
		moved = min(n.CurrentBet-player.CurrentBet, player.Chips)

	case Bet:
		moved = amount
		n.CurrentBet = amount
		n.LastRaiseAmount = amount
		fullRaise = true

	case Raise:
		moved = amount - player.CurrentBet
		n.LastRaiseAmount = amount - n.CurrentBet
		n.CurrentBet = amount
		fullRaise = true

	case AllIn:
		moved = player.Chips
		total := player.CurrentBet + moved
		switch {
		case total >= minRaiseTo(n):
			// A full raise: reopens the action for everyone
			n.LastRaiseAmount = total - n.CurrentBet
			n.CurrentBet = total
			fullRaise = true
		case total > n.CurrentBet:
			// Short all-in: raises the price to call without reopening
			// the action, and leaves the raise increment untouched
			n.CurrentBet = total
		}
	}

	player.Chips -= moved
	player.CurrentBet += moved
	player.TotalBet += moved
	player.ActedThisRound = true
	if player.Chips == 0 && action != Fold && action != Check {
		player.AllIn = true
	}
	n.Pot += moved

	if fullRaise {
		for _, p := range n.Players {
			if !p.Folded && !p.AllIn && p.ID != player.ID {
				p.ActedThisRound = false
			}
		}
	}

	n.History = append(n.History, HistoryEntry{
		ID:        gameid.New(),
		Type:      action,
		PlayerID:  playerID,
		Amount:    moved,
		Street:    n.Street,
		Pot:       n.Pot,
		Timestamp: e.clock.Now(),
	})

	n.CurrentPlayerSeat = nextToAct(n, (player.Seat+1)%len(n.Players))

	e.logger.Debug("action applied",
		"player", player.Name,
		"action", action,
		"amount", moved,
		"pot", n.Pot,
		"currentBet", n.CurrentBet,
		"street", n.Street)

	return n, nil
}

// nextToAct returns the next seat that must act, scanning clockwise from the
// given seat, or nil if the betting round is closed. The round is closed
// when at most one player is still un-folded, when every un-folded player is
// all-in, or when every active player has acted this round and matched the
// current bet. The big blind's preflop option falls out of the acted flag:
// blinds are posted with ActedThisRound left false.
func nextToAct(g *GameState, from int) *int {
	live := 0
	active := 0
	allActedAndMatched := true
	for _, p := range g.Players {
		if p.Folded {
			continue
		}
		live++
		if p.AllIn {
			continue
		}
		active++
		if !p.ActedThisRound || p.CurrentBet != g.CurrentBet {
			allActedAndMatched = false
		}
	}

	if live <= 1 || active == 0 || allActedAndMatched {
		return nil
	}

	numPlayers := len(g.Players)
	for i := 0; i < numPlayers; i++ {
		seat := (from + i) % numPlayers
		p := g.PlayerBySeat(seat)
		if p == nil || p.Folded || p.AllIn {
			continue
		}
		if !p.ActedThisRound || p.CurrentBet < g.CurrentBet {
			return &seat
		}
	}
	return nil
}

// ValidActions returns the legal action types for the seat currently to
// act, or nil if no seat is open. Drivers use this to build action menus.
func ValidActions(g *GameState) []ActionType {
	if !g.HandActive || g.CurrentPlayerSeat == nil {
		return nil
	}
	p := g.PlayerBySeat(*g.CurrentPlayerSeat)
	if p == nil || p.Folded || p.AllIn {
		return nil
	}

	actions := []ActionType{Fold}
	toCall := g.CurrentBet - p.CurrentBet

	if toCall <= 0 {
		actions = append(actions, Check)
	} else {
		actions = append(actions, Call)
	}

	if g.CurrentBet == 0 && p.Chips >= g.BigBlind {
		actions = append(actions, Bet)
	}
	if g.CurrentBet > 0 && p.CurrentBet+p.Chips >= minRaiseTo(g) {
		actions = append(actions, Raise)
	}
	if p.Chips > 0 {
		actions = append(actions, AllIn)
	}

	return actions
}
