package engine

import (
	"github.com/lox/holdem-rules/internal/gameid"
)

// RoomOptions configures a new room.
type RoomOptions struct {
	TableName    string
	PlayerNames  []string
	InitialChips int
	SmallBlind   int
	BigBlind     int
	Rake         float64 // optional, defaults to 0
}

// NewRoom builds the initial state for a table: every named player seated
// with the starting stack, dealer at seat 0, no active hand. Blind and stack
// sufficiency are validated at hand start, not here. The deck is created per
// hand from the random source passed to StartHand.
func NewRoom(opts RoomOptions) *GameState {
	players := make([]*Player, len(opts.PlayerNames))
	for i, name := range opts.PlayerNames {
		players[i] = &Player{
			ID:    gameid.New(),
			Name:  name,
			Seat:  i,
			Chips: opts.InitialChips,
		}
	}

	return &GameState{
		RoomID:     gameid.New(),
		TableName:  opts.TableName,
		Players:    players,
		DealerSeat: 0,
		SmallBlind: opts.SmallBlind,
		BigBlind:   opts.BigBlind,
		Rake:       opts.Rake,
		Street:     Preflop,
	}
}
