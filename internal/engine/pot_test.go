package engine

import "testing"

// sidePotState builds a river state whose pot equals the sum of the given
// hand totals.
func sidePotState(entries ...struct {
	id       string
	totalBet int
	allIn    bool
	folded   bool
}) *GameState {
	g := &GameState{HandActive: true, Street: River}
	pot := 0
	for i, e := range entries {
		g.Players = append(g.Players, &Player{
			ID:       e.id,
			Name:     e.id,
			Seat:     i,
			TotalBet: e.totalBet,
			AllIn:    e.allIn,
			Folded:   e.folded,
		})
		pot += e.totalBet
	}
	g.Pot = pot
	return g
}

type potEntry = struct {
	id       string
	totalBet int
	allIn    bool
	folded   bool
}

func TestComputeSidePotsShortAllIn(t *testing.T) {
	t.Parallel()

	// A is all-in for 50, B and C bet 100 each
	g := sidePotState(
		potEntry{id: "a", totalBet: 50, allIn: true},
		potEntry{id: "b", totalBet: 100},
		potEntry{id: "c", totalBet: 100},
	)
	pots := ComputeSidePots(g)

	if len(pots) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(pots))
	}
	if pots[0].Amount != 150 || len(pots[0].Eligible) != 3 {
		t.Errorf("main tier: amount=%d eligible=%v", pots[0].Amount, pots[0].Eligible)
	}
	if pots[1].Amount != 100 || len(pots[1].Eligible) != 2 {
		t.Errorf("side tier: amount=%d eligible=%v", pots[1].Amount, pots[1].Eligible)
	}
	for _, id := range pots[1].Eligible {
		if id == "a" {
			t.Error("the short all-in player must not contest the side tier")
		}
	}
}

func TestComputeSidePotsTwoAllInLevels(t *testing.T) {
	t.Parallel()

	g := sidePotState(
		potEntry{id: "a", totalBet: 30, allIn: true},
		potEntry{id: "b", totalBet: 80, allIn: true},
		potEntry{id: "c", totalBet: 120},
		potEntry{id: "d", totalBet: 120},
	)
	pots := ComputeSidePots(g)

	if len(pots) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(pots))
	}
	// 30 x 4, then 50 x 3, then the 40-each excess of c and d
	wantAmounts := []int{120, 150, 80}
	wantEligible := []int{4, 3, 2}
	for i, pot := range pots {
		if pot.Amount != wantAmounts[i] {
			t.Errorf("tier %d amount = %d, want %d", i, pot.Amount, wantAmounts[i])
		}
		if len(pot.Eligible) != wantEligible[i] {
			t.Errorf("tier %d eligible = %v, want %d players", i, pot.Eligible, wantEligible[i])
		}
	}
}

func TestComputeSidePotsDeadMoney(t *testing.T) {
	t.Parallel()

	// The folder's 20 is dead money: it fattens the pots but the folder
	// contests nothing
	g := sidePotState(
		potEntry{id: "a", totalBet: 50, allIn: true},
		potEntry{id: "b", totalBet: 50},
		potEntry{id: "folder", totalBet: 20, folded: true},
	)
	pots := ComputeSidePots(g)

	if len(pots) != 2 {
		t.Fatalf("expected main tier plus dead-money tier, got %d", len(pots))
	}
	if pots[0].Amount != 100 {
		t.Errorf("main tier amount = %d, want 100", pots[0].Amount)
	}
	if pots[1].Amount != 20 || len(pots[1].Eligible) != 2 {
		t.Errorf("dead money tier: amount=%d eligible=%v", pots[1].Amount, pots[1].Eligible)
	}
	for _, pot := range pots {
		for _, id := range pot.Eligible {
			if id == "folder" {
				t.Error("folded players are never eligible")
			}
		}
	}
}

func TestComputeSidePotsNoAllIns(t *testing.T) {
	t.Parallel()

	g := sidePotState(
		potEntry{id: "a", totalBet: 40},
		potEntry{id: "b", totalBet: 40},
	)
	if pots := ComputeSidePots(g); pots != nil {
		t.Errorf("no all-ins should yield no tiers, got %v", pots)
	}
}

func TestComputeSidePotsIsPure(t *testing.T) {
	t.Parallel()

	g := sidePotState(
		potEntry{id: "a", totalBet: 50, allIn: true},
		potEntry{id: "b", totalBet: 100},
		potEntry{id: "c", totalBet: 100},
	)
	_ = ComputeSidePots(g)

	if g.Pot != 250 || g.SidePots != nil {
		t.Error("computing side pots must not modify the state")
	}
}

func TestSelectWinnerTakesPotAfterRake(t *testing.T) {
	t.Parallel()
	e := testEngine(t)

	g := testRoom(t, e, []string{"Alice", "Bob", "Charlie"}, 1000, 5, 10, 0.05)
	g = completePreflop(t, e, g)
	winnerID := g.PlayerBySeat(1).ID

	g = e.SelectWinner(g, winnerID)

	// Pot 30, rake floor(30 * 0.05) = 1
	w := g.PlayerByID(winnerID)
	if w.Chips != 1019 {
		t.Errorf("winner should net 29 after rake: chips=%d", w.Chips)
	}
	if g.Pot != 0 || g.HandActive {
		t.Errorf("hand should be settled: pot=%d active=%v", g.Pot, g.HandActive)
	}
	if g.CompletedRounds != 1 {
		t.Errorf("completed rounds = %d", g.CompletedRounds)
	}
	if g.ChipLeader != winnerID {
		t.Errorf("chip leader should be the winner, got %s", g.ChipLeader)
	}
}

func TestSelectMultipleWinnersSplitsWithRemainder(t *testing.T) {
	t.Parallel()
	e := testEngine(t)

	g := testRoom(t, e, []string{"Alice", "Bob", "Charlie"}, 1000, 5, 10, 0)
	// Build an odd pot: raise to 25, call, call, BB makes it 25 too
	g = mustApply(t, e, g, currentPlayer(t, g).ID, Raise, 25)
	g = mustApply(t, e, g, currentPlayer(t, g).ID, Call, 0)
	g = mustApply(t, e, g, currentPlayer(t, g).ID, Call, 0)
	if g.Pot != 75 {
		t.Fatalf("pot = %d, want 75", g.Pot)
	}

	first := g.PlayerBySeat(1).ID
	second := g.PlayerBySeat(2).ID
	g = e.SelectMultipleWinners(g, []string{first, second})

	// 75 / 2 = 37 each; the odd chip goes to the first-listed winner
	if got := g.PlayerByID(first).Chips; got != 1013 {
		t.Errorf("first winner chips = %d, want 1013", got)
	}
	if got := g.PlayerByID(second).Chips; got != 1012 {
		t.Errorf("second winner chips = %d, want 1012", got)
	}
	if len(g.RoundWinners) != 2 {
		t.Errorf("round winners = %v", g.RoundWinners)
	}
}

func TestSelectWinnerUnknownPlayerIsNoop(t *testing.T) {
	t.Parallel()
	e := testEngine(t)

	g := testRoom(t, e, []string{"Alice", "Bob"}, 1000, 5, 10, 0)
	next := e.SelectWinner(g, "nobody")
	if next != g {
		t.Error("unknown winner must leave the state untouched")
	}
}

func TestDistributePotsSettlesTiers(t *testing.T) {
	t.Parallel()
	e := testEngine(t)

	g := sidePotState(
		potEntry{id: "a", totalBet: 50, allIn: true},
		potEntry{id: "b", totalBet: 100},
		potEntry{id: "c", totalBet: 100},
	)
	g.SidePots = ComputeSidePots(g)
	g.Pot = 0
	g.ShowdownRequired = true

	g = e.DistributePots(g, []PotResult{
		{PotID: "pot-1", WinnerIDs: []string{"a"}},
		{PotID: "pot-2", WinnerIDs: []string{"b"}},
	})

	if got := g.PlayerByID("a").Chips; got != 150 {
		t.Errorf("a should win the main tier: chips=%d", got)
	}
	if got := g.PlayerByID("b").Chips; got != 100 {
		t.Errorf("b should win the side tier: chips=%d", got)
	}
	if g.SidePots != nil || g.Pot != 0 {
		t.Errorf("all tiers should be settled: pots=%v pot=%d", g.SidePots, g.Pot)
	}
	if g.HandActive || g.ShowdownRequired {
		t.Error("distribution should end the hand")
	}
	if g.CompletedRounds != 1 {
		t.Errorf("completed rounds = %d", g.CompletedRounds)
	}
	// c busted with nothing won and leaves the table
	if g.PlayerByID("c") != nil {
		t.Error("busted player should be removed after the hand")
	}
}

func TestDistributePotsIgnoresIneligibleWinner(t *testing.T) {
	t.Parallel()
	e := testEngine(t)

	g := sidePotState(
		potEntry{id: "a", totalBet: 50, allIn: true},
		potEntry{id: "b", totalBet: 100},
		potEntry{id: "c", totalBet: 100},
	)
	g.SidePots = ComputeSidePots(g)
	g.Pot = 0
	g.ShowdownRequired = true

	// a is not eligible for pot-2; b collects it alone
	g = e.DistributePots(g, []PotResult{
		{PotID: "pot-1", WinnerIDs: []string{"a"}},
		{PotID: "pot-2", WinnerIDs: []string{"a", "b"}},
	})

	if got := g.PlayerByID("b").Chips; got != 100 {
		t.Errorf("b should take the whole side tier: chips=%d", got)
	}
}

func TestTotalChipsConservedThroughHand(t *testing.T) {
	t.Parallel()
	e := testEngine(t)

	g := testRoom(t, e, []string{"Alice", "Bob", "Charlie"}, 1000, 5, 10, 0)
	if g.TotalChips() != 3000 {
		t.Fatalf("total after blinds = %d", g.TotalChips())
	}

	g = completePreflop(t, e, g)
	for i := 0; i < 3; i++ {
		g = e.AdvanceStreet(g)
		if g.TotalChips() != 3000 {
			t.Fatalf("total on %s = %d", g.Street, g.TotalChips())
		}
		g = completeStreet(t, e, g)
	}

	g = e.AdvanceStreet(g)
	if g.TotalChips() != 3000 {
		t.Fatalf("total at showdown = %d", g.TotalChips())
	}

	g = e.SelectWinner(g, g.PlayerBySeat(0).ID)
	if g.TotalChips() != 3000 {
		t.Fatalf("total after payout = %d", g.TotalChips())
	}
}
