package evaluator

import (
	"testing"

	"github.com/lox/holdem-rules/internal/deck"
)

func cards(codes ...string) []deck.Card {
	out, err := deck.ParseAll(codes...)
	if err != nil {
		panic(err)
	}
	return out
}

func TestRoyalFlush(t *testing.T) {
	t.Parallel()
	v := Evaluate(cards("Ah", "Kh", "Qh", "Jh", "Th", "2c", "3d"))

	if v.Category != StraightFlush {
		t.Fatalf("expected straight flush, got %s", v.Category)
	}
	if !v.IsRoyal() {
		t.Error("ace-high straight flush should be royal")
	}
	if v.Tiebreak[0] != deck.Ace {
		t.Errorf("royal flush tiebreak should be ace, got %v", v.Tiebreak[0])
	}

	// Beats any non-royal hand, e.g. quad aces
	quads := Evaluate(cards("Ah", "Ad", "Ac", "As", "Kd", "2c", "3d"))
	if v.Compare(quads) != 1 {
		t.Error("royal flush should beat four of a kind")
	}
}

func TestStraightFlushBeatsFlush(t *testing.T) {
	t.Parallel()
	sf := Evaluate(cards("9h", "8h", "7h", "6h", "5h", "Ac", "Ad"))
	if sf.Category != StraightFlush {
		t.Fatalf("expected straight flush, got %s", sf.Category)
	}
	if sf.Tiebreak[0] != deck.Nine {
		t.Errorf("straight flush high card should be 9, got %v", sf.Tiebreak[0])
	}

	fl := Evaluate(cards("Ah", "Kh", "7h", "6h", "5h", "2c", "3d"))
	if fl.Category != Flush {
		t.Fatalf("expected flush, got %s", fl.Category)
	}
	if sf.Compare(fl) != 1 {
		t.Error("straight flush should beat flush")
	}
}

func TestWheelStraight(t *testing.T) {
	t.Parallel()
	v := Evaluate(cards("Ah", "2c", "3d", "4s", "5h", "9c", "Jd"))

	if v.Category != Straight {
		t.Fatalf("expected straight, got %s", v.Category)
	}
	if v.Tiebreak[0] != deck.Five {
		t.Errorf("wheel straight value should be 5, got %v", v.Tiebreak[0])
	}

	// The wheel is the lowest straight
	six := Evaluate(cards("2h", "3c", "4d", "5s", "6h", "9c", "Jd"))
	if six.Compare(v) != 1 {
		t.Error("six-high straight should beat the wheel")
	}
}

func TestFourOfAKindKicker(t *testing.T) {
	t.Parallel()
	a := Evaluate(cards("7h", "7d", "7c", "7s", "Ah", "2c", "3d"))
	b := Evaluate(cards("7h", "7d", "7c", "7s", "Kh", "Qc", "3d"))

	if a.Category != FourOfAKind || b.Category != FourOfAKind {
		t.Fatalf("expected quads, got %s and %s", a.Category, b.Category)
	}
	if a.Compare(b) != 1 {
		t.Error("quads with ace kicker should beat quads with king kicker")
	}
	if len(a.Tiebreak) != 2 || a.Tiebreak[0] != deck.Seven || a.Tiebreak[1] != deck.Ace {
		t.Errorf("quads tiebreak should be [7 A], got %v", a.Tiebreak)
	}
}

func TestFullHouseFromTwoTrips(t *testing.T) {
	t.Parallel()
	v := Evaluate(cards("9h", "9d", "9c", "4h", "4d", "4c", "Ks"))

	if v.Category != FullHouse {
		t.Fatalf("expected full house, got %s", v.Category)
	}
	if v.Tiebreak[0] != deck.Nine || v.Tiebreak[1] != deck.Four {
		t.Errorf("full house tiebreak should be [9 4], got %v", v.Tiebreak)
	}
}

func TestThreeOfAKindKickers(t *testing.T) {
	t.Parallel()
	v := Evaluate(cards("8h", "8d", "8c", "Ah", "Jd", "4c", "2s"))

	if v.Category != ThreeOfAKind {
		t.Fatalf("expected trips, got %s", v.Category)
	}
	want := []deck.Rank{deck.Eight, deck.Ace, deck.Jack}
	for i, r := range want {
		if v.Tiebreak[i] != r {
			t.Fatalf("trips tiebreak = %v, want %v", v.Tiebreak, want)
		}
	}
}

func TestTwoPairOrdering(t *testing.T) {
	t.Parallel()
	v := Evaluate(cards("Kh", "Kd", "5c", "5h", "Ad", "2c", "3s"))

	if v.Category != TwoPair {
		t.Fatalf("expected two pair, got %s", v.Category)
	}
	want := []deck.Rank{deck.King, deck.Five, deck.Ace}
	for i, r := range want {
		if v.Tiebreak[i] != r {
			t.Fatalf("two pair tiebreak = %v, want %v", v.Tiebreak, want)
		}
	}
}

func TestPairAndHighCard(t *testing.T) {
	t.Parallel()
	pair := Evaluate(cards("6h", "6d", "Ah", "Jd", "9c", "4c", "2s"))
	if pair.Category != Pair {
		t.Fatalf("expected pair, got %s", pair.Category)
	}

	high := Evaluate(cards("Ah", "Kd", "Jh", "9d", "6c", "4c", "2s"))
	if high.Category != HighCard {
		t.Fatalf("expected high card, got %s", high.Category)
	}
	if pair.Compare(high) != 1 {
		t.Error("a pair should beat high card")
	}
}

func TestKickerBreaksTie(t *testing.T) {
	t.Parallel()
	a := Evaluate(cards("Th", "Td", "Ah", "8d", "6c", "4c", "2s"))
	b := Evaluate(cards("Tc", "Ts", "Kh", "8h", "6d", "4d", "2h"))

	if a.Compare(b) != 1 {
		t.Error("tens with ace kicker should beat tens with king kicker")
	}
	if b.Compare(a) != -1 {
		t.Error("comparison should be antisymmetric")
	}
}

func TestExactTie(t *testing.T) {
	t.Parallel()
	// Board plays for both: the hole cards are all below the board
	board := []string{"Ah", "Kd", "Qh", "Jd", "Tc"}
	a := Evaluate(cards(append([]string{"2h", "3d"}, board...)...))
	b := Evaluate(cards(append([]string{"4s", "5c"}, board...)...))

	if a.Compare(b) != 0 {
		t.Error("identical best hands should tie")
	}
}

func TestBoardOnlyFiveCards(t *testing.T) {
	t.Parallel()
	v := Evaluate(cards("Ah", "Kd", "Qh", "7d", "2c"))
	if v.Category != HighCard {
		t.Fatalf("expected high card, got %s", v.Category)
	}
	if len(v.Cards) != 5 {
		t.Errorf("expected 5 contributing cards, got %d", len(v.Cards))
	}
}

func TestStraightPrefersHighestRun(t *testing.T) {
	t.Parallel()
	v := Evaluate(cards("9h", "8d", "7h", "6d", "5c", "4c", "3s"))

	if v.Category != Straight {
		t.Fatalf("expected straight, got %s", v.Category)
	}
	if v.Tiebreak[0] != deck.Nine {
		t.Errorf("should pick the nine-high run, got %v high", v.Tiebreak[0])
	}
}

func TestContributingCards(t *testing.T) {
	t.Parallel()
	v := Evaluate(cards("Ah", "Kh", "Qh", "Jh", "Th", "2c", "3d"))

	if len(v.Cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(v.Cards))
	}
	for _, c := range v.Cards {
		if c.Suit != deck.Hearts {
			t.Errorf("royal flush card %s should be a heart", c.Code())
		}
	}
}
