package deck

import "testing"

func TestCardCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card Card
		code string
	}{
		{NewCard(Ace, Hearts), "Ah"},
		{NewCard(Ten, Diamonds), "Td"},
		{NewCard(Two, Clubs), "2c"},
		{NewCard(King, Spades), "Ks"},
		{NewCard(Nine, Hearts), "9h"},
	}

	for _, tt := range tests {
		if got := tt.card.Code(); got != tt.code {
			t.Errorf("Code() = %q, want %q", got, tt.code)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			parsed, err := Parse(card.Code())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", card.Code(), err)
			}
			if parsed != card {
				t.Errorf("Parse(%q) = %v, want %v", card.Code(), parsed, card)
			}
		}
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	for _, code := range []string{"", "A", "Ahh", "1h", "Ax", "0s"} {
		if _, err := Parse(code); err == nil {
			t.Errorf("Parse(%q) should fail", code)
		}
	}
}

func TestCardEquality(t *testing.T) {
	t.Parallel()
	if NewCard(Ace, Hearts) != NewCard(Ace, Hearts) {
		t.Error("identical cards should be equal")
	}
	if NewCard(Ace, Hearts) == NewCard(Ace, Spades) {
		t.Error("cards with different suits should not be equal")
	}
}

func TestIsRed(t *testing.T) {
	t.Parallel()
	if !NewCard(Ace, Hearts).IsRed() || !NewCard(Two, Diamonds).IsRed() {
		t.Error("hearts and diamonds are red")
	}
	if NewCard(Ace, Clubs).IsRed() || NewCard(Two, Spades).IsRed() {
		t.Error("clubs and spades are black")
	}
}
