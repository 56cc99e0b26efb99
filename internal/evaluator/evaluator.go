// Package evaluator computes the best five-card poker hand from up to seven
// cards (two hole cards plus the board). The result is a comparable value:
// category first, then a category-specific tie-break vector, plus the five
// cards that make the hand. Evaluation is a pure function with no shared
// state.
package evaluator

import (
	"sort"
	"strings"

	"github.com/lox/holdem-rules/internal/deck"
)

// Category represents the type of a poker hand, ordered by strength.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandValue is the comparable strength of a hand: category, then the
// tie-break ranks in order of significance, plus the five contributing cards.
type HandValue struct {
	Category Category
	Tiebreak []deck.Rank
	Cards    []deck.Card
}

// Compare returns 1 if v beats o, -1 if o beats v, 0 on an exact tie.
// Comparison is a total order: category index first, then lexicographic
// compare of the tie-break vectors.
func (v HandValue) Compare(o HandValue) int {
	if v.Category != o.Category {
		if v.Category > o.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(v.Tiebreak) && i < len(o.Tiebreak); i++ {
		if v.Tiebreak[i] != o.Tiebreak[i] {
			if v.Tiebreak[i] > o.Tiebreak[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// IsRoyal reports whether the hand is an ace-high straight flush.
func (v HandValue) IsRoyal() bool {
	return v.Category == StraightFlush && len(v.Tiebreak) > 0 && v.Tiebreak[0] == deck.Ace
}

// String returns a description like "Straight Flush (Ah Kh Qh Jh Th)".
func (v HandValue) String() string {
	name := v.Category.String()
	if v.IsRoyal() {
		name = "Royal Flush"
	}
	codes := make([]string, len(v.Cards))
	for i, c := range v.Cards {
		codes[i] = c.Code()
	}
	return name + " (" + strings.Join(codes, " ") + ")"
}

// Evaluate returns the best five-card hand value from the given cards.
// It accepts five to seven cards; with fewer than five cards only the
// pair-family categories are reachable and the value is still comparable.
func Evaluate(cards []deck.Card) HandValue {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rank > sorted[j].Rank })

	// Straight flush / flush. With seven cards a flush excludes quads and
	// full houses, so returning here is safe.
	if flush := flushCards(sorted); flush != nil {
		if run := straightRun(flush); run != nil {
			return HandValue{
				Category: StraightFlush,
				Tiebreak: []deck.Rank{run[0].Rank},
				Cards:    run,
			}
		}
		top := flush[:5]
		return HandValue{Category: Flush, Tiebreak: ranksOf(top), Cards: top}
	}

	groups := rankGroups(sorted)

	// Four of a kind: quad rank then one kicker
	if len(groups[0].cards) == 4 {
		best := append([]deck.Card{}, groups[0].cards...)
		kicker := highestExcluding(sorted, groups[0].rank)
		best = append(best, kicker)
		return HandValue{
			Category: FourOfAKind,
			Tiebreak: []deck.Rank{groups[0].rank, kicker.Rank},
			Cards:    best,
		}
	}

	// Full house: trips plus any pair (a second trips plays as the pair)
	if len(groups[0].cards) == 3 && len(groups) > 1 && len(groups[1].cards) >= 2 {
		best := append([]deck.Card{}, groups[0].cards...)
		best = append(best, groups[1].cards[:2]...)
		return HandValue{
			Category: FullHouse,
			Tiebreak: []deck.Rank{groups[0].rank, groups[1].rank},
			Cards:    best,
		}
	}

	if run := straightRun(sorted); run != nil {
		return HandValue{
			Category: Straight,
			Tiebreak: []deck.Rank{run[0].Rank},
			Cards:    run,
		}
	}

	// Three of a kind: trips rank then two kickers
	if len(groups[0].cards) == 3 {
		best := append([]deck.Card{}, groups[0].cards...)
		kickers := topExcluding(sorted, 2, groups[0].rank)
		best = append(best, kickers...)
		return HandValue{
			Category: ThreeOfAKind,
			Tiebreak: append([]deck.Rank{groups[0].rank}, ranksOf(kickers)...),
			Cards:    best,
		}
	}

	// Two pair: both pair ranks then one kicker
	if len(groups[0].cards) == 2 && len(groups) > 1 && len(groups[1].cards) == 2 {
		best := append([]deck.Card{}, groups[0].cards...)
		best = append(best, groups[1].cards...)
		kickers := topExcluding(sorted, 1, groups[0].rank, groups[1].rank)
		best = append(best, kickers...)
		return HandValue{
			Category: TwoPair,
			Tiebreak: append([]deck.Rank{groups[0].rank, groups[1].rank}, ranksOf(kickers)...),
			Cards:    best,
		}
	}

	// One pair: pair rank then three kickers
	if len(groups[0].cards) == 2 {
		best := append([]deck.Card{}, groups[0].cards...)
		kickers := topExcluding(sorted, 3, groups[0].rank)
		best = append(best, kickers...)
		return HandValue{
			Category: Pair,
			Tiebreak: append([]deck.Rank{groups[0].rank}, ranksOf(kickers)...),
			Cards:    best,
		}
	}

	n := 5
	if len(sorted) < n {
		n = len(sorted)
	}
	top := sorted[:n]
	return HandValue{Category: HighCard, Tiebreak: ranksOf(top), Cards: top}
}

type rankGroup struct {
	rank  deck.Rank
	cards []deck.Card
}

// rankGroups groups cards by rank, ordered by count descending then rank
// descending. Input must be sorted by rank descending.
func rankGroups(sorted []deck.Card) []rankGroup {
	var groups []rankGroup
	for _, c := range sorted {
		if len(groups) > 0 && groups[len(groups)-1].rank == c.Rank {
			g := &groups[len(groups)-1]
			g.cards = append(g.cards, c)
			continue
		}
		groups = append(groups, rankGroup{rank: c.Rank, cards: []deck.Card{c}})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].cards) != len(groups[j].cards) {
			return len(groups[i].cards) > len(groups[j].cards)
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

// flushCards returns the cards of a five-plus-card suit, rank descending,
// or nil if there is no flush. Input must be sorted by rank descending.
func flushCards(sorted []deck.Card) []deck.Card {
	bySuit := make(map[deck.Suit][]deck.Card, 4)
	for _, c := range sorted {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	for _, cards := range bySuit {
		if len(cards) >= 5 {
			return cards
		}
	}
	return nil
}

// straightRun finds the highest five-card straight, returning its cards high
// to low, or nil. The wheel (A-2-3-4-5) plays the ace low: the run is
// 5-4-3-2-A and its high rank is Five. Input must be sorted by rank
// descending.
func straightRun(sorted []deck.Card) []deck.Card {
	// One card per distinct rank, highest first
	distinct := make([]deck.Card, 0, len(sorted))
	for _, c := range sorted {
		if len(distinct) == 0 || distinct[len(distinct)-1].Rank != c.Rank {
			distinct = append(distinct, c)
		}
	}

	for i := 0; i+4 < len(distinct); i++ {
		if distinct[i].Rank-distinct[i+4].Rank == 4 {
			run := make([]deck.Card, 5)
			copy(run, distinct[i:i+5])
			return run
		}
	}

	// Wheel: ace plays low under the five
	if len(distinct) >= 5 && distinct[0].Rank == deck.Ace {
		var wheel []deck.Card
		for want := deck.Five; want >= deck.Two; want-- {
			for _, c := range distinct {
				if c.Rank == want {
					wheel = append(wheel, c)
					break
				}
			}
		}
		if len(wheel) == 4 {
			return append(wheel, distinct[0])
		}
	}

	return nil
}

func ranksOf(cards []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return ranks
}

func highestExcluding(sorted []deck.Card, exclude ...deck.Rank) deck.Card {
	return topExcluding(sorted, 1, exclude...)[0]
}

func topExcluding(sorted []deck.Card, n int, exclude ...deck.Rank) []deck.Card {
	out := make([]deck.Card, 0, n)
	for _, c := range sorted {
		skip := false
		for _, r := range exclude {
			if c.Rank == r {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
			if len(out) == n {
				break
			}
		}
	}
	return out
}
