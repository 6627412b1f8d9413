// Package day07 solves "Camel Cards".
package day07

import (
	_ "embed"
	"cmp"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/maisem/aoc2023"
)

//go:embed day07.go
var Source []byte

// Kind is the type of a hand, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (k Kind) String() string {
	return [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}[k]
}

// Rules decide how hands compare.
type Rules struct {
	order  string // card labels, weakest first
	jokers bool   // J completes any group

	kinds *lru.Cache[string, Kind]
}

func newRules(order string, jokers bool) *Rules {
	return &Rules{
		order:  order,
		jokers: jokers,
		kinds:  aoc.MustGet(lru.New[string, Kind](1024)),
	}
}

// Standard has J as the jack.
func Standard() *Rules { return newRules("23456789TJQKA", false) }

// Jokers has J as the weakest card and a wildcard for the hand's kind.
func Jokers() *Rules { return newRules("J23456789TQKA", true) }

// Kind returns the type of hand.
func (r *Rules) Kind(hand string) Kind {
	if k, ok := r.kinds.Get(hand); ok {
		return k
	}
	k := r.kind(hand)
	r.kinds.Add(hand, k)
	return k
}

func (r *Rules) kind(hand string) Kind {
	counts := map[rune]int{}
	jokers := 0
	for _, c := range hand {
		if r.jokers && c == 'J' {
			jokers++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	groups = append(groups, 0, 0)
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by kind, then card by card.
func (r *Rules) Compare(a, b string) int {
	if c := cmp.Compare(r.Kind(a), r.Kind(b)); c != 0 {
		return c
	}
	for i := range min(len(a), len(b)) {
		if c := cmp.Compare(strings.IndexByte(r.order, a[i]), strings.IndexByte(r.order, b[i])); c != 0 {
			return c
		}
	}
	return 0
}

type Bid struct {
	Hand string
	Bid  int
}

func (r *Rules) parse(lines []string) ([]Bid, error) {
	bids := make([]Bid, 0, len(lines))
	for i, line := range lines {
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, aoc.AtLine(aoc.Malformedf(line, "want <hand> <bid>"), i)
		}
		hand := f[0]
		if len(hand) != 5 {
			return nil, aoc.AtLine(aoc.Malformedf(line, "hand has %d cards", len(hand)), i)
		}
		for _, c := range hand {
			if !strings.ContainsRune(r.order, c) {
				return nil, aoc.AtLine(aoc.Malformedf(line, "unknown card %q", c), i)
			}
		}
		n, err := aoc.Int(f[1])
		if err != nil {
			return nil, aoc.AtLine(err, i)
		}
		bids = append(bids, Bid{hand, n})
	}
	return bids, nil
}

// Winnings ranks the bids weakest first and sums bid*rank.
func (r *Rules) Winnings(lines []string) (int, error) {
	bids, err := r.parse(lines)
	if err != nil {
		return 0, err
	}
	slices.SortStableFunc(bids, func(a, b Bid) int {
		return r.Compare(a.Hand, b.Hand)
	})
	total := 0
	for i, b := range bids {
		total += b.Bid * (i + 1)
	}
	return total, nil
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func Part1(lines []string) (int, error) {
	return Standard().Winnings(lines)
}

// want=5905
func Part2(lines []string) (int, error) {
	return Jokers().Winnings(lines)
}
