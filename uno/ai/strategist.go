package ai

import (
	"fmt"
	"strings"

	"github.com/feel-easy/uno-agent/uno/card"
	"github.com/feel-easy/uno-agent/uno/card/color"
	"github.com/feel-easy/uno-agent/uno/game"
	"github.com/feel-easy/uno-agent/uno/prob"
)

// Decision is the automated seat's chosen play plus the reasoning behind
// it, for the boundary's decision panel.
type Decision struct {
	Play      game.IndexedCard
	Rationale string
}

// Strategist picks the automated seat's card using the opponent model.
// Priorities, first match wins: disrupt an opponent close to going out,
// then the color match the next opponent is least likely to counter, then
// the cheapest number match, then a wildcard, then anything legal.
type Strategist struct {
	chooser Chooser
}

func NewStrategist(chooser Chooser) *Strategist {
	return &Strategist{chooser: chooser}
}

// ChooseCard returns the decision for the given legal plays, or false when
// there is nothing to play and the seat must draw.
func (s *Strategist) ChooseCard(plays []game.IndexedCard, matchCard card.Card, nextSeat, nextHandSize int, model *prob.Model) (Decision, bool) {
	if len(plays) == 0 {
		return Decision{}, false
	}

	var reasoning strings.Builder
	reasoning.WriteString("analysis:\n")

	if nextHandSize <= 3 {
		fmt.Fprintf(&reasoning, "next seat holds only %d card(s), preferring disruption\n", nextHandSize)
		var disruptive []game.IndexedCard
		for _, play := range plays {
			if isDisruptive(play.Card) {
				disruptive = append(disruptive, play)
			}
		}
		if len(disruptive) > 0 {
			selected := disruptive[s.chooser.Choose(len(disruptive))]
			fmt.Fprintf(&reasoning, "picked disruptive card %s", selected.Card)
			return Decision{Play: selected, Rationale: reasoning.String()}, true
		}
		reasoning.WriteString("no disruptive card in hand\n")
	}

	matchColor := matchCard.Color()

	// Color matches, scored by how likely the next opponent is to hold the
	// same classes. Lower is better: it denies them an easy counter-play.
	if selected, found := s.lowestLikelihood(plays, nextSeat, model, &reasoning, func(c card.Card) bool {
		return c.Color() != nil && c.Color() == matchColor && !sameRank(c, matchCard)
	}); found {
		fmt.Fprintf(&reasoning, "best color match %s", selected.Card)
		return Decision{Play: selected, Rationale: reasoning.String()}, true
	}

	// Number matches in another color, ranked the same way.
	if selected, found := s.lowestLikelihood(plays, nextSeat, model, &reasoning, func(c card.Card) bool {
		return sameNumber(c, matchCard) && c.Color() != matchColor
	}); found {
		fmt.Fprintf(&reasoning, "best number match %s", selected.Card)
		return Decision{Play: selected, Rationale: reasoning.String()}, true
	}

	var wildcards []game.IndexedCard
	for _, play := range plays {
		if game.IsWildcard(play.Card) {
			wildcards = append(wildcards, play)
		}
	}
	if len(wildcards) > 0 {
		selected := wildcards[s.chooser.Choose(len(wildcards))]
		fmt.Fprintf(&reasoning, "falling back to wildcard %s", selected.Card)
		return Decision{Play: selected, Rationale: reasoning.String()}, true
	}

	selected := plays[s.chooser.Choose(len(plays))]
	fmt.Fprintf(&reasoning, "no preference, playing %s", selected.Card)
	return Decision{Play: selected, Rationale: reasoning.String()}, true
}

// ChooseColor picks the replacement color for a wildcard play: the color
// the hand holds most of, ties broken in fixed color order.
func (s *Strategist) ChooseColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, held := range hand {
		if c := held.Color(); c != nil {
			counts[c]++
		}
	}
	var best color.Color = color.Red
	bestCount := 0
	for _, candidate := range color.All() {
		if counts[candidate] > bestCount {
			best = candidate
			bestCount = counts[candidate]
		}
	}
	return best
}

func (s *Strategist) lowestLikelihood(plays []game.IndexedCard, nextSeat int, model *prob.Model, reasoning *strings.Builder, matches func(card.Card) bool) (game.IndexedCard, bool) {
	var best game.IndexedCard
	bestScore := 0.0
	found := false
	for _, play := range plays {
		if !matches(play.Card) {
			continue
		}
		score := model.OpponentLikelihood(nextSeat, play.Card)
		fmt.Fprintf(reasoning, "%s scored %.2f\n", play.Card, score)
		if !found || score < bestScore {
			best = play
			bestScore = score
			found = true
		}
	}
	return best, found
}

// isDisruptive covers the cards that cost the victim tempo or cards: skip,
// reverse, draw two and wild draw four. A plain wildcard is not considered
// disruptive.
func isDisruptive(c card.Card) bool {
	switch c.(type) {
	case card.SkipCard, card.ReverseCard, card.DrawTwoCard, card.WildDrawFourCard:
		return true
	default:
		return false
	}
}

func sameRank(a, b card.Card) bool {
	if sameNumber(a, b) {
		return true
	}
	switch a.(type) {
	case card.SkipCard:
		_, ok := unwrap(b).(card.SkipCard)
		return ok
	case card.ReverseCard:
		_, ok := unwrap(b).(card.ReverseCard)
		return ok
	case card.DrawTwoCard:
		_, ok := unwrap(b).(card.DrawTwoCard)
		return ok
	default:
		return false
	}
}

func sameNumber(a, b card.Card) bool {
	aNumber, aOK := a.(card.NumberCard)
	bNumber, bOK := unwrap(b).(card.NumberCard)
	return aOK && bOK && aNumber.Number() == bNumber.Number()
}

func unwrap(c card.Card) card.Card {
	if colored, ok := c.(card.ColoredCard); ok {
		return colored.Unwrap()
	}
	return c
}
