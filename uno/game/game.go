package game

import (
	"math/rand"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/card"
	"github.com/feel-easy/uno-agent/uno/card/action"
	"github.com/feel-easy/uno-agent/uno/card/color"
	"github.com/feel-easy/uno-agent/uno/event"
)

// IndexedCard pairs a card with its position in the owner's hand.
type IndexedCard struct {
	Index int
	Card  card.Card
}

type seatState struct {
	name      string
	hand      *Hand
	unoCalled bool
}

// Game is the authoritative turn/effect state machine for one three-seat
// match. Seat 1 is the automated seat. All card effects are resolved
// synchronously inside PlayCard; the only persistent states are "awaiting an
// action from the current seat" and "won".
type Game struct {
	deck      *Deck
	bus       *event.Bus
	seats     [consts.NumSeats]*seatState
	current   int
	direction int

	// matchCard is what legality is checked against. After a wildcard play
	// without a chosen color it keeps pointing at the previous colored card;
	// with a chosen color it becomes a ColoredCard overlay.
	matchCard card.Card

	winner int
}

// PlayResult describes everything a single resolved play did to the state,
// so the caller can feed the probability model, the recorder and the log.
type PlayResult struct {
	Seat        int
	Card        card.Card
	PriorTop    card.Card
	ChosenColor color.Color

	VictimSeat   int
	VictimDrawn  []card.Card
	PenaltyDrawn []card.Card
	SkippedSeat  int
	Reversed     bool

	UnoMissed bool
	UnoCalled bool
	Won       bool
}

func New(rng *rand.Rand, bus *event.Bus) *Game {
	g := &Game{
		deck:      NewDeck(rng),
		bus:       bus,
		direction: 1,
		winner:    -1,
	}
	for seat := range g.seats {
		g.seats[seat] = &seatState{
			name: consts.SeatNames[seat],
			hand: NewHand(),
		}
	}
	g.dealStartingHands()
	g.flipFirstCard()
	return g
}

// dealStartingHands deals seven cards to each seat in round-robin order,
// seat 0 first.
func (g *Game) dealStartingHands() {
	for round := 0; round < consts.InitialHandSize; round++ {
		for seat := 0; seat < consts.NumSeats; seat++ {
			dealt, err := g.deck.Deal()
			if err != nil {
				return
			}
			g.seats[seat].hand.AddCard(dealt)
		}
	}
}

// flipFirstCard draws the starting top card, sending wildcards back under
// the draw pile so the game never opens without a matchable color.
func (g *Game) flipFirstCard() {
	for {
		flipped, err := g.deck.Deal()
		if err != nil {
			return
		}
		if IsWildcard(flipped) {
			g.deck.ReturnToBottom(flipped)
			continue
		}
		g.matchCard = flipped
		g.deck.Discard(flipped)
		g.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: flipped})
		return
	}
}

func (g *Game) Current() int {
	return g.current
}

func (g *Game) Direction() int {
	return g.direction
}

func (g *Game) MatchCard() card.Card {
	return g.matchCard
}

// TopCard is the visible top of the discard pile. It differs from the match
// card after a wildcard play without a chosen color.
func (g *Game) TopCard() card.Card {
	return g.deck.DiscardPile().Top()
}

func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) Over() bool {
	return g.winner >= 0
}

func (g *Game) SeatName(seat int) string {
	return g.seats[seat].name
}

func (g *Game) Hand(seat int) []card.Card {
	return g.seats[seat].hand.Cards()
}

func (g *Game) HandSize(seat int) int {
	return g.seats[seat].hand.Size()
}

func (g *Game) UnoCalled(seat int) bool {
	return g.seats[seat].unoCalled
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) DiscardSize() int {
	return g.deck.DiscardPile().Size()
}

// CardCount must equal 108 in every reachable state.
func (g *Game) CardCount() int {
	count := g.deck.CardCount()
	for _, seat := range g.seats {
		count += seat.hand.Size()
	}
	return count
}

// NextSeat is the seat that plays after the current one, following the
// active direction.
func (g *Game) NextSeat() int {
	return g.seatAt(g.current, 1)
}

func (g *Game) LegalPlays(seat int) []IndexedCard {
	return g.seats[seat].hand.Playable(g.matchCard)
}

func (g *Game) seatAt(seat, steps int) int {
	return ((seat+steps*g.direction)%consts.NumSeats + consts.NumSeats) % consts.NumSeats
}

// PlayCard validates and resolves one play: the card leaves the hand, the
// match card updates, effects fire and the turn advances. chosen may be nil;
// for wildcards that preserves the previous match card instead of recording
// a replacement color.
func (g *Game) PlayCard(seat, index int, chosen color.Color) (*PlayResult, error) {
	if g.Over() {
		return nil, consts.ErrorsGameOver
	}
	if seat < 0 || seat >= consts.NumSeats {
		return nil, consts.ErrorsSeatInvalid
	}
	if seat != g.current {
		return nil, consts.ErrorsNotYourTurn
	}
	played, ok := g.seats[seat].hand.CardAt(index)
	if !ok {
		return nil, consts.ErrorsIndexInvalid
	}
	if !Playable(played, g.matchCard) {
		return nil, consts.ErrorsInvalidPlay
	}
	return g.resolve(seat, index, played, chosen), nil
}

func (g *Game) resolve(seat, index int, played card.Card, chosen color.Color) *PlayResult {
	st := g.seats[seat]
	res := &PlayResult{
		Seat:        seat,
		Card:        played,
		PriorTop:    g.matchCard,
		VictimSeat:  -1,
		SkippedSeat: -1,
	}

	st.hand.RemoveAt(index)
	g.deck.Discard(played)

	if IsWildcard(played) {
		if chosen != nil {
			g.matchCard = card.NewColoredCard(played, chosen)
			res.ChosenColor = chosen
			g.bus.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: st.name, Color: chosen})
		}
	} else {
		g.matchCard = played
	}

	g.bus.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: st.name, Card: played})

	if st.hand.Empty() {
		if !st.unoCalled {
			// Going out without having called UNO is not a win: two penalty
			// cards come back and play continues.
			res.UnoMissed = true
			res.PenaltyDrawn = g.dealTo(seat, consts.MissedUnoPenalty)
			g.bus.UnoMissed.Emit(event.UnoMissedPayload{PlayerName: st.name, Penalty: len(res.PenaltyDrawn)})
			g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: st.name, Amount: len(res.PenaltyDrawn), Penalty: true})
		} else {
			st.unoCalled = false
			g.winner = seat
			res.Won = true
			g.bus.GameWon.Emit(event.GameWonPayload{PlayerName: st.name})
			return res
		}
	}

	// The automated seat never forgets to call UNO.
	if seat == consts.MachineSeat && st.hand.Size() == 1 && !st.unoCalled {
		st.unoCalled = true
		res.UnoCalled = true
		g.bus.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: st.name})
	}

	advance := 1
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.ReverseTurnsAction:
			g.direction = -g.direction
			res.Reversed = true
			g.bus.TurnReversed.Emit(event.TurnReversedPayload{})
		case action.SkipTurnAction:
			skipped := g.seatAt(seat, 1)
			res.SkippedSeat = skipped
			advance++
			g.bus.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: g.seats[skipped].name})
		case action.DrawCardsAction:
			victim := g.seatAt(seat, 1)
			res.VictimSeat = victim
			res.VictimDrawn = g.dealTo(victim, cardAction.Amount())
			g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: g.seats[victim].name, Amount: len(res.VictimDrawn)})
		}
	}

	g.current = g.seatAt(seat, advance)
	return res
}

// Draw serves the current seat one card from the deck. The caller decides
// whether the drawn card is played right away or the turn passes.
func (g *Game) Draw(seat int) (card.Card, error) {
	if g.Over() {
		return nil, consts.ErrorsGameOver
	}
	if seat != g.current {
		return nil, consts.ErrorsNotYourTurn
	}
	drawn, err := g.deck.Deal()
	if err != nil {
		return nil, err
	}
	g.seats[seat].hand.AddCard(drawn)
	g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: g.seats[seat].name, Amount: 1})
	return drawn, nil
}

// Pass advances the turn without a play, after a draw yielded nothing
// playable or the deck had nothing to give.
func (g *Game) Pass(seat int) error {
	if g.Over() {
		return consts.ErrorsGameOver
	}
	if seat != g.current {
		return consts.ErrorsNotYourTurn
	}
	g.bus.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: g.seats[seat].name})
	g.current = g.seatAt(seat, 1)
	return nil
}

// CallUno registers a UNO call. It only sticks when the hand holds exactly
// one card at the moment of the call.
func (g *Game) CallUno(seat int) error {
	if g.Over() {
		return consts.ErrorsGameOver
	}
	if seat < 0 || seat >= consts.NumSeats {
		return consts.ErrorsSeatInvalid
	}
	if g.seats[seat].hand.Size() != 1 {
		return consts.ErrorsInvalidUno
	}
	g.seats[seat].unoCalled = true
	g.bus.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: g.seats[seat].name})
	return nil
}

func (g *Game) dealTo(seat, amount int) []card.Card {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		dealt, err := g.deck.Deal()
		if err != nil {
			break
		}
		g.seats[seat].hand.AddCard(dealt)
		drawn = append(drawn, dealt)
	}
	return drawn
}
