package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/card"
	"github.com/feel-easy/uno-agent/uno/card/color"
	"github.com/feel-easy/uno-agent/uno/event"
	"github.com/feel-easy/uno-agent/uno/game"
)

func testGame(hands [consts.NumSeats][]card.Card, matchCard card.Card, drawPile []card.Card) *game.Game {
	return game.NewTestGame(rand.New(rand.NewSource(1)), event.NewBus(), hands, matchCard, drawPile)
}

func drawPileOf(size int) []card.Card {
	pile := make([]card.Card, 0, size)
	for i := 0; i < size; i++ {
		pile = append(pile, card.NewNumberCard(color.Green, (i%9)+1))
	}
	return pile
}

func TestNewGame(t *testing.T) {
	g := game.New(rand.New(rand.NewSource(42)), event.NewBus())

	for seat := 0; seat < consts.NumSeats; seat++ {
		require.Equal(t, consts.InitialHandSize, g.HandSize(seat))
	}
	require.Equal(t, 0, g.Current())
	require.Equal(t, 1, g.Direction())
	require.Equal(t, -1, g.Winner())
	require.False(t, g.Over())
	require.NotNil(t, g.MatchCard())
	require.False(t, game.IsWildcard(g.MatchCard()))
	require.Equal(t, 1, g.DiscardSize())
	require.Equal(t, consts.TotalCards-consts.NumSeats*consts.InitialHandSize-1, g.DeckSize())
	require.Equal(t, consts.TotalCards, g.CardCount())
}

func TestNewGameIsDeterministicPerSeed(t *testing.T) {
	first := game.New(rand.New(rand.NewSource(7)), event.NewBus())
	second := game.New(rand.New(rand.NewSource(7)), event.NewBus())

	for seat := 0; seat < consts.NumSeats; seat++ {
		require.Equal(t, first.Hand(seat), second.Hand(seat))
	}
	require.Equal(t, first.MatchCard(), second.MatchCard())
}

func TestPlayCardValidation(t *testing.T) {
	newGame := func() *game.Game {
		return testGame([consts.NumSeats][]card.Card{
			{card.NewNumberCard(color.Blue, 5), card.NewNumberCard(color.Red, 9)},
			{card.NewNumberCard(color.Yellow, 3)},
			{card.NewNumberCard(color.Yellow, 4)},
		}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))
	}

	t.Run("rejects_a_seat_out_of_range", func(t *testing.T) {
		_, err := newGame().PlayCard(5, 0, nil)
		require.Equal(t, consts.ErrorsSeatInvalid, err)
	})

	t.Run("rejects_a_seat_out_of_turn", func(t *testing.T) {
		_, err := newGame().PlayCard(2, 0, nil)
		require.Equal(t, consts.ErrorsNotYourTurn, err)
	})

	t.Run("rejects_a_hand_index_out_of_range", func(t *testing.T) {
		_, err := newGame().PlayCard(0, 9, nil)
		require.Equal(t, consts.ErrorsIndexInvalid, err)
	})

	t.Run("rejects_an_unplayable_card", func(t *testing.T) {
		_, err := newGame().PlayCard(0, 1, nil)
		require.Equal(t, consts.ErrorsInvalidPlay, err)
	})

	t.Run("resolves_a_legal_play", func(t *testing.T) {
		g := newGame()
		res, err := g.PlayCard(0, 0, nil)
		require.NoError(t, err)
		require.Equal(t, card.NewNumberCard(color.Blue, 5), res.Card)
		require.Equal(t, card.NewNumberCard(color.Blue, 7), res.PriorTop)
		require.Equal(t, card.NewNumberCard(color.Blue, 5), g.MatchCard())
		require.Equal(t, 1, g.Current())
		require.Equal(t, 1, g.HandSize(0))
	})
}

func TestDrawTwoSkipsAndFeedsTheVictim(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewDrawTwoCard(color.Blue), card.NewNumberCard(color.Red, 9)},
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))

	res, err := g.PlayCard(0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 1, res.VictimSeat)
	require.Len(t, res.VictimDrawn, 2)
	require.Equal(t, 1, res.SkippedSeat)
	require.Equal(t, 3, g.HandSize(1))
	require.Equal(t, 2, g.Current())
}

func TestDrawTwoWrapsAroundTheTable(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewDrawTwoCard(color.Blue), card.NewNumberCard(color.Red, 9)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))
	g.SetCurrent(1)

	res, err := g.PlayCard(1, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 2, res.VictimSeat)
	require.Len(t, res.VictimDrawn, 2)
	require.Equal(t, 3, g.HandSize(2))
	require.Equal(t, 0, g.Current())
}

func TestReverseFlipsTheDirection(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewReverseCard(color.Blue)},
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))

	res, err := g.PlayCard(0, 0, nil)
	require.NoError(t, err)
	require.True(t, res.Reversed)
	require.Equal(t, -1, g.Direction())
	require.Equal(t, 2, g.Current())
}

func TestWildDrawFourWithChosenColor(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewWildDrawFourCard(), card.NewNumberCard(color.Red, 9)},
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))

	res, err := g.PlayCard(0, 0, color.Green)
	require.NoError(t, err)
	require.Equal(t, color.Green, res.ChosenColor)
	require.Equal(t, card.NewColoredCard(card.NewWildDrawFourCard(), color.Green), g.MatchCard())
	require.Equal(t, 1, res.VictimSeat)
	require.Len(t, res.VictimDrawn, 4)
	require.Equal(t, 1, res.SkippedSeat)
	require.Equal(t, 2, g.Current())
}

func TestWildWithoutColorKeepsTheMatchCard(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewWildCard(), card.NewNumberCard(color.Red, 9)},
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))

	res, err := g.PlayCard(0, 0, nil)
	require.NoError(t, err)
	require.Nil(t, res.ChosenColor)
	require.Equal(t, card.NewNumberCard(color.Blue, 7), g.MatchCard())
	require.Equal(t, card.NewWildCard(), g.TopCard())
}

func TestEmptyingTheHandWithoutUnoIsNotAWin(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewNumberCard(color.Blue, 5)},
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))

	res, err := g.PlayCard(0, 0, nil)
	require.NoError(t, err)
	require.True(t, res.UnoMissed)
	require.False(t, res.Won)
	require.Len(t, res.PenaltyDrawn, consts.MissedUnoPenalty)
	require.Equal(t, consts.MissedUnoPenalty, g.HandSize(0))
	require.False(t, g.Over())
	require.Equal(t, 1, g.Current())
}

func TestEmptyingTheHandAfterUnoWins(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewNumberCard(color.Blue, 5)},
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))

	require.NoError(t, g.CallUno(0))
	res, err := g.PlayCard(0, 0, nil)
	require.NoError(t, err)
	require.True(t, res.Won)
	require.True(t, g.Over())
	require.Equal(t, 0, g.Winner())

	_, err = g.PlayCard(1, 0, nil)
	require.Equal(t, consts.ErrorsGameOver, err)
	require.Equal(t, consts.ErrorsGameOver, g.Pass(1))
	_, err = g.Draw(1)
	require.Equal(t, consts.ErrorsGameOver, err)
}

func TestAutomatedSeatNeverMissesUno(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Blue, 5), card.NewNumberCard(color.Red, 9)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))
	g.SetCurrent(consts.MachineSeat)

	res, err := g.PlayCard(consts.MachineSeat, 0, nil)
	require.NoError(t, err)
	require.True(t, res.UnoCalled)
	require.True(t, g.UnoCalled(consts.MachineSeat))
}

func TestCallUnoRequiresExactlyOneCard(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewNumberCard(color.Blue, 5), card.NewNumberCard(color.Red, 9)},
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))

	require.Equal(t, consts.ErrorsInvalidUno, g.CallUno(0))
	require.False(t, g.UnoCalled(0))
}

func TestDrawAndPass(t *testing.T) {
	g := testGame([consts.NumSeats][]card.Card{
		{card.NewNumberCard(color.Red, 9)},
		{card.NewNumberCard(color.Yellow, 3)},
		{card.NewNumberCard(color.Yellow, 4)},
	}, card.NewNumberCard(color.Blue, 7), drawPileOf(10))

	_, err := g.Draw(2)
	require.Equal(t, consts.ErrorsNotYourTurn, err)

	drawn, err := g.Draw(0)
	require.NoError(t, err)
	require.NotNil(t, drawn)
	require.Equal(t, 2, g.HandSize(0))
	require.Equal(t, 0, g.Current())

	require.NoError(t, g.Pass(0))
	require.Equal(t, 1, g.Current())
}

func TestCardConservation(t *testing.T) {
	g := game.New(rand.New(rand.NewSource(99)), event.NewBus())
	require.Equal(t, consts.TotalCards, g.CardCount())

	_, err := g.Draw(0)
	require.NoError(t, err)
	require.Equal(t, consts.TotalCards, g.CardCount())
	require.NoError(t, g.Pass(0))
	require.Equal(t, consts.TotalCards, g.CardCount())
}
