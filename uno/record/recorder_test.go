package record_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-agent/uno/card"
	"github.com/feel-easy/uno-agent/uno/card/color"
	"github.com/feel-easy/uno-agent/uno/prob"
	"github.com/feel-easy/uno-agent/uno/record"
)

func TestAppend(t *testing.T) {
	recorder := record.NewRecorder()
	model := prob.NewModel()

	recorder.Append(0, "Player 1", "[7](blue)", "[5](blue)", model)
	require.Equal(t, 1, recorder.Size())

	records := recorder.Records()
	require.Len(t, records, 1)
	require.Equal(t, 0, records[0].Seat)
	require.Equal(t, "Player 1", records[0].Actor)
	require.Equal(t, "[7](blue)", records[0].PriorTop)
	require.Equal(t, "[5](blue)", records[0].Played)
	require.Len(t, records[0].Tables, 2)
	require.Contains(t, records[0].Tables, 0)
	require.Contains(t, records[0].Tables, 2)
	require.NotEqual(t, uuid.Nil, records[0].ID)
}

func TestAppendSnapshotsAreFrozen(t *testing.T) {
	recorder := record.NewRecorder()
	model := prob.NewModel()

	recorder.Append(0, "Player 1", "[7](blue)", "[5](blue)", model)
	before := recorder.Records()[0].Tables[0].Numbers[7]

	// Later model updates must not leak into the stored snapshot.
	model.ObserveForcedDraw(0, card.NewNumberCard(color.Blue, 7))
	require.Equal(t, before, recorder.Records()[0].Tables[0].Numbers[7])
	require.Zero(t, model.Table(0).Numbers[7])
}

func TestHeadersMatchRowWidth(t *testing.T) {
	recorder := record.NewRecorder()
	model := prob.NewModel()
	recorder.Append(0, "Player 1", "[7](blue)", "[5](blue)", model)
	recorder.Append(2, "Player 2", "[5](blue)", "[5](red)", model)

	headers := record.Headers()
	// 3 descriptor columns plus 19 estimate columns per human seat.
	require.Len(t, headers, 3+2*19)
	require.Equal(t, "Actor", headers[0])
	require.Equal(t, "CardInPlay", headers[1])
	require.Equal(t, "CardPlayed", headers[2])
	require.Equal(t, "S0_Red", headers[3])
	require.Equal(t, "S2_Red", headers[3+19])

	for _, row := range recorder.Rows() {
		require.Len(t, row, len(headers))
	}
}

func TestRowsRenderPercentages(t *testing.T) {
	recorder := record.NewRecorder()
	recorder.Append(0, "Player 1", "[7](blue)", "[5](blue)", prob.NewModel())

	rows := recorder.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, "Player 1", rows[0][0])
	// 25/108 rendered as a percentage.
	require.Equal(t, "23.15", rows[0][3])
}
