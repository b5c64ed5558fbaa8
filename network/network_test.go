package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/session"
)

func TestDispatch(t *testing.T) {
	s := session.New(7, time.Hour)

	t.Run("state_returns_a_snapshot", func(t *testing.T) {
		res := dispatch(s, Request{Type: requestState, Viewer: -1})
		require.Empty(t, res.Error)
		require.NotNil(t, res.Snapshot)
		require.Equal(t, []int{7, 7, 7}, res.Snapshot.HandCounts)
	})

	t.Run("rejected_intents_carry_the_error_and_the_snapshot", func(t *testing.T) {
		res := dispatch(s, Request{Type: requestPlay, Seat: consts.MachineSeat, Viewer: -1})
		require.Equal(t, consts.ErrorsMachineSeat.Msg, res.Error)
		require.Equal(t, consts.ErrorsMachineSeat.Code, res.Code)
		require.NotNil(t, res.Snapshot)
	})

	t.Run("export_returns_headers_and_rows", func(t *testing.T) {
		res := dispatch(s, Request{Type: requestExport})
		require.Len(t, res.Headers, 3+2*19)
		require.NotNil(t, res.Rows)
	})

	t.Run("unknown_types_are_refused", func(t *testing.T) {
		res := dispatch(s, Request{Type: "bogus"})
		require.NotEmpty(t, res.Error)
		require.Nil(t, res.Snapshot)
	})
}
