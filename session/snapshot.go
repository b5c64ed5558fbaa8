package session

import (
	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/prob"
)

// Snapshot is what one viewer is allowed to see of the table. The viewer's
// own hand and the automated seat's hand are face-up; the other human hand
// is only a count. ViewerSeat -1 is the observer and sees everything.
type Snapshot struct {
	SessionID   string             `json:"sessionId"`
	ViewerSeat  int                `json:"viewerSeat"`
	CurrentSeat int                `json:"currentSeat"`
	Direction   int                `json:"direction"`
	MatchCard   string             `json:"matchCard"`
	TopCard     string             `json:"topCard"`
	Winner      int                `json:"winner"`
	Over        bool               `json:"over"`
	DeckSize    int                `json:"deckSize"`
	SeatNames   []string           `json:"seatNames"`
	HandCounts  []int              `json:"handCounts"`
	Hands       map[int][]string   `json:"hands"`
	UnoCalled   []bool             `json:"unoCalled"`
	Tables      map[int]prob.Table `json:"tables"`
	Counters    prob.Counters      `json:"counters"`
	Summary     string             `json:"summary"`
	Log         []string           `json:"log"`
}

// Snapshot renders the table for the given viewer seat.
func (s *Session) Snapshot(viewerSeat int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{
		SessionID:   s.ID.String(),
		ViewerSeat:  viewerSeat,
		CurrentSeat: s.game.Current(),
		Direction:   s.game.Direction(),
		MatchCard:   cardLabel(s.game.MatchCard()),
		TopCard:     cardLabel(s.game.TopCard()),
		Winner:      s.game.Winner(),
		Over:        s.game.Over(),
		DeckSize:    s.game.DeckSize(),
		SeatNames:   make([]string, 0, consts.NumSeats),
		HandCounts:  make([]int, 0, consts.NumSeats),
		Hands:       make(map[int][]string),
		UnoCalled:   make([]bool, 0, consts.NumSeats),
		Tables:      make(map[int]prob.Table, consts.NumSeats-1),
		Counters:    s.model.Counters(),
		Summary:     s.game.ExtractState().String(),
	}

	for seat := 0; seat < consts.NumSeats; seat++ {
		snapshot.SeatNames = append(snapshot.SeatNames, s.game.SeatName(seat))
		snapshot.HandCounts = append(snapshot.HandCounts, s.game.HandSize(seat))
		snapshot.UnoCalled = append(snapshot.UnoCalled, s.game.UnoCalled(seat))
		if seat == viewerSeat || seat == consts.MachineSeat || viewerSeat < 0 {
			labels := make([]string, 0, s.game.HandSize(seat))
			for _, held := range s.game.Hand(seat) {
				labels = append(labels, held.String())
			}
			snapshot.Hands[seat] = labels
		}
		if seat != consts.MachineSeat {
			snapshot.Tables[seat] = s.model.Table(seat)
		}
	}

	snapshot.Log = s.sink.Lines()
	return snapshot
}
