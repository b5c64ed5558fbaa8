package game

import (
	"fmt"
	"strings"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/card"
)

// State is a read-only summary of the table, suitable for log lines and the
// presentation collaborator's status row.
type State struct {
	MatchCard        card.Card
	CurrentSeat      int
	Direction        int
	PlayerSequence   []string
	PlayerHandCounts map[string]int
}

func (g *Game) ExtractState() State {
	playerSequence := make([]string, 0, consts.NumSeats)
	playerHandCounts := make(map[string]int, consts.NumSeats)
	for _, seat := range g.seats {
		playerSequence = append(playerSequence, seat.name)
		playerHandCounts[seat.name] = seat.hand.Size()
	}
	return State{
		MatchCard:        g.matchCard,
		CurrentSeat:      g.current,
		Direction:        g.direction,
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
	}
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Current card: %s", s.MatchCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	direction := "->"
	if s.Direction < 0 {
		direction = "<-"
	}
	lines = append(lines, fmt.Sprintf("Direction: %s, %s to act", direction, s.PlayerSequence[s.CurrentSeat]))

	return strings.Join(lines, "\n")
}
