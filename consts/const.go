package consts

import "time"

const (
	// NumSeats is fixed: two human seats around one automated seat.
	NumSeats    = 3
	MachineSeat = 1

	InitialHandSize = 7
	TotalCards      = 108

	// MissedUnoPenalty is the number of cards dealt to a seat that empties
	// its hand without having called UNO.
	MissedUnoPenalty = 2

	// DefaultPlayDelay is how long the automated seat "thinks" before its
	// deferred turn fires.
	DefaultPlayDelay = 1500 * time.Millisecond
)

var SeatNames = [NumSeats]string{"Player 1", "Machine", "Player 2"}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsEmptyDeck    = NewErr(1, false, "Both piles exhausted, no card available. ")
	ErrorsNotYourTurn  = NewErr(2, false, "Not your turn. ")
	ErrorsInvalidPlay  = NewErr(3, false, "Card is not playable. ")
	ErrorsIndexInvalid = NewErr(4, false, "Hand index out of range. ")
	ErrorsSeatInvalid  = NewErr(5, false, "Seat invalid. ")
	ErrorsInvalidUno   = NewErr(6, false, "UNO can only be called with exactly one card in hand. ")
	ErrorsGameOver     = NewErr(7, false, "Game is over, start a new one. ")
	ErrorsMachineSeat  = NewErr(8, false, "The automated seat cannot be driven manually. ")
	ErrorsColorInvalid = NewErr(9, false, "Unknown color. ")
)
