package record

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/uno/prob"
)

// Record is one play's frozen snapshot: who played what on what, and both
// human seats' estimate tables at that instant. Records are never mutated
// after creation.
type Record struct {
	ID       uuid.UUID
	Seat     int
	Actor    string
	PriorTop string
	Played   string
	Tables   map[int]prob.Table
}

// Recorder is the append-only play log consumed by the export
// collaborator. It deliberately survives game resets: one process, one
// running history.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

func NewRecorder() *Recorder {
	return &Recorder{records: make([]Record, 0, 64)}
}

func (r *Recorder) Append(seat int, actor, priorTop, played string, model *prob.Model) {
	tables := make(map[int]prob.Table, 2)
	for s := 0; s < consts.NumSeats; s++ {
		if s == consts.MachineSeat {
			continue
		}
		tables[s] = model.Table(s)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Record{
		ID:       uuid.New(),
		Seat:     seat,
		Actor:    actor,
		PriorTop: priorTop,
		Played:   played,
		Tables:   tables,
	})
}

func (r *Recorder) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := make([]Record, len(r.records))
	copy(records, r.records)
	return records
}

var colorColumns = []string{"Red", "Green", "Blue", "Yellow"}

// Headers returns the flattened column names matching Rows: the play
// descriptors followed by each human seat's percentage columns.
func Headers() []string {
	headers := []string{"Actor", "CardInPlay", "CardPlayed"}
	for seat := 0; seat < consts.NumSeats; seat++ {
		if seat == consts.MachineSeat {
			continue
		}
		prefix := fmt.Sprintf("S%d_", seat)
		for _, name := range colorColumns {
			headers = append(headers, prefix+name)
		}
		for number := 0; number <= 9; number++ {
			headers = append(headers, fmt.Sprintf("%s%d", prefix, number))
		}
		headers = append(headers,
			prefix+"Wild",
			prefix+"DrawTwo",
			prefix+"DrawFour",
			prefix+"Skip",
			prefix+"Reverse",
		)
	}
	return headers
}

// Rows flattens every record into string cells, probabilities rendered as
// percentages. Serialization to any particular file format is the export
// collaborator's job.
func (r *Recorder) Rows() [][]string {
	records := r.Records()
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := []string{rec.Actor, rec.PriorTop, rec.Played}
		for seat := 0; seat < consts.NumSeats; seat++ {
			table, ok := rec.Tables[seat]
			if !ok {
				continue
			}
			for _, value := range table.Colors {
				row = append(row, percentage(value))
			}
			for _, value := range table.Numbers {
				row = append(row, percentage(value))
			}
			row = append(row,
				percentage(table.Wilds[prob.WildStandard]),
				percentage(table.Specials[prob.SpecialDrawTwo]),
				percentage(table.Wilds[prob.WildDrawFour]),
				percentage(table.Specials[prob.SpecialSkip]),
				percentage(table.Specials[prob.SpecialReverse]),
			)
		}
		rows = append(rows, row)
	}
	return rows
}

func percentage(value float64) string {
	return fmt.Sprintf("%.2f", value*100)
}
