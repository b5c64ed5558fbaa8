package network

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"

	"github.com/feel-easy/uno-agent/consts"
	"github.com/feel-easy/uno-agent/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Request is one client intent. Viewer is the seat the connection looks at
// the table as; -1 is the observer and sees every hand.
type Request struct {
	Type   string `json:"type"`
	Seat   int    `json:"seat"`
	Index  int    `json:"index"`
	Color  string `json:"color,omitempty"`
	Viewer int    `json:"viewer"`
}

type Response struct {
	Type     string            `json:"type"`
	Code     int               `json:"code,omitempty"`
	Error    string            `json:"error,omitempty"`
	Snapshot *session.Snapshot `json:"snapshot,omitempty"`
	Headers  []string          `json:"headers,omitempty"`
	Rows     [][]string        `json:"rows,omitempty"`
}

const (
	requestState   = "state"
	requestPlay    = "play"
	requestDraw    = "draw"
	requestUno     = "uno"
	requestNewGame = "new_game"
	requestExport  = "export"
)

// dispatch applies one intent to the session and answers with the viewer's
// snapshot, or with the export rows for an export request. Rejected intents
// come back with the error and the unchanged snapshot.
func dispatch(s *session.Session, req Request) Response {
	var err error
	switch req.Type {
	case requestState:
	case requestPlay:
		err = s.PlayCard(req.Seat, req.Index, req.Color)
	case requestDraw:
		err = s.DrawCard(req.Seat)
	case requestUno:
		err = s.DeclareUno(req.Seat)
	case requestNewGame:
		s.NewGame()
	case requestExport:
		return Response{Type: req.Type, Headers: s.ExportHeaders(), Rows: s.ExportRows()}
	default:
		log.Infof("unknown request type %s\n", req.Type)
		return Response{Type: req.Type, Error: "unknown request type"}
	}

	res := Response{Type: req.Type}
	if err != nil {
		res.Error = err.Error()
		if coded, ok := err.(consts.Error); ok {
			res.Code = coded.Code
		}
	}
	snapshot := s.Snapshot(req.Viewer)
	res.Snapshot = &snapshot
	return res
}
