package network

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/feel-easy/uno-agent/session"
)

// Websocket serves the table over one endpoint: clients send JSON intents
// and get viewer-scoped snapshots back. A connection without a session id
// opens a fresh table.
type Websocket struct {
	addr  string
	seed  int64
	delay time.Duration
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, seed int64, delay time.Duration) Websocket {
	return Websocket{addr: addr, seed: seed, delay: delay}
}

func (w Websocket) Serve() error {
	http.HandleFunc("/ws", w.serveWs)
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, nil)
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	s := w.resolveSession(r.URL.Query().Get("session"))
	async.Async(func() {
		handle(conn, s)
	})
}

func (w Websocket) resolveSession(id string) *session.Session {
	if id != "" {
		if s := session.Get(id); s != nil {
			return s
		}
	}
	s := session.Create(w.seed, w.delay)
	log.Infof("session %s opened\n", s.ID)
	return s
}

func handle(conn *websocket.Conn, s *session.Session) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error(err)
		}
	}()
	log.Info("new client connected! ")
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Error(err)
			return
		}
		req := Request{Viewer: -1}
		if err := json.Unmarshal(data, &req); err != nil {
			log.Error(err)
			continue
		}
		res := dispatch(s, req)
		payload, err := json.Marshal(res)
		if err != nil {
			log.Error(err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Error(err)
			return
		}
	}
}
