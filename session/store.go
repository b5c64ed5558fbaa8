package session

import (
	"time"

	"github.com/awesome-cap/hashmap"
)

var sessions = hashmap.New()

// Create builds a session and registers it for the transport.
func Create(seed int64, delay time.Duration) *Session {
	s := New(seed, delay)
	sessions.Set(s.ID.String(), s)
	return s
}

func Get(id string) *Session {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session)
	}
	return nil
}

func Delete(id string) {
	sessions.Del(id)
}

// All returns every live session, in no particular order.
func All() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	return list
}
