package game

import (
	"golang.org/x/time/rate"
)

// session is one connected participant. A session may create rooms and join
// them; joining mints a Player entry in the room that references the session.
type session struct {
	conn     NetworkSession
	inbox    chan []byte
	pingChan chan struct{}
	limiter  *rate.Limiter
}

// Player is one roster entry inside a room. Ids are minted at join time, so a
// session that joins twice holds two entries.
type Player struct {
	id      string
	session *session
}

func (p *Player) Id() string {
	return p.id
}

func newSession(conn NetworkSession) *session {
	return &session{
		conn:     conn,
		inbox:    make(chan []byte, 256),
		pingChan: make(chan struct{}, 1),
		limiter:  rate.NewLimiter(rate.Limit(20), 40),
	}
}

// send queues data without blocking. A member with a full inbox misses the
// frame rather than stalling the room that is broadcasting under its lock.
func (s *session) send(data []byte) {
	select {
	case s.inbox <- data:
	default:
	}
}

func (s *session) ping() {
	select {
	case s.pingChan <- struct{}{}:
	default:
	}
}

// WritePump drains the inbox and ping requests to the socket. It exits on the
// first write failure; the periodic ping guarantees a dead socket is written
// to eventually, so the pump never leaks.
func (s *session) WritePump() {
	for {
		select {
		case data := <-s.inbox:
			if err := s.conn.Write(data); err != nil {
				return
			}
		case <-s.pingChan:
			if err := s.conn.Ping(); err != nil {
				return
			}
		}
	}
}
