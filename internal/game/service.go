package game

import (
	"encoding/json"
	"sync"
	"time"

	"boatrace/internal/shared/logger"
)

const pingInterval = 30 * time.Second

// Service routes inbound events to the registry and rooms, and owns the set
// of connected sessions for keepalive pings.
type Service struct {
	registry *Registry
	seqGen   SequenceGenerator

	locker   sync.Mutex
	sessions map[*session]struct{}
}

func NewService() *Service {
	return &Service{
		registry: NewRegistry(),
		seqGen:   NewSequenceGenerator(),
		sessions: make(map[*session]struct{}),
	}
}

func (s *Service) Registry() *Registry {
	return s.registry
}

// HandleConnection adopts a freshly accepted transport session and runs its
// pumps until the peer goes away.
func (s *Service) HandleConnection(conn NetworkSession) {
	sess := newSession(conn)
	s.locker.Lock()
	s.sessions[sess] = struct{}{}
	s.locker.Unlock()

	go sess.WritePump()
	go s.readPump(sess)
}

func (s *Service) readPump(sess *session) {
	defer func() {
		s.locker.Lock()
		delete(s.sessions, sess)
		s.locker.Unlock()
		sess.conn.Close("")
	}()

	for {
		data, err := sess.conn.Read()
		if err != nil {
			return
		}
		if !sess.limiter.Allow() {
			continue
		}
		if outcome := s.dispatch(sess, data); outcome.Ignored() {
			logger.Debugf("event ignored: %s", outcome)
		}
	}
}

// dispatch decodes one inbound envelope and applies it. Malformed payloads,
// unknown types, and unknown rooms are dropped without a response; the
// returned Outcome says why.
func (s *Service) dispatch(sess *session, data []byte) Outcome {
	var envelope clientEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return OutcomeBadPayload
	}

	switch envelope.Type {
	case typeCreateRoom:
		room := s.registry.Create(sess)
		sess.send(marshalRoomCreated(room.id))
		return OutcomeOK

	case typeJoinRoom:
		room, err := s.registry.Get(envelope.RoomId)
		if err != nil {
			return OutcomeRoomNotFound
		}
		return room.Join(sess)

	case typeStartGame:
		room, err := s.registry.Get(envelope.RoomId)
		if err != nil {
			return OutcomeRoomNotFound
		}
		outcome := room.Start(sess, s.seqGen.Generate(DefaultSequenceLength))
		if outcome == OutcomeOK {
			go room.RunDriver()
		}
		return outcome

	case typeKeyPress:
		room, err := s.registry.Get(envelope.RoomId)
		if err != nil {
			return OutcomeRoomNotFound
		}
		return room.KeyPress(sess, envelope.Direction)
	}
	return OutcomeBadPayload
}

// StartTickers launches the keepalive ping loop and, when a TTL is set, the
// idle-room sweep. A zero roomTTL keeps waiting rooms around forever.
func (s *Service) StartTickers(roomTTL time.Duration) {
	pingTicker := time.NewTicker(pingInterval)
	go func() {
		for range pingTicker.C {
			s.pingSessions()
		}
	}()

	if roomTTL <= 0 {
		return
	}
	sweepTicker := time.NewTicker(time.Minute)
	go func() {
		for now := range sweepTicker.C {
			if removed := s.registry.removeExpired(roomTTL, now); removed > 0 {
				logger.Infof("swept %d idle rooms, %d remain", removed, s.registry.Len())
			}
		}
	}()
}

func (s *Service) pingSessions() {
	s.locker.Lock()
	defer s.locker.Unlock()
	for sess := range s.sessions {
		sess.ping()
	}
}
