package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"boatrace/internal/shared/logger"
)

type RoomState int

const (
	StateWaiting RoomState = iota
	StateInGame
	StateFinished
)

const (
	DefaultFinishLine = 10
	minReadyPlayers   = 2
)

// Room is one race session. Every read-modify-write of its fields happens
// under locker; broadcasts fire inside the lock so members observe events in
// the order they were applied.
type Room struct {
	id         string
	host       *session
	players    []*Player
	state      RoomState
	sequence   []Direction
	progress   map[string]int
	finishLine int
	createdAt  time.Time

	locker   sync.Mutex
	registry *Registry

	// delay picks the pause between prompt reveals; stubbed in tests.
	delay func() time.Duration
}

func newRoom(id string, host *session, registry *Registry) *Room {
	return &Room{
		id:         id,
		host:       host,
		state:      StateWaiting,
		progress:   make(map[string]int),
		finishLine: DefaultFinishLine,
		createdAt:  time.Now(),
		registry:   registry,
		delay:      randomPromptDelay,
	}
}

func (r *Room) Id() string {
	return r.id
}

func (r *Room) State() RoomState {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.state
}

// Join appends a new player while the room is still waiting. The requester is
// told it joined; whenever the roster holds enough players to start, every
// member is told the room is ready. The ready signal repeats on later joins.
func (r *Room) Join(sess *session) Outcome {
	r.locker.Lock()
	defer r.locker.Unlock()

	if r.state != StateWaiting {
		return OutcomeWrongState
	}

	player := &Player{id: uuid.NewString(), session: sess}
	r.players = append(r.players, player)
	sess.send(marshalJoined(r.id))
	logger.Infof("[Room %s] player %s joined, roster size %d", r.id, player.id, len(r.players))

	if len(r.players) >= minReadyPlayers {
		r.broadcast(marshalReadyToStart())
	}
	return OutcomeOK
}

// Start fires the Waiting -> InGame transition. Only the creating session may
// start, and only with at least two players. The caller spawns the driver on
// success; the transition can succeed at most once.
func (r *Room) Start(sess *session, sequence []Direction) Outcome {
	r.locker.Lock()
	defer r.locker.Unlock()

	if r.state != StateWaiting {
		return OutcomeWrongState
	}
	if sess != r.host {
		return OutcomeNotHost
	}
	if len(r.players) < minReadyPlayers {
		return OutcomeNotEnoughPlayers
	}

	r.sequence = sequence
	for _, p := range r.players {
		r.progress[p.id] = 0
	}
	r.state = StateInGame
	logger.Infof("[Room %s] race started with %d players, %d prompts", r.id, len(r.players), len(sequence))
	return OutcomeOK
}

// KeyPress scores one press against the prompt currently displayed, i.e. the
// front of the sequence. A correct press never advances the sequence; only the
// driver's clock does. The first player to reach the finish line wins, ends
// the race, and the room is dropped from the registry.
func (r *Room) KeyPress(sess *session, direction Direction) Outcome {
	r.locker.Lock()
	defer r.locker.Unlock()

	if r.state != StateInGame {
		return OutcomeWrongState
	}
	player := r.playerFor(sess)
	if player == nil {
		return OutcomeUnknownPlayer
	}
	if len(r.sequence) == 0 || direction != r.sequence[0] {
		return OutcomeNoMatch
	}

	r.progress[player.id]++
	if r.progress[player.id] < r.finishLine {
		return OutcomeScored
	}

	r.state = StateFinished
	r.broadcast(marshalGameOver(player.id, r.progressSnapshot()))
	r.registry.Remove(r.id)
	logger.Infof("[Room %s] race won by %s", r.id, player.id)
	return OutcomeWon
}

// expireIfIdle tears down a room that never started. Only called by the sweep
// ticker, and only when a TTL is configured.
func (r *Room) expireIfIdle(ttl time.Duration, now time.Time) bool {
	r.locker.Lock()
	defer r.locker.Unlock()

	if r.state != StateWaiting || now.Sub(r.createdAt) < ttl {
		return false
	}
	r.state = StateFinished
	r.registry.Remove(r.id)
	logger.Infof("[Room %s] expired after waiting %s", r.id, now.Sub(r.createdAt))
	return true
}

func (r *Room) playerFor(sess *session) *Player {
	for _, p := range r.players {
		if p.session == sess {
			return p
		}
	}
	return nil
}

func (r *Room) broadcast(data []byte) {
	for _, p := range r.players {
		p.session.send(data)
	}
}

func (r *Room) progressSnapshot() map[string]int {
	snapshot := make(map[string]int, len(r.progress))
	for id, score := range r.progress {
		snapshot[id] = score
	}
	return snapshot
}
