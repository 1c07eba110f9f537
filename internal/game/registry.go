package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"boatrace/internal/shared/logger"
)

// Registry is the authoritative store of live rooms, shared by every
// connection and every driver.
type Registry struct {
	locker sync.RWMutex
	rooms  map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// Create allocates a fresh room in the Waiting state. It never fails; uuid
// collisions are not a practical concern.
func (reg *Registry) Create(host *session) *Room {
	room := newRoom(uuid.NewString(), host, reg)
	reg.locker.Lock()
	reg.rooms[room.id] = room
	reg.locker.Unlock()
	logger.Infof("[Room %s] created", room.id)
	return room
}

func (reg *Registry) Get(id string) (*Room, error) {
	reg.locker.RLock()
	defer reg.locker.RUnlock()
	room, ok := reg.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Remove is idempotent; removing an absent id is a no-op.
func (reg *Registry) Remove(id string) {
	reg.locker.Lock()
	delete(reg.rooms, id)
	reg.locker.Unlock()
}

func (reg *Registry) Len() int {
	reg.locker.RLock()
	defer reg.locker.RUnlock()
	return len(reg.rooms)
}

// removeExpired sweeps rooms that sat in Waiting longer than ttl. The
// expiry decision is made under each room's own lock so a racing start_game
// either wins cleanly or the room is already gone.
func (reg *Registry) removeExpired(ttl time.Duration, now time.Time) int {
	reg.locker.RLock()
	candidates := make([]*Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		candidates = append(candidates, room)
	}
	reg.locker.RUnlock()

	removed := 0
	for _, room := range candidates {
		if room.expireIfIdle(ttl, now) {
			removed++
		}
	}
	return removed
}
