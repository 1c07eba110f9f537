package game

import (
	"math/rand/v2"
	"time"

	"boatrace/internal/shared/logger"
)

const (
	minPromptDelay = 1000 * time.Millisecond
	maxPromptDelay = 3000 * time.Millisecond
)

func randomPromptDelay() time.Duration {
	return minPromptDelay + time.Duration(rand.Int64N(int64(maxPromptDelay-minPromptDelay)))
}

// RunDriver advances the displayed prompt on a randomized cadence until the
// sequence runs out or the race ends. It reveals the first prompt immediately,
// then sleeps between reveals; a room deleted mid-sleep is observed on the
// next iteration, never interrupted.
func (r *Room) RunDriver() {
	for r.advance() {
		time.Sleep(r.delay())
	}
}

// advance pops the prompt that was on display and broadcasts the next one
// together with a progress snapshot. Exhausting the sequence with no winner
// drops the room from the registry without any broadcast, so the registry
// never leaks a stalled race.
func (r *Room) advance() bool {
	r.locker.Lock()
	defer r.locker.Unlock()

	if r.state != StateInGame {
		return false
	}
	if len(r.sequence) > 0 {
		r.sequence = r.sequence[1:]
	}
	if len(r.sequence) == 0 {
		r.state = StateFinished
		r.registry.Remove(r.id)
		logger.Infof("[Room %s] sequence exhausted with no winner", r.id)
		return false
	}
	r.broadcast(marshalShowDirection(r.sequence[0], r.progressSnapshot()))
	return true
}
