package game

// Outcome reports what an inbound event did to room state. The wire protocol
// stays silent on everything but success, so ignored events carry their reason
// here instead of in a response message.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeScored
	OutcomeWon
	OutcomeNoMatch
	OutcomeBadPayload
	OutcomeRoomNotFound
	OutcomeWrongState
	OutcomeNotHost
	OutcomeNotEnoughPlayers
	OutcomeUnknownPlayer
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeScored:
		return "scored"
	case OutcomeWon:
		return "won"
	case OutcomeNoMatch:
		return "no-match"
	case OutcomeBadPayload:
		return "bad-payload"
	case OutcomeRoomNotFound:
		return "room-not-found"
	case OutcomeWrongState:
		return "wrong-state"
	case OutcomeNotHost:
		return "not-host"
	case OutcomeNotEnoughPlayers:
		return "not-enough-players"
	case OutcomeUnknownPlayer:
		return "unknown-player"
	}
	return "unknown"
}

// Ignored reports whether the event was dropped without touching room state.
func (o Outcome) Ignored() bool {
	switch o {
	case OutcomeOK, OutcomeScored, OutcomeWon:
		return false
	}
	return true
}
