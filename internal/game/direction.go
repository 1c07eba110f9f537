package game

import "math/rand/v2"

// Direction is one of the four prompt values players race to match.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionRight Direction = "right"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
)

var directions = [...]Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft}

const DefaultSequenceLength = 20

// SequenceGenerator produces the ordered prompt sequence for one race.
type SequenceGenerator interface {
	Generate(length int) []Direction
}

type randomSequenceGenerator struct{}

func NewSequenceGenerator() SequenceGenerator {
	return randomSequenceGenerator{}
}

func (randomSequenceGenerator) Generate(length int) []Direction {
	return GenerateSequence(length)
}

// GenerateSequence draws each position independently and uniformly from the
// four directions. Consecutive repeats are allowed.
func GenerateSequence(length int) []Direction {
	sequence := make([]Direction, length)
	for i := range sequence {
		sequence[i] = directions[rand.IntN(len(directions))]
	}
	return sequence
}
