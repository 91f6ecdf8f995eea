package simlift

import (
	"time"

	"github.com/google/uuid"

	"liftdispatch/src/types"
)

// Passenger is a simulated rider: spawned on a floor, waiting for a cabin
// headed toward its destination.
type Passenger struct {
	ID   uuid.UUID
	Name string
	From int
	To   int

	arrivedAt time.Time
	boardedAt time.Time
}

func newPassenger(name string, from, to int, arrivedAt time.Time) *Passenger {
	return &Passenger{
		ID:        uuid.New(),
		Name:      name,
		From:      from,
		To:        to,
		arrivedAt: arrivedAt,
	}
}

// Direction is the way this passenger wants to travel from its spawn floor.
func (p *Passenger) Direction() types.Direction {
	if p.To > p.From {
		return types.DirUp
	}
	return types.DirDown
}
