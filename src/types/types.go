package types

// Direction is the vertical travel direction of an elevator, or the
// direction a floor call asks for.
type Direction int

const (
	DirDown    Direction = -1
	DirStopped Direction = 0
	DirUp      Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirStopped:
		return "stopped"
	}
	return "unknown"
}

// FloorCall is a hall button press: which floor, which way.
type FloorCall struct {
	Floor int
	Dir   Direction
}
