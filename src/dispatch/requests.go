package dispatch

import (
	"slices"

	"github.com/samber/lo"

	"liftdispatch/src/types"
)

// callFlags records which hall buttons are outstanding for a floor. The
// shipped policy reads only the floor number; the flags are bookkeeping for
// direction-aware policies.
type callFlags struct {
	Up   bool
	Down bool
}

// RequestSet tracks floors with an outstanding, unserved hall call. A floor
// appears at most once no matter how often its buttons are pressed, and it
// leaves the set exactly when an elevator commits to serving it.
//
// The zero value is not usable; call NewRequestSet.
type RequestSet struct {
	pending map[int]callFlags
}

func NewRequestSet() *RequestSet {
	return &RequestSet{pending: make(map[int]callFlags)}
}

// Add marks floor as pending. Adding an already pending floor merges the
// direction flag and changes nothing else.
func (s *RequestSet) Add(floor int, dir types.Direction) {
	flags := s.pending[floor]
	switch dir {
	case types.DirUp:
		flags.Up = true
	case types.DirDown:
		flags.Down = true
	}
	s.pending[floor] = flags
}

// Remove drops floor from the set. Removing an absent floor is a no-op: the
// request may already have been claimed through another event.
func (s *RequestSet) Remove(floor int) {
	delete(s.pending, floor)
}

// Nearest returns the pending floor with the smallest absolute distance from
// fromFloor. Ties break toward the lower floor number, so repeated calls
// over identical contents always return the same candidate. The second
// return is false when the set is empty.
func (s *RequestSet) Nearest(fromFloor int) (int, bool) {
	if len(s.pending) == 0 {
		return 0, false
	}
	floors := s.Floors()
	best := floors[0]
	for _, floor := range floors[1:] {
		if absDiff(floor, fromFloor) < absDiff(best, fromFloor) {
			best = floor
		}
	}
	return best, true
}

func (s *RequestSet) Contains(floor int) bool {
	_, ok := s.pending[floor]
	return ok
}

func (s *RequestSet) Len() int { return len(s.pending) }

// Directions reports which call directions are outstanding for floor.
func (s *RequestSet) Directions(floor int) (up, down bool) {
	flags := s.pending[floor]
	return flags.Up, flags.Down
}

// Floors lists the pending floors in ascending order.
func (s *RequestSet) Floors() []int {
	floors := lo.Keys(s.pending)
	slices.Sort(floors)
	return floors
}

// Calls expands the set into one record per outstanding direction, ordered
// by floor. Meant for status reporting; claiming still goes through Remove.
func (s *RequestSet) Calls() []types.FloorCall {
	var calls []types.FloorCall
	for _, floor := range s.Floors() {
		flags := s.pending[floor]
		if flags.Up {
			calls = append(calls, types.FloorCall{Floor: floor, Dir: types.DirUp})
		}
		if flags.Down {
			calls = append(calls, types.FloorCall{Floor: floor, Dir: types.DirDown})
		}
	}
	return calls
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
