package dispatch

// Policy selects which pending call an idle elevator should service next.
// Implementations must be deterministic over identical inputs.
type Policy interface {
	// Pick returns the floor the elevator currently at fromFloor should
	// serve, or false when nothing should be assigned.
	Pick(fromFloor int, pending *RequestSet) (int, bool)
}

var _ Policy = NearestFloor{}

// NearestFloor assigns the outstanding call with the smallest absolute
// distance from the elevator's position, lower floor first on ties. It is
// greedy per elevator: no matching of the whole fleet against the whole set,
// so two cars can end up converging on the same side of the building. Known
// policy limitation.
type NearestFloor struct{}

func (NearestFloor) Pick(fromFloor int, pending *RequestSet) (int, bool) {
	return pending.Nearest(fromFloor)
}
