package simlift

import "liftdispatch/src/types"

// Floor is a simulated floor: two hall buttons with lamps, and the queue of
// passengers waiting on it.
type Floor struct {
	num int

	upLatched   bool
	downLatched bool
	waiting     []*Passenger

	onUp   []func()
	onDown []func()

	// afterPress lets the engine nudge parked elevators once the dispatch
	// subscribers have seen the press. Always runs after the public callbacks.
	afterPress func()
}

func newFloor(num int) *Floor {
	return &Floor{num: num, afterPress: func() {}}
}

func (f *Floor) FloorNum() int { return f.num }

func (f *Floor) OnUpButtonPressed(fn func()) { f.onUp = append(f.onUp, fn) }

func (f *Floor) OnDownButtonPressed(fn func()) { f.onDown = append(f.onDown, fn) }

// PressUp presses the hall up button: the lamp latches and every subscriber
// is notified, whether or not the lamp was already lit.
func (f *Floor) PressUp() {
	f.upLatched = true
	f.emit(types.DirUp)
	f.afterPress()
}

// PressDown presses the hall down button.
func (f *Floor) PressDown() {
	f.downLatched = true
	f.emit(types.DirDown)
	f.afterPress()
}

func (f *Floor) UpButtonLatched() bool { return f.upLatched }

func (f *Floor) DownButtonLatched() bool { return f.downLatched }

// WaitingCount is the number of passengers still queued on this floor.
func (f *Floor) WaitingCount() int { return len(f.waiting) }

func (f *Floor) emit(dir types.Direction) {
	switch dir {
	case types.DirUp:
		for _, fn := range f.onUp {
			fn()
		}
	case types.DirDown:
		for _, fn := range f.onDown {
			fn()
		}
	}
}

func (f *Floor) addWaiting(p *Passenger) {
	f.waiting = append(f.waiting, p)
	switch p.Direction() {
	case types.DirUp:
		f.PressUp()
	case types.DirDown:
		f.PressDown()
	}
}

// settle re-evaluates the hall lamps after an elevator visit: directions
// nobody waits for anymore go dark, directions with riders left behind are
// announced again so the dispatcher re-learns the floor.
func (f *Floor) settle() {
	up, down := false, false
	for _, p := range f.waiting {
		switch p.Direction() {
		case types.DirUp:
			up = true
		case types.DirDown:
			down = true
		}
	}
	f.upLatched, f.downLatched = up, down
	if up {
		f.emit(types.DirUp)
		f.afterPress()
	}
	if down {
		f.emit(types.DirDown)
		f.afterPress()
	}
}
