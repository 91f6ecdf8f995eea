package dispatch

import (
	"liftdispatch/src/types"
)

var (
	_ ElevatorAPI = (*fakeElevator)(nil)
	_ FloorAPI    = (*fakeFloor)(nil)
)

// goCmd is one recorded goToFloor command.
type goCmd struct {
	Floor  int
	Direct bool
}

// fakeElevator records every command the controller issues and lets tests
// fire capability events by hand.
type fakeElevator struct {
	floor     int
	queue     []int
	pressed   []int
	goingUp   bool
	goingDown bool
	capacity  int
	load      float64

	commands []goCmd
	stops    int

	// goToFloorHook runs synchronously inside GoToFloor, reproducing hosts
	// that deliver further events from within a command.
	goToFloorHook func(floor int)

	onIdle    []func()
	onButton  []func(floor int)
	onPassing []func(floor int, dir types.Direction)
	onStopped []func(floor int)
}

func newFakeElevator(floor int) *fakeElevator {
	return &fakeElevator{floor: floor, goingUp: true, goingDown: true, capacity: 6}
}

func (e *fakeElevator) GoToFloor(floor int, goDirectly bool) {
	e.commands = append(e.commands, goCmd{Floor: floor, Direct: goDirectly})
	if goDirectly {
		e.queue = append([]int{floor}, e.queue...)
	} else {
		e.queue = append(e.queue, floor)
	}
	if e.goToFloorHook != nil {
		e.goToFloorHook(floor)
	}
}

func (e *fakeElevator) Stop() {
	e.stops++
	e.queue = nil
}

func (e *fakeElevator) CurrentFloor() int { return e.floor }

func (e *fakeElevator) GoingUpIndicator() bool { return e.goingUp }

func (e *fakeElevator) SetGoingUpIndicator(on bool) { e.goingUp = on }

func (e *fakeElevator) GoingDownIndicator() bool { return e.goingDown }

func (e *fakeElevator) SetGoingDownIndicator(on bool) { e.goingDown = on }

func (e *fakeElevator) MaxPassengerCount() int { return e.capacity }

func (e *fakeElevator) LoadFactor() float64 { return e.load }

func (e *fakeElevator) DestinationDirection() types.Direction {
	if len(e.queue) == 0 {
		return types.DirStopped
	}
	switch {
	case e.queue[0] > e.floor:
		return types.DirUp
	case e.queue[0] < e.floor:
		return types.DirDown
	}
	return types.DirStopped
}

// DestinationQueue hands out the live slice on purpose: snapshot tests rely
// on it to prove the handle copies instead of aliasing.
func (e *fakeElevator) DestinationQueue() []int { return e.queue }

func (e *fakeElevator) SetDestinationQueue(queue []int) {
	e.queue = queue
}

func (e *fakeElevator) CheckDestinationQueue() {
	if len(e.queue) == 0 {
		e.emitIdle()
	}
}

func (e *fakeElevator) PressedFloors() []int { return e.pressed }

func (e *fakeElevator) OnIdle(fn func()) { e.onIdle = append(e.onIdle, fn) }

func (e *fakeElevator) OnFloorButtonPressed(fn func(floor int)) {
	e.onButton = append(e.onButton, fn)
}

func (e *fakeElevator) OnPassingFloor(fn func(floor int, dir types.Direction)) {
	e.onPassing = append(e.onPassing, fn)
}

func (e *fakeElevator) OnStoppedAtFloor(fn func(floor int)) {
	e.onStopped = append(e.onStopped, fn)
}

func (e *fakeElevator) emitIdle() {
	for _, fn := range e.onIdle {
		fn()
	}
}

func (e *fakeElevator) emitFloorButton(floor int) {
	for _, fn := range e.onButton {
		fn(floor)
	}
}

func (e *fakeElevator) emitPassing(floor int, dir types.Direction) {
	for _, fn := range e.onPassing {
		fn(floor, dir)
	}
}

func (e *fakeElevator) emitStopped(floor int) {
	for _, fn := range e.onStopped {
		fn(floor)
	}
}

// fakeFloor is a hall-button pair that replays presses to its subscribers.
type fakeFloor struct {
	num    int
	onUp   []func()
	onDown []func()
}

func newFakeFloor(num int) *fakeFloor { return &fakeFloor{num: num} }

func (f *fakeFloor) FloorNum() int { return f.num }

func (f *fakeFloor) OnUpButtonPressed(fn func()) { f.onUp = append(f.onUp, fn) }

func (f *fakeFloor) OnDownButtonPressed(fn func()) { f.onDown = append(f.onDown, fn) }

func (f *fakeFloor) pressUp() {
	for _, fn := range f.onUp {
		fn()
	}
}

func (f *fakeFloor) pressDown() {
	for _, fn := range f.onDown {
		fn()
	}
}

func elevatorAPIs(elevs ...*fakeElevator) []ElevatorAPI {
	apis := make([]ElevatorAPI, len(elevs))
	for i, e := range elevs {
		apis[i] = e
	}
	return apis
}

func floorAPIs(count int) ([]FloorAPI, []*fakeFloor) {
	floors := make([]*fakeFloor, count)
	apis := make([]FloorAPI, count)
	for i := range floors {
		floors[i] = newFakeFloor(i)
		apis[i] = floors[i]
	}
	return apis, floors
}
