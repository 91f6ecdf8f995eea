package simlift

import (
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"liftdispatch/src/types"
)

// Elevator is a simulated cabin. Motion is tick-based: one floor per
// travelTicks ticks and a door dwell on every stop. Events are emitted
// synchronously, in order, from the engine's tick goroutine.
type Elevator struct {
	id          int
	numFloors   int
	capacity    int
	travelTicks int
	dwellTicks  int

	floor           int
	queue           []int
	pressed         map[int]bool
	goingUp         bool
	goingDown       bool
	doorTicks       int
	travelRemaining int
	passengers      []*Passenger

	onIdle        []func()
	onFloorButton []func(floor int)
	onPassing     []func(floor int, dir types.Direction)
	onStopped     []func(floor int)
}

func newElevator(id int, cfg Config) *Elevator {
	return &Elevator{
		id:          id,
		numFloors:   cfg.Floors,
		capacity:    cfg.CabCapacity,
		travelTicks: cfg.TravelTicks,
		dwellTicks:  cfg.DoorDwellTicks,
		pressed:     make(map[int]bool),
		goingUp:     true,
		goingDown:   true,
	}
}

func (e *Elevator) ID() int { return e.id }

// GoToFloor queues floor as a destination, at the front with goDirectly set.
// A floor already queued is not queued twice.
func (e *Elevator) GoToFloor(floor int, goDirectly bool) {
	if floor < 0 || floor >= e.numFloors {
		slog.Warn("goToFloor outside the building ignored", "elevator", e.id, "floor", floor)
		return
	}
	if slices.Contains(e.queue, floor) {
		return
	}
	if goDirectly {
		e.queue = append([]int{floor}, e.queue...)
	} else {
		e.queue = append(e.queue, floor)
	}
}

// Stop clears the destination queue. Doors finish their dwell on their own.
func (e *Elevator) Stop() {
	e.queue = nil
	e.travelRemaining = 0
}

func (e *Elevator) CurrentFloor() int { return e.floor }

func (e *Elevator) GoingUpIndicator() bool { return e.goingUp }

func (e *Elevator) SetGoingUpIndicator(on bool) { e.goingUp = on }

func (e *Elevator) GoingDownIndicator() bool { return e.goingDown }

func (e *Elevator) SetGoingDownIndicator(on bool) { e.goingDown = on }

func (e *Elevator) MaxPassengerCount() int { return e.capacity }

func (e *Elevator) LoadFactor() float64 {
	return float64(len(e.passengers)) / float64(e.capacity)
}

func (e *Elevator) DestinationDirection() types.Direction {
	if len(e.queue) == 0 || e.doorTicks > 0 {
		return types.DirStopped
	}
	if e.queue[0] > e.floor {
		return types.DirUp
	}
	if e.queue[0] < e.floor {
		return types.DirDown
	}
	return types.DirStopped
}

func (e *Elevator) DestinationQueue() []int { return slices.Clone(e.queue) }

func (e *Elevator) SetDestinationQueue(queue []int) {
	e.queue = slices.Clone(queue)
	e.travelRemaining = 0
}

// CheckDestinationQueue re-evaluates the queue after a manual edit. An empty
// queue behind closed doors reports the elevator idle again.
func (e *Elevator) CheckDestinationQueue() {
	if e.idle() {
		e.emitIdle()
	}
}

func (e *Elevator) PressedFloors() []int {
	floors := lo.Keys(e.pressed)
	slices.Sort(floors)
	return floors
}

func (e *Elevator) OnIdle(fn func()) { e.onIdle = append(e.onIdle, fn) }

func (e *Elevator) OnFloorButtonPressed(fn func(floor int)) {
	e.onFloorButton = append(e.onFloorButton, fn)
}

func (e *Elevator) OnPassingFloor(fn func(floor int, dir types.Direction)) {
	e.onPassing = append(e.onPassing, fn)
}

func (e *Elevator) OnStoppedAtFloor(fn func(floor int)) {
	e.onStopped = append(e.onStopped, fn)
}

// PressFloorButton simulates a rider pressing a cabin button. Pressing a
// button that is already lit does nothing.
func (e *Elevator) PressFloorButton(floor int) {
	if e.pressed[floor] {
		return
	}
	e.pressed[floor] = true
	for _, fn := range e.onFloorButton {
		fn(floor)
	}
}

func (e *Elevator) idle() bool { return len(e.queue) == 0 && e.doorTicks == 0 }

// step advances the cabin one tick: door dwell counts down first, then
// travel toward the head of the queue.
func (e *Elevator) step() {
	if e.doorTicks > 0 {
		e.doorTicks--
		if e.doorTicks == 0 && len(e.queue) == 0 {
			e.emitIdle()
		}
		return
	}
	if len(e.queue) == 0 {
		return
	}
	target := e.queue[0]
	if target == e.floor {
		e.arrive()
		return
	}
	if e.travelRemaining == 0 {
		e.travelRemaining = e.travelTicks
	}
	e.travelRemaining--
	if e.travelRemaining > 0 {
		return
	}
	if target > e.floor {
		e.floor++
	} else {
		e.floor--
	}
	if e.floor == target {
		e.arrive()
	} else {
		e.emitPassing(e.floor, e.DestinationDirection())
	}
}

func (e *Elevator) arrive() {
	floor := e.floor
	e.queue = e.queue[1:]
	e.travelRemaining = 0
	e.doorTicks = e.dwellTicks
	delete(e.pressed, floor)
	slog.Debug("Elevator stopped", "elevator", e.id, "floor", floor, "queued", len(e.queue))
	for _, fn := range e.onStopped {
		fn(floor)
	}
}

func (e *Elevator) emitIdle() {
	for _, fn := range e.onIdle {
		fn()
	}
}

func (e *Elevator) emitPassing(floor int, dir types.Direction) {
	for _, fn := range e.onPassing {
		fn(floor, dir)
	}
}
