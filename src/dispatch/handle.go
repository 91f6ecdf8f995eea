package dispatch

import (
	"log/slog"

	"github.com/tiendc/go-deepcopy"

	"liftdispatch/src/types"
)

// ElevatorHandle pairs a host elevator object with its fleet index so that
// handlers and logs can refer to a stable identity.
type ElevatorHandle struct {
	id  int
	api ElevatorAPI
}

func NewElevatorHandle(id int, api ElevatorAPI) ElevatorHandle {
	return ElevatorHandle{id: id, api: api}
}

func (h ElevatorHandle) ID() int { return h.id }

func (h ElevatorHandle) CurrentFloor() int { return h.api.CurrentFloor() }

// Idle reports whether the elevator has no queued destinations.
func (h ElevatorHandle) Idle() bool { return len(h.api.DestinationQueue()) == 0 }

// GoToFloor appends floor to the elevator's destination queue.
func (h ElevatorHandle) GoToFloor(floor int) {
	slog.Debug("Issuing goToFloor", "elevator", h.id, "floor", floor)
	h.api.GoToFloor(floor, false)
}

// GoToFloorDirect puts floor at the front of the destination queue so it is
// served before anything already committed.
func (h ElevatorHandle) GoToFloorDirect(floor int) {
	slog.Debug("Issuing goToFloor with priority", "elevator", h.id, "floor", floor)
	h.api.GoToFloor(floor, true)
}

// Stop clears the elevator's destination queue.
func (h ElevatorHandle) Stop() {
	slog.Debug("Issuing stop", "elevator", h.id)
	h.api.Stop()
}

func (h ElevatorHandle) OnIdle(fn func()) { h.api.OnIdle(fn) }

func (h ElevatorHandle) OnFloorButtonPressed(fn func(floor int)) { h.api.OnFloorButtonPressed(fn) }

func (h ElevatorHandle) OnPassingFloor(fn func(floor int, dir types.Direction)) {
	h.api.OnPassingFloor(fn)
}

func (h ElevatorHandle) OnStoppedAtFloor(fn func(floor int)) { h.api.OnStoppedAtFloor(fn) }

// ElevatorState is a read-only snapshot of host-owned elevator state.
type ElevatorState struct {
	ID         int
	Floor      int
	Queue      []int
	Pressed    []int
	GoingUp    bool
	GoingDown  bool
	LoadFactor float64
	Direction  types.Direction
}

// State snapshots the host object. Queue and Pressed are deep copies, so
// holding or mutating a snapshot cannot touch host state.
func (h ElevatorHandle) State() ElevatorState {
	state := ElevatorState{
		ID:         h.id,
		Floor:      h.api.CurrentFloor(),
		GoingUp:    h.api.GoingUpIndicator(),
		GoingDown:  h.api.GoingDownIndicator(),
		LoadFactor: h.api.LoadFactor(),
		Direction:  h.api.DestinationDirection(),
	}
	if err := deepcopy.Copy(&state.Queue, h.api.DestinationQueue()); err != nil {
		panic(err)
	}
	if err := deepcopy.Copy(&state.Pressed, h.api.PressedFloors()); err != nil {
		panic(err)
	}
	return state
}

// FloorHandle pairs a host floor object with its index.
type FloorHandle struct {
	id  int
	api FloorAPI
}

func NewFloorHandle(id int, api FloorAPI) FloorHandle {
	return FloorHandle{id: id, api: api}
}

func (h FloorHandle) ID() int { return h.id }

func (h FloorHandle) FloorNum() int { return h.api.FloorNum() }

func (h FloorHandle) OnUpButtonPressed(fn func()) { h.api.OnUpButtonPressed(fn) }

func (h FloorHandle) OnDownButtonPressed(fn func()) { h.api.OnDownButtonPressed(fn) }
