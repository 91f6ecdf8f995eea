package dispatch

import (
	"log/slog"

	"liftdispatch/src/types"
)

// Controller owns the pending-request bookkeeping and assigns calls to
// elevators as the host reports them idle. One instance serves one
// simulation, from Init until the host tears the simulation down.
type Controller struct {
	elevators []ElevatorHandle
	floors    []FloorHandle
	pending   *RequestSet
	policy    Policy
}

type Option func(*Controller)

// WithPolicy replaces the default nearest-floor assignment policy.
func WithPolicy(p Policy) Option {
	return func(c *Controller) { c.policy = p }
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		pending: NewRequestSet(),
		policy:  NearestFloor{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pending exposes the outstanding-call bookkeeping for tests and status
// reporting. The controller stays the only writer.
func (c *Controller) Pending() *RequestSet { return c.pending }

// Init subscribes the controller to every floor and elevator event, each
// callback capturing its entity's own index. The host calls Init exactly
// once, at simulation start, before the first tick.
func (c *Controller) Init(elevators []ElevatorAPI, floors []FloorAPI) {
	c.refresh(elevators, floors)

	for i := range c.floors {
		num := c.floors[i].FloorNum()
		c.floors[i].OnUpButtonPressed(func() { c.handleFloorCall(num, types.DirUp) })
		c.floors[i].OnDownButtonPressed(func() { c.handleFloorCall(num, types.DirDown) })
	}

	for i := range c.elevators {
		id := c.elevators[i].ID()
		c.elevators[i].OnIdle(func() { c.handleIdle(id) })
		c.elevators[i].OnFloorButtonPressed(func(floor int) { c.handleCabCall(id, floor) })
		c.elevators[i].OnPassingFloor(func(floor int, dir types.Direction) {
			c.handlePassingFloor(id, floor, dir)
		})
		c.elevators[i].OnStoppedAtFloor(func(floor int) { c.handleStoppedAtFloor(id, floor) })
	}

	slog.Info("Dispatch controller initialized",
		"elevators", len(c.elevators),
		"floors", len(c.floors))
}

// Update replaces the controller's cached handle collections with the ones
// the host hands over for this tick. No decision logic runs here; motion is
// host-owned and the controller only reacts to events.
func (c *Controller) Update(dt float64, elevators []ElevatorAPI, floors []FloorAPI) {
	c.refresh(elevators, floors)
}

func (c *Controller) refresh(elevators []ElevatorAPI, floors []FloorAPI) {
	c.elevators = make([]ElevatorHandle, len(elevators))
	for i, api := range elevators {
		c.elevators[i] = NewElevatorHandle(i, api)
	}
	c.floors = make([]FloorHandle, len(floors))
	for i, api := range floors {
		c.floors[i] = NewFloorHandle(i, api)
	}
}

// handleFloorCall records a hall call. Re-pressing an already pending floor
// changes nothing.
func (c *Controller) handleFloorCall(floor int, dir types.Direction) {
	c.pending.Add(floor, dir)
	slog.Debug("Hall call registered",
		"floor", floor,
		"direction", dir,
		"pending", c.pending.Len())
}

// handleIdle assigns the nearest pending call to the elevator that just went
// idle. The claimed floor leaves the set before the command is issued, so
// any event delivered synchronously from inside the command already observes
// the request as taken.
func (c *Controller) handleIdle(id int) {
	elev, ok := c.elevator(id)
	if !ok {
		return
	}
	floor, ok := c.policy.Pick(elev.CurrentFloor(), c.pending)
	if !ok {
		slog.Debug("Elevator idle with no pending calls", "elevator", id)
		return
	}
	c.pending.Remove(floor)
	elev.GoToFloor(floor)
	slog.Info("Assigned hall call",
		"elevator", id,
		"floor", floor,
		"pending", c.pending.Len())
}

// handleCabCall queues an in-cabin destination. If the same floor also has an
// outstanding hall call, this elevator now covers it, so the call is claimed
// before the command goes out.
func (c *Controller) handleCabCall(id, floor int) {
	elev, ok := c.elevator(id)
	if !ok {
		return
	}
	if c.pending.Contains(floor) {
		c.pending.Remove(floor)
		slog.Debug("Cab call claims outstanding hall call", "elevator", id, "floor", floor)
	}
	elev.GoToFloor(floor)
}

// Reserved extension point for en-route pickup policies.
func (c *Controller) handlePassingFloor(id, floor int, dir types.Direction) {
}

// Reserved extension point.
func (c *Controller) handleStoppedAtFloor(id, floor int) {
}

func (c *Controller) elevator(id int) (ElevatorHandle, bool) {
	if id < 0 || id >= len(c.elevators) {
		slog.Warn("Event from unknown elevator", "elevator", id)
		return ElevatorHandle{}, false
	}
	return c.elevators[id], true
}
