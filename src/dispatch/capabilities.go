// Package dispatch assigns outstanding floor calls to idle elevators.
//
// The controller is event-driven and single-threaded: the host delivers one
// event at a time into the registered callbacks, and every handler runs to
// completion before the next event is delivered. Nothing here blocks or
// starts goroutines; serialized delivery is the host's contract, so no
// locking happens on this side of it.
package dispatch

import "liftdispatch/src/types"

// FloorAPI is the capability surface a host floor object exposes. Button
// callbacks take no arguments; subscribers capture the floor themselves.
type FloorAPI interface {
	FloorNum() int
	OnUpButtonPressed(fn func())
	OnDownButtonPressed(fn func())
}

// ElevatorAPI is the command-and-query surface a host elevator object
// exposes. The controller requests destinations through GoToFloor and never
// assigns host state directly.
type ElevatorAPI interface {
	// GoToFloor queues floor as a destination. With goDirectly set the floor
	// is served before anything already queued.
	GoToFloor(floor int, goDirectly bool)
	// Stop clears the destination queue immediately.
	Stop()

	CurrentFloor() int
	GoingUpIndicator() bool
	SetGoingUpIndicator(on bool)
	GoingDownIndicator() bool
	SetGoingDownIndicator(on bool)
	MaxPassengerCount() int
	LoadFactor() float64
	DestinationDirection() types.Direction
	DestinationQueue() []int
	SetDestinationQueue(queue []int)
	CheckDestinationQueue()
	PressedFloors() []int

	OnIdle(fn func())
	OnFloorButtonPressed(fn func(floor int))
	OnPassingFloor(fn func(floor int, dir types.Direction))
	OnStoppedAtFloor(fn func(floor int))
}
