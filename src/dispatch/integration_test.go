package dispatch_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftdispatch/lib/simlift"
	"liftdispatch/src/dispatch"
)

// The simulated building must satisfy the capability surfaces as-is.
var (
	_ dispatch.ElevatorAPI = (*simlift.Elevator)(nil)
	_ dispatch.FloorAPI    = (*simlift.Floor)(nil)
)

func newBuilding(t *testing.T, cfg simlift.Config) (*simlift.Engine, *dispatch.Controller) {
	t.Helper()
	engine, err := simlift.NewEngine(cfg)
	require.NoError(t, err)
	ctrl := dispatch.NewController()
	ctrl.Init(elevatorAPIs(engine), floorAPIs(engine))
	engine.Start()
	return engine, ctrl
}

func elevatorAPIs(en *simlift.Engine) []dispatch.ElevatorAPI {
	elevs := en.Elevators()
	apis := make([]dispatch.ElevatorAPI, len(elevs))
	for i, e := range elevs {
		apis[i] = e
	}
	return apis
}

func floorAPIs(en *simlift.Engine) []dispatch.FloorAPI {
	floors := en.Floors()
	apis := make([]dispatch.FloorAPI, len(floors))
	for i, f := range floors {
		apis[i] = f
	}
	return apis
}

func TestPassengerRoundTrip(t *testing.T) {
	clock := clockwork.NewFakeClock()
	engine, ctrl := newBuilding(t, simlift.Config{
		Floors:         5,
		Elevators:      1,
		TravelTicks:    1,
		DoorDwellTicks: 1,
		Clock:          clock,
	})

	engine.AddPassenger("Ada", 3, 0)

	// The hall call is assigned synchronously with the button press.
	require.Equal(t, []int{3}, engine.Elevators()[0].DestinationQueue())
	require.Equal(t, 0, ctrl.Pending().Len())

	for i := 0; i < 8; i++ {
		clock.Advance(100 * time.Millisecond)
		engine.Step()
	}

	report := engine.Report()
	assert.Equal(t, 1, report.Spawned)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 0, report.Waiting)
	assert.Equal(t, 0, report.Riding)
	assert.Equal(t, 0, engine.Elevators()[0].CurrentFloor())
	assert.InDelta(t, 0.3, report.MeanWaitSec, 1e-9)
	assert.InDelta(t, 0.3, report.P95WaitSec, 1e-9)
	assert.InDelta(t, 0.4, report.MeanRideSec, 1e-9)
}

// With a one-seat cabin the second rider is left behind; the floor announces
// itself again and the dispatcher sends the elevator back.
func TestLeftBehindPassengerIsPickedUpAgain(t *testing.T) {
	clock := clockwork.NewFakeClock()
	engine, ctrl := newBuilding(t, simlift.Config{
		Floors:         5,
		Elevators:      1,
		CabCapacity:    1,
		TravelTicks:    1,
		DoorDwellTicks: 1,
		Clock:          clock,
	})

	engine.AddPassenger("Ada", 2, 4)
	engine.AddPassenger("Bob", 2, 4)

	for i := 0; i < 15; i++ {
		clock.Advance(100 * time.Millisecond)
		engine.Step()
	}

	report := engine.Report()
	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 0, report.Waiting)
	assert.Equal(t, 0, report.Riding)
	assert.Equal(t, 0, ctrl.Pending().Len())
}

func TestTwoElevatorsSplitCalls(t *testing.T) {
	engine, ctrl := newBuilding(t, simlift.Config{
		Floors:         6,
		Elevators:      2,
		TravelTicks:    1,
		DoorDwellTicks: 1,
	})

	engine.AddPassenger("Ada", 4, 0)
	engine.AddPassenger("Bob", 1, 3)

	// One claim per call: the first idle elevator took floor 4, the second
	// took floor 1, and nothing is pending.
	require.Equal(t, []int{4}, engine.Elevators()[0].DestinationQueue())
	require.Equal(t, []int{1}, engine.Elevators()[1].DestinationQueue())
	require.Equal(t, 0, ctrl.Pending().Len())

	for i := 0; i < 12; i++ {
		engine.Step()
	}

	report := engine.Report()
	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 0, report.Waiting)
	assert.Equal(t, 0, report.Riding)
}
