// Package simlift is a small in-process host engine for exercising the
// dispatch controller: simulated elevators and floors exposing the same
// capability surface a real host would, driven one tick at a time by an
// Engine that owns motion, doors and passengers.
package simlift

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

// Config sizes the simulated building and its physics. Zero values for
// capacity, travel, dwell and clock fall back to defaults.
type Config struct {
	Floors         int
	Elevators      int
	CabCapacity    int
	TravelTicks    int     // ticks to traverse one floor
	DoorDwellTicks int     // ticks the doors stay open on a stop
	SpawnChance    float64 // per-tick probability of a new passenger
	Seed           int64
	Clock          clockwork.Clock
}

func (cfg Config) withDefaults() Config {
	if cfg.CabCapacity == 0 {
		cfg.CabCapacity = 6
	}
	if cfg.TravelTicks == 0 {
		cfg.TravelTicks = 10
	}
	if cfg.DoorDwellTicks == 0 {
		cfg.DoorDwellTicks = 15
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Floors < 2 {
		return fmt.Errorf("simlift: need at least 2 floors, got %d", cfg.Floors)
	}
	if cfg.Elevators < 1 {
		return fmt.Errorf("simlift: need at least 1 elevator, got %d", cfg.Elevators)
	}
	if cfg.TravelTicks < 1 || cfg.DoorDwellTicks < 1 {
		return fmt.Errorf("simlift: travel (%d) and dwell (%d) must be at least 1 tick",
			cfg.TravelTicks, cfg.DoorDwellTicks)
	}
	if cfg.SpawnChance < 0 || cfg.SpawnChance > 1 {
		return fmt.Errorf("simlift: spawn chance %v outside [0,1]", cfg.SpawnChance)
	}
	if cfg.CabCapacity < 1 {
		return fmt.Errorf("simlift: cab capacity must be at least 1, got %d", cfg.CabCapacity)
	}
	return nil
}

// Engine is the host simulation: it owns the building, advances motion one
// tick at a time and emits capability events synchronously from Step. A
// single goroutine drives Step, so everything downstream of it runs
// serialized.
type Engine struct {
	cfg       Config
	clock     clockwork.Clock
	rng       *rand.Rand
	elevators []*Elevator
	floors    []*Floor

	ticks     int
	spawned   int
	delivered int
	waits     []time.Duration
	rides     []time.Duration
}

func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	en := &Engine{
		cfg:   cfg,
		clock: cfg.Clock,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
	for i := 0; i < cfg.Floors; i++ {
		floor := newFloor(i)
		floor.afterPress = en.nudgeIdle
		en.floors = append(en.floors, floor)
	}
	for i := 0; i < cfg.Elevators; i++ {
		elev := newElevator(i, cfg)
		elev.OnStoppedAtFloor(en.exchangeHandler(elev))
		en.elevators = append(en.elevators, elev)
	}
	return en, nil
}

func (en *Engine) Elevators() []*Elevator { return en.elevators }

func (en *Engine) Floors() []*Floor { return en.floors }

func (en *Engine) Ticks() int { return en.ticks }

// Start announces the initial idle state of every elevator. Call it after
// the dispatcher has subscribed and before the first Step.
func (en *Engine) Start() {
	for _, e := range en.elevators {
		e.emitIdle()
	}
	slog.Info("Simulation started",
		"floors", len(en.floors),
		"elevators", len(en.elevators))
}

// Step advances the simulation one tick: maybe a new passenger, then every
// elevator moves. All resulting events fire synchronously before Step
// returns.
func (en *Engine) Step() {
	en.ticks++
	if en.cfg.SpawnChance > 0 && en.rng.Float64() < en.cfg.SpawnChance {
		en.spawnPassenger()
	}
	for _, e := range en.elevators {
		e.step()
	}
}

func (en *Engine) spawnPassenger() {
	from := en.rng.Intn(len(en.floors))
	to := en.rng.Intn(len(en.floors) - 1)
	if to >= from {
		to++
	}
	en.AddPassenger(faker.FirstName(), from, to)
}

// AddPassenger places a rider on floor from, headed to floor to, and presses
// the hall button for them.
func (en *Engine) AddPassenger(name string, from, to int) *Passenger {
	if from == to || from < 0 || to < 0 || from >= len(en.floors) || to >= len(en.floors) {
		panic(fmt.Sprintf("simlift: bad passenger trip %d -> %d", from, to))
	}
	p := newPassenger(name, from, to, en.clock.Now())
	en.spawned++
	slog.Debug("Passenger arrived",
		"passenger", p.Name,
		"id", p.ID,
		"from", from,
		"to", to,
		"direction", p.Direction())
	en.floors[from].addWaiting(p)
	return p
}

// nudgeIdle re-announces parked elevators after a hall button press so one
// of them can claim the new call.
func (en *Engine) nudgeIdle() {
	for _, e := range en.elevators {
		if e.idle() {
			e.emitIdle()
		}
	}
}

func (en *Engine) exchangeHandler(e *Elevator) func(int) {
	return func(floor int) { en.exchange(e, floor) }
}

// exchange lets riders out and in while the doors are open at floor.
// Boarding passengers press their cabin buttons, which re-enters the
// dispatcher synchronously.
func (en *Engine) exchange(e *Elevator, floor int) {
	ridesOn := func(p *Passenger, _ int) bool { return p.To != floor }
	staying := lo.Filter(e.passengers, ridesOn)
	leaving := lo.Reject(e.passengers, ridesOn)
	e.passengers = staying
	for _, p := range leaving {
		en.delivered++
		en.rides = append(en.rides, en.clock.Since(p.boardedAt))
		slog.Debug("Passenger delivered", "passenger", p.Name, "floor", floor, "elevator", e.id)
	}

	f := en.floors[floor]
	for len(e.passengers) < e.capacity && len(f.waiting) > 0 {
		p := f.waiting[0]
		f.waiting = f.waiting[1:]
		p.boardedAt = en.clock.Now()
		en.waits = append(en.waits, p.boardedAt.Sub(p.arrivedAt))
		e.passengers = append(e.passengers, p)
		e.PressFloorButton(p.To)
		slog.Debug("Passenger boarded",
			"passenger", p.Name,
			"from", floor,
			"to", p.To,
			"elevator", e.id)
	}
	f.settle()
}
