package config

import "time"

// Demo defaults. Every value here can be overridden from the command line;
// the dispatch core itself reads none of them.
const (
	NumFloors    = 8
	NumElevators = 2
	CabCapacity  = 6

	TickInterval   = 100 * time.Millisecond
	TravelTicks    = 10 // ticks to traverse one floor
	DoorDwellTicks = 15 // ticks the doors stay open at a stop

	RunDuration = 45 * time.Second
	SpawnChance = 0.15 // per-tick probability of a new passenger
)
