package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"

	"liftdispatch/lib/simlift"
	"liftdispatch/src/config"
	"liftdispatch/src/dispatch"
	"liftdispatch/src/logging"
)

func main() {
	floors := flag.Int("floors", config.NumFloors, "Number of floors in the building")
	elevators := flag.Int("elevators", config.NumElevators, "Number of elevators")
	duration := flag.Duration("duration", config.RunDuration, "How long to run the simulation")
	tick := flag.Duration("tick", config.TickInterval, "Simulation tick interval")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Passenger spawn seed")
	spawn := flag.Float64("spawn", config.SpawnChance, "Per-tick passenger spawn probability")
	logFile := flag.String("logfile", "", "Also write logs to this file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logging.Init(level, *logFile)

	engine, err := simlift.NewEngine(simlift.Config{
		Floors:         *floors,
		Elevators:      *elevators,
		CabCapacity:    config.CabCapacity,
		TravelTicks:    config.TravelTicks,
		DoorDwellTicks: config.DoorDwellTicks,
		SpawnChance:    *spawn,
		Seed:           *seed,
	})
	if err != nil {
		slog.Error("Engine setup failed", "error", err)
		os.Exit(1)
	}

	ctrl := dispatch.NewController()
	ctrl.Init(elevatorAPIs(engine), floorAPIs(engine))
	engine.Start()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		slog.Error("Scheduler setup failed", "error", err)
		os.Exit(1)
	}
	dt := tick.Seconds()
	_, err = scheduler.NewJob(
		gocron.DurationJob(*tick),
		gocron.NewTask(func() {
			ctrl.Update(dt, elevatorAPIs(engine), floorAPIs(engine))
			engine.Step()
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		slog.Error("Tick job setup failed", "error", err)
		os.Exit(1)
	}
	scheduler.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
		slog.Info("Interrupted")
	case <-time.After(*duration):
	}

	if err := scheduler.Shutdown(); err != nil {
		slog.Error("Scheduler shutdown failed", "error", err)
	}

	report := engine.Report()
	slog.Info("Simulation finished",
		"ticks", report.Ticks,
		"spawned", report.Spawned,
		"delivered", report.Delivered,
		"waiting", report.Waiting,
		"riding", report.Riding,
		"unservedCalls", len(ctrl.Pending().Calls()),
		"meanWaitSec", report.MeanWaitSec,
		"p95WaitSec", report.P95WaitSec,
		"meanRideSec", report.MeanRideSec)
}

// The engine must stay import-free of the dispatch package, so the adapter
// slices are built here.
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
