package simlift

import (
	"time"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

// Summary aggregates what happened over a run.
type Summary struct {
	Ticks     int
	Spawned   int
	Delivered int
	Waiting   int // still on a floor
	Riding    int // still in a cabin

	MeanWaitSec float64
	P95WaitSec  float64
	MeanRideSec float64
}

// Report snapshots the run counters and wait/ride statistics so far.
func (en *Engine) Report() Summary {
	s := Summary{
		Ticks:     en.ticks,
		Spawned:   en.spawned,
		Delivered: en.delivered,
	}
	for _, f := range en.floors {
		s.Waiting += len(f.waiting)
	}
	for _, e := range en.elevators {
		s.Riding += len(e.passengers)
	}
	s.MeanWaitSec, s.P95WaitSec = durationStats(en.waits)
	s.MeanRideSec, _ = durationStats(en.rides)
	return s
}

func durationStats(durations []time.Duration) (mean, p95 float64) {
	if len(durations) == 0 {
		return 0, 0
	}
	secs := lo.Map(durations, func(d time.Duration, _ int) float64 {
		return d.Seconds()
	})
	mean, _ = stats.Mean(secs)
	p95, _ = stats.Percentile(secs, 95)
	return mean, p95
}
