package utils

import "time"

// Stopwatch measures a total duration split into laps, such as the attempts
// of a decode call. It is not safe for concurrent use.
type Stopwatch struct {
	start   time.Time
	lastLap time.Time
}

// StartStopwatch returns a running Stopwatch.
func StartStopwatch() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, lastLap: now}
}

// Lap returns the time since the previous lap, or since start for the first
// lap, and begins a new lap.
func (s *Stopwatch) Lap() time.Duration {
	now := time.Now()
	d := now.Sub(s.lastLap)
	s.lastLap = now
	return d
}

// Total returns the time since the stopwatch was started.
func (s *Stopwatch) Total() time.Duration {
	return time.Since(s.start)
}

// Milliseconds converts d to fractional milliseconds, the unit of duration
// histograms.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
