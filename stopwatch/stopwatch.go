// SPDX-License-Identifier: EPL-2.0

// Package stopwatch measures repeated laps of a workload and reports
// summary statistics with the measurement overhead subtracted. It uses the
// monotonic clock; a Stopwatch is for a single goroutine.
package stopwatch

import (
	"math"
	"time"
)

// Stopwatch accumulates lap timings. The zero value is not ready for use;
// call New.
type Stopwatch struct {
	lapStart    time.Time
	lapBest     float64 // seconds
	lapTotal    float64
	lapTotal2   float64 // sum of squared laps, for variance
	lapOverhead float64
	lapCount    int
}

// New returns a started Stopwatch. The per-lap timing overhead is measured
// first with a burst of empty laps and subtracted from every statistic.
func New() *Stopwatch {
	s := &Stopwatch{}
	s.Start()
	const repeats = 1000
	for i := 0; i < repeats; i++ {
		s.StartLap()
		s.Lap()
	}
	s.lapOverhead = s.lapTotal / float64(s.lapCount)
	s.Start()
	return s
}

// NewUncompensated returns a started Stopwatch with no overhead correction.
func NewUncompensated() *Stopwatch {
	s := &Stopwatch{}
	s.Start()
	return s
}

// Start resets all statistics and begins a new lap.
func (s *Stopwatch) Start() {
	s.lapCount = 0
	s.lapTotal = 0
	s.lapTotal2 = 0
	s.lapBest = math.Inf(1)
	s.StartLap()
}

// StartLap restarts the current lap without recording it.
func (s *Stopwatch) StartLap() {
	s.lapStart = time.Now()
}

// Lap records the time since the last StartLap (or Lap) and starts the next
// lap. The raw, uncompensated lap time is returned.
func (s *Stopwatch) Lap() time.Duration {
	elapsed := time.Since(s.lapStart)
	sec := elapsed.Seconds()

	if sec < s.lapBest {
		s.lapBest = sec
	}
	s.lapCount++
	s.lapTotal += sec
	s.lapTotal2 += sec * sec

	s.StartLap()
	return elapsed
}

// Count returns the number of recorded laps.
func (s *Stopwatch) Count() int {
	return s.lapCount
}

// Total returns the overhead-compensated sum of lap times in seconds.
func (s *Stopwatch) Total() float64 {
	return math.Max(0, s.lapTotal-float64(s.lapCount)*s.lapOverhead)
}

// Mean returns the compensated mean lap time in seconds.
func (s *Stopwatch) Mean() float64 {
	if s.lapCount == 0 {
		return 0
	}
	return s.Total() / float64(s.lapCount)
}

// Var returns the variance of the raw lap times.
func (s *Stopwatch) Var() float64 {
	if s.lapCount == 0 {
		return 0
	}
	m := s.lapTotal / float64(s.lapCount)
	m2 := s.lapTotal2 / float64(s.lapCount)
	return math.Max(0, m2-m*m)
}

// Std returns the standard deviation of the raw lap times.
func (s *Stopwatch) Std() float64 {
	return math.Sqrt(s.Var())
}

// Best returns the compensated fastest lap in seconds.
func (s *Stopwatch) Best() float64 {
	if s.lapCount == 0 {
		return 0
	}
	return math.Max(0, s.lapBest-s.lapOverhead)
}

// Optimistic estimates the true lap cost as the mean minus the given number
// of standard deviations, floored at the best lap. One deviation is a
// reasonable default.
func (s *Stopwatch) Optimistic(deviations float64) float64 {
	return math.Max(s.Best(), s.Mean()-s.Std()*deviations)
}
