package callbench

import (
	"fmt"
	"sort"
	"time"
)

// Timer returns the current reading of a clock, in seconds.
// Only differences between two readings are meaningful.
type Timer func() float64

var processStart = time.Now()

// wallClock reads the system clock. It can jump when the clock is adjusted.
func wallClock() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// monotonicClock reads Go's monotonic clock relative to process start.
func monotonicClock() float64 {
	return time.Since(processStart).Seconds()
}

// timerSources maps timer names to probes. A probe returns an error when the
// clock cannot be read on this platform.
var timerSources = map[string]func() (Timer, error){
	"time":         func() (Timer, error) { return wallClock, nil },
	"monotonic":    func() (Timer, error) { return monotonicClock, nil },
	"perf_counter": func() (Timer, error) { return monotonicClock, nil },
	"clock":        probeProcessClock,
	"process_time": probeProcessClock,
}

func probeProcessClock() (Timer, error) {
	if _, err := processTime(); err != nil {
		return nil, err
	}
	return func() float64 {
		s, _ := processTime()
		return s
	}, nil
}

// LookupTimer resolves a timer by name.
func LookupTimer(name string) (Timer, error) {
	probe, ok := timerSources[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown timer %q (available: %v)", ErrTimerSource, name, TimerNames())
	}
	timer, err := probe()
	if err != nil {
		return nil, fmt.Errorf("%w: timer %q unavailable: %v", ErrTimerSource, name, err)
	}
	return timer, nil
}

// TimerNames lists the timer names LookupTimer recognises, sorted.
func TimerNames() []string {
	names := make([]string, 0, len(timerSources))
	for name := range timerSources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
