// Package callbench measures method-call dispatch overhead.
//
// # Overview
//
// The workload is a call chain of five methods:
//
//	Foo(a, b, c, d) → Bar(a, b, c) → Baz(a, b) → Quux(a) → Qux()
//
// Each level calls the next Width (20) times and Qux does nothing, so one call
// to Foo performs 20 + 20² + 20³ + 20⁴ = 168,420 dispatches and no other work.
// One iteration calls Foo(1, 2, 3, 4) EntryCalls (20) times between two timer
// readings. The calls are a fixed-trip-count loop rather than unrolled
// statements; the loop cost is part of every variant equally.
//
// # Quick Start
//
//	timer, err := callbench.LookupTimer("monotonic")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	samples, err := callbench.RunIterations(100, timer, callbench.NewCallChain())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One line per iteration, or a single geometric mean
//	if err := callbench.Report(os.Stdout, samples, true); err != nil {
//	    log.Fatal(err)
//	}
//
// # Dispatch Variants
//
// The same chain is available through different dispatch mechanisms:
//
//   - method:    concrete Go methods (CallChain)
//   - interface: every hop through an interface method table (InterfaceChain)
//   - reflect:   every hop looked up by name and called via reflection (ReflectChain)
//   - script:    a JavaScript class run by the goja interpreter (ScriptChain)
//
// Go methods are marked noinline; otherwise the compiler removes the chain.
//
// # Timers
//
// Timers return seconds:
//
//   - time:         wall clock, may step backwards when the clock is adjusted
//   - monotonic:    monotonic clock since process start (alias perf_counter)
//   - clock:        process CPU time, user plus system (alias process_time)
//
// # Errors
//
// Failures wrap ErrConfiguration, ErrDomain or ErrTimerSource. The geometric
// mean is only defined for positive samples; a zero duration, which a coarse
// timer can produce, is reported as ErrDomain rather than printed as 0.
package callbench
