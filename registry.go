package callbench

import (
	"fmt"
	"sort"
)

// BenchFunc runs a benchmark for the given number of iterations.
type BenchFunc func(iterations int, timer Timer, fixture Fixture) (Samples, error)

// Benchmark is a named, runnable measurement.
type Benchmark struct {
	Name        string
	Description string
	Func        BenchFunc
}

// Registry holds benchmarks by name.
type Registry struct {
	benchmarks map[string]Benchmark
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		benchmarks: make(map[string]Benchmark),
	}
}

// Register adds b, replacing any benchmark with the same name.
// Call this during init().
func (r *Registry) Register(b Benchmark) {
	r.benchmarks[b.Name] = b
}

// Lookup returns the benchmark called name.
func (r *Registry) Lookup(name string) (Benchmark, error) {
	b, ok := r.benchmarks[name]
	if !ok {
		return Benchmark{}, fmt.Errorf("%w: unknown benchmark %q (available: %v)",
			ErrConfiguration, name, r.Names())
	}
	return b, nil
}

// Names lists registered benchmarks, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.benchmarks))
	for name := range r.benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry
var globalRegistry = NewRegistry()

func init() {
	Register(Benchmark{
		Name:        "calls",
		Description: "Nested method calls, 20 per level, 4 levels below Foo",
		Func:        RunIterations,
	})
}

// Register adds to the global registry.
func Register(b Benchmark) {
	globalRegistry.Register(b)
}

// Lookup finds a benchmark in the global registry.
func Lookup(name string) (Benchmark, error) {
	return globalRegistry.Lookup(name)
}

// Names lists the benchmarks in the global registry.
func Names() []string {
	return globalRegistry.Names()
}
