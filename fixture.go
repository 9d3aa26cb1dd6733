package callbench

// Width is the number of calls each level of the chain makes to the next.
// Depth is the number of levels below the entry point (Bar, Baz, Quux, Qux).
// Together they define what the benchmark measures; changing either changes
// the workload.
const (
	Width = 20
	Depth = 4

	// EntryCalls is how many times one iteration invokes Foo.
	EntryCalls = 20
)

// Fixture is a call chain whose entry point is timed by the driver.
// Foo must perform Width calls into the next level, recursively for Depth
// levels, and return nothing of interest.
type Fixture interface {
	Foo(a, b, c, d int)
}

// CallChain dispatches through concrete methods.
//
// Every method is marked noinline: without it the compiler collapses the
// whole chain into an empty loop and there is nothing left to measure.
type CallChain struct{}

// NewCallChain returns the method-dispatch fixture.
func NewCallChain() *CallChain {
	return &CallChain{}
}

//go:noinline
func (ch *CallChain) Foo(a, b, c, d int) {
	for range Width {
		ch.Bar(a, b, c)
	}
}

//go:noinline
func (ch *CallChain) Bar(a, b, c int) {
	for range Width {
		ch.Baz(a, b)
	}
}

//go:noinline
func (ch *CallChain) Baz(a, b int) {
	for range Width {
		ch.Quux(a)
	}
}

//go:noinline
func (ch *CallChain) Quux(a int) {
	for range Width {
		ch.Qux()
	}
}

//go:noinline
func (ch *CallChain) Qux() {}

// CallsPerEntry returns the number of dispatches below one call to Foo:
// Width + Width² + ... + Width^Depth.
func CallsPerEntry() int {
	total, level := 0, 1
	for range Depth {
		level *= Width
		total += level
	}
	return total
}
