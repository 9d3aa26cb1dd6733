package callbench

import (
	"fmt"
	"reflect"
	"sort"
)

// Dispatch variants accepted by NewFixture.
const (
	DispatchMethod    = "method"
	DispatchInterface = "interface"
	DispatchReflect   = "reflect"
	DispatchScript    = "script"
)

var fixtureFactories = map[string]func() (Fixture, error){
	DispatchMethod:    func() (Fixture, error) { return NewCallChain(), nil },
	DispatchInterface: func() (Fixture, error) { return NewInterfaceChain(), nil },
	DispatchReflect:   func() (Fixture, error) { return NewReflectChain(), nil },
	DispatchScript: func() (Fixture, error) {
		sc, err := NewScriptChain()
		if err != nil {
			return nil, err
		}
		return sc, nil
	},
}

// NewFixture builds the call chain for the named dispatch variant.
func NewFixture(dispatch string) (Fixture, error) {
	factory, ok := fixtureFactories[dispatch]
	if !ok {
		return nil, fmt.Errorf("%w: unknown dispatch %q (available: %v)",
			ErrConfiguration, dispatch, DispatchNames())
	}
	return factory()
}

// DispatchNames lists the dispatch variants in sorted order.
func DispatchNames() []string {
	names := make([]string, 0, len(fixtureFactories))
	for name := range fixtureFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// chainLinks is the full method set of a call chain.
type chainLinks interface {
	Foo(a, b, c, d int)
	Bar(a, b, c int)
	Baz(a, b int)
	Quux(a int)
	Qux()
}

// InterfaceChain routes every hop through an interface value, so each call
// pays for the method table lookup and the indirect jump.
type InterfaceChain struct {
	self chainLinks
}

// NewInterfaceChain returns a chain whose hops dispatch through chainLinks.
func NewInterfaceChain() *InterfaceChain {
	ic := &InterfaceChain{}
	ic.self = ic
	return ic
}

//go:noinline
func (ic *InterfaceChain) Foo(a, b, c, d int) {
	for range Width {
		ic.self.Bar(a, b, c)
	}
}

//go:noinline
func (ic *InterfaceChain) Bar(a, b, c int) {
	for range Width {
		ic.self.Baz(a, b)
	}
}

//go:noinline
func (ic *InterfaceChain) Baz(a, b int) {
	for range Width {
		ic.self.Quux(a)
	}
}

//go:noinline
func (ic *InterfaceChain) Quux(a int) {
	for range Width {
		ic.self.Qux()
	}
}

//go:noinline
func (ic *InterfaceChain) Qux() {}

// ReflectChain resolves the next method by name on every call and invokes it
// through reflection, the way a dynamic runtime looks up an attribute before
// calling it.
type ReflectChain struct {
	self reflect.Value
}

// NewReflectChain returns a chain whose hops go through reflect.Value.Call.
func NewReflectChain() *ReflectChain {
	rc := &ReflectChain{}
	rc.self = reflect.ValueOf(rc)
	return rc
}

func (rc *ReflectChain) call(name string, args []reflect.Value) {
	for range Width {
		rc.self.MethodByName(name).Call(args)
	}
}

func (rc *ReflectChain) Foo(a, b, c, d int) {
	rc.call("Bar", []reflect.Value{reflect.ValueOf(a), reflect.ValueOf(b), reflect.ValueOf(c)})
}

func (rc *ReflectChain) Bar(a, b, c int) {
	rc.call("Baz", []reflect.Value{reflect.ValueOf(a), reflect.ValueOf(b)})
}

func (rc *ReflectChain) Baz(a, b int) {
	rc.call("Quux", []reflect.Value{reflect.ValueOf(a)})
}

func (rc *ReflectChain) Quux(a int) {
	rc.call("Qux", nil)
}

func (rc *ReflectChain) Qux() {}
