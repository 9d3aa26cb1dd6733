package callbench

import (
	"fmt"

	"github.com/dop251/goja"
)

// callChainJS defines the same chain as CallChain inside the interpreter.
// WIDTH is injected from Go before the script runs.
const callChainJS = `
class CallChain {
	foo(a, b, c, d) {
		for (let i = 0; i < WIDTH; i++) this.bar(a, b, c);
	}
	bar(a, b, c) {
		for (let i = 0; i < WIDTH; i++) this.baz(a, b);
	}
	baz(a, b) {
		for (let i = 0; i < WIDTH; i++) this.quux(a);
	}
	quux(a) {
		for (let i = 0; i < WIDTH; i++) this.qux();
	}
	qux() {}
}

var chain = new CallChain();
`

// ScriptChain runs the call chain as a JavaScript class in a goja runtime.
// A ScriptChain owns its runtime and must not be shared between goroutines.
type ScriptChain struct {
	vm   *goja.Runtime
	self goja.Value
	foo  goja.Callable
}

// NewScriptChain compiles the chain and resolves the bound entry method.
func NewScriptChain() (*ScriptChain, error) {
	vm := goja.New()
	if err := vm.Set("WIDTH", Width); err != nil {
		return nil, fmt.Errorf("script chain: setting WIDTH: %w", err)
	}
	if _, err := vm.RunString(callChainJS); err != nil {
		return nil, fmt.Errorf("script chain: %w", err)
	}

	self := vm.Get("chain")
	if self == nil || goja.IsUndefined(self) {
		return nil, fmt.Errorf("script chain: chain instance not defined")
	}
	foo, ok := goja.AssertFunction(self.ToObject(vm).Get("foo"))
	if !ok {
		return nil, fmt.Errorf("script chain: foo is not a function")
	}

	return &ScriptChain{vm: vm, self: self, foo: foo}, nil
}

// Foo invokes chain.foo(a, b, c, d) in the interpreter.
// The script cannot throw once compiled, so an exception here is a bug and panics.
func (s *ScriptChain) Foo(a, b, c, d int) {
	_, err := s.foo(s.self,
		s.vm.ToValue(a), s.vm.ToValue(b), s.vm.ToValue(c), s.vm.ToValue(d))
	if err != nil {
		panic(fmt.Sprintf("callbench: script chain: %v", err))
	}
}
