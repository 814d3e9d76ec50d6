package loopflow

import (
	"fmt"
)

// defaultSpinnerName is the fixed identifier used when Spin's name argument
// is omitted (empty).
const defaultSpinnerName = `spin`

type (
	// Spinner is the self-referential callable defined by [Spin], passed to
	// the loop body as its self argument. Invoking it (via Recur or Call)
	// with new argument values performs a recursive continuation of the
	// loop: a new iteration over fresh bindings, never mutation of existing
	// ones.
	Spinner struct {
		name   string
		params []string
		body   func(self *Spinner, args []any) any
	}

	// bounce is the continuation marker returned by Spinner.Recur. The
	// trampoline consumes markers belonging to its own spinner and iterates
	// at the top level instead of growing the call stack; markers for any
	// other spinner pass through untouched.
	bounce struct {
		spinner *Spinner
		args    []any
	}
)

// Name returns the spinner's identifier.
func (x *Spinner) Name() string { return x.name }

// Arity returns the number of loop parameters.
func (x *Spinner) Arity() int { return len(x.params) }

// Recur continues the loop with new argument values, without growing the
// call stack. The returned marker is only meaningful as the body's return
// value (tail position): returning it makes the driving trampoline run the
// next iteration. A panic will occur on arity mismatch.
func (x *Spinner) Recur(args ...any) any {
	x.checkArity(len(args))
	return &bounce{spinner: x, args: args}
}

// Call invokes the loop recursively, right now, with new argument values,
// and returns its result. Unlike [Spinner.Recur] it is usable outside tail
// position (the result can feed further computation), at the cost of one
// real stack frame per call. A panic will occur on arity mismatch.
func (x *Spinner) Call(args ...any) any {
	x.checkArity(len(args))
	return x.run(args)
}

func (x *Spinner) checkArity(n int) {
	if n != len(x.params) {
		panic(fmt.Sprintf(`loopflow: %s: %d args for %d loop parameters`, x.name, n, len(x.params)))
	}
}

// run is the trampoline: it evaluates the body until some control path
// returns a value that isn't this spinner's own continuation marker.
func (x *Spinner) run(args []any) any {
	for {
		v := x.body(x, args)
		if b, ok := v.(*bounce); ok && b.spinner == x {
			args = b.args
			continue
		}
		return v
	}
}

// Spin defines a named recursive loop over bindings and immediately invokes
// it with the bindings' initial values, returning that invocation's result.
// The binding names become the loop's parameter names, in order; args is the
// current parameter values, one per binding. An empty name selects the
// default identifier "spin".
//
// Each recursive continuation carries fresh argument values; Spin has no
// mutable loop state. There is no implicit termination: the loop ends only
// when some control path in body returns without recursing, so a body that
// always recurs never terminates.
func Spin(name string, bindings []Binding, body func(self *Spinner, args []any) any) any {
	if body == nil {
		panic(`loopflow: spin: nil body`)
	}
	if name == `` {
		name = defaultSpinnerName
	}

	params := make([]string, len(bindings))
	args := make([]any, len(bindings))
	seen := make(map[string]struct{}, len(bindings))
	for i, b := range bindings {
		if _, ok := seen[b.Name]; ok {
			panic(`loopflow: duplicate binding: ` + b.Name)
		}
		seen[b.Name] = struct{}{}
		params[i] = b.Name
		args[i] = b.Value
	}

	x := Spinner{name: name, params: params, body: body}
	traceEnter(`spin`, nil, len(params))

	return x.run(args)
}
