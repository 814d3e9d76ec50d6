package loopflow

// Truthy reports whether v terminates an [Until] loop: only nil and false
// are falsy, everything else (including zero numbers and empty strings) is
// truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return !ok || b
}

// Until repeatedly evaluates body over a mutable [State] initialized from
// bindings, until the body's result is truthy, then returns that result.
// The body always runs at least once; the bindings are not inspected before
// the first evaluation. Because only a truthy result terminates the loop,
// Until never returns a falsy value. No escape-signal mechanism is involved:
// a [Break] inside an Until body targets an enclosing breakable loop, or is
// unbound.
func Until(bindings []Binding, body func(st *State) any) any {
	if body == nil {
		panic(`loopflow: until: nil body`)
	}

	st := newState(bindings)
	traceEnter(`until`, nil, st.Len())

	for {
		if v := body(st); Truthy(v) {
			return v
		}
	}
}
