package loopflow

type (
	// Binding pairs a loop variable name with its initial value. Order
	// within a binding list is significant: it becomes parameter order for
	// [Spin], and initialization order for the imperative loops. Names must
	// be unique within one loop invocation.
	Binding struct {
		Name  string
		Value any
	}

	// State holds the current values of an imperative loop's bindings. It
	// is owned exclusively by one loop invocation: initialized once before
	// the first iteration, mutated only by the loop body, dead once the
	// loop returns.
	State struct {
		names  []string
		values map[string]any
	}
)

func newState(bindings []Binding) *State {
	st := State{
		names:  make([]string, 0, len(bindings)),
		values: make(map[string]any, len(bindings)),
	}
	for _, b := range bindings {
		if _, ok := st.values[b.Name]; ok {
			panic(`loopflow: duplicate binding: ` + b.Name)
		}
		st.names = append(st.names, b.Name)
		st.values[b.Name] = b.Value
	}
	return &st
}

// Get returns the current value of the named binding. A panic will occur for
// names not in the loop's binding list.
func (x *State) Get(name string) any {
	v, ok := x.values[name]
	if !ok {
		panic(`loopflow: unknown binding: ` + name)
	}
	return v
}

// Set replaces the current value of the named binding. The binding list is
// fixed at loop entry; a panic will occur for unknown names.
func (x *State) Set(name string, value any) {
	if _, ok := x.values[name]; !ok {
		panic(`loopflow: unknown binding: ` + name)
	}
	x.values[name] = value
}

// Len returns the number of bindings.
func (x *State) Len() int { return len(x.names) }

// Bindings returns the bindings in declaration order, with their current
// values. The result is a snapshot; mutating it doesn't affect the loop.
func (x *State) Bindings() []Binding {
	out := make([]Binding, len(x.names))
	for i, name := range x.names {
		out[i] = Binding{Name: name, Value: x.values[name]}
	}
	return out
}
