package loopflow

// While repeatedly evaluates body over a mutable [State] initialized from
// bindings, until the body terminates the loop via [Break], and returns the
// break payload. The body's bindings persist (and may be mutated) across
// iterations. There is no implicit termination condition: a body that never
// breaks loops forever.
//
// Every While in the process runs under the one shared [DefaultLabel], so an
// unlabeled Break inside nested unlabeled loops always escapes only the
// innermost active one. That is consistent, but it means unlabeled loops
// can't target an outer loop specifically; use [WhileLabeled] with distinct
// labels whenever independent nested control is required.
func While(bindings []Binding, body func(st *State)) any {
	return WhileLabeled(defaultLabel, bindings, body)
}

// WhileLabeled is [While] with an explicit, caller-supplied label, so that
// independently nested loops can be targeted individually: a [BreakLabeled]
// for an outer loop's label unwinds through any inner loops running under
// other labels, terminating everything up to and including the loop that
// owns the label.
func WhileLabeled(label *Label, bindings []Binding, body func(st *State)) any {
	if label == nil {
		panic(`loopflow: while: nil label`)
	}
	if body == nil {
		panic(`loopflow: while: nil body`)
	}

	st := newState(bindings)
	traceEnter(`while`, label, st.Len())

	for {
		if out := catchBreak(label, func() { body(st) }); out.broke {
			traceBreak(`while`, label)
			return out.value
		}
	}
}
