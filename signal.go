package loopflow

type (
	// BreakSignal is the transient (label, payload) pair produced by Break
	// or BreakLabeled and consumed by the nearest dynamically enclosing loop
	// running under the same label. Its lifetime is the single unwind from
	// the break site to the catching loop.
	//
	// A BreakSignal that reaches the caller as an unrecovered panic is an
	// unbound break: the label had no active loop on the control path. It
	// implements error so that hosts which recover at a boundary get a
	// diagnosable value.
	BreakSignal struct {
		label *Label
		value any
	}

	// outcome distinguishes "body finished normally" from "body broke out",
	// without inspecting the payload (a break payload such as false is not
	// otherwise distinguishable from an ordinary return value).
	outcome struct {
		value any
		broke bool
	}
)

// Label returns the label the signal targets.
func (x *BreakSignal) Label() *Label { return x.label }

// Value returns the break payload.
func (x *BreakSignal) Value() any { return x.value }

// Error implements the error interface, for unbound breaks.
func (x *BreakSignal) Error() string {
	return `loopflow: unbound break: ` + x.label.String()
}

// Break terminates the innermost active unlabeled loop, which returns value.
// With no unlabeled loop on the control path, the resulting *BreakSignal
// propagates as a panic.
func Break(value any) {
	BreakLabeled(defaultLabel, value)
}

// BreakLabeled terminates the nearest enclosing loop running under label,
// which returns value. Inner loops under other labels are unwound through.
// With no matching loop on the control path, the resulting *BreakSignal
// propagates as a panic.
func BreakLabeled(label *Label, value any) {
	if label == nil {
		panic(`loopflow: break: nil label`)
	}
	panic(&BreakSignal{label: label, value: value})
}

// catchBreak runs thunk, intercepting a *BreakSignal tagged with label.
// Signals for any other label, and every other panic value, continue to
// unwind. Recovery is inherently scoped to this call frame on this
// goroutine, which keeps interception per-control-path.
func catchBreak(label *Label, thunk func()) (result outcome) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(*BreakSignal); ok && sig.label == label {
				result = outcome{value: sig.value, broke: true}
				return
			}
			panic(r)
		}
	}()
	thunk()
	return outcome{}
}
