package loopflow

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// Package-level logger, unset by default. Loop tracing is a cross-cutting
// infrastructure concern shared by every combinator, which keeps logging
// configuration off the (fixed) combinator contracts.
var loggerStore struct {
	sync.RWMutex
	logger *logiface.Logger[logiface.Event]
}

// SetLogger installs a structured logger for loop tracing, replacing any
// previous one; nil removes it. Trace events are emitted at
// [logiface.LevelTrace], so an installed logger at a lower verbosity costs
// one level check per loop entry and nothing more. logiface loggers are
// nil-safe, so no guard is needed at the emit sites either way.
func SetLogger(logger *logiface.Logger[logiface.Event]) {
	loggerStore.Lock()
	defer loggerStore.Unlock()
	loggerStore.logger = logger
}

func getLogger() *logiface.Logger[logiface.Event] {
	loggerStore.RLock()
	defer loggerStore.RUnlock()
	return loggerStore.logger
}

// traceEnter records a loop invocation starting. label is nil for the
// combinators that don't participate in the escape-signal mechanism.
func traceEnter(construct string, label *Label, bindings int) {
	b := getLogger().Trace().
		Str(`construct`, construct).
		Int(`bindings`, bindings)
	if label != nil {
		b = b.Stringer(`label`, label)
	}
	b.Log(`loop enter`)
}

// traceBreak records a loop intercepting a break signal for its label.
func traceBreak(construct string, label *Label) {
	getLogger().Trace().
		Str(`construct`, construct).
		Stringer(`label`, label).
		Log(`loop break`)
}
