// Package loopflow provides small looping control-flow combinators, for
// expressing both recursive and imperative loops with early-exit semantics,
// without hand-writing the surrounding plumbing each time.
//
// The four combinators are [Spin] (a named recursive loop, driven by a
// trampoline so tail recursion doesn't grow the stack), [While] and
// [WhileLabeled] (imperative loops over mutable bindings, terminated only by
// a matching [Break] or [BreakLabeled] signal), and [Until] (repeat until the
// body's result is truthy).
//
// Everything runs synchronously on the calling control path. The library
// never guards against a body that fails to terminate; a Spin body that
// always recurs, or a While body that never breaks, simply doesn't return.
// That's an inherent caller responsibility.
//
// A break targets a loop by label identity. All unlabeled loops in the
// process share one default label, so an unlabeled Break always escapes the
// innermost active unlabeled loop; use WhileLabeled with distinct labels when
// independent nested control is required. A break whose label has no active
// enclosing loop is an unbound break, and propagates as a panic with a
// *[BreakSignal] value.
package loopflow
