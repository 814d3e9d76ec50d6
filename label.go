package loopflow

// Label identifies the loop instance a break signal targets. Labels compare
// by identity: two labels match only if they are the same allocation, so a
// freshly allocated label can never be broken by code that doesn't hold it.
type Label struct {
	name string
}

// NewLabel allocates a fresh label. The name is diagnostic only; it carries
// no identity.
func NewLabel(name string) *Label {
	return &Label{name: name}
}

// String returns the label's diagnostic name.
func (x *Label) String() string {
	if x == nil {
		return `<nil>`
	}
	if x.name == `` {
		return `<unnamed>`
	}
	return x.name
}

// defaultLabel tags every unlabeled breakable loop in the process. It is
// allocated once, here, and immutable thereafter, so concurrent unlabeled
// loops on separate goroutines can't corrupt it. Interception remains
// per-control-path regardless (see catchBreak).
var defaultLabel = NewLabel(`loop`)

// DefaultLabel returns the process-wide label shared by every [While] and
// every unlabeled [Break]. It is one constant for the life of the process.
func DefaultLabel() *Label { return defaultLabel }
