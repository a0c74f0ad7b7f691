package microgui

import "errors"

// Programming errors. The core panics with these (wrapped with the
// offending call) instead of trying to recover; callers that want to
// report them can recover and match with errors.Is.
var (
	// ErrClipUnderflow is raised when PopClipRect is called on an empty stack.
	ErrClipUnderflow = errors.New("microgui: clip rect stack underflow")

	// ErrClipImbalance is raised when a window or container ends with a
	// different clip stack depth than it started with.
	ErrClipImbalance = errors.New("microgui: unbalanced clip rect push/pop")

	// ErrIDUnderflow is raised when PopID is called with only the root seed left.
	ErrIDUnderflow = errors.New("microgui: id stack underflow")

	// ErrLayoutUnderflow is raised when a layout frame is popped that was never pushed.
	ErrLayoutUnderflow = errors.New("microgui: layout stack underflow")

	// ErrWindowBorrowed is raised when a window handle is borrowed while
	// another call site still holds it.
	ErrWindowBorrowed = errors.New("microgui: window already borrowed")

	// ErrWindowRedeclared is raised when the same window is drawn twice in
	// one frame.
	ErrWindowRedeclared = errors.New("microgui: window drawn twice in one frame")

	// ErrNotInFrame is raised when frame-scoped calls happen outside Begin/End.
	ErrNotInFrame = errors.New("microgui: call outside Begin/End")

	// ErrFrameActive is raised by Begin while a frame is in progress, and by
	// End while windows are still open.
	ErrFrameActive = errors.New("microgui: frame still in progress")
)
