package microgui

import (
	"errors"
	"testing"
)

func newTestShared() *shared {
	style := DefaultStyle()
	return &shared{
		style:  &style,
		input:  NewInputState(),
		atlas:  NewBitmapAtlas(),
		logger: guiLogger,
	}
}

// newTestContainer returns a prepared container that is the hover root.
func newTestContainer(rect Rect) *Container {
	sh := newTestShared()
	c := newContainer("test", rect, sh)
	sh.hoverRoot = c
	c.prepare()
	return c
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %v, got %v", target, r)
		}
	}()
	fn()
}
