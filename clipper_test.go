package microgui_test

import (
	"testing"

	"github.com/go-theft-auto/microgui"
)

func TestListClipper(t *testing.T) {
	var start, end int
	var scrollTo = -1
	hn := newHarness(microgui.NewRect(0, 0, 200, 150), 0, func(c *microgui.Container) {
		lc := c.ListClipper(100, 0)
		start, end = lc.Start, lc.End
		for i := lc.Start; i < lc.End; i++ {
			c.Label("row")
		}
		if scrollTo >= 0 {
			lc.ScrollTo(scrollTo)
		}
		lc.Finish()
	})
	container := func() (scroll, content int) {
		hn.h.With(func(w *microgui.Window) {
			scroll = w.Container().Scroll().Y
			content = w.Container().ContentSize().Y
		})
		return scroll, content
	}

	hn.frame()
	if start != 0 || end != 5 {
		t.Errorf("expected rows [0,5) visible, got [%d,%d)", start, end)
	}
	if _, content := container(); content != 100*24-4 {
		t.Errorf("expected content of all 100 rows, got %d", content)
	}

	hn.h.With(func(w *microgui.Window) {
		w.Container().SetScroll(microgui.Vec2{Y: 240})
	})
	hn.frame()
	if start != 9 || end != 16 {
		t.Errorf("expected rows [9,16) visible at scroll 240, got [%d,%d)", start, end)
	}

	scrollTo = 50
	hn.frame()
	scrollTo = -1
	if scroll, _ := container(); scroll != 1099 {
		t.Errorf("expected scroll 1099 to reveal row 50, got %d", scroll)
	}
	hn.frame()
	if end != 51 {
		t.Errorf("expected row 50 to be the last visible row, got end %d", end)
	}

	// Already visible: no change.
	scrollTo = 48
	hn.frame()
	if scroll, _ := container(); scroll != 1099 {
		t.Errorf("expected scroll to stay at 1099, got %d", scroll)
	}
}

func TestListClipper_Empty(t *testing.T) {
	var start, end int
	hn := newHarness(microgui.NewRect(0, 0, 200, 150), 0, func(c *microgui.Container) {
		lc := c.ListClipper(0, 0)
		start, end = lc.Start, lc.End
		lc.Finish()
	})
	hn.frame()
	if start != 0 || end != 0 {
		t.Errorf("expected empty range, got [%d,%d)", start, end)
	}
}
