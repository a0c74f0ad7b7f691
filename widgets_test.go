package microgui_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/microgui"
)

// The first cell of a 300x300 window at the origin is (5,29,78,20).
var firstCell = microgui.NewRect(0, 0, 300, 300)

func texts(cmds []microgui.Command) []string {
	var out []string
	for _, cmd := range cmds {
		if cmd.Kind == microgui.CommandText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

func TestButton_ClickedOnPress(t *testing.T) {
	var clicked bool
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		clicked = c.Button("Go", 0)
	})

	hn.in.SetMousePos(20, 35)
	hn.frame()
	if clicked {
		t.Error("expected no click before hover")
	}
	hn.frame()
	if clicked {
		t.Error("expected no click on hover")
	}

	hn.in.SetMouseButton(microgui.MouseLeft, true)
	hn.frame()
	if !clicked {
		t.Error("expected click on press")
	}
	hn.frame()
	if clicked {
		t.Error("expected no repeat click while held")
	}
}

func TestButton_PressAfterMovingToAnotherButton(t *testing.T) {
	var a, b bool
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		c.Layout().Row([]int{80, 80}, 0)
		a = c.Button("A", 0)
		b = c.Button("B", 0)
	})

	hn.in.SetMousePos(20, 35)
	hn.frame()
	hn.frame()
	if hn.ui.Hover() == 0 {
		t.Fatal("expected A to be hovered")
	}

	// The pointer lands on B and presses in the same frame.
	hn.in.SetMousePos(100, 35)
	hn.in.SetMouseButton(microgui.MouseLeft, true)
	hn.frame()
	if a || b {
		t.Errorf("expected no click, got A %v B %v", a, b)
	}
	if hn.ui.Focus() != 0 {
		t.Error("expected the stale hover not to take focus")
	}
}

func TestButton_RightClickIgnored(t *testing.T) {
	var clicked bool
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		clicked = c.Button("Go", 0)
	})
	hn.in.SetMousePos(20, 35)
	hn.frame()
	hn.frame()
	hn.in.SetMouseButton(microgui.MouseRight, true)
	hn.frame()
	if clicked {
		t.Error("expected right button not to click")
	}
}

func TestButton_HoverColor(t *testing.T) {
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		c.Button("Go", 0)
	})
	hover := hn.ui.Style().Color(microgui.ColorButtonHover)

	hn.in.SetMousePos(20, 35)
	hn.frame()
	hn.frame()

	var found bool
	for _, cmd := range hn.commands() {
		if cmd.Kind == microgui.CommandRect && cmd.Rect == microgui.NewRect(5, 29, 78, 20) {
			found = cmd.Color == hover
		}
	}
	if !found {
		t.Error("expected the hovered button to use the hover color")
	}
}

func TestButton_NoFrame(t *testing.T) {
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		c.Button("Go", microgui.OptNoFrame)
	})
	hn.frame()
	for _, cmd := range hn.commands() {
		if cmd.Kind == microgui.CommandRect && cmd.Rect == microgui.NewRect(5, 29, 78, 20) {
			t.Error("expected no button background with OptNoFrame")
		}
	}
}

func TestCheckbox_Toggles(t *testing.T) {
	var state, changed bool
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		changed = c.Checkbox("Enabled", &state)
	})

	hn.hoverThenPress(20, 35)
	if !state || !changed {
		t.Fatalf("expected toggle on press, got state %v changed %v", state, changed)
	}

	hn.frame()
	if !state || changed {
		t.Errorf("expected state to hold, got state %v changed %v", state, changed)
	}
	var check bool
	for _, cmd := range hn.commands() {
		if cmd.Kind == microgui.CommandIcon && cmd.Icon == microgui.IconCheck {
			check = true
		}
	}
	if !check {
		t.Error("expected a check mark")
	}
}

func TestSlider(t *testing.T) {
	value := 0.0
	var changed bool
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		changed = c.Slider("Volume", &value, 0, 100, 10)
	})

	hn.hoverThenPress(36, 35)
	// 31/78 of the range, snapped to the nearest step.
	if value != 40 || !changed {
		t.Errorf("expected 40 after press, got %v (changed %v)", value, changed)
	}

	hn.in.SetMousePos(500, 35)
	hn.frame()
	if value != 100 {
		t.Errorf("expected drag past the end to clamp to 100, got %v", value)
	}

	hn.frame()
	if changed {
		t.Error("expected no change without movement")
	}
	found := false
	for _, s := range texts(hn.commands()) {
		if s == "100.00" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected value label, got %v", texts(hn.commands()))
	}
}

func TestSlider_ClampsInitialValue(t *testing.T) {
	value := -5.0
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		c.Slider("Volume", &value, 0, 1, 0)
	})
	hn.frame()
	if value != 0 {
		t.Errorf("expected value clamped to 0, got %v", value)
	}
}

func TestHeader_TogglesOnClick(t *testing.T) {
	var expanded bool
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		expanded = c.Header("Section", 0)
	})

	hn.hoverThenPress(100, 35)
	if !expanded {
		t.Fatal("expected header to expand on click")
	}
	hn.in.SetMouseButton(microgui.MouseLeft, false)
	hn.frame()
	if !expanded {
		t.Error("expected header to stay expanded")
	}

	hn.in.SetMouseButton(microgui.MouseLeft, true)
	hn.frame()
	if expanded {
		t.Error("expected second click to collapse")
	}
}

func TestHeader_StartsExpanded(t *testing.T) {
	var expanded bool
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		expanded = c.Header("Section", microgui.OptExpanded)
	})
	hn.frame()
	if !expanded {
		t.Fatal("expected OptExpanded header to start expanded")
	}

	hn.hoverThenPress(100, 35)
	if expanded {
		t.Error("expected click to collapse")
	}
}

func TestHeader_StateSurvivesClosedWindow(t *testing.T) {
	var expanded bool
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		expanded = c.Header("Section", 0)
	})
	hn.hoverThenPress(100, 35)
	hn.in.SetMouseButton(microgui.MouseLeft, false)
	hn.frame()

	hn.h.Close()
	for i := 0; i < 3; i++ {
		if hn.frame() {
			t.Fatal("expected closed window not to draw")
		}
	}
	hn.h.Open()
	hn.frame()
	if !expanded {
		t.Error("expected header to stay expanded across close and reopen")
	}
}

func TestHeader_StateDroppedWhenNotDeclared(t *testing.T) {
	var expanded bool
	declare := true
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		if declare {
			expanded = c.Header("Section", 0)
		}
	})
	hn.hoverThenPress(100, 35)
	hn.in.SetMouseButton(microgui.MouseLeft, false)
	hn.frame()
	if !expanded {
		t.Fatal("expected header to expand on click")
	}

	declare = false
	hn.frame()
	declare = true
	hn.frame()
	if expanded {
		t.Error("expected header state to be dropped after a frame without it")
	}
}

func TestTreeNode_ScopesIDsAndIndents(t *testing.T) {
	var outer, inner microgui.ID
	var innerCell microgui.Rect
	ran := false
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		outer = c.IDs().GetIDFromStr("item")
		c.TreeNode("Node", microgui.OptExpanded, func() {
			ran = true
			inner = c.IDs().GetIDFromStr("item")
			c.Layout().Row([]int{-1}, 0)
			innerCell = c.Layout().Next()
		})
	})
	hn.frame()

	if !ran {
		t.Fatal("expected expanded tree node to run its body")
	}
	if inner == outer {
		t.Error("expected ids inside a tree node to differ from ids outside")
	}
	if innerCell.X != 5+24 {
		t.Errorf("expected children indented by the style indent, got x=%d", innerCell.X)
	}
}

func TestTreeNode_CollapsedSkipsBody(t *testing.T) {
	ran := false
	hn := newHarness(firstCell, 0, func(c *microgui.Container) {
		if c.TreeNode("Node", 0, func() { ran = true }) {
			t.Error("expected collapsed node")
		}
	})
	hn.frame()
	if ran {
		t.Error("expected collapsed tree node not to run its body")
	}
}

func TestText_WordWrap(t *testing.T) {
	hn := newHarness(firstCell, microgui.OptNoTitle, func(c *microgui.Container) {
		c.Text("hello world foo")
		c.Text("a\nb")
		c.Text("")
	})
	hn.frame()

	want := []string{"hello world", "foo", "a", "b"}
	if diff := cmp.Diff(want, texts(hn.commands())); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}

	var ys []int
	for _, cmd := range hn.commands() {
		if cmd.Kind == microgui.CommandText {
			ys = append(ys, cmd.Pos.Y)
		}
	}
	if ys[1]-ys[0] != 13+4 {
		t.Errorf("expected wrapped lines one text height plus spacing apart, got %v", ys)
	}
}

func TestLabel(t *testing.T) {
	hn := newHarness(firstCell, microgui.OptNoTitle, func(c *microgui.Container) {
		c.Label("one")
		c.Label("two")
	})
	hn.frame()

	var pos []microgui.Vec2
	for _, cmd := range hn.commands() {
		if cmd.Kind == microgui.CommandText {
			pos = append(pos, cmd.Pos)
		}
	}
	// Padded cells one row apart, text vertically centered.
	want := []microgui.Vec2{{X: 10, Y: 8}, {X: 10, Y: 32}}
	if diff := cmp.Diff(want, pos); diff != "" {
		t.Errorf("label positions (-want +got):\n%s", diff)
	}
}
