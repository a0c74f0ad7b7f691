package microgui

import (
	"hash/fnv"
	"testing"
)

func TestHashStringMatchesFNV1a(t *testing.T) {
	for _, s := range []string{"", "a", "!title", "Hello, World"} {
		h := fnv.New32a()
		h.Write([]byte(s))
		if got, want := HashString(HashInitial, s), ID(h.Sum32()); got != want {
			t.Errorf("HashString(%q) = %#x, want %#x", s, got, want)
		}
	}
}

func TestHashBytesAndStringAgree(t *testing.T) {
	if HashBytes(HashInitial, []byte("button")) != HashString(HashInitial, "button") {
		t.Error("expected byte and string hashes of the same data to match")
	}
}

func TestIDManager_Deterministic(t *testing.T) {
	m := NewIDManager("window")
	a := m.GetIDFromStr("ok")
	b := m.GetIDFromStr("ok")
	if a != b {
		t.Errorf("expected identical IDs, got %#x and %#x", a, b)
	}
	if m.GetIDFromStr("cancel") == a {
		t.Error("expected different labels to give different IDs")
	}

	// A fresh manager for the same container gives the same IDs.
	if NewIDManager("window").GetIDFromStr("ok") != a {
		t.Error("expected IDs to be stable across frames")
	}
}

func TestIDManager_RootSeedPerContainer(t *testing.T) {
	a := NewIDManager("A").GetIDFromStr("!title")
	b := NewIDManager("B").GetIDFromStr("!title")
	if a == b {
		t.Error("expected !title of different windows to differ")
	}
	if want := HashString(HashString(HashInitial, "A"), "!title"); a != want {
		t.Errorf("got %#x, want %#x", a, want)
	}
}

func TestIDManager_PushPop(t *testing.T) {
	m := NewIDManager("w")
	root := m.Current()
	outer := m.GetIDFromStr("item")

	pushed := m.PushID("list")
	if m.Current() != pushed || m.Depth() != 1 {
		t.Fatalf("expected pushed seed on top, depth 1; got depth %d", m.Depth())
	}
	inner := m.GetIDFromStr("item")
	if inner == outer {
		t.Error("expected scoped ID to differ from unscoped one")
	}

	m.PushIDFromInt(3)
	if m.GetIDFromStr("item") == inner {
		t.Error("expected integer scope to change IDs")
	}
	m.PopID()
	m.PopID()

	if m.Current() != root || m.Depth() != 0 {
		t.Error("expected root seed after popping everything")
	}
	if m.GetIDFromStr("item") != outer {
		t.Error("expected IDs to return to unscoped values")
	}
}

func TestIDManager_IntIDs(t *testing.T) {
	m := NewIDManager("w")
	if m.GetIDFromInt(1) == m.GetIDFromInt(2) {
		t.Error("expected different integers to give different IDs")
	}
	if m.GetIDFromInt(7) != m.GetIDFromInt(7) {
		t.Error("expected integer IDs to be deterministic")
	}
}

func TestIDManager_PopRootPanics(t *testing.T) {
	m := NewIDManager("w")
	expectPanic(t, ErrIDUnderflow, m.PopID)
}

func TestIDManager_Reset(t *testing.T) {
	m := NewIDManager("w")
	m.PushID("a")
	m.Reset(HashInitial)
	if m.Depth() != 0 || m.Current() != HashInitial {
		t.Error("expected Reset to clear the stack and install the new root")
	}
}
