package microgui

import "testing"

func TestFrameStore_GetCreatesOnce(t *testing.T) {
	s := NewFrameStore[int]()
	p := s.Get(1, 5)
	*p = 7

	if got := *s.Get(1, 5); got != 7 {
		t.Errorf("expected stored value 7, got %d", got)
	}
	if s.GetIfExists(2) != nil {
		t.Error("expected GetIfExists to not create entries")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", s.Len())
	}
}

func TestFrameStore_EvictsStaleEntries(t *testing.T) {
	s := NewFrameStore[bool]()
	s.Cleanup(0)
	s.Set(1, true)
	s.Set(2, true)

	s.Cleanup(1)
	if s.Len() != 2 {
		t.Fatalf("expected entries from the previous frame to survive, got %d", s.Len())
	}
	s.Get(2, false)

	s.Cleanup(2)
	if s.GetIfExists(1) != nil {
		t.Error("expected entry unused in frame 1 to be evicted")
	}
	if s.GetIfExists(2) == nil {
		t.Error("expected entry used in frame 1 to survive")
	}
}

func TestFrameStore_DeleteAndClear(t *testing.T) {
	s := NewFrameStore[string]()
	s.Set(1, "a")
	s.Set(2, "b")

	s.Delete(1)
	if s.GetIfExists(1) != nil {
		t.Error("expected deleted entry to be gone")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d", s.Len())
	}
}
