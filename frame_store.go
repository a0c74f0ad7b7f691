package microgui

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
// The canvas calls Cleanup once per Begin with the new frame number.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore keeps per-widget state between frames, keyed by ID.
// Entries not touched during the previous frame are evicted when the
// next frame begins, so state of widgets that stop being declared goes
// away on its own.
//
// Usage:
//
//	var sliders = microgui.NewFrameStore[SliderState]()
//	canvas.RegisterStore(sliders)
//
//	// in widget code
//	st := sliders.Get(id, SliderState{})
//	st.Dragging = true
type FrameStore[T any] struct {
	mu     sync.Mutex
	states map[ID]*stateEntry[T]
	frame  uint64
}

// NewFrameStore creates an empty store. Register it with a Canvas so it
// is cleaned every frame.
func NewFrameStore[T any]() *FrameStore[T] {
	return &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
}

// Get returns the state for id, creating it from defaultVal when absent.
// The entry is marked as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = s.frame
	return &entry.value
}

// GetIfExists returns the state for id without creating or touching it.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set stores value for id and marks it as used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[id] = &stateEntry[T]{value: value, lastFrame: s.frame}
}

// Delete removes the state for id.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup advances the store to frame and evicts entries that were not
// used in frame-1.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame = frame
	if frame == 0 {
		return
	}
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// Clear removes every entry.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	clear(s.states)
	s.mu.Unlock()
}
