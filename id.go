package microgui

import "fmt"

// ID identifies a widget for state correlation across frames.
// IDs are stable across frames for the same seed and label. Two widgets
// that produce the same ID in a frame are treated as one element.
type ID uint32

// HashInitial is the FNV-1a offset basis, used as the seed when no
// parent ID is on the stack.
const HashInitial ID = 2166136261

const hashPrime = 16777619

// HashString folds label into seed with FNV-1a.
func HashString(seed ID, label string) ID {
	h := uint32(seed)
	for i := 0; i < len(label); i++ {
		h = (h ^ uint32(label[i])) * hashPrime
	}
	return ID(h)
}

// HashBytes folds b into seed with FNV-1a.
func HashBytes(seed ID, b []byte) ID {
	h := uint32(seed)
	for _, c := range b {
		h = (h ^ uint32(c)) * hashPrime
	}
	return ID(h)
}

// HashInt folds the little-endian bytes of n into seed with FNV-1a.
func HashInt(seed ID, n int) ID {
	h := uint32(seed)
	u := uint64(n)
	for i := 0; i < 8; i++ {
		h = (h ^ uint32(u&0xFF)) * hashPrime
		u >>= 8
	}
	return ID(h)
}

// IDManager derives widget IDs from a stack of seeds.
// The bottom of the stack is the root seed of the owning container.
type IDManager struct {
	root  ID
	stack []ID
}

// NewIDManager creates a manager whose root seed is derived from name.
func NewIDManager(name string) *IDManager {
	m := &IDManager{stack: make([]ID, 0, 16)}
	m.Reset(HashString(HashInitial, name))
	return m
}

// Reset clears the stack and installs a new root seed.
func (m *IDManager) Reset(root ID) {
	m.root = root
	m.stack = m.stack[:0]
}

// Current returns the seed new IDs are derived from.
func (m *IDManager) Current() ID {
	if n := len(m.stack); n > 0 {
		return m.stack[n-1]
	}
	return m.root
}

// Depth returns the number of pushed seeds, not counting the root.
func (m *IDManager) Depth() int {
	return len(m.stack)
}

// GetIDFromStr returns the ID of label under the current seed.
func (m *IDManager) GetIDFromStr(label string) ID {
	return HashString(m.Current(), label)
}

// GetIDFromInt returns the ID of n under the current seed.
// Useful for items in arrays/slices.
func (m *IDManager) GetIDFromInt(n int) ID {
	return HashInt(m.Current(), n)
}

// GetIDFromBytes returns the ID of b under the current seed.
func (m *IDManager) GetIDFromBytes(b []byte) ID {
	return HashBytes(m.Current(), b)
}

// PushID pushes the ID of label as the new seed and returns it.
// All Get calls until the matching PopID are relative to it.
func (m *IDManager) PushID(label string) ID {
	id := m.GetIDFromStr(label)
	m.stack = append(m.stack, id)
	return id
}

// PushIDFromInt pushes the ID of n as the new seed and returns it.
func (m *IDManager) PushIDFromInt(n int) ID {
	id := m.GetIDFromInt(n)
	m.stack = append(m.stack, id)
	return id
}

// PopID removes the last pushed seed. Popping past the root panics.
func (m *IDManager) PopID() {
	n := len(m.stack)
	if n == 0 {
		panic(fmt.Errorf("PopID: %w", ErrIDUnderflow))
	}
	m.stack = m.stack[:n-1]
}
