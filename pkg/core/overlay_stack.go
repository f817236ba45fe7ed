package core

// OverlayID identifies a pushed overlay. The zero value is never issued.
type OverlayID uint64

type overlayEntry struct {
	id        OverlayID
	component Component
}

// OverlayStack is an ordered set of overlays, topmost last.
type OverlayStack struct {
	entries []overlayEntry
	nextID  OverlayID
}

// Push adds comp on top and returns its id.
func (s *OverlayStack) Push(comp Component) OverlayID {
	s.nextID++
	s.entries = append(s.entries, overlayEntry{id: s.nextID, component: comp})
	return s.nextID
}

// Remove removes the overlay with the given id. Removing an id that is not
// present is a no-op and returns false.
func (s *OverlayStack) Remove(id OverlayID) bool {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveComponent removes the overlay holding comp.
func (s *OverlayStack) RemoveComponent(comp Component) bool {
	for i, e := range s.entries {
		if e.component == comp {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Pop removes and returns the topmost overlay.
func (s *OverlayStack) Pop() (Component, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top.component, true
}

// Top returns the topmost overlay.
func (s *OverlayStack) Top() (Component, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].component, true
}

// Len returns the number of overlays.
func (s *OverlayStack) Len() int { return len(s.entries) }

// Components returns the overlays bottom to top. The slice is a copy so the
// stack may change while the caller iterates.
func (s *OverlayStack) Components() []Component {
	out := make([]Component, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.component
	}
	return out
}
