// Package focus tracks which component receives keyboard input.
//
// Focus changes are queued rather than applied immediately: Request, Blur and
// the traversal methods record a pending change, and the frame driver applies
// it with TakePendingChange between dispatches so that FocusLost and
// FocusGained are delivered exactly once each.
package focus

import "sort"

// Change describes an applied focus transition. An empty ID means no holder.
type Change struct {
	Old string
	New string
}

type entry struct {
	id    string
	order int
	seq   int
}

// Manager holds the focused component id, the pending change and the
// traversal registry.
type Manager struct {
	focused    string
	pending    string
	hasPending bool

	registry []entry
	seq      int
}

// NewManager returns a Manager with nothing focused.
func NewManager() *Manager {
	return &Manager{}
}

// Focused returns the id of the current holder, or "" when nothing has focus.
func (m *Manager) Focused() string {
	return m.focused
}

// IsFocused reports whether id currently holds focus.
func (m *Manager) IsFocused(id string) bool {
	return id != "" && m.focused == id
}

// Request queues a focus change to id. Requests with an empty id are ignored;
// use Blur to clear focus. A later request replaces an earlier pending one.
func (m *Manager) Request(id string) {
	if id == "" {
		return
	}
	m.pending = id
	m.hasPending = true
}

// Blur queues clearing focus.
func (m *Manager) Blur() {
	m.pending = ""
	m.hasPending = true
}

// HasPending reports whether a change is queued.
func (m *Manager) HasPending() bool {
	return m.hasPending
}

// TakePendingChange applies the queued change. It returns false when nothing
// was queued or when the queued target already holds focus.
func (m *Manager) TakePendingChange() (Change, bool) {
	if !m.hasPending {
		return Change{}, false
	}
	target := m.pending
	m.pending = ""
	m.hasPending = false
	if target == m.focused {
		return Change{}, false
	}
	change := Change{Old: m.focused, New: target}
	m.focused = target
	return change, true
}

// Register adds id to the traversal order. Lower orders come first; equal
// orders keep registration order. Registering an id again moves it.
func (m *Manager) Register(id string, order int) {
	if id == "" {
		return
	}
	m.unregister(id)
	m.seq++
	m.registry = append(m.registry, entry{id: id, order: order, seq: m.seq})
	sort.SliceStable(m.registry, func(i, j int) bool {
		if m.registry[i].order != m.registry[j].order {
			return m.registry[i].order < m.registry[j].order
		}
		return m.registry[i].seq < m.registry[j].seq
	})
}

func (m *Manager) unregister(id string) {
	for i, e := range m.registry {
		if e.id == id {
			m.registry = append(m.registry[:i], m.registry[i+1:]...)
			return
		}
	}
}

// ClearRegistry empties the traversal order. Focus itself is unaffected.
func (m *Manager) ClearRegistry() {
	m.registry = m.registry[:0]
	m.seq = 0
}

// Registered returns the traversal order.
func (m *Manager) Registered() []string {
	ids := make([]string, len(m.registry))
	for i, e := range m.registry {
		ids[i] = e.id
	}
	return ids
}

// Next queues focus on the component after the current holder, wrapping.
// With nothing focused it picks the first registered id.
func (m *Manager) Next() bool {
	return m.move(1)
}

// Previous queues focus on the component before the current holder,
// wrapping. With nothing focused it picks the last registered id.
func (m *Manager) Previous() bool {
	return m.move(-1)
}

func (m *Manager) move(delta int) bool {
	n := len(m.registry)
	if n == 0 {
		return false
	}
	current := -1
	for i, e := range m.registry {
		if e.id == m.focused {
			current = i
			break
		}
	}
	var next int
	switch {
	case current < 0 && delta > 0:
		next = 0
	case current < 0:
		next = n - 1
	default:
		next = wrapIndex(current+delta, n)
	}
	m.Request(m.registry[next].id)
	return true
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
