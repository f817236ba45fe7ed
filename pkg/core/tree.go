package core

// Walk visits c and its descendants depth-first in insertion order. Returning
// false from fn skips the children of that component.
func Walk(c Component, fn func(Component) bool) {
	if c == nil || !fn(c) {
		return
	}
	if v, ok := c.(ChildVisitor); ok {
		v.VisitChildren(func(child Component) {
			Walk(child, fn)
		})
	}
}

// Find returns the first component in the subtree rooted at c with the given
// id, or nil.
func Find(c Component, id string) Component {
	if id == "" {
		return nil
	}
	var found Component
	Walk(c, func(n Component) bool {
		if found != nil {
			return false
		}
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ContainsID reports whether the subtree rooted at c holds a component with
// the given id.
func ContainsID(c Component, id string) bool {
	return Find(c, id) != nil
}

// Contains reports whether target is c or one of its descendants. Unlike
// ContainsID it also finds components without an id.
func Contains(c, target Component) bool {
	if target == nil {
		return false
	}
	found := false
	Walk(c, func(n Component) bool {
		if found {
			return false
		}
		if n == target {
			found = true
			return false
		}
		return true
	})
	return found
}

// Translate moves c by (dx, dy).
func Translate(c Component, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	b := c.Bounds()
	c.SetPosition(b.X+dx, b.Y+dy)
}

// Focusable returns the ids of focusable components in tree order.
func Focusable(c Component) []string {
	var ids []string
	Walk(c, func(n Component) bool {
		if n.IsFocusable() && n.ID() != "" {
			ids = append(ids, n.ID())
		}
		return true
	})
	return ids
}
