// Package core defines the component contract and the per-run Context that
// components share.
//
// # Components
//
// Every node in the tree implements Component. A frame runs three passes over
// the whole tree, always in this order:
//
//	Update(dt)          advance animation or timers
//	Layout(available)   position and size children, return the used size
//	Render(pc)          draw; must not touch layout state
//
// Input is delivered separately through OnEvent, which returns whether the
// component consumed the event. Containers follow one dispatch protocol,
// implemented by ContainerBase:
//
//   - keyboard and character events go to the child whose subtree holds the
//     focused component, never by position
//   - pointer events are offered to children whose bounds contain the pointer,
//     in priority order, stopping at the first child that handles them
//   - focus events go to the subtree holding the addressed id
//   - Tick is broadcast and never consumed
//
// Containers with overlapping children hit-test in reverse insertion order,
// so the child painted last is offered the event first.
//
// # Context
//
// Context carries focus, the active theme, the overlay stack and the cursor
// request. It is created once per application and passed by pointer to every
// OnEvent call; tests create a fresh one per case.
//
//	ctx := core.NewContext(theme.Dark(), zerolog.Nop())
//	id := ctx.PushOverlay(dialog)
//	// ... later, from the dialog's close handler
//	ctx.RemoveOverlay(id)
package core
