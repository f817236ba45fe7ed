// Package widgets provides the standard containers and a few leaf components.
//
// Containers:
//
//   - VStack and HStack sequence children along one axis with a gap between
//     them and padding around the edges
//   - ZStack lays every child into the same region; later children are on top
//   - SplitView divides its region between two panes at a draggable ratio
//
// Leaves (Label, Box, Button, Image) exist so trees can be assembled and
// exercised without a widget library; they draw only with theme colors.
//
// Containers are configured with plain structs whose zero values are the
// defaults:
//
//	col := widgets.NewVStack(widgets.StackConfig{Gap: 8, Padding: 12},
//	    widgets.NewLabel(widgets.LabelConfig{Text: "Name"}),
//	    widgets.NewButton(widgets.ButtonConfig{ID: "save", Label: "Save"}),
//	)
package widgets
