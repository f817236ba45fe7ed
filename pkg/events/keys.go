package events

// Key identifies a non-character key. Printable input arrives as CharInput.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyRune
)

var keyNames = map[Key]string{
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeySpace:      "Space",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyRune:       "Rune",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}
