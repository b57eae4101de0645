package wizard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Advance    key.Binding
	NextField  key.Binding
	UpDown     key.Binding
	LeftRight  key.Binding
	ClearQuery key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Advance:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		NextField:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
		UpDown:     key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "building")),
		LeftRight:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "department")),
		ClearQuery: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
	}
}

// acknowledgeHelp is the footer for the acknowledge screen.
func (k keyMap) acknowledgeHelp() []key.Binding {
	return []key.Binding{k.Advance}
}

// nameHelp is the footer for the name entry screen.
func (k keyMap) nameHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Advance}
}

// selectionHelp is the footer for the department/building screen.
func (k keyMap) selectionHelp() []key.Binding {
	return []key.Binding{k.LeftRight, k.UpDown, k.ClearQuery, k.Advance}
}
