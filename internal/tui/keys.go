package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev        key.Binding
	Next        key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Slide       key.Binding
	Pause       key.Binding
	Download    key.Binding
	Reset       key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "scroll right"),
		),
		Slide: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to slide"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Download: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d", "download"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset count"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pause, k.Download, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Slide},
		{k.ScrollLeft, k.ScrollRight, k.Pause},
		{k.Download, k.Reset, k.Quit},
	}
}
