package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Reset    key.Binding
	Focus    key.Binding
	PrevLang key.Binding
	NextLang key.Binding
	Scroll   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "review code")),
		Reset:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "review another code")),
		Focus:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
		PrevLang: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev language")),
		NextLang: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next language")),
		Scroll:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll result")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.NextLang, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Reset},
		{k.Focus, k.PrevLang, k.NextLang},
		{k.Scroll, k.Quit},
	}
}
