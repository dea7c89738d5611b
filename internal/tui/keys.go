package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/rshade/carbonsense/internal/navigation"
)

// keyMap holds every binding of the calculator. Which bindings are active
// depends on the current screen.
type keyMap struct {
	Start     key.Binding
	Up        key.Binding
	Down      key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	Submit    key.Binding
	Back      key.Binding
	TryAgain  key.Binding
	Home      key.Binding
	LearnMore key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "calculate my impact"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/↓", "choose question"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓", "next question"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("←/→", "change answer"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "+", "="),
			key.WithHelp("→", "increase"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		TryAgain: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "try again"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "esc"),
			key.WithHelp("h", "back to home"),
		),
		LearnMore: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "learn more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// screenHelp adapts keyMap to help.KeyMap for a single screen.
type screenHelp struct {
	keys   keyMap
	screen navigation.Screen
}

var _ help.KeyMap = screenHelp{}

// ShortHelp implements help.KeyMap.
func (h screenHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.screen {
	case navigation.ScreenHome:
		return []key.Binding{k.Start, k.Quit}
	case navigation.ScreenInput:
		return []key.Binding{k.Up, k.Decrease, k.Submit, k.Back, k.Quit}
	case navigation.ScreenResults:
		return []key.Binding{k.TryAgain, k.Home, k.LearnMore, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
