package ui

import "github.com/charmbracelet/bubbles/key"

// shortsKeys are the bindings of the compact feed.
type shortsKeys struct {
	Next      key.Binding
	Prev      key.Binding
	Play      key.Binding
	Mute      key.Binding
	Like      key.Binding
	Subscribe key.Binding
	Debug     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newShortsKeys() shortsKeys {
	return shortsKeys{
		Next:      key.NewBinding(key.WithKeys("j", "down", "pgdown"), key.WithHelp("↓/j", "next")),
		Prev:      key.NewBinding(key.WithKeys("k", "up", "pgup"), key.WithHelp("↑/k", "prev")),
		Play:      key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Mute:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Like:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		Subscribe: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "subscribe")),
		Debug:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "debug")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "close")),
	}
}

func (k shortsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Play, k.Subscribe, k.Help, k.Quit}
}

func (k shortsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Play, k.Mute, k.Like},
		{k.Subscribe, k.Debug, k.Help, k.Quit},
	}
}

// watchKeys are the bindings of the long-form page.
type watchKeys struct {
	Play       key.Binding
	Mute       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Silence    key.Binding
	Like       key.Binding
	Subscribe  key.Binding
	Down       key.Binding
	Up         key.Binding
	Open       key.Binding
	Debug      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newWatchKeys() watchKeys {
	return watchKeys{
		Play:       key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+/→", "volume up")),
		VolumeDown: key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-/←", "volume down")),
		Silence:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "volume off")),
		Like:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		Subscribe:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "subscribe")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "related")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "related")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Debug:      key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "debug")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "back")),
	}
}

func (k watchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.VolumeUp, k.VolumeDown, k.Subscribe, k.Help, k.Quit}
}

func (k watchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Mute, k.VolumeUp, k.VolumeDown, k.Silence},
		{k.Like, k.Subscribe},
		{k.Up, k.Down, k.Open},
		{k.Debug, k.Help, k.Quit},
	}
}
