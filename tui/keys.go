// Package tui: key bindings and the help surface.
package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap groups every binding the program reacts to. It satisfies
// help.KeyMap, so the footer renders itself from the same source.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Toggle   key.Binding
	Start    key.Binding
	End      key.Binding
	CostUp   key.Binding
	CostDown key.Binding
	Scatter  key.Binding
	Clear    key.Binding

	Mode       key.Binding
	ModeBack   key.Binding
	ModeDigit  key.Binding
	Heuristic  key.Binding
	Diagonals  key.Binding
	WeightUp   key.Binding
	WeightDown key.Binding
	DepthUp    key.Binding
	DepthDown  key.Binding

	Play   key.Binding
	StepF  key.Binding
	StepB  key.Binding
	Rewind key.Binding
	ToEnd  key.Binding

	Save key.Binding
	Open key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),

		Toggle:   key.NewBinding(key.WithKeys(" ", "t"), key.WithHelp("space", "toggle wall")),
		Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "place start")),
		End:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "place end")),
		CostUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "raise cost")),
		CostDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "lower cost")),
		Scatter:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random walls")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear board")),

		Mode:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next mode")),
		ModeBack:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev mode")),
		ModeDigit:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "pick mode")),
		Heuristic:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "next heuristic")),
		Diagonals:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle diagonals")),
		WeightUp:   key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "weight +0.5")),
		WeightDown: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "weight -0.5")),
		DepthUp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "depth limit +1")),
		DepthDown:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "depth limit -1")),

		Play:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play/pause")),
		StepF:  key.NewBinding(key.WithKeys("."), key.WithHelp(".", "step forward")),
		StepB:  key.NewBinding(key.WithKeys(","), key.WithHelp(",", "step back")),
		Rewind: key.NewBinding(key.WithKeys("home", "<"), key.WithHelp("home", "rewind")),
		ToEnd:  key.NewBinding(key.WithKeys("end", ">"), key.WithHelp("end", "finish")),

		Save: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "save scenario")),
		Open: key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open scenario")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the one-line footer; FullHelp expands behind "?".
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Play, k.StepF, k.Mode, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Start, k.End},
		{k.CostUp, k.CostDown, k.Scatter, k.Clear, k.Save, k.Open},
		{k.Mode, k.ModeDigit, k.Heuristic, k.Diagonals, k.WeightUp, k.WeightDown},
		{k.DepthUp, k.DepthDown, k.Play, k.StepF, k.StepB, k.Rewind, k.ToEnd},
	}
}
