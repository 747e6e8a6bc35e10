package events

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/weft/pkg/geometry"
)

// FromTea converts a bubbletea message into an Event. The second result is
// false for messages that have no event equivalent.
func FromTea(msg tea.Msg) (Event, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var runes []rune
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			runes = append(runes, msg.Runes...)
		}
		return Key{
			Name:  msg.String(),
			Runes: runes,
			Alt:   msg.Alt,
			Paste: msg.Paste,
		}, true
	case tea.MouseMsg:
		return Mouse{
			Pos:    geometry.NewPos(msg.X, msg.Y),
			Button: fromTeaButton(msg.Button),
			Action: fromTeaAction(msg.Action),
			Shift:  msg.Shift,
			Alt:    msg.Alt,
			Ctrl:   msg.Ctrl,
		}, true
	case tea.WindowSizeMsg:
		return Resize{Size: geometry.NewSize(msg.Width, msg.Height)}, true
	case tea.FocusMsg:
		return Focus{}, true
	case tea.BlurMsg:
		return Blur{}, true
	case tea.QuitMsg:
		return Stop{}, true
	}
	return nil, false
}

func fromTeaButton(b tea.MouseButton) MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return ButtonLeft
	case tea.MouseButtonMiddle:
		return ButtonMiddle
	case tea.MouseButtonRight:
		return ButtonRight
	case tea.MouseButtonWheelUp:
		return ButtonWheelUp
	case tea.MouseButtonWheelDown:
		return ButtonWheelDown
	case tea.MouseButtonWheelLeft:
		return ButtonWheelLeft
	case tea.MouseButtonWheelRight:
		return ButtonWheelRight
	}
	return ButtonNone
}

func fromTeaAction(a tea.MouseAction) MouseAction {
	switch a {
	case tea.MouseActionRelease:
		return MouseRelease
	case tea.MouseActionMotion:
		return MouseMotion
	}
	return MousePress
}
