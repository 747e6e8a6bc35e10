// Package events defines the input events delivered to components and their
// conversion from terminal messages.
package events

import (
	"github.com/go-drift/weft/pkg/geometry"
)

// Event is one input event. The concrete types are Key, Mouse, Resize,
// Focus, Blur, Noop and Stop.
type Event interface {
	isEvent()
}

// Key is a key press.
type Key struct {
	// Name is the canonical key name, for example "a", "enter", "ctrl+c".
	Name string
	// Runes holds the typed characters for printable keys.
	Runes []rune
	Alt   bool
	Paste bool
}

// MouseButton identifies the button of a mouse event.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
	ButtonWheelLeft
	ButtonWheelRight
)

// MouseAction is what happened with the button.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// Mouse is a mouse event in screen coordinates.
type Mouse struct {
	Pos    geometry.Pos
	Button MouseButton
	Action MouseAction
	Shift  bool
	Alt    bool
	Ctrl   bool
}

// Resize reports a new viewport size.
type Resize struct {
	Size geometry.Size
}

// Focus is sent when the terminal gains application focus.
type Focus struct{}

// Blur is sent when the terminal loses application focus.
type Blur struct{}

// Noop carries nothing.
type Noop struct{}

// Stop requests that the runtime shut down.
type Stop struct{}

func (Key) isEvent()    {}
func (Mouse) isEvent()  {}
func (Resize) isEvent() {}
func (Focus) isEvent()  {}
func (Blur) isEvent()   {}
func (Noop) isEvent()   {}
func (Stop) isEvent()   {}

// IsInput reports whether ev is user input (a key or mouse event).
func IsInput(ev Event) bool {
	switch ev.(type) {
	case Key, Mouse:
		return true
	}
	return false
}

// Char returns the single typed rune of a printable key, or 0.
func (k Key) Char() rune {
	if len(k.Runes) != 1 {
		return 0
	}
	return k.Runes[0]
}

func (k Key) String() string {
	return k.Name
}
