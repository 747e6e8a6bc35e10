package component

import "fmt"

// WidgetComponentID identifies a registry slot.
type WidgetComponentID int

func (id WidgetComponentID) String() string {
	return fmt.Sprintf("component#%d", int(id))
}

// ID is a WidgetComponentID tagged with the message type the component
// accepts. The tag only exists at compile time.
type ID[M any] struct {
	id WidgetComponentID
}

// NewID tags id with message type M.
func NewID[M any](id WidgetComponentID) ID[M] {
	return ID[M]{id: id}
}

// Widget returns the untyped id.
func (id ID[M]) Widget() WidgetComponentID {
	return id.id
}

// Kind distinguishes instance slots from prototype slots.
type Kind int

const (
	KindInstance Kind = iota
	KindPrototype
)

func (k Kind) String() string {
	switch k {
	case KindInstance:
		return "instance"
	case KindPrototype:
		return "prototype"
	}
	return "unknown"
}
