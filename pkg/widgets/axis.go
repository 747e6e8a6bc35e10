package widgets

// Axis is a layout direction.
type Axis int

const (
	// AxisUnset is the zero value. Stack treats it as vertical; Expand
	// treats it as both axes.
	AxisUnset Axis = iota
	AxisVertical
	AxisHorizontal
)

// ParseAxis parses "vertical" or "horizontal".
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "vertical", "vert", "v":
		return AxisVertical, true
	case "horizontal", "horz", "h":
		return AxisHorizontal, true
	}
	return AxisUnset, false
}

func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	}
	return "unset"
}
