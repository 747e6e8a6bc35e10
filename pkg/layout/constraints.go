package layout

import (
	"math"

	"github.com/go-drift/weft/pkg/geometry"
)

// Unbounded is the maximum extent of an unconstrained axis.
const Unbounded = math.MaxInt

// Constraints bound the size a widget may choose.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// NewConstraints returns loose constraints with the given maximum size.
func NewConstraints(maxWidth, maxHeight int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: maxHeight}
}

// Tight returns constraints that only admit size.
func Tight(size geometry.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to size.
func Loose(size geometry.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// UnboundedConstraints places no upper limit on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// MaxSize returns the largest admitted size.
func (c Constraints) MaxSize() geometry.Size {
	return geometry.NewSize(c.MaxWidth, c.MaxHeight)
}

// MinSize returns the smallest admitted size.
func (c Constraints) MinSize() geometry.Size {
	return geometry.NewSize(c.MinWidth, c.MinHeight)
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size geometry.Size) geometry.Size {
	return geometry.NewSize(
		clamp(size.Width, c.MinWidth, c.MaxWidth),
		clamp(size.Height, c.MinHeight, c.MaxHeight),
	)
}

// Loosen drops the minimums.
func (c Constraints) Loosen() Constraints {
	c.MinWidth = 0
	c.MinHeight = 0
	return c
}

// IsWidthTight reports whether only one width is admitted.
func (c Constraints) IsWidthTight() bool {
	return c.MinWidth == c.MaxWidth
}

// IsHeightTight reports whether only one height is admitted.
func (c Constraints) IsHeightTight() bool {
	return c.MinHeight == c.MaxHeight
}

// HasUnboundedWidth reports whether the width has no upper limit.
func (c Constraints) HasUnboundedWidth() bool {
	return c.MaxWidth == Unbounded
}

// HasUnboundedHeight reports whether the height has no upper limit.
func (c Constraints) HasUnboundedHeight() bool {
	return c.MaxHeight == Unbounded
}

// SubMaxWidth reduces the maximum width by n, keeping minimums consistent.
func (c Constraints) SubMaxWidth(n int) Constraints {
	if c.MaxWidth != Unbounded {
		c.MaxWidth = max(c.MaxWidth-n, 0)
	}
	c.MinWidth = min(c.MinWidth, c.MaxWidth)
	return c
}

// SubMaxHeight reduces the maximum height by n, keeping minimums consistent.
func (c Constraints) SubMaxHeight(n int) Constraints {
	if c.MaxHeight != Unbounded {
		c.MaxHeight = max(c.MaxHeight-n, 0)
	}
	c.MinHeight = min(c.MinHeight, c.MaxHeight)
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
