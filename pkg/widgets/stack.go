package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// Stack lays its children out one after another along Axis.
//
// Expand children share the space left over after the other children are
// laid out, in proportion to their factors.
type Stack struct {
	Axis Axis
}

// VStack returns a vertical stack.
func VStack() *Stack { return &Stack{Axis: AxisVertical} }

// HStack returns a horizontal stack.
func HStack() *Stack { return &Stack{Axis: AxisHorizontal} }

func (s *Stack) horizontal() bool {
	return s.Axis == AxisHorizontal
}

func (s *Stack) main(size geometry.Size) int {
	if s.horizontal() {
		return size.Width
	}
	return size.Height
}

func (s *Stack) cross(size geometry.Size) int {
	if s.horizontal() {
		return size.Height
	}
	return size.Width
}

// Layout implements Widget.
func (s *Stack) Layout(children Children, constraints layout.Constraints, id NodeID, ctx *layout.LayoutCtx) geometry.Size {
	maxMain := constraints.MaxHeight
	if s.horizontal() {
		maxMain = constraints.MaxWidth
	}

	used, cross := 0, 0
	totalFactor := 0
	children.Each(func(_ int, child *Element) bool {
		if ex, ok := child.Widget().(*Expand); ok {
			totalFactor += ex.factor()
			return true
		}
		c := constraints.Loosen()
		if s.horizontal() {
			c = c.SubMaxWidth(used)
		} else {
			c = c.SubMaxHeight(used)
		}
		size := child.Layout(c, ctx)
		used += s.main(size)
		cross = max(cross, s.cross(size))
		return true
	})

	if totalFactor > 0 {
		remaining := 0
		if maxMain != layout.Unbounded {
			remaining = max(maxMain-used, 0)
		}
		spent := 0
		seen := 0
		children.Each(func(_ int, child *Element) bool {
			ex, ok := child.Widget().(*Expand)
			if !ok {
				return true
			}
			seen += ex.factor()
			share := remaining * seen / totalFactor
			extent := share - spent
			spent = share

			c := constraints.Loosen()
			if s.horizontal() {
				c.MinWidth, c.MaxWidth = extent, extent
			} else {
				c.MinHeight, c.MaxHeight = extent, extent
			}
			size := child.Layout(c, ctx)
			used += s.main(size)
			cross = max(cross, s.cross(size))
			return true
		})
	}

	if s.horizontal() {
		return constraints.Constrain(geometry.NewSize(used, cross))
	}
	return constraints.Constrain(geometry.NewSize(cross, used))
}

// Position implements Widget.
func (s *Stack) Position(children Children, id NodeID, attrs *attributes.Storage, ctx layout.PositionCtx) {
	pos := ctx.Pos
	children.Each(func(_ int, child *Element) bool {
		child.Position(pos, attrs, ctx.Viewport)
		size := child.ReportedSize()
		if s.horizontal() {
			pos.X += size.Width
		} else {
			pos.Y += size.Height
		}
		return true
	})
}

// Paint implements Widget.
func (s *Stack) Paint(children Children, id NodeID, attrs *attributes.Storage, ctx *paint.Sized) {
	children.Paint(ctx, attrs)
}
