package layout

// EdgeInsets is an amount of space, in cells, on each side of a box.
type EdgeInsets struct {
	Top, Right, Bottom, Left int
}

// EdgeInsetsAll returns insets of n on every side.
func EdgeInsetsAll(n int) EdgeInsets {
	return EdgeInsets{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeInsetsSymmetric returns horizontal insets on the left and right and
// vertical insets on the top and bottom.
func EdgeInsetsSymmetric(horizontal, vertical int) EdgeInsets {
	return EdgeInsets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() int { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() int { return e.Top + e.Bottom }

// Deflate shrinks c by the insets on both axes.
func (c Constraints) Deflate(e EdgeInsets) Constraints {
	minWidth := max(c.MinWidth-e.Horizontal(), 0)
	minHeight := max(c.MinHeight-e.Vertical(), 0)
	c = c.SubMaxWidth(e.Horizontal())
	c = c.SubMaxHeight(e.Vertical())
	c.MinWidth = min(minWidth, c.MaxWidth)
	c.MinHeight = min(minHeight, c.MaxHeight)
	return c
}
