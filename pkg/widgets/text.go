package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// TextAttribute overrides the content of a Text node.
const TextAttribute = "text"

// Text is a single line of text. Content longer than the constraints allow
// is cut off.
type Text struct {
	Content string

	current string
}

func (t *Text) content(attrs *attributes.Attributes) string {
	if s, ok := attrs.String(TextAttribute); ok {
		return s
	}
	return t.Content
}

// Layout implements Widget.
func (t *Text) Layout(children Children, constraints layout.Constraints, id NodeID, ctx *layout.LayoutCtx) geometry.Size {
	t.current = t.content(ctx.Attrs(id))
	width := paint.NewGlyphs(t.current).Width()
	height := 1
	if width == 0 {
		height = 0
	}
	return constraints.Constrain(geometry.NewSize(width, height))
}

// Position implements Widget.
func (t *Text) Position(children Children, id NodeID, attrs *attributes.Storage, ctx layout.PositionCtx) {
}

// Paint implements Widget.
func (t *Text) Paint(children Children, id NodeID, attrs *attributes.Storage, ctx *paint.Sized) {
	ctx.Print(t.current, paint.Style{}, geometry.LocalPos{})
}
