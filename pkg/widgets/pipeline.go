package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// PipelineOwner owns a widget tree and tracks whether a frame is needed.
//
// Nodes mark themselves dirty through their Element; the mark walks up to the
// root, which gets scheduled here. FlushFrame runs layout from the root with
// the viewport's constraints, positions the root at the origin and repaints
// the whole tree into the buffer. Clean subtrees skip layout and position.
type PipelineOwner struct {
	root        *Element
	needsLayout bool
	needsPaint  bool
	frames      int
}

// NewPipelineOwner creates an owner with no root.
func NewPipelineOwner() *PipelineOwner {
	return &PipelineOwner{}
}

// SetRoot installs the root of the tree and schedules a full frame.
func (p *PipelineOwner) SetRoot(root *Element) {
	if p.root != nil {
		p.root.attach(nil, 0)
	}
	p.root = root
	if root == nil {
		return
	}
	root.parent = nil
	root.attach(p, 0)
	root.MarkTreeNeedsLayout()
}

// Root returns the root element.
func (p *PipelineOwner) Root() *Element {
	return p.root
}

// ScheduleLayout records that the tree rooted at root needs layout.
func (p *PipelineOwner) ScheduleLayout(root *Element) {
	if root != p.root {
		return
	}
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint records that a repaint is needed.
func (p *PipelineOwner) SchedulePaint() {
	p.needsPaint = true
}

// NeedsLayout reports whether layout is pending.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsFrame reports whether anything changed since the last frame.
func (p *PipelineOwner) NeedsFrame() bool {
	return p.needsLayout || p.needsPaint
}

// Frames returns the number of frames flushed.
func (p *PipelineOwner) Frames() int {
	return p.frames
}

// FlushFrame runs layout, position and paint for the whole tree.
//
// Layout is resolved top-down before any position, and every node is
// positioned before anything is painted.
func (p *PipelineOwner) FlushFrame(viewport layout.Viewport, attrs *attributes.Storage, buf *paint.Buffer) {
	p.frames++
	p.needsLayout = false
	p.needsPaint = false
	if p.root == nil {
		buf.Clear()
		return
	}

	ctx := layout.NewLayoutCtx(viewport, attrs)
	p.root.Layout(viewport.Constraints(), ctx)
	p.root.Position(geometry.Pos{}, attrs, viewport)

	buf.Resize(viewport.Size())
	buf.Clear()
	p.root.Paint(paint.NewContext(buf), attrs)
}
