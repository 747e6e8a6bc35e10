package widgets

import (
	"testing"

	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

type frame struct {
	owner *PipelineOwner
	attrs *attributes.Storage
	vp    layout.Viewport
	buf   *paint.Buffer
}

func newFrame(root *Element, size geometry.Size) *frame {
	f := &frame{
		owner: NewPipelineOwner(),
		attrs: attributes.NewStorage(),
		vp:    layout.NewViewport(size),
		buf:   paint.NewBuffer(size),
	}
	f.owner.SetRoot(root)
	return f
}

func (f *frame) flush() string {
	f.owner.FlushFrame(f.vp, f.attrs, f.buf)
	return f.buf.String()
}

func TestStack_Vertical(t *testing.T) {
	root := NewElement(1, VStack(),
		NewElement(2, &Text{Content: "one"}),
		NewElement(3, &Text{Content: "two"}),
	)
	f := newFrame(root, geometry.NewSize(10, 4))

	if got := f.flush(); got != "one\ntwo" {
		t.Errorf("frame = %q", got)
	}
	if root.Container().Size() != geometry.NewSize(3, 2) {
		t.Errorf("stack size = %v", root.Container().Size())
	}
}

func TestStack_ExpandFactors(t *testing.T) {
	left := NewElement(2, &Expand{Factor: 2})
	right := NewElement(3, &Expand{Factor: 3})
	root := NewElement(1, HStack(), left, right)
	f := newFrame(root, geometry.NewSize(10, 5))
	f.flush()

	if w := left.Container().Size().Width; w != 4 {
		t.Errorf("left width = %d, want 4", w)
	}
	if w := right.Container().Size().Width; w != 6 {
		t.Errorf("right width = %d, want 6", w)
	}
	if x := right.Container().Pos().X; x != 4 {
		t.Errorf("right x = %d, want 4", x)
	}
}

func TestStack_FloatDoesNotAdvance(t *testing.T) {
	root := NewElement(1, VStack(),
		NewElement(2, Float{}, NewElement(3, &Text{Content: "over"})),
		NewElement(4, &Text{Content: "ab"}),
	)
	f := newFrame(root, geometry.NewSize(10, 3))

	if got := f.flush(); got != "ab" {
		t.Errorf("frame = %q, want the later sibling painted over the float", got)
	}
	if root.Container().Size() != geometry.NewSize(2, 1) {
		t.Errorf("stack size = %v, float should not contribute", root.Container().Size())
	}
	if root.Find(2).Container().Size() != geometry.NewSize(4, 1) {
		t.Errorf("float size = %v", root.Find(2).Container().Size())
	}
}

func TestAlign_Positions(t *testing.T) {
	tests := []struct {
		alignment string
		want      geometry.Pos
	}{
		{"top-left", geometry.NewPos(0, 0)},
		{"top", geometry.NewPos(4, 0)},
		{"top-right", geometry.NewPos(8, 0)},
		{"right", geometry.NewPos(8, 1)},
		{"bottom-right", geometry.NewPos(8, 2)},
		{"bottom", geometry.NewPos(4, 2)},
		{"bottom-left", geometry.NewPos(0, 2)},
		{"left", geometry.NewPos(0, 1)},
		{"centre", geometry.NewPos(4, 1)},
		{"center", geometry.NewPos(4, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.alignment, func(t *testing.T) {
			text := NewElement(2, &Text{Content: "hi"})
			root := NewElement(1, &Align{}, text)
			f := newFrame(root, geometry.NewSize(10, 3))
			f.attrs.Insert(1, attributes.New().Set(AlignmentAttribute, tt.alignment))
			f.flush()

			if got := text.Container().Pos(); got != tt.want {
				t.Errorf("child pos = %v, want %v", got, tt.want)
			}
			if got := root.Container().InnerBounds(); got != geometry.RegionFrom(tt.want, geometry.NewSize(2, 1)) {
				t.Errorf("inner bounds = %v", got)
			}
		})
	}

	if _, err := ParseAlignment("middle"); err == nil {
		t.Error("expected error for unknown alignment")
	}
}

func TestPipelineOwner_RelayoutAfterAttributeChange(t *testing.T) {
	text := NewElement(2, &Text{Content: "a"})
	root := NewElement(1, VStack(), text)
	f := newFrame(root, geometry.NewSize(10, 2))

	if !f.owner.NeedsFrame() {
		t.Fatal("expected a frame to be needed after SetRoot")
	}
	if got := f.flush(); got != "a" {
		t.Fatalf("frame = %q", got)
	}
	if f.owner.NeedsFrame() {
		t.Fatal("expected no pending frame after flush")
	}

	f.attrs.Insert(2, attributes.New().Set(TextAttribute, "longer"))
	text.MarkNeedsLayout()
	if !root.Container().NeedsLayout() {
		t.Error("expected ancestors to be dirtied")
	}
	if !f.owner.NeedsLayout() {
		t.Error("expected the owner to schedule layout")
	}
	if got := f.flush(); got != "longer" {
		t.Errorf("frame = %q", got)
	}
	if f.owner.Frames() != 2 {
		t.Errorf("frames = %d", f.owner.Frames())
	}
}

func TestElement_RemoveChild(t *testing.T) {
	a := NewElement(2, &Text{Content: "a"})
	b := NewElement(3, &Text{Content: "b"})
	root := NewElement(1, VStack(), a, b)
	f := newFrame(root, geometry.NewSize(5, 3))
	f.flush()

	root.RemoveChild(a)
	if a.Parent() != nil || root.Children().Len() != 1 {
		t.Fatal("expected child to be detached")
	}
	if got := f.flush(); got != "b" {
		t.Errorf("frame = %q", got)
	}
	if b.Depth() != 1 || root.Find(2) != nil {
		t.Error("unexpected tree shape after removal")
	}
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	w, err := f.New("expand", attributes.New().Set("factor", 3).Set("axis", "horizontal"))
	if err != nil {
		t.Fatal(err)
	}
	if e := w.(*Expand); e.Factor != 3 || e.Axis != AxisHorizontal {
		t.Errorf("unexpected expand %+v", e)
	}
	if _, err := f.New("align", attributes.New().Set(AlignmentAttribute, "nowhere")); err == nil {
		t.Error("expected invalid alignment error")
	}
	if _, err := f.New("table", attributes.New()); err == nil {
		t.Error("expected unknown kind error")
	}
	w, err = f.New("padding", attributes.New().Set("padding", 1).Set("left", 3))
	if err != nil {
		t.Fatal(err)
	}
	if p := w.(*Padding); p.Padding != (layout.EdgeInsets{Top: 1, Right: 1, Bottom: 1, Left: 3}) {
		t.Errorf("unexpected padding %+v", p.Padding)
	}
	w, err = f.New("sized", attributes.New().Set("width", "4"))
	if err != nil {
		t.Fatal(err)
	}
	if s := w.(*SizedBox); s.Width != 4 || s.Height != 0 {
		t.Errorf("unexpected sized box %+v", s)
	}
	if len(f.Kinds()) != 8 {
		t.Errorf("kinds = %v", f.Kinds())
	}
}

func TestPadding_InsetsChild(t *testing.T) {
	root := NewElement(1, &Padding{Padding: layout.EdgeInsets{Top: 1, Left: 2}},
		NewElement(2, &Text{Content: "hi"}),
	)
	f := newFrame(root, geometry.NewSize(10, 3))
	f.flush()

	if got := root.Container().Size(); got != geometry.NewSize(4, 2) {
		t.Errorf("expected size 4x2, got %v", got)
	}
	if got := root.Find(2).Container().Pos(); got != geometry.NewPos(2, 1) {
		t.Errorf("expected child at 2,1, got %v", got)
	}
	if got := f.buf.Line(1); got != "  hi" {
		t.Errorf("expected padded line, got %q", got)
	}
}

func TestPadding_AttributesOverride(t *testing.T) {
	root := NewElement(1, &Padding{Padding: layout.EdgeInsetsAll(3)},
		NewElement(2, &Text{Content: "x"}),
	)
	f := newFrame(root, geometry.NewSize(10, 5))
	f.attrs.GetOrInsert(1).Set("top", 0).Set("left", 1)
	f.flush()

	if got := root.Find(2).Container().Pos(); got != geometry.NewPos(1, 0) {
		t.Errorf("expected child at 1,0, got %v", got)
	}
	if got := root.Container().Size(); got != geometry.NewSize(2, 1) {
		t.Errorf("expected size 2x1, got %v", got)
	}
}

func TestPadding_WithoutChild(t *testing.T) {
	root := NewElement(1, &Padding{Padding: layout.EdgeInsetsSymmetric(1, 2)})
	f := newFrame(root, geometry.NewSize(10, 5))
	f.flush()

	if got := root.Container().Size(); got != geometry.NewSize(2, 4) {
		t.Errorf("expected size 2x4, got %v", got)
	}
}

func TestSizedBox(t *testing.T) {
	tests := []struct {
		name string
		box  *SizedBox
		want geometry.Size
	}{
		{"unset", &SizedBox{}, geometry.NewSize(5, 1)},
		{"width", &SizedBox{Width: 8}, geometry.NewSize(8, 1)},
		{"height", &SizedBox{Height: 2}, geometry.NewSize(5, 2)},
		{"both", &SizedBox{Width: 3, Height: 3}, geometry.NewSize(3, 3)},
		{"clamped", &SizedBox{Width: 40}, geometry.NewSize(10, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewElement(1, tt.box, NewElement(2, &Text{Content: "hello"}))
			f := newFrame(root, geometry.NewSize(10, 4))
			f.flush()
			if got := root.Container().Size(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFloat_Offset(t *testing.T) {
	root := NewElement(1, VStack(),
		NewElement(2, Float{}, NewElement(3, &Text{Content: "f"})),
	)
	f := newFrame(root, geometry.NewSize(10, 3))
	f.attrs.GetOrInsert(2).Set("x", 4).Set("y", 1)
	f.flush()

	if got := root.Find(3).Container().Pos(); got != geometry.NewPos(4, 1) {
		t.Errorf("expected float child at 4,1, got %v", got)
	}
}

func TestPadding_TightConstraintsReachChild(t *testing.T) {
	root := NewElement(1, &SizedBox{Width: 10, Height: 3},
		NewElement(2, &Padding{Padding: layout.EdgeInsetsAll(1)},
			NewElement(3, &Text{Content: "hi"}),
		),
	)
	f := newFrame(root, geometry.NewSize(20, 5))
	f.flush()

	if got := root.Find(3).Container().Size(); got != geometry.NewSize(8, 1) {
		t.Errorf("expected child to fill 8x1, got %v", got)
	}
}

func TestElement_MarkNeedsPositionRepaintsNode(t *testing.T) {
	b := NewElement(3, &Text{Content: "bb"})
	root := NewElement(1, VStack(), NewElement(2, &Text{Content: "aa"}), b)
	f := newFrame(root, geometry.NewSize(10, 3))

	if got := f.flush(); got != "aa\nbb" {
		t.Fatalf("unexpected first frame %q", got)
	}
	b.MarkNeedsPosition()
	if !root.Container().NeedsPosition() {
		t.Error("expected the mark to reach the root")
	}
	if got := f.flush(); got != "aa\nbb" {
		t.Errorf("expected node to stay painted, got %q", got)
	}
	if b.Container().NeedsPosition() {
		t.Error("expected node to be positioned")
	}
}

func TestStack_SiblingGrowthShrinksExpand(t *testing.T) {
	text := &Text{Content: "ab"}
	label := NewElement(2, text)
	rest := NewElement(3, &Expand{})
	root := NewElement(1, HStack(), label, rest)
	f := newFrame(root, geometry.NewSize(10, 1))
	f.attrs.GetOrInsert(3).Set(FillAttribute, "-")

	if got := f.flush(); got != "ab--------" {
		t.Fatalf("unexpected first frame %q", got)
	}

	text.Content = "abcdef"
	label.MarkNeedsLayout()
	if got := f.flush(); got != "abcdef----" {
		t.Errorf("expected expand to shrink, got %q", got)
	}
	if got := rest.Container().Size(); got != geometry.NewSize(4, 1) {
		t.Errorf("expected expand size 4x1, got %v", got)
	}
	if got := rest.Container().Pos(); got != geometry.NewPos(6, 0) {
		t.Errorf("expected expand at 6,0, got %v", got)
	}
}
