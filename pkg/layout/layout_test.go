package layout

import (
	"os"
	"testing"

	"github.com/go-drift/weft/pkg/geometry"
)

func TestConstraints_Constrain(t *testing.T) {
	c := Constraints{MinWidth: 2, MaxWidth: 10, MinHeight: 1, MaxHeight: 3}

	tests := []struct {
		in, want geometry.Size
	}{
		{geometry.NewSize(5, 2), geometry.NewSize(5, 2)},
		{geometry.NewSize(0, 0), geometry.NewSize(2, 1)},
		{geometry.NewSize(50, 50), geometry.NewSize(10, 3)},
	}
	for _, tt := range tests {
		if got := c.Constrain(tt.in); got != tt.want {
			t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConstraints_Sub(t *testing.T) {
	c := Tight(geometry.NewSize(4, 4)).SubMaxWidth(6)
	if c.MaxWidth != 0 || c.MinWidth != 0 {
		t.Errorf("expected width clamped to zero, got %+v", c)
	}

	u := UnboundedConstraints().SubMaxHeight(3)
	if !u.HasUnboundedHeight() {
		t.Error("expected unbounded height to stay unbounded")
	}
	if !Tight(geometry.NewSize(1, 2)).IsWidthTight() || Loose(geometry.NewSize(1, 2)).IsHeightTight() {
		t.Error("unexpected tightness")
	}
}

func TestViewport(t *testing.T) {
	vp := NewViewport(geometry.NewSize(20, 5))
	if vp.Constraints().MaxSize() != geometry.NewSize(20, 5) {
		t.Errorf("unexpected root constraints %+v", vp.Constraints())
	}
	if !vp.Region().Contains(geometry.NewPos(19, 4)) || vp.Region().Contains(geometry.NewPos(20, 0)) {
		t.Error("unexpected viewport region")
	}
}

func TestDetectViewport_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "vp")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	vp, err := DetectViewport(f)
	if err == nil {
		t.Fatal("expected error for a regular file")
	}
	if vp.Size() != DefaultViewportSize {
		t.Errorf("expected fallback size, got %v", vp.Size())
	}
}

func TestConstraints_Deflate(t *testing.T) {
	insets := EdgeInsets{Top: 1, Right: 2, Bottom: 1, Left: 2}
	if insets.Horizontal() != 4 || insets.Vertical() != 2 {
		t.Fatalf("unexpected insets totals %d %d", insets.Horizontal(), insets.Vertical())
	}

	got := Tight(geometry.NewSize(10, 5)).Deflate(insets)
	want := Tight(geometry.NewSize(6, 3))
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	got = Constraints{MinWidth: 4, MaxWidth: 10, MinHeight: 0, MaxHeight: 5}.Deflate(insets)
	if want := (Constraints{MinWidth: 0, MaxWidth: 6, MinHeight: 0, MaxHeight: 3}); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	got = Constraints{MinWidth: 8, MaxWidth: Unbounded, MinHeight: 4, MaxHeight: Unbounded}.Deflate(insets)
	if got.MinWidth != 4 || got.MinHeight != 2 {
		t.Errorf("expected minimums 4x2 under unbounded maximums, got %+v", got)
	}

	got = UnboundedConstraints().Deflate(EdgeInsetsAll(3))
	if !got.HasUnboundedWidth() || !got.HasUnboundedHeight() {
		t.Errorf("expected unbounded axes to stay unbounded, got %+v", got)
	}

	got = NewConstraints(3, 1).Deflate(EdgeInsetsSymmetric(2, 1))
	if got.MaxWidth != 0 || got.MaxHeight != 0 {
		t.Errorf("expected deflation to stop at zero, got %+v", got)
	}
}
