package layout

import (
	"os"

	"golang.org/x/term"

	"github.com/go-drift/weft/pkg/geometry"
)

// Viewport is the size of the terminal the tree is rendered into.
type Viewport struct {
	size geometry.Size
}

// DefaultViewportSize is used when the terminal size cannot be detected.
var DefaultViewportSize = geometry.NewSize(80, 24)

// NewViewport creates a viewport of the given size.
func NewViewport(size geometry.Size) Viewport {
	return Viewport{size: size}
}

// DetectViewport queries the size of the terminal attached to f. It falls
// back to DefaultViewportSize and returns the error when f is not a
// terminal.
func DetectViewport(f *os.File) (Viewport, error) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return NewViewport(DefaultViewportSize), err
	}
	return NewViewport(geometry.NewSize(w, h)), nil
}

// Size returns the viewport dimensions.
func (v Viewport) Size() geometry.Size {
	return v.size
}

// Region returns the visible screen region.
func (v Viewport) Region() geometry.Region {
	return geometry.RegionFrom(geometry.Pos{}, v.size)
}

// Constraints returns the root constraints for a frame: loose, bounded by
// the viewport.
func (v Viewport) Constraints() Constraints {
	return Loose(v.size)
}
