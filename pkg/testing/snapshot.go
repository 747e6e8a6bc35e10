package testing

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/widgets"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "WEFT_UPDATE_SNAPSHOTS"

const (
	screenHeader = "-- screen --"
	treeHeader   = "-- tree --"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the painted screen and the element tree.
type Snapshot struct {
	Screen []string
	Tree   []string
}

// CaptureSnapshot captures the screen painted by the last Pump and the
// current element tree.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	size := t.buf.Size()
	for y := 0; y < size.Height; y++ {
		snap.Screen = append(snap.Screen, t.buf.Line(y))
	}
	for len(snap.Screen) > 0 && snap.Screen[len(snap.Screen)-1] == "" {
		snap.Screen = snap.Screen[:len(snap.Screen)-1]
	}
	if root := t.rt.Root(); root != nil {
		attrs := t.rt.Attributes()
		root.Walk(func(el *widgets.Element) bool {
			snap.Tree = append(snap.Tree, describe(el, attrs.Get(el.ID())))
			return true
		})
	}
	return snap
}

func describe(el *widgets.Element, attrs *attributes.Attributes) string {
	c := el.Container()
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", el.Depth()))
	b.WriteString(widgetTypeName(el.Widget()))
	fmt.Fprintf(&b, " pos=%d,%d size=%dx%d", c.Pos().X, c.Pos().Y, c.Size().Width, c.Size().Height)
	for _, k := range attrs.Keys() {
		v, _ := attrs.Get(k)
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	return b.String()
}

func widgetTypeName(w widgets.Widget) string {
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// String returns the golden file representation.
func (s *Snapshot) String() string {
	var b strings.Builder
	b.WriteString(screenHeader + "\n")
	for _, line := range s.Screen {
		b.WriteString(line + "\n")
	}
	b.WriteString(treeHeader + "\n")
	for _, line := range s.Tree {
		b.WriteString(line + "\n")
	}
	return b.String()
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When WEFT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s.String()), 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, b := s.String(), other.String()
	if a == b {
		return ""
	}
	return unifiedDiff(b, a)
}

// LoadSnapshot reads a golden file written by UpdateFile.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(string(data))
}

// ParseSnapshot parses the golden file representation.
func ParseSnapshot(text string) (*Snapshot, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] != screenHeader {
		return nil, fmt.Errorf("invalid snapshot: missing %q", screenHeader)
	}
	snap := &Snapshot{}
	inTree := false
	for _, line := range lines[1:] {
		switch {
		case !inTree && line == treeHeader:
			inTree = true
		case inTree:
			snap.Tree = append(snap.Tree, line)
		default:
			snap.Screen = append(snap.Screen, line)
		}
	}
	if !inTree {
		return nil, fmt.Errorf("invalid snapshot: missing %q", treeHeader)
	}
	return snap, nil
}

// WritePNG renders the screen lines to a PNG image using a fixed 7x13
// bitmap font, light text on a dark background.
func (s *Snapshot) WritePNG(path string) error {
	face := basicfont.Face7x13
	cols := 1
	for _, line := range s.Screen {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	rows := max(len(s.Screen), 1)
	img := image.NewRGBA(image.Rect(0, 0, cols*face.Advance, rows*face.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}),
		Face: face,
	}
	for i, line := range s.Screen {
		d.Dot = fixed.P(0, i*face.Height+face.Ascent)
		d.DrawString(line)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
