package testing

import (
	"testing"
	"time"

	"github.com/go-drift/weft/pkg/clock"
	"github.com/go-drift/weft/pkg/events"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
	"github.com/go-drift/weft/pkg/runtime"
	"github.com/go-drift/weft/pkg/templates"
	"github.com/go-drift/weft/pkg/widgets"
)

const (
	// DefaultTestWidth is the default width of the test screen in cells.
	DefaultTestWidth = 40
	// DefaultTestHeight is the default height of the test screen in cells.
	DefaultTestHeight = 10
)

// Tester drives a Runtime with a fake clock and paints into an in-memory
// buffer instead of a terminal.
type Tester struct {
	rt    *runtime.Runtime
	clock *clock.Fake
	buf   *paint.Buffer
}

// NewTester creates a tester with a screen of the given size. A zero size
// uses the defaults. Call Cleanup when done, or use NewTesterWithT.
func NewTester(size geometry.Size) *Tester {
	if size.IsZero() {
		size = geometry.NewSize(DefaultTestWidth, DefaultTestHeight)
	}
	clk := clock.NewFake()
	return &Tester{
		rt: runtime.New(runtime.Options{
			Viewport: layout.NewViewport(size),
			Clock:    clk,
		}),
		clock: clk,
		buf:   paint.NewBuffer(size),
	}
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T, size geometry.Size) *Tester {
	tester := NewTester(size)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup closes the runtime's message channel.
func (t *Tester) Cleanup() {
	t.rt.Close()
}

// Runtime returns the runtime under test.
func (t *Tester) Runtime() *runtime.Runtime { return t.rt }

// Templates returns the runtime's template sources.
func (t *Tester) Templates() *templates.Templates { return t.rt.Templates() }

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *clock.Fake { return t.clock }

// Buffer returns the buffer painted by the last Pump.
func (t *Tester) Buffer() *paint.Buffer { return t.buf }

// Load builds the tree from template name and paints a frame.
func (t *Tester) Load(name string) error {
	if err := t.rt.Load(name); err != nil {
		return err
	}
	t.Pump()
	return nil
}

// Pump delivers queued messages, runs one tick and paints a frame.
func (t *Tester) Pump() {
	t.rt.DeliverMessages()
	t.rt.Tick()
	t.rt.Frame(t.buf)
}

// PumpFor advances the clock by step and pumps until d has elapsed.
func (t *Tester) PumpFor(d, step time.Duration) {
	if step <= 0 {
		step = d
	}
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		t.clock.Advance(step)
		t.Pump()
	}
}

// Send dispatches an event and pumps.
func (t *Tester) Send(ev events.Event) {
	t.rt.HandleEvent(ev)
	t.Pump()
}

// Press sends a key press. Single characters are sent as typed runes;
// anything else is a named key such as "enter" or "ctrl+c".
func (t *Tester) Press(name string) {
	key := events.Key{Name: name}
	if r := []rune(name); len(r) == 1 {
		key.Runes = r
	}
	t.Send(key)
}

// Type presses one key per rune of text.
func (t *Tester) Type(text string) {
	for _, r := range text {
		t.Press(string(r))
	}
}

// Click sends a left button press and release at pos.
func (t *Tester) Click(pos geometry.Pos) {
	t.rt.HandleEvent(events.Mouse{Pos: pos, Button: events.ButtonLeft, Action: events.MousePress})
	t.Send(events.Mouse{Pos: pos, Button: events.ButtonLeft, Action: events.MouseRelease})
}

// Resize changes the screen size and pumps.
func (t *Tester) Resize(size geometry.Size) {
	t.Send(events.Resize{Size: size})
}

// Screen returns the painted screen as text with trailing blanks trimmed.
func (t *Tester) Screen() string {
	return t.buf.String()
}

// Line returns one painted row.
func (t *Tester) Line(y int) string {
	return t.buf.Line(y)
}

// Root returns the root of the element tree.
func (t *Tester) Root() *widgets.Element {
	return t.rt.Root()
}

// Find evaluates a finder against the current element tree.
func (t *Tester) Find(finder Finder) FinderResult {
	root := t.rt.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(root, t.rt),
		finder:   finder,
	}
}
