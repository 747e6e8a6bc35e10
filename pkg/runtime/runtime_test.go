package runtime

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/go-drift/weft/pkg/clock"
	"github.com/go-drift/weft/pkg/component"
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/events"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
	"github.com/go-drift/weft/pkg/state"
	"github.com/go-drift/weft/pkg/templates"
	"github.com/go-drift/weft/pkg/widgets"
)

type counterState struct {
	Count   *state.Value[int]
	Ticks   []time.Duration
	Sizes   []geometry.Size
	Focused bool
}

type counter struct {
	component.Base[counterState, int]
}

func (counter) OnKey(k events.Key, s *counterState, ctx *component.Context[counterState]) {
	if k.Char() != '+' {
		return
	}
	s.Count.Set(s.Count.Get() + 1)
	show(s, ctx)
}

func (counter) Message(n int, s *counterState, ctx *component.Context[counterState]) {
	s.Count.Set(n)
	show(s, ctx)
}

func (counter) Tick(dt time.Duration, s *counterState, _ *component.Context[counterState]) {
	s.Ticks = append(s.Ticks, dt)
}

func (counter) Resize(s *counterState, ctx *component.Context[counterState]) {
	s.Sizes = append(s.Sizes, ctx.Viewport.Size())
}

func (counter) OnFocus(s *counterState, _ *component.Context[counterState]) { s.Focused = true }
func (counter) OnBlur(s *counterState, _ *component.Context[counterState])  { s.Focused = false }

func show(s *counterState, ctx *component.Context[counterState]) {
	for _, el := range ctx.Elements.Query("id", "count") {
		ctx.Elements.Set(el.ID(), widgets.TextAttribute, strconv.Itoa(s.Count.Get()))
	}
	component.Publish(ctx, "changed", func(s *counterState) *state.Value[int] { return s.Count })
}

type dashState struct {
	Received []string
}

type dashboard struct {
	component.Base[dashState, struct{}]
}

func (dashboard) AcceptFocus() bool { return false }

func (dashboard) Receive(name string, value any, s *dashState, _ *component.Context[dashState]) {
	s.Received = append(s.Received, fmt.Sprintf("%s=%v", name, value))
}

const (
	mainTemplate = `
- kind: text
  attributes: {text: dashboard}
- component: counter
  assoc: {changed: on_count}
`
	counterTemplate = `
- kind: text
  attributes: {id: count, text: "0"}
`
)

type fixture struct {
	rt      *Runtime
	clock   *clock.Fake
	counter component.ID[int]
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	fake := clock.NewFake()
	rt := New(Options{
		Viewport: layout.NewViewport(geometry.NewSize(20, 3)),
		Clock:    fake,
	})
	AddComponent[dashState, struct{}](rt, "main", dashboard{}, dashState{})
	id := AddComponent[counterState, int](rt, "counter", counter{}, counterState{Count: state.NewValue(0)})
	rt.Templates().Insert("main", mainTemplate)
	rt.Templates().Insert("counter", counterTemplate)
	if err := rt.Load("main"); err != nil {
		t.Fatal(err)
	}
	return fixture{rt: rt, clock: fake, counter: id}
}

func stateOf[S any](t *testing.T, rt *Runtime, id component.WidgetComponentID) *S {
	t.Helper()
	for _, m := range rt.Mounted() {
		if m.ID() == id {
			s, ok := state.Downcast[S](m.State())
			if !ok {
				t.Fatalf("state of %v is %T", id, m.State().Any())
			}
			return s
		}
	}
	t.Fatalf("component %v is not mounted", id)
	return nil
}

func frame(rt *Runtime) *paint.Buffer {
	buf := paint.NewBuffer(rt.Viewport().Size())
	rt.Frame(buf)
	return buf
}

func plus() events.Key {
	return events.Key{Name: "+", Runes: []rune{'+'}}
}

func TestRuntime_LoadMountsComponents(t *testing.T) {
	f := newFixture(t)
	mounted := f.rt.Mounted()
	if len(mounted) != 2 {
		t.Fatalf("expected 2 mounted components, got %d", len(mounted))
	}
	if p, ok := mounted[1].Parent(); !ok || p.Component != mounted[0].ID() {
		t.Errorf("expected counter parent to be the root component, got %+v", p)
	}
	if _, ok := mounted[0].Parent(); ok {
		t.Error("expected root component to have no parent")
	}
	if !f.rt.Registry().CheckedOut(f.counter.Widget()) {
		t.Error("expected counter to be checked out")
	}

	focused, ok := f.rt.Focused()
	if !ok || focused.ID() != f.counter.Widget() {
		t.Fatalf("expected counter focused, got %v", focused)
	}
	if !stateOf[counterState](t, f.rt, f.counter.Widget()).Focused {
		t.Error("expected OnFocus to run")
	}

	buf := frame(f.rt)
	if got := buf.Line(0); got != "dashboard" {
		t.Errorf("line 0 = %q", got)
	}
	if got := buf.Line(1); got != "0" {
		t.Errorf("line 1 = %q", got)
	}
}

func TestRuntime_AssociatedEventsReachParent(t *testing.T) {
	f := newFixture(t)
	f.rt.HandleEvent(plus())
	f.rt.HandleEvent(plus())
	f.rt.HandleEvent(events.Key{Name: "x", Runes: []rune{'x'}})

	root := f.rt.Mounted()[0]
	got := stateOf[dashState](t, f.rt, root.ID()).Received
	want := []string{"on_count=1", "on_count=2"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := frame(f.rt).Line(1); got != "2" {
		t.Errorf("expected repainted count 2, got %q", got)
	}
}

func TestRuntime_DeliverMessages(t *testing.T) {
	f := newFixture(t)
	if err := component.Emit(f.rt.Emitter(), f.counter, 7); err != nil {
		t.Fatal(err)
	}
	if err := f.rt.Emitter().Emit(99, "nobody"); err != nil {
		t.Fatal(err)
	}
	if n := f.rt.DeliverMessages(); n != 2 {
		t.Errorf("expected 2 messages taken, got %d", n)
	}
	if got := stateOf[counterState](t, f.rt, f.counter.Widget()).Count.Get(); got != 7 {
		t.Errorf("expected count 7, got %d", got)
	}
	if got := frame(f.rt).Line(1); got != "7" {
		t.Errorf("line 1 = %q", got)
	}
}

type capture struct {
	errs []*errors.RuntimeError
}

func (c *capture) HandleError(err *errors.RuntimeError) { c.errs = append(c.errs, err) }
func (c *capture) HandlePanic(*errors.PanicError)       {}

func TestRuntime_VerboseReportsDroppedMessages(t *testing.T) {
	c := &capture{}
	errors.SetHandler(c)
	defer errors.SetHandler(nil)

	rt := New(Options{Verbose: true})
	rt.Emitter().Emit(5, "lost")
	rt.DeliverMessages()
	if len(c.errs) != 1 || c.errs[0].Kind != errors.KindMessage || c.errs[0].Component != 5 {
		t.Errorf("expected one dropped message report, got %+v", c.errs)
	}
}

func TestRuntime_TickUsesClock(t *testing.T) {
	f := newFixture(t)
	f.rt.Tick()
	f.clock.Advance(40 * time.Millisecond)
	f.rt.Tick()
	ticks := stateOf[counterState](t, f.rt, f.counter.Widget()).Ticks
	if len(ticks) != 2 || ticks[0] != 0 || ticks[1] != 40*time.Millisecond {
		t.Errorf("unexpected ticks %v", ticks)
	}
}

func TestRuntime_ResizeReachesEveryComponent(t *testing.T) {
	f := newFixture(t)
	frame(f.rt)
	f.rt.HandleEvent(events.Resize{Size: geometry.NewSize(30, 5)})

	if got := f.rt.Viewport().Size(); got != geometry.NewSize(30, 5) {
		t.Errorf("viewport = %v", got)
	}
	sizes := stateOf[counterState](t, f.rt, f.counter.Widget()).Sizes
	if len(sizes) != 1 || sizes[0] != geometry.NewSize(30, 5) {
		t.Errorf("unexpected resize sizes %v", sizes)
	}
	if !f.rt.Root().Container().NeedsLayout() {
		t.Error("expected tree to need layout after resize")
	}
	if got := frame(f.rt).Size(); got != geometry.NewSize(30, 5) {
		t.Errorf("buffer size = %v", got)
	}
}

func TestRuntime_StopEvent(t *testing.T) {
	f := newFixture(t)
	f.rt.HandleEvent(events.Noop{})
	if f.rt.Stopped() {
		t.Fatal("expected runtime running")
	}
	f.rt.HandleEvent(events.Stop{})
	if !f.rt.Stopped() {
		t.Error("expected runtime stopped")
	}
}

func TestRuntime_ReloadKeepsInstanceState(t *testing.T) {
	f := newFixture(t)
	f.rt.HandleEvent(plus())
	f.rt.Templates().Insert("counter", `
- kind: text
  attributes: {text: "count:"}
- kind: text
  attributes: {id: count, text: "?"}
`)
	if err := f.rt.Reload(); err != nil {
		t.Fatal(err)
	}
	if got := stateOf[counterState](t, f.rt, f.counter.Widget()).Count.Get(); got != 1 {
		t.Errorf("expected instance state to survive reload, got %d", got)
	}
	if got := frame(f.rt).Line(1); got != "count:" {
		t.Errorf("line 1 = %q", got)
	}
	if n := len(f.rt.Mounted()); n != 2 {
		t.Errorf("expected 2 mounted components after reload, got %d", n)
	}
}

func TestRuntime_PrototypesGetFreshState(t *testing.T) {
	rt := New(Options{})
	id := AddPrototype[counterState, int](rt, "item",
		func() component.Component[counterState, int] { return counter{} },
		func() counterState { return counterState{Count: state.NewValue(0)} },
	)
	rt.Templates().Insert("main", `
- component: item
- component: item
`)
	rt.Templates().Insert("item", `- kind: text`)
	if err := rt.Load("main"); err != nil {
		t.Fatal(err)
	}

	mounted := rt.Mounted()
	if len(mounted) != 2 {
		t.Fatalf("expected 2 copies, got %d", len(mounted))
	}
	if mounted[0].State().StateID() == mounted[1].State().StateID() {
		t.Error("expected distinct states")
	}
	rt.HandleEvent(plus())
	a, _ := state.Downcast[counterState](mounted[0].State())
	b, _ := state.Downcast[counterState](mounted[1].State())
	if a.Count.Get() != 1 || b.Count.Get() != 0 {
		t.Errorf("expected only the focused copy to change, got %d and %d", a.Count.Get(), b.Count.Get())
	}

	component.Emit(rt.Emitter(), id, 5)
	rt.DeliverMessages()
	if a.Count.Get() != 5 || b.Count.Get() != 5 {
		t.Errorf("expected both copies to receive the message, got %d and %d", a.Count.Get(), b.Count.Get())
	}

	rt.Unmount(mounted[1])
	if k, _ := rt.Registry().Kind(id.Widget()); k != component.KindPrototype {
		t.Errorf("expected prototype to stay registered, got %v", k)
	}
	if len(rt.Mounted()) != 1 {
		t.Errorf("expected 1 mounted copy, got %d", len(rt.Mounted()))
	}
}

func TestRuntime_InstanceMountedTwiceIsFatal(t *testing.T) {
	rt := New(Options{})
	AddComponent[counterState, int](rt, "counter", counter{}, counterState{Count: state.NewValue(0)})
	rt.Templates().Insert("main", "- component: counter\n- component: counter")
	rt.Templates().Insert("counter", "- kind: text")

	defer func() {
		r := recover()
		err, ok := r.(error)
		var ce *errors.ContractError
		if !ok || !stderrors.As(err, &ce) {
			t.Fatalf("expected contract violation, got %v", r)
		}
	}()
	rt.Load("main")
}

func TestRuntime_LoadErrors(t *testing.T) {
	rt := New(Options{})
	if err := rt.Load("nope"); !stderrors.Is(err, templates.ErrMissingComponent) {
		t.Errorf("expected ErrMissingComponent, got %v", err)
	}
	rt.Templates().Insert("bad", "- kind: spinner")
	if err := rt.Load("bad"); err == nil {
		t.Error("expected unknown widget kind to fail")
	}
	if rt.Root() != nil {
		t.Error("expected no tree after a failed load")
	}
}

func TestRuntime_FailedLoadKeepsPreviousTree(t *testing.T) {
	f := newFixture(t)
	root := f.rt.Root()
	before := frame(f.rt).String()
	mounted := len(f.rt.Mounted())
	attrs := f.rt.Attributes().Len()

	f.rt.Templates().Insert("broken", "- kind: vstack\n  attributes: {text: partial}\n  children:\n    - component: counter\n    - kind: spinner\n")
	if err := f.rt.Load("broken"); err == nil {
		t.Fatal("expected unknown widget kind to fail")
	}

	if f.rt.Root() != root {
		t.Error("expected the previous root to stay installed")
	}
	if got := len(f.rt.Mounted()); got != mounted {
		t.Errorf("expected %d mounted components, got %d", mounted, got)
	}
	if got := f.rt.Attributes().Len(); got != attrs {
		t.Errorf("expected partial attributes to be discarded, got %d want %d", got, attrs)
	}
	if got := frame(f.rt).String(); got != before {
		t.Errorf("expected frame %q, got %q", before, got)
	}

	f.rt.HandleEvent(plus())
	if got := stateOf[counterState](t, f.rt, f.counter.Widget()).Count.Get(); got != 1 {
		t.Errorf("expected the counter to keep working, got %d", got)
	}
}

func TestRuntime_UnmountChecksInstanceBackIn(t *testing.T) {
	f := newFixture(t)
	var counterM *Mounted
	for _, m := range f.rt.Mounted() {
		if m.ID() == f.counter.Widget() {
			counterM = m
		}
	}
	f.rt.Unmount(counterM)
	if f.rt.Registry().CheckedOut(f.counter.Widget()) {
		t.Error("expected counter checked back in")
	}
	if _, ok := f.rt.Focused(); ok {
		t.Error("expected focus cleared")
	}
	s, _ := state.Downcast[counterState](counterM.State())
	if s.Focused {
		t.Error("expected OnBlur to run when unmounting the focused component")
	}
}

func TestRuntime_TerminalFocusLeavesComponentFocus(t *testing.T) {
	f := newFixture(t)
	s := stateOf[counterState](t, f.rt, f.counter.Widget())
	if !s.Focused {
		t.Fatal("expected the counter to start focused")
	}

	f.rt.HandleEvent(events.Blur{})
	if !s.Focused {
		t.Error("expected terminal blur to leave component focus alone")
	}
	if m, ok := f.rt.Focused(); !ok || m.ID() != f.counter.Widget() {
		t.Error("expected the focus manager to keep the counter focused")
	}

	s.Focused = false
	f.rt.HandleEvent(events.Focus{})
	if s.Focused {
		t.Error("expected terminal focus not to reach OnFocus")
	}
}
