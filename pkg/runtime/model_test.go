package runtime

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/state"
)

func TestModel_UpdateDispatchesKeys(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.rt, DefaultKeyMap(), 0)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if cmd != nil {
		t.Error("expected no command for a plain key")
	}
	m = next.(Model)
	if got := stateOf[counterState](t, f.rt, f.counter.Widget()).Count.Get(); got != 1 {
		t.Errorf("expected count 1, got %d", got)
	}
	if view := m.View(); !strings.Contains(view, "dashboard") || !strings.Contains(view, "1") {
		t.Errorf("unexpected view %q", view)
	}
}

func TestModel_TabCyclesFocus(t *testing.T) {
	rt := New(Options{})
	AddComponent[counterState, int](rt, "a", counter{}, counterState{Count: state.NewValue(0)})
	AddComponent[counterState, int](rt, "b", counter{}, counterState{Count: state.NewValue(0)})
	rt.Templates().Insert("main", "- component: a\n- component: b")
	rt.Templates().Insert("a", "- kind: text")
	rt.Templates().Insert("b", "- kind: text")
	if err := rt.Load("main"); err != nil {
		t.Fatal(err)
	}
	m := NewModel(rt, DefaultKeyMap(), 0)
	first, _ := rt.Focused()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	second, _ := rt.Focused()
	if second == first {
		t.Fatal("expected tab to move focus")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if back, _ := rt.Focused(); back != first {
		t.Error("expected shift+tab to move focus back")
	}
}

func TestModel_WindowSizeAndQuit(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.rt, DefaultKeyMap(), 0)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if got := f.rt.Viewport().Size(); got != geometry.NewSize(40, 10) {
		t.Errorf("viewport = %v", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !f.rt.Stopped() {
		t.Error("expected runtime stopped")
	}
}

func TestModel_WakeDeliversMessages(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.rt, DefaultKeyMap(), 0)
	f.rt.Emitter().Emit(f.counter.Widget(), 3)

	msg := m.wait()()
	if _, ok := msg.(wakeMsg); !ok {
		t.Fatalf("expected wakeMsg, got %T", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Error("expected the model to keep waiting")
	}
	if got := stateOf[counterState](t, f.rt, f.counter.Widget()).Count.Get(); got != 3 {
		t.Errorf("expected count 3, got %d", got)
	}
}

func TestModel_WaitEndsOnClose(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.rt, DefaultKeyMap(), 0)
	select {
	case <-f.rt.receiver.Notify():
	default:
	}

	got := make(chan tea.Msg, 1)
	go func() { got <- m.wait()() }()
	f.rt.Close()

	select {
	case msg := <-got:
		if msg != nil {
			t.Errorf("expected nil after close, got %T", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("wait did not return after Close")
	}
}

func TestModel_ReloadMsg(t *testing.T) {
	f := newFixture(t)
	m := NewModel(f.rt, DefaultKeyMap(), 0)
	f.rt.Templates().Insert("counter", "- kind: text\n  attributes: {text: reloaded}")

	m.Update(ReloadMsg{Path: "counter.yaml"})
	if got := frame(f.rt).Line(1); got != "reloaded" {
		t.Errorf("line 1 = %q", got)
	}

	c := &capture{}
	errors.SetHandler(c)
	defer errors.SetHandler(nil)
	f.rt.Templates().Insert("counter", "- component: counter")
	m.Update(ReloadMsg{Path: "counter.yaml"})
	if len(c.errs) != 1 || c.errs[0].Kind != errors.KindTemplate {
		t.Errorf("expected a template error report, got %+v", c.errs)
	}
}
