package runtime

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/events"
	"github.com/go-drift/weft/pkg/paint"
)

type tickMsg time.Time

type wakeMsg struct{}

// ReloadMsg asks the model to reload templates and rebuild the tree. Send
// it from a template watcher through tea.Program.Send.
type ReloadMsg struct {
	// Path is the file that changed, for error reports.
	Path string
}

// Model adapts a Runtime to a bubbletea program.
type Model struct {
	rt       *Runtime
	keys     KeyMap
	buf      *paint.Buffer
	tickRate time.Duration
}

// NewModel wraps rt. A zero tickRate disables ticks.
func NewModel(rt *Runtime, keys KeyMap, tickRate time.Duration) Model {
	return Model{
		rt:       rt,
		keys:     keys,
		buf:      paint.NewBuffer(rt.Viewport().Size()),
		tickRate: tickRate,
	}
}

// Runtime returns the wrapped runtime.
func (m Model) Runtime() *Runtime { return m.rt }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.wait())
}

func (m Model) tick() tea.Cmd {
	if m.tickRate <= 0 {
		return nil
	}
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// wait blocks until a message is queued. After Close it returns nil so the
// command goroutine exits.
func (m Model) wait() tea.Cmd {
	notify, done := m.rt.receiver.Notify(), m.rt.receiver.Done()
	return func() tea.Msg {
		select {
		case <-notify:
			return wakeMsg{}
		case <-done:
			return nil
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.rt.Tick()
		m.rt.DeliverMessages()
		return m, m.tick()
	case wakeMsg:
		m.rt.DeliverMessages()
		if m.rt.receiver.Closed() {
			return m, nil
		}
		return m, m.wait()
	case ReloadMsg:
		if err := m.rt.Reload(); err != nil {
			errors.Report(&errors.RuntimeError{
				Op:        "runtime.Reload",
				Kind:      errors.KindTemplate,
				Err:       fmt.Errorf("%s: %w", msg.Path, err),
				Component: -1,
			})
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.rt.HandleEvent(events.Stop{})
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.rt.FocusNext()
			m.rt.DrainAssociated()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.rt.FocusPrev()
			m.rt.DrainAssociated()
			return m, nil
		}
	}

	ev, ok := events.FromTea(msg)
	if !ok {
		return m, nil
	}
	m.rt.HandleEvent(ev)
	m.rt.DeliverMessages()
	if m.rt.Stopped() {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	m.rt.Frame(m.buf)
	return m.buf.Render()
}
