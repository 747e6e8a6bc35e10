package runtime

import (
	"fmt"

	"github.com/go-drift/weft/pkg/component"
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/events"
	"github.com/go-drift/weft/pkg/layout"
)

func (r *Runtime) context(m *Mounted) *component.UntypedContext {
	return &component.UntypedContext{
		Emitter:        r.emitter,
		Viewport:       r.viewport,
		AssocEvents:    r.assoc,
		StateID:        m.state.StateID(),
		Parent:         m.parent,
		Strings:        r.strings,
		AssocFunctions: m.assoc,
		Elements: component.Elements{
			Root:       m.element,
			Attributes: r.attrs,
		},
	}
}

// HandleEvent dispatches one event. Input goes to the focused component,
// a resize reaches every component and a stop marks the runtime stopped.
// Terminal focus and blur are ignored: component focus only moves through
// the focus manager. Associated events are drained before it returns.
func (r *Runtime) HandleEvent(ev events.Event) {
	switch ev := ev.(type) {
	case events.Key, events.Mouse:
		if m, ok := r.focus.Current(); ok {
			m.component.AnyEvent(ev, m.state, r.context(m))
		}
	case events.Resize:
		r.viewport = layout.NewViewport(ev.Size)
		for _, m := range r.Mounted() {
			m.component.AnyResize(m.state, r.context(m))
		}
		if root := r.owner.Root(); root != nil {
			root.MarkTreeNeedsLayout()
		}
	case events.Stop:
		r.stopped = true
	}
	r.DrainAssociated()
}

func (r *Runtime) focusChanged(old, now *Mounted) {
	if old != nil {
		old.component.AnyBlur(old.state, r.context(old))
	}
	if now != nil {
		now.component.AnyFocus(now.state, r.context(now))
	}
}

// Tick advances every component by the time elapsed since the last tick.
func (r *Runtime) Tick() {
	dt := r.ticker.Tick()
	for _, m := range r.Mounted() {
		m.component.AnyTick(dt, m.state, r.context(m))
	}
	r.DrainAssociated()
}

// DeliverMessages hands every queued message to the components mounted
// under its recipient id. Messages for components that are not mounted are
// dropped. It returns the number of messages taken off the queue.
func (r *Runtime) DeliverMessages() int {
	n := 0
	for {
		msg, ok := r.receiver.TryRecv()
		if !ok {
			return n
		}
		n++
		delivered := false
		for _, m := range r.Mounted() {
			if m.id != msg.Recipient {
				continue
			}
			delivered = true
			m.component.AnyMessage(msg.Payload, m.state, r.context(m))
		}
		if !delivered && r.verbose {
			errors.Report(&errors.RuntimeError{
				Op:        "runtime.DeliverMessages",
				Kind:      errors.KindMessage,
				Err:       fmt.Errorf("dropped %T: recipient not mounted", msg.Payload),
				Component: int(msg.Recipient),
			})
		}
		r.DrainAssociated()
	}
}

// DrainAssociated delivers queued associated events, most recent first.
// Events published while draining are delivered in the same pass.
func (r *Runtime) DrainAssociated() {
	for {
		ev, ok := r.assoc.Next()
		if !ok {
			return
		}
		publisher, ok := r.store.Get(ev.State)
		if !ok {
			continue
		}
		parent, ok := r.byState[ev.Parent.State]
		if !ok {
			continue
		}
		name, _ := r.strings.Get(ev.External)
		value := ev.Accessor.Resolve(publisher)
		parent.component.AnyReceive(name, value.Any(), parent.state, r.context(parent))
		value.Release()
	}
}
