// Package runtime drives a tree of components: it mounts them from
// templates, dispatches events, ticks and messages to them, routes
// associated events to their parents and paints frames.
//
// Everything except the Emitter runs on a single driver goroutine.
package runtime

import (
	"fmt"

	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/clock"
	"github.com/go-drift/weft/pkg/component"
	"github.com/go-drift/weft/pkg/focus"
	"github.com/go-drift/weft/pkg/intern"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
	"github.com/go-drift/weft/pkg/state"
	"github.com/go-drift/weft/pkg/templates"
	"github.com/go-drift/weft/pkg/widgets"
)

// Options configures a Runtime. Zero values select defaults.
type Options struct {
	// Viewport is the initial screen size. Defaults to 80x24.
	Viewport layout.Viewport
	// Clock is the tick time source. Defaults to clock.Real.
	Clock clock.Clock
	// Templates holds the template sources. Defaults to an empty set.
	Templates *templates.Templates
	// Compiler turns template text into blueprints. Defaults to YAML.
	Compiler templates.Compiler
	// Factory builds widgets by kind. Defaults to the built-in widgets.
	Factory *widgets.Factory
	// Verbose reports dropped messages through errors.Report.
	Verbose bool
}

// Runtime owns the component registry and the widget tree.
type Runtime struct {
	registry  *component.Registry
	strings   *intern.Strings
	attrs     *attributes.Storage
	store     *state.Store
	emitter   *component.Emitter
	receiver  *component.Receiver
	assoc     *component.AssociatedEvents
	owner     *widgets.PipelineOwner
	factory   *widgets.Factory
	templates *templates.Templates
	compiler  templates.Compiler
	focus     *focus.Manager[*Mounted]
	ticker    *clock.Ticker
	viewport  layout.Viewport
	verbose   bool

	names    map[string]component.WidgetComponentID
	mounted  []*Mounted
	byState  map[state.ID]*Mounted
	nextNode widgets.NodeID
	rootName string
	stopped  bool
}

// New creates a runtime.
func New(opts Options) *Runtime {
	if opts.Viewport.Size().IsZero() {
		opts.Viewport = layout.NewViewport(layout.DefaultViewportSize)
	}
	if opts.Templates == nil {
		opts.Templates = templates.New()
	}
	if opts.Compiler == nil {
		opts.Compiler = templates.YAMLCompiler{}
	}
	if opts.Factory == nil {
		opts.Factory = widgets.NewFactory()
	}
	emitter, receiver := component.NewChannel()
	r := &Runtime{
		registry:  component.NewRegistry(),
		strings:   intern.New(),
		attrs:     attributes.NewStorage(),
		store:     state.NewStore(),
		emitter:   emitter,
		receiver:  receiver,
		assoc:     component.NewAssociatedEvents(),
		owner:     widgets.NewPipelineOwner(),
		factory:   opts.Factory,
		templates: opts.Templates,
		compiler:  opts.Compiler,
		focus:     focus.NewManager[*Mounted](),
		ticker:    clock.NewTicker(opts.Clock),
		viewport:  opts.Viewport,
		verbose:   opts.Verbose,
		names:     make(map[string]component.WidgetComponentID),
		byState:   make(map[state.ID]*Mounted),
	}
	r.focus.OnChange = r.focusChanged
	return r
}

// Registry returns the component registry.
func (r *Runtime) Registry() *component.Registry { return r.registry }

// Strings returns the interned event names.
func (r *Runtime) Strings() *intern.Strings { return r.strings }

// Attributes returns the attribute storage of the widget tree.
func (r *Runtime) Attributes() *attributes.Storage { return r.attrs }

// Emitter returns an emitter that any goroutine may use to message
// components.
func (r *Runtime) Emitter() *component.Emitter { return r.emitter }

// Templates returns the template sources.
func (r *Runtime) Templates() *templates.Templates { return r.templates }

// Viewport returns the current viewport.
func (r *Runtime) Viewport() layout.Viewport { return r.viewport }

// Root returns the root of the widget tree, or nil before Load.
func (r *Runtime) Root() *widgets.Element { return r.owner.Root() }

// Stopped reports whether a stop event was handled.
func (r *Runtime) Stopped() bool { return r.stopped }

// Close shuts the message channel. Sends after Close fail.
func (r *Runtime) Close() { r.receiver.Close() }

// Register names a reserved component so template use-sites can mount it.
func (r *Runtime) Register(name string, id component.WidgetComponentID) {
	r.names[name] = id
}

// AddComponent registers a single instance component under name.
func AddComponent[S, M any](r *Runtime, name string, c component.Component[S, M], initial S) component.ID[M] {
	id := r.registry.Reserve()
	component.AddComponent(r.registry, id, c, initial)
	r.Register(name, id)
	return component.NewID[M](id)
}

// AddPrototype registers a component that gets a fresh instance and state
// at every use-site.
func AddPrototype[S, M any](r *Runtime, name string, newComponent func() component.Component[S, M], newState func() S) component.ID[M] {
	id := r.registry.Reserve()
	component.AddPrototype(r.registry, id, newComponent, newState)
	r.Register(name, id)
	return component.NewID[M](id)
}

// Mounted returns the mounted components in mount order.
func (r *Runtime) Mounted() []*Mounted {
	return append([]*Mounted(nil), r.mounted...)
}

// Focused returns the component holding focus.
func (r *Runtime) Focused() (*Mounted, bool) {
	return r.focus.Current()
}

// FocusNext moves focus to the next component that accepts it.
func (r *Runtime) FocusNext() bool { return r.focus.Next() }

// FocusPrev moves focus to the previous component that accepts it.
func (r *Runtime) FocusPrev() bool { return r.focus.Prev() }

// SetFocus focuses m.
func (r *Runtime) SetFocus(m *Mounted) bool { return r.focus.Set(m) }

// Frame lays out, positions and paints the tree into buf.
func (r *Runtime) Frame(buf *paint.Buffer) {
	r.owner.FlushFrame(r.viewport, r.attrs, buf)
}

// NeedsFrame reports whether the tree changed since the last frame.
func (r *Runtime) NeedsFrame() bool { return r.owner.NeedsFrame() }

func (r *Runtime) nextNodeID() widgets.NodeID {
	id := r.nextNode
	r.nextNode++
	return id
}

func (r *Runtime) lookupName(name string) (component.WidgetComponentID, error) {
	id, ok := r.names[name]
	if !ok {
		return 0, fmt.Errorf("runtime: no component named %q", name)
	}
	return id, nil
}
