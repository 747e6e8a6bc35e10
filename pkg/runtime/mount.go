package runtime

import (
	"fmt"

	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/component"
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/state"
	"github.com/go-drift/weft/pkg/templates"
	"github.com/go-drift/weft/pkg/widgets"
)

// Mounted is a component checked out of the registry and placed in the tree.
type Mounted struct {
	id        component.WidgetComponentID
	kind      component.Kind
	component component.AnyComponent
	state     state.AnyState
	parent    *component.Parent
	assoc     []component.AssocFunction
	element   *widgets.Element
}

// ID returns the registry id of the component.
func (m *Mounted) ID() component.WidgetComponentID { return m.id }

// Kind reports whether the component is an instance or a prototype copy.
func (m *Mounted) Kind() component.Kind { return m.kind }

// State returns the component state.
func (m *Mounted) State() state.AnyState { return m.state }

// Parent returns the component notified by associated events.
func (m *Mounted) Parent() (component.Parent, bool) {
	if m.parent == nil {
		return component.Parent{}, false
	}
	return *m.parent, true
}

// Element returns the node wrapping the component's widgets.
func (m *Mounted) Element() *widgets.Element { return m.element }

// AcceptFocus implements focus.Target.
func (m *Mounted) AcceptFocus() bool { return m.component.AcceptFocusAny() }

// Mount checks component id out of the registry. Associated events the
// component publishes under a key of bindings reach parent under the mapped
// name. Mounting a component that is already mounted is a contract
// violation.
func (r *Runtime) Mount(id component.WidgetComponentID, parent *Mounted, bindings map[string]string) *Mounted {
	co, ok := r.registry.Checkout(id)
	if !ok {
		errors.Violation("mount", "component %v is already mounted", id)
	}
	m := &Mounted{
		id:        id,
		kind:      co.Kind,
		component: co.Component,
		state:     co.State,
	}
	if parent != nil {
		m.parent = &component.Parent{Component: parent.id, State: parent.state.StateID()}
	}
	for internal, external := range bindings {
		m.assoc = append(m.assoc, component.AssocFunction{
			Internal: r.strings.Insert(internal),
			External: r.strings.Insert(external),
		})
	}
	r.store.Insert(co.State)
	r.byState[co.State.StateID()] = m
	r.mounted = append(r.mounted, m)
	r.focus.Add(m)
	return m
}

// Unmount removes m from the tree. Instances are checked back into the
// registry with their state; prototype copies are discarded.
func (r *Runtime) Unmount(m *Mounted) {
	r.focus.Remove(m)
	r.store.Remove(m.state.StateID())
	delete(r.byState, m.state.StateID())
	for i, x := range r.mounted {
		if x == m {
			r.mounted = append(r.mounted[:i], r.mounted[i+1:]...)
			break
		}
	}
	if m.kind == component.KindInstance {
		r.registry.Checkin(m.id, m.component, m.state)
	}
}

func (r *Runtime) unmountAll() {
	for i := len(r.mounted) - 1; i >= 0; i-- {
		r.Unmount(r.mounted[i])
	}
}

// Load builds the widget tree from template name and mounts every
// component it uses. A component registered under name becomes the root
// component. The previous tree is replaced only once the new one has been
// built; on error it stays in place.
func (r *Runtime) Load(name string) error {
	tid, ok := r.templates.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", templates.ErrMissingComponent, name)
	}
	blueprints, err := r.templates.Load(tid, nil, r.strings, r.compiler)
	if err != nil {
		return err
	}

	tree := &treeBuild{}
	root := widgets.NewElement(r.nextNodeID(), widgets.VStack())
	owner := -1
	if id, ok := r.names[name]; ok {
		owner = tree.use(root, id, -1, nil)
	}
	for _, bp := range blueprints {
		child, err := r.build(bp, owner, tree)
		if err != nil {
			for _, id := range tree.nodes {
				r.attrs.Remove(id)
			}
			return err
		}
		root.Append(child)
	}

	r.teardown()
	r.mountSites(tree.sites)
	r.owner.SetRoot(root)
	r.rootName = name
	if _, ok := r.focus.Current(); !ok {
		r.focus.Next()
	}
	r.DrainAssociated()
	return nil
}

// Reload re-reads file templates and rebuilds the last loaded tree.
// Instance components keep their state.
func (r *Runtime) Reload() error {
	if err := r.templates.Reload(); err != nil {
		return err
	}
	if r.rootName == "" {
		return nil
	}
	return r.Load(r.rootName)
}

func (r *Runtime) teardown() {
	r.unmountAll()
	if root := r.owner.Root(); root != nil {
		root.Walk(func(el *widgets.Element) bool {
			r.attrs.Remove(el.ID())
			return true
		})
	}
	r.owner.SetRoot(nil)
}

// useSite is a component use-site found while building a tree. Parent
// indexes an earlier site, or is -1.
type useSite struct {
	element *widgets.Element
	id      component.WidgetComponentID
	parent  int
	assoc   map[string]string
}

// treeBuild collects what a build inserted, in pre-order.
type treeBuild struct {
	nodes []widgets.NodeID
	sites []useSite
}

func (b *treeBuild) use(el *widgets.Element, id component.WidgetComponentID, parent int, assoc map[string]string) int {
	b.sites = append(b.sites, useSite{element: el, id: id, parent: parent, assoc: assoc})
	return len(b.sites) - 1
}

func (r *Runtime) mountSites(sites []useSite) {
	mounted := make([]*Mounted, len(sites))
	for i, site := range sites {
		var parent *Mounted
		if site.parent >= 0 {
			parent = mounted[site.parent]
		}
		m := r.Mount(site.id, parent, site.assoc)
		m.element = site.element
		mounted[i] = m
	}
}

func (r *Runtime) build(bp templates.Blueprint, owner int, tree *treeBuild) (*widgets.Element, error) {
	id := r.nextNodeID()
	attrs := attributes.New()
	for k, v := range bp.Attributes {
		attrs.Set(k, v)
	}
	r.attrs.Insert(id, attrs)
	tree.nodes = append(tree.nodes, id)

	var el *widgets.Element
	if bp.Kind == templates.ComponentKind {
		el = widgets.NewElement(id, widgets.VStack())
		if cid, ok := r.names[bp.Component]; ok {
			owner = tree.use(el, cid, owner, bp.Assoc)
		}
	} else {
		w, err := r.factory.New(bp.Kind, attrs)
		if err != nil {
			return nil, err
		}
		el = widgets.NewElement(id, w)
	}

	for _, c := range bp.Children {
		child, err := r.build(c, owner, tree)
		if err != nil {
			return nil, err
		}
		el.Append(child)
	}
	return el, nil
}
