// Package templates stores component template sources and loads them into
// blueprints.
//
// Parsing is delegated to a Compiler. While a template is being compiled it
// sits on a dependency stack; a compiler that loads a template already on the
// stack gets ErrCircularDependency.
package templates

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-drift/weft/pkg/intern"
)

var (
	// ErrCircularDependency is returned when a template transitively loads
	// itself.
	ErrCircularDependency = errors.New("templates: circular component dependency")

	// ErrMissingComponent is returned for an unknown id or a template that
	// was referenced but never given a source.
	ErrMissingComponent = errors.New("templates: missing component")
)

// TemplateID identifies a template.
type TemplateID int

type sourceKind int

const (
	sourceEmpty sourceKind = iota
	sourceFile
	sourceMemory
)

type source struct {
	name string
	kind sourceKind
	path string
	text string
}

// Blueprint is one node of a compiled template.
type Blueprint struct {
	// Kind is the widget kind, or ComponentKind for a component use-site.
	Kind       string
	Attributes map[string]any
	Children   []Blueprint

	// Component is the template name of a component use-site.
	Component string
	// Assoc maps event names the component publishes to the names this
	// template handles them under.
	Assoc map[string]string
}

// ComponentKind is the Kind of a component use-site blueprint.
const ComponentKind = "component"

// Slots maps interned slot names to the blueprints filling them.
type Slots map[intern.ID][]Blueprint

// Compiler turns template text into blueprints. It may call Load on ctx to
// expand the components the template uses.
type Compiler interface {
	Compile(ctx *CompileContext, text string) ([]Blueprint, error)
}

// CompileContext is passed to a Compiler for one template.
type CompileContext struct {
	Templates *Templates
	Strings   *intern.Strings
	Slots     Slots
	Compiler  Compiler
}

// Load compiles another template from within a compilation.
func (c *CompileContext) Load(id TemplateID, slots Slots) ([]Blueprint, error) {
	return c.Templates.Load(id, slots, c.Strings, c.Compiler)
}

// Templates is the set of known component templates. It is owned by the
// driver goroutine.
type Templates struct {
	sources []source
	byName  map[string]TemplateID
	deps    []TemplateID
}

// New creates an empty set.
func New() *Templates {
	return &Templates{byName: make(map[string]TemplateID)}
}

func (t *Templates) put(src source) TemplateID {
	if id, ok := t.byName[src.name]; ok {
		t.sources[id] = src
		return id
	}
	id := TemplateID(len(t.sources))
	t.sources = append(t.sources, src)
	t.byName[src.name] = id
	return id
}

// InsertID reserves an id for name without a source. Loading it fails with
// ErrMissingComponent until a source is inserted under the same name.
func (t *Templates) InsertID(name string) TemplateID {
	if id, ok := t.byName[name]; ok {
		return id
	}
	return t.put(source{name: name, kind: sourceEmpty})
}

// Insert stores an in-memory template. Inserting an existing name replaces
// its source and keeps its id.
func (t *Templates) Insert(name, text string) TemplateID {
	return t.put(source{name: name, kind: sourceMemory, text: text})
}

// InsertFile stores a template read from path. Reload re-reads it.
func (t *Templates) InsertFile(name, path string) (TemplateID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("templates: read %s: %w", name, err)
	}
	return t.put(source{name: name, kind: sourceFile, path: path, text: string(data)}), nil
}

// Lookup returns the id of a named template.
func (t *Templates) Lookup(name string) (TemplateID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Name returns the name of a template.
func (t *Templates) Name(id TemplateID) (string, bool) {
	if id < 0 || int(id) >= len(t.sources) {
		return "", false
	}
	return t.sources[id].name, true
}

// Len returns the number of templates.
func (t *Templates) Len() int {
	return len(t.sources)
}

// Loading reports whether id is on the dependency stack.
func (t *Templates) Loading(id TemplateID) bool {
	for _, d := range t.deps {
		if d == id {
			return true
		}
	}
	return false
}

// Load compiles template id with the given slots.
func (t *Templates) Load(id TemplateID, slots Slots, strings *intern.Strings, compiler Compiler) ([]Blueprint, error) {
	if t.Loading(id) {
		name, _ := t.Name(id)
		return nil, fmt.Errorf("%w: %s", ErrCircularDependency, name)
	}
	if id < 0 || int(id) >= len(t.sources) {
		return nil, fmt.Errorf("%w: id %d", ErrMissingComponent, id)
	}
	src := t.sources[id]
	if src.kind == sourceEmpty {
		return nil, fmt.Errorf("%w: %s", ErrMissingComponent, src.name)
	}

	t.deps = append(t.deps, id)
	defer func() { t.deps = t.deps[:len(t.deps)-1] }()

	ctx := &CompileContext{
		Templates: t,
		Strings:   strings,
		Slots:     slots,
		Compiler:  compiler,
	}
	return compiler.Compile(ctx, src.text)
}

// FilePaths returns the paths of all file templates.
func (t *Templates) FilePaths() []string {
	var paths []string
	for _, src := range t.sources {
		if src.kind == sourceFile {
			paths = append(paths, src.path)
		}
	}
	return paths
}

// Reload re-reads every file template. In-memory and empty templates are
// left alone.
func (t *Templates) Reload() error {
	for i := range t.sources {
		src := &t.sources[i]
		if src.kind != sourceFile {
			continue
		}
		data, err := os.ReadFile(src.path)
		if err != nil {
			return fmt.Errorf("templates: reload %s: %w", src.name, err)
		}
		src.text = string(data)
	}
	return nil
}
