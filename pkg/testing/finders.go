package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/runtime"
	"github.com/go-drift/weft/pkg/widgets"
)

// Finder locates elements in the widget tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root *widgets.Element, rt *runtime.Runtime) []*widgets.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []*widgets.Element
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *widgets.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.description()))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *widgets.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*widgets.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type predicateFinder struct {
	match func(el *widgets.Element, attrs *attributes.Attributes) bool
	desc  string
}

func (f *predicateFinder) Evaluate(root *widgets.Element, rt *runtime.Runtime) []*widgets.Element {
	var out []*widgets.Element
	root.Walk(func(el *widgets.Element) bool {
		if f.match(el, rt.Attributes().Get(el.ID())) {
			out = append(out, el)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string { return f.desc }

// ByType returns a finder that matches elements whose widget is type T.
func ByType[T widgets.Widget]() Finder {
	t := reflect.TypeFor[T]()
	return &predicateFinder{
		match: func(el *widgets.Element, _ *attributes.Attributes) bool {
			return reflect.TypeOf(el.Widget()) == t
		},
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

// ByAttribute matches elements whose string attribute key equals value.
func ByAttribute(key, value string) Finder {
	return &predicateFinder{
		match: func(_ *widgets.Element, attrs *attributes.Attributes) bool {
			s, ok := attrs.String(key)
			return ok && s == value
		},
		desc: fmt.Sprintf("ByAttribute(%s=%q)", key, value),
	}
}

// ByText matches Text elements showing exactly text.
func ByText(text string) Finder {
	return &predicateFinder{
		match: func(el *widgets.Element, attrs *attributes.Attributes) bool {
			w, ok := el.Widget().(*widgets.Text)
			if !ok {
				return false
			}
			if s, ok := attrs.String(widgets.TextAttribute); ok {
				return s == text
			}
			return w.Content == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByPredicate matches elements for which fn returns true.
func ByPredicate(desc string, fn func(el *widgets.Element) bool) Finder {
	return &predicateFinder{
		match: func(el *widgets.Element, _ *attributes.Attributes) bool { return fn(el) },
		desc:  fmt.Sprintf("ByPredicate(%s)", desc),
	}
}
