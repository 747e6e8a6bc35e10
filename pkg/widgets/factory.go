package widgets

import (
	"fmt"
	"sort"

	"github.com/go-drift/weft/pkg/attributes"
)

// Constructor builds a widget from the attributes of a node.
type Constructor func(attrs *attributes.Attributes) (Widget, error)

// Factory maps widget kind names to constructors.
type Factory struct {
	kinds map[string]Constructor
}

// NewFactory returns a factory with the built-in widgets registered.
func NewFactory() *Factory {
	f := &Factory{kinds: make(map[string]Constructor)}
	f.Register("text", func(attrs *attributes.Attributes) (Widget, error) {
		s, _ := attrs.String(TextAttribute)
		return &Text{Content: s}, nil
	})
	f.Register("vstack", func(*attributes.Attributes) (Widget, error) { return VStack(), nil })
	f.Register("hstack", func(*attributes.Attributes) (Widget, error) { return HStack(), nil })
	f.Register("expand", func(attrs *attributes.Attributes) (Widget, error) {
		e := &Expand{Factor: DefaultExpandFactor}
		if n, ok := attrs.Int("factor"); ok {
			e.Factor = n
		}
		if s, ok := attrs.String("axis"); ok {
			axis, ok := ParseAxis(s)
			if !ok {
				return nil, fmt.Errorf("expand: invalid axis %q", s)
			}
			e.Axis = axis
		}
		return e, nil
	})
	f.Register("align", func(attrs *attributes.Attributes) (Widget, error) {
		a := &Align{}
		if s, ok := attrs.String(AlignmentAttribute); ok {
			parsed, err := ParseAlignment(s)
			if err != nil {
				return nil, fmt.Errorf("align: %w", err)
			}
			a.Alignment = parsed
		}
		return a, nil
	})
	f.Register("float", func(*attributes.Attributes) (Widget, error) { return Float{}, nil })
	f.Register("padding", func(attrs *attributes.Attributes) (Widget, error) {
		e, _ := PaddingFrom(attrs)
		return &Padding{Padding: e}, nil
	})
	f.Register("sized", func(attrs *attributes.Attributes) (Widget, error) {
		s := &SizedBox{}
		s.Width, _ = attrs.Int("width")
		s.Height, _ = attrs.Int("height")
		return s, nil
	})
	return f
}

// Register adds or replaces the constructor for kind.
func (f *Factory) Register(kind string, c Constructor) {
	f.kinds[kind] = c
}

// New builds a widget of the given kind.
func (f *Factory) New(kind string, attrs *attributes.Attributes) (Widget, error) {
	c, ok := f.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown widget kind %q", kind)
	}
	return c(attrs)
}

// Kinds returns the registered kind names, sorted.
func (f *Factory) Kinds() []string {
	out := make([]string, 0, len(f.kinds))
	for k := range f.kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
