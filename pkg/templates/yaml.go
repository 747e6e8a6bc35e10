package templates

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLCompiler compiles templates written as a YAML list of nodes. A node
// sets exactly one of kind (a widget with optional attributes and children),
// component (a use-site of another template, with optional assoc bindings
// and slots) or slot (splices the content passed for that slot name).
type YAMLCompiler struct{}

type yamlNode struct {
	Kind       string                `yaml:"kind"`
	Attributes map[string]any        `yaml:"attributes"`
	Children   []yamlNode            `yaml:"children"`
	Component  string                `yaml:"component"`
	Assoc      map[string]string     `yaml:"assoc"`
	Slots      map[string][]yamlNode `yaml:"slots"`
	Slot       string                `yaml:"slot"`
}

// Compile implements Compiler.
func (YAMLCompiler) Compile(ctx *CompileContext, text string) ([]Blueprint, error) {
	var nodes []yamlNode
	if err := yaml.Unmarshal([]byte(text), &nodes); err != nil {
		return nil, fmt.Errorf("templates: parse: %w", err)
	}
	return compileNodes(ctx, nodes)
}

func compileNodes(ctx *CompileContext, nodes []yamlNode) ([]Blueprint, error) {
	var out []Blueprint
	for _, n := range nodes {
		bps, err := compileNode(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, bps...)
	}
	return out, nil
}

func compileNode(ctx *CompileContext, n yamlNode) ([]Blueprint, error) {
	set := 0
	for _, s := range []string{n.Kind, n.Component, n.Slot} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("templates: node must set exactly one of kind, component or slot")
	}

	switch {
	case n.Slot != "":
		id, ok := ctx.Strings.Lookup(n.Slot)
		if !ok {
			return nil, nil
		}
		return ctx.Slots[id], nil

	case n.Component != "":
		id, ok := ctx.Templates.Lookup(n.Component)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingComponent, n.Component)
		}
		slots := make(Slots, len(n.Slots))
		for name, nodes := range n.Slots {
			bps, err := compileNodes(ctx, nodes)
			if err != nil {
				return nil, err
			}
			slots[ctx.Strings.Insert(name)] = bps
		}
		children, err := ctx.Load(id, slots)
		if err != nil {
			return nil, err
		}
		return []Blueprint{{
			Kind:       ComponentKind,
			Attributes: n.Attributes,
			Children:   children,
			Component:  n.Component,
			Assoc:      n.Assoc,
		}}, nil
	}

	children, err := compileNodes(ctx, n.Children)
	if err != nil {
		return nil, err
	}
	return []Blueprint{{
		Kind:       n.Kind,
		Attributes: n.Attributes,
		Children:   children,
	}}, nil
}
