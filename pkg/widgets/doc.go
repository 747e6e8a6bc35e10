// Package widgets holds the widget node and its render pipeline.
//
// Every node in the tree is an Element wrapping a Container. The Container
// owns the node's cached size, position and inner bounds together with two
// dirty flags, and drives the concrete Widget through three passes:
//
//   - Layout resolves a size under constraints. A clean node laid out
//     under the same constraints returns its cached size without
//     consulting the widget.
//   - Position places the node. It is skipped when the node has not been
//     relaid out and the position is unchanged.
//   - Paint writes cells. It only runs on nodes that are fully clean.
//
// Widgets receive a Children cursor over their child elements and call
// Layout, Position and Paint on those elements to recurse.
//
// # Capabilities
//
// Beyond the Widget interface a widget may implement:
//
//   - Floater: a floating widget is laid out and painted normally but
//     reports a zero size to its parent.
//   - InnerBounder: overrides the inner bounds derived from position and size.
//
// # Fill
//
// Before a widget paints, its Container applies the node's style attributes
// to every cell it covers and, when the node has a "fill" attribute, repeats
// the fill text across each row without overrunning it.
//
// # Built-in widgets
//
// Text, Stack, Expand, Align and Float cover the common layouts. New widgets
// can be registered with a Factory by kind name.
package widgets
