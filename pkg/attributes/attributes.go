// Package attributes stores the per-node attribute values produced by template
// evaluation. The render pipeline only reads from it.
package attributes

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NodeID identifies a widget node.
type NodeID int

// Attributes is the set of named values attached to one node.
type Attributes struct {
	values map[string]any
}

// New creates an empty attribute set.
func New() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// Set stores value under key and returns the receiver for chaining.
func (a *Attributes) Set(key string, value any) *Attributes {
	a.values[key] = value
	return a
}

// Get returns the raw value for key.
func (a *Attributes) Get(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether key is present.
func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Keys returns the attribute names in sorted order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, 0, len(a.values))
	for k := range a.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the value for key rendered as text. Numbers and booleans are
// formatted; other types are rejected.
func (a *Attributes) String(key string) (string, bool) {
	v, ok := a.Get(key)
	if !ok {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// Int returns the value for key as an int. Strings holding integers are
// accepted.
func (a *Attributes) Int(key string) (int, bool) {
	v, ok := a.Get(key)
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint16:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

// Bool returns the value for key as a bool. A present key with a nil value
// counts as true.
func (a *Attributes) Bool(key string) (bool, bool) {
	v, ok := a.Get(key)
	if !ok {
		return false, false
	}
	switch v := v.(type) {
	case nil:
		return true, true
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	}
	return false, false
}

// Strings iterates the value for key as a sequence of strings. A single
// string yields itself; a list yields each of its string elements.
func (a *Attributes) Strings(key string) []string {
	v, ok := a.Get(key)
	if !ok {
		return nil
	}
	switch v := v.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	if s, ok := a.String(key); ok {
		return []string{s}
	}
	return nil
}

// Color returns the value for key as a terminal colour. Accepted forms are
// ANSI names ("red", "bright_blue"), ANSI indexes ("12") and hex ("#ff8800").
func (a *Attributes) Color(key string) (lipgloss.TerminalColor, bool) {
	s, ok := a.String(key)
	if !ok {
		return nil, false
	}
	return ParseColor(s)
}

var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"grey":           "8",
	"gray":           "8",
	"dark_grey":      "8",
	"dark_gray":      "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// ParseColor parses a colour string.
func ParseColor(s string) (lipgloss.TerminalColor, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "reset" {
		return lipgloss.NoColor{}, s == "reset"
	}
	if idx, ok := namedColors[s]; ok {
		return lipgloss.Color(idx), true
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return nil, false
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return nil, false
		}
		return lipgloss.Color(s), true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(s), true
	}
	return nil, false
}
