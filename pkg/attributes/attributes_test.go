package attributes

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAttributes_TypedGetters(t *testing.T) {
	a := New().
		Set("fill", "ab").
		Set("width", 12).
		Set("height", "3").
		Set("bold", nil).
		Set("italic", false).
		Set("list", []any{"x", 1, "y"})

	if s, ok := a.String("fill"); !ok || s != "ab" {
		t.Errorf("String(fill) = %q, %v", s, ok)
	}
	if n, ok := a.Int("width"); !ok || n != 12 {
		t.Errorf("Int(width) = %d, %v", n, ok)
	}
	if n, ok := a.Int("height"); !ok || n != 3 {
		t.Errorf("Int(height) = %d, %v", n, ok)
	}
	if b, ok := a.Bool("bold"); !ok || !b {
		t.Errorf("Bool(bold) = %v, %v", b, ok)
	}
	if b, ok := a.Bool("italic"); !ok || b {
		t.Errorf("Bool(italic) = %v, %v", b, ok)
	}
	if _, ok := a.Int("missing"); ok {
		t.Error("expected missing key to fail")
	}
	if got := a.Strings("list"); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("Strings(list) = %v", got)
	}
	if got := a.Strings("fill"); !reflect.DeepEqual(got, []string{"ab"}) {
		t.Errorf("Strings(fill) = %v", got)
	}
	if got := a.Keys(); got[0] != "bold" || len(got) != 6 {
		t.Errorf("Keys() = %v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want lipgloss.TerminalColor
		ok   bool
	}{
		{"red", lipgloss.Color("1"), true},
		{" Bright_Blue ", lipgloss.Color("12"), true},
		{"#ff8800", lipgloss.Color("#ff8800"), true},
		{"#abc", lipgloss.Color("#abc"), true},
		{"200", lipgloss.Color("200"), true},
		{"reset", lipgloss.NoColor{}, true},
		{"300", nil, false},
		{"#zzzzzz", nil, false},
		{"chartreuse", nil, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStorage_GetMissingReturnsEmpty(t *testing.T) {
	s := NewStorage()
	s.Insert(1, New().Set("fill", "x"))

	if !s.Get(1).Has("fill") {
		t.Error("expected node 1 to have fill")
	}
	empty := s.Get(2)
	if empty == nil || empty.Len() != 0 {
		t.Errorf("expected empty attributes for unknown node, got %v", empty)
	}
	s.Remove(1)
	if s.Len() != 0 {
		t.Errorf("expected empty storage, got %d", s.Len())
	}
}

func TestStorage_GetOrInsert(t *testing.T) {
	s := NewStorage()
	if _, ok := s.Lookup(4); ok {
		t.Fatal("expected no attributes for node 4")
	}
	s.GetOrInsert(4).Set("text", "hi")
	if v, _ := s.Get(4).String("text"); v != "hi" {
		t.Errorf("text = %q", v)
	}
	if s.Get(5).Has("text") {
		t.Error("expected the shared empty set to stay empty")
	}
}
