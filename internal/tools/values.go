package tools

import "strings"

// Request is the raw caller input for a tool, keyed by field name.
type Request map[string]any

// Values is a validated request. Every field of the tool is present:
// text and select fields hold string, number fields int, multiselect and
// list fields []string, toggles bool.
type Values map[string]any

// String returns a text or select value.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns a number value.
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// List returns a multiselect or list value.
func (v Values) List(name string) []string {
	l, _ := v[name].([]string)
	return l
}

// Bool returns a toggle value.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Joined returns a list value joined for display.
func (v Values) Joined(name string) string {
	return strings.Join(v.List(name), ", ")
}
