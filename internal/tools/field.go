package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the input widget a field is collected with.
type Kind string

const (
	KindText        Kind = "text"
	KindTextArea    Kind = "textarea"
	KindList        Kind = "list" // comma-separated free text
	KindNumber      Kind = "number"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
	KindToggle      Kind = "toggle"
)

// Field is one row of a tool's input table.
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"kind"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	Default     any      `json:"default,omitempty"`
	Min         float64  `json:"min,omitempty"`
	Max         float64  `json:"max,omitempty"`
	Step        float64  `json:"step,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`

	// SnapshotLimit truncates the value recorded in history to this many
	// characters followed by "...". Zero records the value unchanged.
	SnapshotLimit int `json:"-"`
}

// normalize converts a raw request value into the field's canonical form.
// It reports missing=true for an empty required field and a non-empty
// reason for a value that cannot be accepted.
func (f Field) normalize(raw any, present bool) (value any, missing bool, reason string) {
	switch f.Kind {
	case KindText, KindTextArea:
		s := strings.TrimSpace(asString(raw))
		if s == "" {
			if f.Required {
				return "", true, ""
			}
			if d, ok := f.Default.(string); ok && !present {
				return d, false, ""
			}
		}
		return s, false, ""

	case KindList:
		items := splitList(raw)
		if len(items) == 0 && f.Required {
			return items, true, ""
		}
		return items, false, ""

	case KindNumber:
		s := strings.TrimSpace(asString(raw))
		if !present || s == "" {
			if f.Required {
				return 0, true, ""
			}
			return f.defaultInt(), false, ""
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, "not a number"
		}
		if n != math.Trunc(n) {
			return 0, false, "must be a whole number"
		}
		if n < f.Min || n > f.Max {
			return 0, false, fmt.Sprintf("must be between %g and %g", f.Min, f.Max)
		}
		if f.Step > 0 && math.Mod(n-f.Min, f.Step) != 0 {
			return 0, false, fmt.Sprintf("must be a multiple of %g from %g", f.Step, f.Min)
		}
		return int(n), false, ""

	case KindSelect:
		s := strings.TrimSpace(asString(raw))
		if s == "" {
			if f.Required {
				return "", true, ""
			}
			return f.defaultOption(), false, ""
		}
		opt, ok := f.canonical(s)
		if !ok {
			return "", false, fmt.Sprintf("%q is not one of: %s", s, strings.Join(f.Options, ", "))
		}
		return opt, false, ""

	case KindMultiSelect:
		if !present {
			return f.defaultList(), false, ""
		}
		var out []string
		seen := make(map[string]bool)
		for _, item := range splitList(raw) {
			opt, ok := f.canonical(item)
			if !ok {
				return nil, false, fmt.Sprintf("%q is not one of: %s", item, strings.Join(f.Options, ", "))
			}
			if !seen[opt] {
				seen[opt] = true
				out = append(out, opt)
			}
		}
		if len(out) == 0 && f.Required {
			return out, true, ""
		}
		return out, false, ""

	case KindToggle:
		if !present {
			d, _ := f.Default.(bool)
			return d, false, ""
		}
		switch v := raw.(type) {
		case bool:
			return v, false, ""
		default:
			b, err := strconv.ParseBool(strings.TrimSpace(asString(raw)))
			if err != nil {
				return false, false, "not a boolean"
			}
			return b, false, ""
		}
	}
	return nil, false, fmt.Sprintf("unsupported field kind %q", f.Kind)
}

// canonical matches s against the option list, ignoring case.
func (f Field) canonical(s string) (string, bool) {
	for _, opt := range f.Options {
		if opt == s {
			return opt, true
		}
	}
	for _, opt := range f.Options {
		if strings.EqualFold(opt, s) {
			return opt, true
		}
	}
	return "", false
}

func (f Field) defaultOption() string {
	if d, ok := f.Default.(string); ok && d != "" {
		return d
	}
	if len(f.Options) > 0 {
		return f.Options[0]
	}
	return ""
}

func (f Field) defaultList() []string {
	d, _ := f.Default.([]string)
	out := make([]string, len(d))
	copy(out, d)
	return out
}

func (f Field) defaultInt() int {
	switch d := f.Default.(type) {
	case int:
		return d
	case float64:
		return int(d)
	}
	return int(f.Min)
}

// asString renders scalar request values as text. JSON decoding yields
// float64 for numbers, MCP and CLI callers pass strings.
func asString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprint(raw)
}

// splitList accepts a comma-separated string or a list of values and returns
// the trimmed, non-empty items.
func splitList(raw any) []string {
	var items []string
	switch v := raw.(type) {
	case nil:
	case []string:
		items = v
	case []any:
		for _, item := range v {
			items = append(items, asString(item))
		}
	default:
		items = strings.Split(asString(raw), ",")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
