package tools

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/abhisek/teachassist/internal/readability"
)

// Category groups tools the way the sidebar presents them.
type Category string

const (
	CategoryContent       Category = "Content"
	CategoryAssessment    Category = "Assessment"
	CategorySupport       Category = "Support"
	CategoryCommunication Category = "Communication"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryContent, CategoryAssessment, CategorySupport, CategoryCommunication}

// Metrics selects the post-processing figures reported alongside a result.
type Metrics string

const (
	MetricsNone      Metrics = ""
	MetricsWordCount Metrics = "word_count"
	MetricsRewrite   Metrics = "rewrite"
)

// SnapshotLimit is the truncation length for long text in history entries.
const SnapshotLimit = 100

// Tool is one prompt-templated generator. Tools are immutable once the
// registry is built and are safe to share between sessions.
type Tool struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	ResultTitle string   `json:"result_title"`
	Fields      []Field  `json:"fields"`

	// Local tools produce their result from the template alone.
	Local   bool    `json:"local"`
	Metrics Metrics `json:"metrics,omitempty"`

	snapshot []string
	variant  string
	sources  map[string]string
	enrich   func(r *Registry, v Values, data map[string]any, out *Rendered) error

	templates map[string]*template.Template
}

// Rendered is the output of template substitution.
type Rendered struct {
	Prompt      string              `json:"prompt"`
	Readability *readability.Params `json:"readability,omitempty"`
	Strategies  []string            `json:"strategies,omitempty"`
}

// SnapshotField is one entry of the input snapshot stored in history.
type SnapshotField struct {
	Name  string
	Value any
}

// Field returns the named field definition.
func (t *Tool) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields lists the names of fields that must be non-empty.
func (t *Tool) RequiredFields() []string {
	var names []string
	for _, f := range t.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Normalize validates req against the field table and returns the canonical
// values. Every missing required field and every rejected value is reported
// in a single *ValidationError.
func (t *Tool) Normalize(req Request) (Values, error) {
	verr := &ValidationError{Tool: t.Name}
	vals := make(Values, len(t.Fields))
	for _, f := range t.Fields {
		raw, present := req[f.Name]
		v, missing, reason := f.normalize(raw, present)
		switch {
		case missing:
			verr.Missing = append(verr.Missing, f.Name)
		case reason != "":
			verr.invalid(f.Name, reason)
		}
		vals[f.Name] = v
	}
	if !verr.empty() {
		return nil, verr
	}
	return vals, nil
}

// TitleFor returns the heading shown above a result.
func (t *Tool) TitleFor(v Values) string {
	if t.variant != "" {
		return "Generated " + v.String(t.variant)
	}
	return t.ResultTitle
}

// Snapshot returns the subset of inputs recorded in history, in the order
// the tool defines. Long text is truncated and lists are joined.
func (t *Tool) Snapshot(v Values) []SnapshotField {
	out := make([]SnapshotField, 0, len(t.snapshot))
	for _, name := range t.snapshot {
		f, _ := t.Field(name)
		var val any
		switch f.Kind {
		case KindList, KindMultiSelect:
			val = v.Joined(name)
		case KindNumber:
			val = v.Int(name)
		case KindToggle:
			val = v.Bool(name)
		default:
			val = truncate(v.String(name), f.SnapshotLimit)
		}
		out = append(out, SnapshotField{Name: name, Value: val})
	}
	return out
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

var templateFuncs = template.FuncMap{
	"join":  func(items []string) string { return strings.Join(items, ", ") },
	"lines": func(items []string) string { return strings.Join(items, "\n") },
	"lower": strings.ToLower,
}

func (t *Tool) parse() error {
	t.templates = make(map[string]*template.Template, len(t.sources))
	for key, src := range t.sources {
		name := t.Slug
		if key != "" {
			name += "/" + key
		}
		tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(src)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		t.templates[key] = tmpl
	}
	return nil
}

func (t *Tool) execute(data map[string]any) (string, error) {
	key := ""
	if t.variant != "" {
		key = asString(data[t.variant])
	}
	tmpl, ok := t.templates[key]
	if !ok {
		return "", fmt.Errorf("%s: no template for %q", t.Name, key)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		if strings.Contains(err.Error(), "map has no entry for key") {
			return "", fmt.Errorf("%s: %w: %v", t.Name, ErrUnresolvedPlaceholder, err)
		}
		return "", fmt.Errorf("%s: render prompt: %w", t.Name, err)
	}
	return tidy(b.String()), nil
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// tidy trims trailing space from every line and collapses runs of blank
// lines left behind by omitted clauses.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
