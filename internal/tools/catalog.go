package tools

import (
	"fmt"

	"github.com/abhisek/teachassist/internal/readability"
)

var (
	languages    = []string{"English", "Bahasa Melayu"}
	gradeBands   = []string{"Primary (1-3)", "Primary (4-6)", "Secondary (7-9)", "Secondary (10-12)"}
	gradeCollege = append(append([]string{}, gradeBands...), "College")
)

func catalog() []*Tool {
	var all []*Tool
	all = append(all, contentTools()...)
	all = append(all, assessmentTools()...)
	all = append(all, supportTools()...)
	all = append(all, communicationTools()...)
	return all
}

func textField(name, label, placeholder string) Field {
	return Field{Name: name, Label: label, Kind: KindText, Placeholder: placeholder}
}

func areaField(name, label, placeholder string) Field {
	return Field{Name: name, Label: label, Kind: KindTextArea, Placeholder: placeholder}
}

func listField(name, label, placeholder string) Field {
	return Field{Name: name, Label: label, Kind: KindList, Placeholder: placeholder}
}

func selectField(name, label string, options []string) Field {
	return Field{Name: name, Label: label, Kind: KindSelect, Options: options, Default: options[0]}
}

func multiField(name, label string, options, defaults []string) Field {
	f := Field{Name: name, Label: label, Kind: KindMultiSelect, Options: options}
	if defaults != nil {
		f.Default = defaults
	}
	return f
}

func numberField(name, label string, min, max, step, def int) Field {
	return Field{
		Name: name, Label: label, Kind: KindNumber,
		Min: float64(min), Max: float64(max), Step: float64(step), Default: def,
	}
}

func toggleField(name, label string, def bool) Field {
	return Field{Name: name, Label: label, Kind: KindToggle, Default: def}
}

func languageField() Field {
	return selectField("language", "Language", languages)
}

func required(f Field) Field {
	f.Required = true
	return f
}

func truncated(f Field) Field {
	f.SnapshotLimit = SnapshotLimit
	return f
}

// enrichReadability adds the reading metrics derived from lexile_score.
func enrichReadability(_ *Registry, v Values, data map[string]any, out *Rendered) error {
	p, err := readability.Estimate(float64(v.Int("lexile_score")))
	if err != nil {
		return err
	}
	data["metrics"] = p.PromptLines()
	out.Readability = &p
	return nil
}

// enrichBloom adds the question stems and response frames for bloom_level.
func enrichBloom(_ *Registry, v Values, data map[string]any, _ *Rendered) error {
	b, ok := LookupBloom(v.String("bloom_level"))
	if !ok {
		return fmt.Errorf("unknown Bloom level %q", v.String("bloom_level"))
	}
	data["question_stems"] = b.QuestionStems
	data["response_frames"] = b.ResponseFrames
	return nil
}

// enrichStrategies samples one strategy from every enabled lesson phase.
func enrichStrategies(r *Registry, v Values, data map[string]any, out *Rendered) error {
	var picked []string
	for _, category := range StrategyCategories {
		if !v.Bool(strategyToggle(category)) {
			continue
		}
		pool := Strategies[category]
		picked = append(picked, category+": "+pool[r.intN(len(pool))])
	}
	data["strategies"] = picked
	out.Strategies = picked
	return nil
}

func strategyToggle(category string) string {
	return "include_" + slugify(category)
}
