package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Input is one recorded form value.
type Input struct {
	Name  string
	Value any
}

// Inputs is an ordered field→value mapping. It marshals as a JSON or YAML
// object whose keys keep insertion order.
type Inputs []Input

// Get returns the value recorded for name.
func (in Inputs) Get(name string) (any, bool) {
	for _, f := range in {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (in Inputs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range in {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (in *Inputs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("inputs: expected object, got %v", tok)
	}

	out := Inputs{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("inputs: expected key, got %v", tok)
		}
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("input %q: %w", name, err)
		}
		out = append(out, Input{Name: name, Value: scalar(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*in = out
	return nil
}

func (in Inputs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range in {
		var val yaml.Node
		if err := val.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("input %q: %w", f.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&val,
		)
	}
	return node, nil
}

func (in *Inputs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("inputs: expected mapping at line %d", node.Line)
	}
	out := make(Inputs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var val any
		if err := node.Content[i+1].Decode(&val); err != nil {
			return fmt.Errorf("input %q: %w", node.Content[i].Value, err)
		}
		out = append(out, Input{Name: node.Content[i].Value, Value: val})
	}
	*in = out
	return nil
}

// scalar turns decoded JSON numbers back into int where they are integral,
// which is how numeric inputs are recorded.
func scalar(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i)
	}
	f, _ := n.Float64()
	return f
}
