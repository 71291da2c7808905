package ledger

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a user-supplied name to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType is the MIME type for an export.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// ExportFilename is the download name for an export taken at now.
func ExportFilename(now time.Time, f Format) string {
	ext := "json"
	if f == FormatYAML {
		ext = "yaml"
	}
	return fmt.Sprintf("ai_teaching_assistant_history_%s.%s", now.Format("20060102_150405"), ext)
}

// Export writes every record, newest first.
func (l *Ledger) Export(w io.Writer, f Format) error {
	return Encode(w, l.All(), f)
}

// Encode writes records in the given format. JSON is indented by two spaces.
func Encode(w io.Writer, records []Record, f Format) error {
	if records == nil {
		records = []Record{}
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Import decodes an export. JSON input is validated against the history
// schema before decoding.
func Import(r io.Reader, f Format) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var records []Record
	switch f {
	case FormatJSON:
		if err := validateJSON(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
		for i, rec := range records {
			if err := rec.check(); err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func (r Record) check() error {
	if r.Tool == "" {
		return errors.New("tool is required")
	}
	if _, err := time.Parse(TimestampLayout, r.Timestamp); err != nil {
		return fmt.Errorf("invalid timestamp %q", r.Timestamp)
	}
	return nil
}

//go:embed history.schema.json
var historySchema []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(historySchema))
		if err != nil {
			compileErr = fmt.Errorf("parse history schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://history.json", doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile("schema://history.json")
	})
	return compiled, compileErr
}

// ValidationError reports an import that does not match the history schema.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("history does not match schema: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validateJSON(data []byte) error {
	sch, err := schema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := sch.Validate(inst); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
