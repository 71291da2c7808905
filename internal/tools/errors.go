package tools

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTool is returned when a tool name or slug is not in the registry.
var ErrUnknownTool = errors.New("unknown tool")

// ErrUnresolvedPlaceholder indicates a template referenced a value that was
// never supplied.
var ErrUnresolvedPlaceholder = errors.New("prompt has unresolved placeholder")

// ValidationError reports request fields that are missing or unacceptable.
// It is raised before any generation call is attempted.
type ValidationError struct {
	Tool    string
	Missing []string
	Invalid map[string]string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		names := make([]string, 0, len(e.Invalid))
		for name := range e.Invalid {
			names = append(names, name)
		}
		sort.Strings(names)
		var inv []string
		for _, name := range names {
			inv = append(inv, fmt.Sprintf("%s (%s)", name, e.Invalid[name]))
		}
		parts = append(parts, "invalid fields: "+strings.Join(inv, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Tool, strings.Join(parts, "; "))
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

func (e *ValidationError) invalid(field, reason string) {
	if e.Invalid == nil {
		e.Invalid = make(map[string]string)
	}
	e.Invalid[field] = reason
}
