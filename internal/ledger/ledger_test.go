package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(time.Minute)
		return t
	}
}

func seeded(t *testing.T) *Ledger {
	t.Helper()
	l := New(WithClock(fixedClock(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))))
	l.Record("MCQ Generator", Inputs{
		{Name: "grade_level", Value: "Grade 5"},
		{Name: "num_questions", Value: 5},
		{Name: "topic", Value: "Fractions"},
	}, "1. What is 1/2 + 1/4?")
	l.Record("Text Rewriter", Inputs{
		{Name: "original_text", Value: strings.Repeat("a", 100) + "..."},
		{Name: "target_grade", Value: "Grade 3"},
		{Name: "maintain_length", Value: true},
	}, "Short text.\n\nSecond paragraph.")
	return l
}

func TestRecord_NewestFirst(t *testing.T) {
	l := seeded(t)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Text Rewriter", all[0].Tool)
	assert.Equal(t, "2026-10-18 09:31:00", all[0].Timestamp)
	assert.Equal(t, "MCQ Generator", all[1].Tool)
	assert.Equal(t, "2026-10-18 09:30:00", all[1].Timestamp)
	assert.Equal(t, 2, l.Len())
}

func TestRecent(t *testing.T) {
	l := New()
	for i := range 7 {
		l.Record(fmt.Sprintf("tool-%d", i), nil, "r")
	}

	tests := []struct {
		n    int
		want int
	}{
		{5, 5},
		{0, 0},
		{-1, 0},
		{7, 7},
		{100, 7},
	}
	for _, tt := range tests {
		got := l.Recent(tt.n)
		assert.Len(t, got, tt.want, "Recent(%d)", tt.n)
		assert.NotNil(t, got)
	}

	recent := l.Recent(2)
	assert.Equal(t, "tool-6", recent[0].Tool)
	assert.Equal(t, "tool-5", recent[1].Tool)
}

func TestRecent_ReturnsCopy(t *testing.T) {
	l := seeded(t)
	got := l.Recent(1)
	got[0].Tool = "mutated"
	got[0].Inputs[0].Value = "mutated"

	fresh := l.Recent(1)
	assert.Equal(t, "Text Rewriter", fresh[0].Tool)
	assert.NotEqual(t, "mutated", fresh[0].Inputs[0].Value)
}

func TestRecord_ConcurrentWriters(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Record(fmt.Sprintf("t%d", i), nil, "")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, l.Len())
}

func TestClear(t *testing.T) {
	l := seeded(t)
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.All())
}

func TestInputs_JSONKeepsOrder(t *testing.T) {
	in := Inputs{
		{Name: "zeta", Value: "z"},
		{Name: "alpha", Value: 3},
		{Name: "mid", Value: false},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"z","alpha":3,"mid":false}`, string(data))

	var back Inputs
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, in, back)

	v, ok := back.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestExport_JSON(t *testing.T) {
	l := seeded(t)
	var buf bytes.Buffer
	require.NoError(t, l.Export(&buf, FormatJSON))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"timestamp\": \"2026-10-18 09:31:00\""), out)
	assert.Less(t, strings.Index(out, `"grade_level"`), strings.Index(out, `"num_questions"`))
	assert.Less(t, strings.Index(out, `"num_questions"`), strings.Index(out, `"topic"`))
}

func TestExport_EmptyLedgerIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Export(&buf, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			l := seeded(t)
			var buf bytes.Buffer
			require.NoError(t, l.Export(&buf, f))

			got, err := Import(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, l.All(), got)
		})
	}
}

func TestImport_RejectsInvalidJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{{`},
		{"object instead of array", `{"tool":"x"}`},
		{"missing result", `[{"timestamp":"2026-10-18 09:30:00","tool":"x","inputs":{}}]`},
		{"bad timestamp", `[{"timestamp":"yesterday","tool":"x","inputs":{},"result":""}]`},
		{"empty tool", `[{"timestamp":"2026-10-18 09:30:00","tool":"","inputs":{},"result":""}]`},
		{"nested input", `[{"timestamp":"2026-10-18 09:30:00","tool":"x","inputs":{"a":{"b":1}},"result":""}]`},
		{"extra key", `[{"timestamp":"2026-10-18 09:30:00","tool":"x","inputs":{},"result":"","id":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tt.input), FormatJSON)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "got %v", err)
		})
	}
}

func TestImport_RejectsInvalidYAML(t *testing.T) {
	_, err := Import(strings.NewReader("- tool: x\n  timestamp: nope\n  result: ''\n"), FormatYAML)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 10, 18, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "ai_teaching_assistant_history_20261018_140509.json", ExportFilename(now, FormatJSON))
	assert.Equal(t, "ai_teaching_assistant_history_20261018_140509.yaml", ExportFilename(now, FormatYAML))
}
