package render

import (
	"strings"
	"testing"
)

func TestMarkdown_HTML(t *testing.T) {
	md := NewMarkdown()

	tests := []struct {
		name     string
		in       string
		contains []string
		excludes []string
	}{
		{
			name:     "heading and list",
			in:       "## Objectives\n\n- Identify producers\n- Explain photosynthesis\n",
			contains: []string{"<h2>Objectives</h2>", "<li>Identify producers</li>"},
		},
		{
			name:     "table",
			in:       "| Word | Meaning |\n|---|---|\n| habitat | home |\n",
			contains: []string{"<table>", "<td>habitat</td>"},
		},
		{
			name:     "raw html dropped",
			in:       "Hello <script>alert(1)</script>",
			excludes: []string{"<script>"},
		},
		{
			name:     "hard wraps",
			in:       "line one\nline two",
			contains: []string{"line one<br>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := md.HTML(tt.in)
			if err != nil {
				t.Fatalf("HTML: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("output contains %q:\n%s", bad, got)
				}
			}
		})
	}
}
