// Package textstats holds the whitespace-token metrics reported next to
// generated text.
package textstats

import "strings"

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// PercentChange returns (rewritten-original)/original*100. When original is
// zero the change is undefined and (0, false) is returned.
func PercentChange(original, rewritten int) (float64, bool) {
	if original == 0 {
		return 0, false
	}
	return float64(rewritten-original) / float64(original) * 100, true
}

// Delta compares the length of a text before and after rewriting.
type Delta struct {
	OriginalWords int     `json:"original_words"`
	NewWords      int     `json:"new_words"`
	Percent       float64 `json:"percent_change"`
	Defined       bool    `json:"percent_defined"`
}

// Compare counts tokens in both texts and computes the percentage change.
func Compare(original, rewritten string) Delta {
	d := Delta{
		OriginalWords: WordCount(original),
		NewWords:      WordCount(rewritten),
	}
	d.Percent, d.Defined = PercentChange(d.OriginalWords, d.NewWords)
	return d
}
