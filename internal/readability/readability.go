// Package readability converts a target Lexile score into the text-complexity
// metrics that are fed to the Text Generator prompt.
package readability

import (
	"errors"
	"fmt"
	"math"
)

// Documented slider domain for a Lexile target. Scores outside this range are
// accepted; only non-positive scores are rejected.
const (
	MinScore     = 200
	MaxScore     = 1600
	ScoreStep    = 50
	DefaultScore = 800
)

// Fixed approximation coefficients.
const (
	easeSlope       = -0.0721
	easeIntercept   = 120.0
	syllableScale   = 0.2
	syllableBase    = 100.0
	complexScale    = 0.05
	maxComplex      = 0.4
	fleschConstant  = 206.835
	fleschSyllables = 84.6
	fleschSentence  = 1.015
)

// ErrDomain is the sentinel wrapped by every DomainError.
var ErrDomain = errors.New("readability: score outside logarithm domain")

// DomainError reports a score for which the logarithmic terms are undefined.
type DomainError struct {
	Score float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("readability: score must be a positive finite number, got %v", e.Score)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// Params holds the derived metrics for one score.
type Params struct {
	InputScore          float64 `json:"input_score"`
	ReadingEase         float64 `json:"reading_ease"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
	ComplexWordFraction float64 `json:"complex_word_fraction"`
	AvgSentenceLength   float64 `json:"avg_sentence_length"`
}

// Estimate derives the four readability metrics for score.
//
// ReadingEase is clamped to [0, 100]. ComplexWordFraction is capped at 0.4
// but not floored, so scores below e^0 produce a negative fraction.
// AvgSentenceLength is left unclamped.
func Estimate(score float64) (Params, error) {
	if score <= 0 || math.IsNaN(score) || math.IsInf(score, 0) {
		return Params{}, &DomainError{Score: score}
	}

	ease := clamp(easeSlope*score+easeIntercept, 0, 100)
	syllables := 1 + syllableScale*math.Log(score/syllableBase)
	complexFrac := math.Min(complexScale*math.Log(score), maxComplex)
	sentence := (fleschConstant - ease - fleschSyllables*syllables) / fleschSentence

	return Params{
		InputScore:          score,
		ReadingEase:         ease,
		AvgSyllablesPerWord: syllables,
		ComplexWordFraction: complexFrac,
		AvgSentenceLength:   sentence,
	}, nil
}

// PromptLines renders the metrics the way the generation prompt lists them.
func (p Params) PromptLines() []string {
	return []string{
		fmt.Sprintf("Reading Ease: %.1f", p.ReadingEase),
		fmt.Sprintf("Average syllables per word: %.2f", p.AvgSyllablesPerWord),
		fmt.Sprintf("Complex words percentage: %.1f%%", p.ComplexWordFraction*100),
		fmt.Sprintf("Average sentence length: %.1f words", p.AvgSentenceLength),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
