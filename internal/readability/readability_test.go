package readability

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestEstimate_KnownScores(t *testing.T) {
	tests := []struct {
		score     float64
		ease      float64
		syllables float64
		complex   float64
		sentence  float64
	}{
		{200, 100, 1.1386, 0.2649, 10.3517},
		{800, 62.32, 1.4159, 0.3342, 24.3654},
		{1600, 4.64, 1.5545, 0.3689, 69.6382},
		{5000, 0, 1.7824, 0.4, 55.2153},
	}

	for _, tt := range tests {
		p, err := Estimate(tt.score)
		if err != nil {
			t.Fatalf("Estimate(%v): unexpected error: %v", tt.score, err)
		}
		if !approx(p.ReadingEase, tt.ease, 1e-3) {
			t.Errorf("Estimate(%v).ReadingEase = %v, want %v", tt.score, p.ReadingEase, tt.ease)
		}
		if !approx(p.AvgSyllablesPerWord, tt.syllables, 1e-3) {
			t.Errorf("Estimate(%v).AvgSyllablesPerWord = %v, want %v", tt.score, p.AvgSyllablesPerWord, tt.syllables)
		}
		if !approx(p.ComplexWordFraction, tt.complex, 1e-3) {
			t.Errorf("Estimate(%v).ComplexWordFraction = %v, want %v", tt.score, p.ComplexWordFraction, tt.complex)
		}
		if !approx(p.AvgSentenceLength, tt.sentence, 1e-3) {
			t.Errorf("Estimate(%v).AvgSentenceLength = %v, want %v", tt.score, p.AvgSentenceLength, tt.sentence)
		}
		if p.InputScore != tt.score {
			t.Errorf("InputScore = %v, want %v", p.InputScore, tt.score)
		}
	}
}

func TestEstimate_BoundsAcrossDomain(t *testing.T) {
	for score := float64(MinScore); score <= MaxScore; score += ScoreStep {
		p, err := Estimate(score)
		if err != nil {
			t.Fatalf("Estimate(%v): %v", score, err)
		}
		if p.ReadingEase < 0 || p.ReadingEase > 100 {
			t.Errorf("Estimate(%v).ReadingEase = %v out of [0,100]", score, p.ReadingEase)
		}
		if p.ComplexWordFraction < 0 || p.ComplexWordFraction > 0.4 {
			t.Errorf("Estimate(%v).ComplexWordFraction = %v out of [0,0.4]", score, p.ComplexWordFraction)
		}
		if p.AvgSyllablesPerWord < 1 {
			t.Errorf("Estimate(%v).AvgSyllablesPerWord = %v, want >= 1", score, p.AvgSyllablesPerWord)
		}
	}
}

func TestEstimate_ComplexFractionNotFloored(t *testing.T) {
	p, err := Estimate(0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ComplexWordFraction >= 0 {
		t.Fatalf("expected negative complex fraction below score 1, got %v", p.ComplexWordFraction)
	}
}

func TestEstimate_DomainError(t *testing.T) {
	for _, score := range []float64{0, -100, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Estimate(score)
		if err == nil {
			t.Fatalf("Estimate(%v): expected error", score)
		}
		var de *DomainError
		if !errors.As(err, &de) {
			t.Fatalf("Estimate(%v): expected *DomainError, got %T", score, err)
		}
		if !errors.Is(err, ErrDomain) {
			t.Fatalf("Estimate(%v): expected errors.Is(err, ErrDomain)", score)
		}
	}
}

func TestParams_PromptLines(t *testing.T) {
	p, err := Estimate(DefaultScore)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.PromptLines()
	want := []string{
		"Reading Ease: 62.3",
		"Average syllables per word: 1.42",
		"Complex words percentage: 33.4%",
		"Average sentence length: 24.4 words",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
