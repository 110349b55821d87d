// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package sentiment

import (
	"math"
	"testing"
)

func TestAnalyzer_Polarity(t *testing.T) {
	a := New()
	tests := []struct {
		text string
		want Polarity
	}{
		{"I love this video", Positive},
		{"This is the worst tutorial ever", Negative},
		{"not good at all", Negative},
		{"not bad", Positive},
		{"the video is 10 minutes long", Neutral},
		{"", Neutral},
		{"GREAT content, thanks!", Positive},
		{"what a waste of time", Negative},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := a.Polarity(tt.text); got != tt.want {
				t.Errorf("Polarity(%q) = %v (score %.3f), want %v", tt.text, got, a.Classify(tt.text), tt.want)
			}
		})
	}
}

func TestAnalyzer_ScoreBounds(t *testing.T) {
	a := New()
	texts := []string{
		"love love love love love love love love love love!!!!!!!!",
		"HATE HATE worst worst terrible awful garbage trash!!!!",
		"very very very very good",
	}
	for _, text := range texts {
		s := a.Classify(text)
		if s < -1 || s > 1 {
			t.Errorf("Classify(%q) = %f, outside [-1,1]", text, s)
		}
	}
}

func TestAnalyzer_Intensity(t *testing.T) {
	a := New()
	plain := a.Classify("good video")
	boosted := a.Classify("really good video")
	emphatic := a.Classify("good video!!!")
	shouted := a.Classify("GOOD video")

	if boosted <= plain {
		t.Errorf("booster should raise score: plain %f, boosted %f", plain, boosted)
	}
	if emphatic <= plain {
		t.Errorf("exclamation should raise score: plain %f, emphatic %f", plain, emphatic)
	}
	if shouted <= plain {
		t.Errorf("caps should raise score: plain %f, shouted %f", plain, shouted)
	}
}

func TestAnalyzer_Dampeners(t *testing.T) {
	a := New()
	tests := []struct {
		plain, damped string
	}{
		{"good", "barely good"},
		{"good video", "slightly good video"},
		{"bad", "somewhat bad"},
	}
	for _, tt := range tests {
		plain, damped := a.Classify(tt.plain), a.Classify(tt.damped)
		if plain == 0 || damped == 0 {
			t.Errorf("%q/%q scored 0, want polarized", tt.plain, tt.damped)
			continue
		}
		if math.Abs(damped) >= math.Abs(plain) {
			t.Errorf("|Classify(%q)| = %f, want below |Classify(%q)| = %f", tt.damped, damped, tt.plain, plain)
		}
		if (damped > 0) != (plain > 0) {
			t.Errorf("dampener flipped polarity: %q %f, %q %f", tt.plain, plain, tt.damped, damped)
		}
	}
	if good, barely := a.Classify("good"), a.Classify("barely good"); barely >= good {
		t.Errorf("Classify(barely good) = %f, want below Classify(good) = %f", barely, good)
	}
}

func TestAnalyzer_Blank(t *testing.T) {
	a := New()
	for _, text := range []string{"", "   ", "\n\t"} {
		if got := a.Classify(text); got != 0 {
			t.Errorf("Classify(%q) = %f, want 0", text, got)
		}
	}
}

func TestPolarityOf(t *testing.T) {
	tests := []struct {
		score float64
		want  Polarity
	}{
		{0.05, Positive},
		{0.049, Neutral},
		{-0.049, Neutral},
		{-0.05, Negative},
		{0, Neutral},
	}
	for _, tt := range tests {
		if got := PolarityOf(tt.score); got != tt.want {
			t.Errorf("PolarityOf(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
	if Positive.String() != "positive" || Negative.String() != "negative" || Neutral.String() != "neutral" {
		t.Error("unexpected Polarity strings")
	}
}
