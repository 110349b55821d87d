// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

// Package sentiment scores short comment text with the VADER lexicon.
//
// Scores are VADER compound scores in [-1, 1]; values at or beyond
// ±Threshold count as positive or negative.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Threshold separates neutral text from polarized text.
const Threshold = 0.05

// Polarity is the classification of one text.
type Polarity int

const (
	Neutral Polarity = iota
	Positive
	Negative
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// PolarityOf classifies a compound score.
func PolarityOf(score float64) Polarity {
	switch {
	case score >= Threshold:
		return Positive
	case score <= -Threshold:
		return Negative
	default:
		return Neutral
	}
}

// Analyzer wraps a VADER analyzer. The lexicon is read-only after New, so
// one Analyzer serves concurrent callers.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// New loads the VADER lexicon.
func New() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Classify returns the compound score of text in [-1, 1]. Blank text scores 0.
func (a *Analyzer) Classify(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return a.vader.PolarityScores(text).Compound
}

// Polarity classifies text.
func (a *Analyzer) Polarity(text string) Polarity {
	return PolarityOf(a.Classify(text))
}
