// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"strings"
	"unicode"

	"github.com/tomtom215/vidrank/internal/extract"
	"github.com/tomtom215/vidrank/internal/models"
	"github.com/tomtom215/vidrank/internal/parse"
)

// Defaults for candidate fields missing from the raw record.
const (
	DefaultTitle     = "Unknown"
	DefaultChannel   = "Unknown"
	DefaultDuration  = "0:00"
	DefaultPublished = "Unknown"
)

// DefaultMinTermMatch is the fraction of query terms a candidate's title or
// description must contain.
const DefaultMinTermMatch = 0.5

// Normalizer maps raw search records to candidates.
type Normalizer struct {
	schema       Schema
	minTermMatch float64
}

// NewNormalizer returns a Normalizer. A minTermMatch of 0 requires at least
// one matching term; values above 1 are clamped.
func NewNormalizer(schema Schema, minTermMatch float64) *Normalizer {
	if minTermMatch < 0 {
		minTermMatch = 0
	}
	if minTermMatch > 1 {
		minTermMatch = 1
	}
	return &Normalizer{schema: schema, minTermMatch: minTermMatch}
}

// Normalize builds a Candidate from raw. It reports false when the record
// has no identifier.
func (n *Normalizer) Normalize(raw extract.Record) (models.Candidate, bool) {
	id := strings.TrimSpace(extract.String(raw, n.schema.ID, ""))
	if id == "" {
		return models.Candidate{}, false
	}

	durationText := orDefault(extract.FirstText(raw, n.schema.Duration...), DefaultDuration)
	return models.Candidate{
		ID:              id,
		Title:           orDefault(extract.FirstText(raw, n.schema.Title...), DefaultTitle),
		Description:     strings.TrimSpace(extract.FirstText(raw, n.schema.Description...)),
		Thumbnail:       extract.FirstText(raw, n.schema.Thumbnail...),
		DurationText:    durationText,
		DurationSeconds: parse.Duration(durationText),
		Channel:         orDefault(extract.FirstText(raw, n.schema.Channel...), DefaultChannel),
		PublishedText:   orDefault(extract.FirstText(raw, n.schema.Published...), DefaultPublished),
	}, true
}

// Relevant reports whether enough query terms occur in the candidate's
// title or description. Terms match as case-insensitive substrings, so "cat"
// matches "Cats". A query without terms matches everything.
func (n *Normalizer) Relevant(c models.Candidate, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	title := strings.ToLower(c.Title)
	description := strings.ToLower(c.Description)
	hits := 0
	for _, t := range terms {
		if strings.Contains(title, t) || strings.Contains(description, t) {
			hits++
		}
	}
	if n.minTermMatch == 0 {
		return hits > 0
	}
	return float64(hits)/float64(len(terms)) >= n.minTermMatch
}

// Terms splits s into distinct lowercase words in first-seen order.
func Terms(s string) []string {
	words := strings.FieldsFunc(strings.ToLower(s), isTermSeparator)
	seen := make(map[string]struct{}, len(words))
	terms := words[:0]
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		terms = append(terms, w)
	}
	return terms
}

// MatchFraction returns |terms ∩ words(text)| / |terms|, or 0 without terms.
func MatchFraction(terms []string, text string) float64 {
	if len(terms) == 0 || text == "" {
		return 0
	}
	fields := termSet(text)
	hits := 0
	for _, t := range terms {
		if _, ok := fields[t]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(terms))
}

func termSet(texts ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, text := range texts {
		for _, w := range strings.FieldsFunc(strings.ToLower(text), isTermSeparator) {
			set[w] = struct{}{}
		}
	}
	return set
}

func isTermSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
