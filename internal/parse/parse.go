// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

// Package parse converts the display strings found in provider payloads
// ("1.2M views", "12:04", "3 weeks ago") into numbers and timestamps.
//
// Every function here is total: degenerate input yields a default value
// (0, or "now" for relative times) instead of an error. The caller ranks on
// best-effort values and never aborts a candidate over a cosmetic field.
package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// unitDurations gives the day-equivalent of each relative-time unit.
var unitDurations = map[string]time.Duration{
	"year":   365 * day,
	"month":  30 * day,
	"week":   7 * day,
	"day":    day,
	"hour":   time.Hour,
	"minute": time.Minute,
	"second": time.Second,
}

var relativeTimeRe = regexp.MustCompile(`(?i)(\d+)\s*(year|month|week|day|hour|minute|second)s?\s*ago`)

// RelativeTime resolves text such as "2 weeks ago" or "Streamed 3 days ago"
// against now. Input that does not contain "<n> <unit> ago" resolves to now.
func RelativeTime(s string, now time.Time) time.Time {
	m := relativeTimeRe.FindStringSubmatch(s)
	if m == nil {
		return now
	}
	unit := unitDurations[strings.ToLower(m[2])]

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > math.MaxInt64/int64(unit) {
		// Out of range magnitudes clamp to the oldest representable offset.
		n = math.MaxInt64 / int64(unit)
	}
	return now.Add(-time.Duration(n) * unit)
}

// Count parses abbreviated counts: "1,234 views" → 1234, "15K" → 15000,
// "1.2M views" → 1200000. Fractional parts are truncated after the suffix
// multiplier is applied. Anything unrecognised yields 0.
func Count(s string) int64 {
	fields := strings.Fields(strings.ReplaceAll(s, ",", ""))
	if len(fields) == 0 {
		return 0
	}
	num := fields[0]

	var mult int64 = 1
	switch num[len(num)-1] {
	case 'K', 'k':
		mult = 1_000
		num = num[:len(num)-1]
	case 'M', 'm':
		mult = 1_000_000
		num = num[:len(num)-1]
	}

	whole, frac, hasFrac := strings.Cut(num, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0
	}

	var w int64
	if whole != "" {
		v, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || v > math.MaxInt64/mult {
			return 0
		}
		w = v * mult
	}

	// Fraction digits are applied exactly so "1.2M" never lands on 1199999.
	var f int64
	scale := mult
	for i := 0; i < len(frac) && scale > 1; i++ {
		scale /= 10
		f += int64(frac[i]-'0') * scale
	}
	if w > math.MaxInt64-f {
		return 0
	}
	return w + f
}

// Duration converts "m:ss" or "h:mm:ss" into seconds. Any other shape yields 0.
func Duration(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0
	}

	total := 0
	for _, p := range parts {
		if p == "" || !allDigits(p) {
			return 0
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0
		}
		total = total*60 + v
	}
	return total
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
