// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// Wildcard matches every element of an array. Only Collect expands it; Get
// treats a path containing it as absent.
const Wildcard = -1

// Path is a sequence of accessors. Each element is a string (map key) or an
// int (array index, or Wildcard).
type Path []any

// Join appends another path.
func (p Path) Join(q Path) Path {
	out := make(Path, 0, len(p)+len(q))
	out = append(out, p...)
	return append(out, q...)
}

func (p Path) String() string {
	var b strings.Builder
	for _, el := range p {
		switch v := el.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(v)
		case int:
			if v == Wildcard {
				b.WriteString("[*]")
			} else {
				fmt.Fprintf(&b, "[%d]", v)
			}
		}
	}
	return b.String()
}

// ParsePath parses dotted notation with bracketed indices, e.g.
// "contents[0].itemSectionRenderer.contents[*].videoRenderer".
func ParsePath(s string) (Path, error) {
	var p Path
	if s == "" {
		return p, nil
	}
	for _, seg := range strings.Split(s, ".") {
		name, rest, _ := strings.Cut(seg, "[")
		if name == "" && rest == "" {
			return nil, fmt.Errorf("empty segment in path %q", s)
		}
		if name != "" {
			p = append(p, name)
		}
		if rest == "" {
			continue
		}
		// rest holds "0]" or "0][1]" or "*]".
		for _, idx := range strings.Split(strings.TrimSuffix(rest, "]"), "][") {
			if idx == "*" {
				p = append(p, Wildcard)
				continue
			}
			n, err := strconv.Atoi(idx)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid index %q in path %q", idx, s)
			}
			p = append(p, n)
		}
	}
	return p, nil
}

// MustPath is ParsePath for package-level path constants. It panics on a
// malformed literal.
func MustPath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}
