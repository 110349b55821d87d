// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package extract

import "strings"

// Record is one decoded JSON object.
type Record = map[string]any

// Get walks path from root. ok is false when any step is missing or has
// the wrong type, or when the final value is JSON null.
func Get(root any, path Path) (any, bool) {
	cur := root
	for _, el := range path {
		switch k := el.(type) {
		case string:
			m, isMap := cur.(map[string]any)
			if !isMap {
				return nil, false
			}
			v, found := m[k]
			if !found {
				return nil, false
			}
			cur = v
		case int:
			arr, isArr := cur.([]any)
			if !isArr || k < 0 || k >= len(arr) {
				return nil, false
			}
			cur = arr[k]
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// Collect is Get with Wildcard expansion. Values are returned in document
// order; absent branches contribute nothing.
func Collect(root any, path Path) []any {
	var out []any
	collect(root, path, &out)
	return out
}

func collect(cur any, path Path, out *[]any) {
	for i, el := range path {
		if n, isInt := el.(int); isInt && n == Wildcard {
			arr, isArr := cur.([]any)
			if !isArr {
				return
			}
			for _, item := range arr {
				collect(item, path[i+1:], out)
			}
			return
		}
		next, ok := Get(cur, Path{el})
		if !ok {
			return
		}
		cur = next
	}
	if cur != nil {
		*out = append(*out, cur)
	}
}

// First returns the first value Collect would produce.
func First(root any, path Path) (any, bool) {
	if vals := Collect(root, path); len(vals) > 0 {
		return vals[0], true
	}
	return nil, false
}

// String returns the string at path, or def.
func String(root any, path Path, def string) string {
	v, ok := Get(root, path)
	if !ok {
		return def
	}
	s, isStr := v.(string)
	if !isStr {
		return def
	}
	return s
}

// Slice returns the array at path, or nil.
func Slice(root any, path Path) []any {
	v, ok := Get(root, path)
	if !ok {
		return nil
	}
	arr, _ := v.([]any)
	return arr
}

// Text reads a provider text node at path. Both {"simpleText": "..."} and
// {"runs": [{"text": "..."}, ...]} shapes are accepted; runs are concatenated.
// A bare string at path is returned as is. Absent text yields "".
func Text(root any, path Path) string {
	node, ok := Get(root, path)
	if !ok {
		return ""
	}
	if s, isStr := node.(string); isStr {
		return s
	}
	if s, found := Get(node, Path{"simpleText"}); found {
		if str, isStr := s.(string); isStr {
			return str
		}
	}
	var b strings.Builder
	for _, run := range Slice(node, Path{"runs"}) {
		b.WriteString(String(run, Path{"text"}, ""))
	}
	return b.String()
}

// FirstText returns the first non-empty Text among paths.
func FirstText(root any, paths ...Path) string {
	for _, p := range paths {
		if s := Text(root, p); s != "" {
			return s
		}
	}
	return ""
}
