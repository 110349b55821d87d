// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package cache

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// SearchKey identifies one cached search. Build it with NewSearchKey so
// equivalent queries share an entry.
type SearchKey struct {
	Query        string `json:"query"`
	UploadFilter string `json:"upload_filter"`
	SortBy       string `json:"sort_by"`
}

// NewSearchKey normalises the query (case, surrounding and repeated
// whitespace) and pairs it with the already-normalised filter and sort.
func NewSearchKey(query, uploadFilter, sortBy string) SearchKey {
	return SearchKey{
		Query:        strings.Join(strings.Fields(strings.ToLower(query)), " "),
		UploadFilter: uploadFilter,
		SortBy:       sortBy,
	}
}

// String returns a compact stable identifier for the key, suitable for
// log fields and request coalescing.
func (k SearchKey) String() string {
	return GenerateKey("search", k)
}

// GenerateKey hashes the JSON form of params under a method prefix.
func GenerateKey(method string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
