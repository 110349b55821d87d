// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/net/html"
)

// InitialDataMarker is the variable name the provider assigns its page state to.
const InitialDataMarker = "ytInitialData"

var (
	// ErrNoInitialData means the page has no script mentioning InitialDataMarker.
	ErrNoInitialData = errors.New("extract: page has no ytInitialData script")

	// ErrMalformedInitialData means the script was found but its object did not decode.
	ErrMalformedInitialData = errors.New("extract: ytInitialData is not valid JSON")
)

// InitialData scans an HTML document for the script element that assigns
// ytInitialData and decodes the object literal it holds. The object is taken
// from the first '{' to the last '}' of the script text, which tolerates the
// "var ytInitialData = {...};" and "window["ytInitialData"] = {...};" forms.
func InitialData(r io.Reader) (Record, error) {
	script, err := findScript(r, InitialDataMarker)
	if err != nil {
		return nil, err
	}
	return decodeObjectLiteral(script)
}

// InitialDataBytes is InitialData for an in-memory page.
func InitialDataBytes(page []byte) (Record, error) {
	return InitialData(bytes.NewReader(page))
}

func findScript(r io.Reader, marker string) (string, error) {
	z := html.NewTokenizer(r)
	inScript := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("extract: tokenize page: %w", err)
			}
			return "", ErrNoInitialData
		case html.StartTagToken:
			name, _ := z.TagName()
			inScript = string(name) == "script"
		case html.EndTagToken:
			inScript = false
		case html.TextToken:
			if !inScript {
				continue
			}
			if text := string(z.Text()); strings.Contains(text, marker) {
				return text, nil
			}
		}
	}
}

func decodeObjectLiteral(script string) (Record, error) {
	start := strings.IndexByte(script, '{')
	end := strings.LastIndexByte(script, '}')
	if start < 0 || end <= start {
		return nil, ErrMalformedInitialData
	}

	var data Record
	if err := json.Unmarshal([]byte(script[start:end+1]), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInitialData, err)
	}
	if data == nil {
		return nil, ErrMalformedInitialData
	}
	return data, nil
}
