// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func decode(t *testing.T, s string) Record {
	t.Helper()
	var r Record
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return r
}

const videoFixture = `{
	"videoId": "abc123",
	"title": {"runs": [{"text": "Funny "}, {"text": "Cats"}]},
	"lengthText": {"simpleText": "5:30"},
	"thumbnail": {"thumbnails": [{"url": "https://i.example/1.jpg"}, {"url": "https://i.example/2.jpg"}]},
	"viewCount": 1500,
	"badges": null,
	"isLive": false,
	"stringNumber": "42",
	"sections": [
		{"items": [{"id": "a"}, {"id": "b"}]},
		{"other": true},
		{"items": [{"id": "c"}, {"noid": 1}]}
	]
}`

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"a.b.c", "a.b.c", false},
		{"contents[0].videoRenderer", "contents[0].videoRenderer", false},
		{"contents[*].items[2]", "contents[*].items[2]", false},
		{"grid[1][2]", "grid[1][2]", false},
		{"", "", false},
		{"a..b", "", true},
		{"a[x]", "", true},
		{"a[-1]", "", true},
	}

	for _, tt := range tests {
		p, err := ParsePath(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePath(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePath(%q) error: %v", tt.in, err)
			continue
		}
		if got := p.String(); got != tt.want {
			t.Errorf("ParsePath(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetToleratesMissing(t *testing.T) {
	t.Parallel()

	rec := decode(t, videoFixture)

	absent := []string{
		"missing",
		"videoId.deeper",
		"title.runs[5].text",
		"thumbnail[0]",
		"badges",
		"sections[1].items[0]",
		"viewCount.value",
	}
	for _, p := range absent {
		if v, ok := Get(rec, MustPath(p)); ok {
			t.Errorf("Get(%q) = %v, want absent", p, v)
		}
	}

	if v, ok := Get(nil, MustPath("a.b")); ok {
		t.Errorf("Get on nil root = %v, want absent", v)
	}
}

func TestTypedAccessors(t *testing.T) {
	t.Parallel()

	rec := decode(t, videoFixture)

	if got := String(rec, MustPath("videoId"), ""); got != "abc123" {
		t.Errorf("String(videoId) = %q", got)
	}
	if got := String(rec, MustPath("viewCount"), "def"); got != "def" {
		t.Errorf("String on number = %q, want default", got)
	}
	if got := String(rec, MustPath("thumbnail.thumbnails[0].url"), ""); got != "https://i.example/1.jpg" {
		t.Errorf("thumbnail url = %q", got)
	}
	if got := len(Slice(rec, MustPath("sections"))); got != 3 {
		t.Errorf("Slice(sections) len = %d", got)
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	rec := decode(t, videoFixture)

	if got := Text(rec, MustPath("title")); got != "Funny Cats" {
		t.Errorf("Text(runs) = %q", got)
	}
	if got := Text(rec, MustPath("lengthText")); got != "5:30" {
		t.Errorf("Text(simpleText) = %q", got)
	}
	if got := Text(rec, MustPath("videoId")); got != "abc123" {
		t.Errorf("Text(bare string) = %q", got)
	}
	if got := Text(rec, MustPath("nothing")); got != "" {
		t.Errorf("Text(missing) = %q", got)
	}
	if got := FirstText(rec, MustPath("nothing"), MustPath("lengthText")); got != "5:30" {
		t.Errorf("FirstText = %q", got)
	}
}

func TestCollectWildcard(t *testing.T) {
	t.Parallel()

	rec := decode(t, videoFixture)

	got := Collect(rec, MustPath("sections[*].items[*].id"))
	if len(got) != 3 {
		t.Fatalf("Collect len = %d, want 3 (%v)", len(got), got)
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i] != want {
			t.Errorf("Collect[%d] = %v, want %s", i, got[i], want)
		}
	}

	if v, ok := First(rec, MustPath("sections[*].items[*].id")); !ok || v != "a" {
		t.Errorf("First = %v, %v", v, ok)
	}
	if _, ok := First(rec, MustPath("sections[*].missing")); ok {
		t.Error("First on absent path should report false")
	}

	if got := Collect(rec, MustPath("videoId[*]")); len(got) != 0 {
		t.Errorf("wildcard over non-array = %v", got)
	}
	if got := Collect(rec, MustPath("videoId")); len(got) != 1 {
		t.Errorf("Collect without wildcard = %v", got)
	}
}

func TestInitialData(t *testing.T) {
	t.Parallel()

	page := `<!DOCTYPE html><html><head>
<script>var other = {"x": 1};</script>
<script nonce="n">var ytInitialData = {"contents": {"a": [1, 2, {"b": "}"}]}};</script>
</head><body><p>ytInitialData in text is ignored</p></body></html>`

	data, err := InitialData(strings.NewReader(page))
	if err != nil {
		t.Fatalf("InitialData error: %v", err)
	}
	if got := String(data, MustPath("contents.a[2].b"), ""); got != "}" {
		t.Errorf("decoded value = %q", got)
	}
}

func TestInitialDataErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page string
		want error
	}{
		{"no script", `<html><body>nothing here</body></html>`, ErrNoInitialData},
		{"marker outside script", `<html><body>ytInitialData = {}</body></html>`, ErrNoInitialData},
		{"no braces", `<script>var ytInitialData = null;</script>`, ErrMalformedInitialData},
		{"broken json", `<script>var ytInitialData = {"a": ;</script>`, ErrMalformedInitialData},
		{"empty page", ``, ErrNoInitialData},
	}

	for _, tt := range tests {
		_, err := InitialDataBytes([]byte(tt.page))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}
