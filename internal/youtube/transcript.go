// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package youtube

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/tomtom215/vidrank/internal/models"
)

type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Lines   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Text  string `xml:",chardata"`
	} `xml:"text"`
}

// Transcript returns the caption segments for id in playback order. A video
// without captions yields models.ErrNotFound.
func (c *Client) Transcript(ctx context.Context, id string) ([]models.TranscriptSegment, error) {
	q := url.Values{}
	q.Set("v", id)
	q.Set("lang", c.language)

	body, err := c.get(ctx, OpTranscript, c.baseURL+"/api/timedtext?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("youtube transcript %s: %w", id, models.ErrNotFound)
	}
	return parseTimedText(body)
}

func parseTimedText(body []byte) ([]models.TranscriptSegment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("youtube transcript: decode xml: %w", err)
	}

	segments := make([]models.TranscriptSegment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		// Caption text arrives double escaped ("&amp;#39;"); xml decoding
		// removes one level.
		text := strings.Join(strings.Fields(html.UnescapeString(line.Text)), " ")
		if text == "" {
			continue
		}
		segments = append(segments, models.TranscriptSegment{
			Text:     text,
			Start:    seconds(line.Start),
			Duration: seconds(line.Dur),
		})
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("youtube transcript: %w", models.ErrNotFound)
	}
	return segments, nil
}

func seconds(s string) time.Duration {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}
