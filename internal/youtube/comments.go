// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package youtube

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vidrank/internal/models"
)

// maxCommentPage is the largest maxResults the commentThreads endpoint accepts.
const maxCommentPage = 100

type commentThreadsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					TextOriginal string `json:"textOriginal"`
					TextDisplay  string `json:"textDisplay"`
					LikeCount    int64  `json:"likeCount"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

// Comments returns up to limit top-level comments ordered by relevance.
func (c *Client) Comments(ctx context.Context, id string, limit int) ([]models.Comment, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("youtube comments: %w", models.ErrNotConfigured)
	}
	if limit <= 0 || limit > maxCommentPage {
		limit = maxCommentPage
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("videoId", id)
	q.Set("maxResults", strconv.Itoa(limit))
	q.Set("order", "relevance")
	q.Set("textFormat", "plainText")
	q.Set("key", c.apiKey)

	body, err := c.get(ctx, OpComments, c.apiBaseURL+"/commentThreads?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp commentThreadsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("youtube comments: decode response: %w", err)
	}

	comments := make([]models.Comment, 0, len(resp.Items))
	for _, item := range resp.Items {
		s := item.Snippet.TopLevelComment.Snippet
		text := s.TextOriginal
		if text == "" {
			text = s.TextDisplay
		}
		if text == "" {
			continue
		}
		comments = append(comments, models.Comment{Text: text, Likes: s.LikeCount})
	}
	return comments, nil
}
