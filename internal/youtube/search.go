// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package youtube

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tomtom215/vidrank/internal/extract"
	"github.com/tomtom215/vidrank/internal/models"
)

var (
	// searchSectionsPath must exist on any well-formed results page, even one
	// with zero hits.
	searchSectionsPath = extract.MustPath(
		"contents.twoColumnSearchResultsRenderer.primaryContents.sectionListRenderer.contents")

	// searchItemsPath selects every video result across all item sections.
	searchItemsPath = searchSectionsPath.Join(extract.MustPath("[*].itemSectionRenderer.contents[*].videoRenderer"))
)

// Search returns the raw videoRenderer records for query in page order.
func (c *Client) Search(ctx context.Context, query string) ([]extract.Record, error) {
	q := url.Values{}
	q.Set("search_query", query)
	q.Set("hl", c.language)

	body, err := c.get(ctx, OpSearch, c.baseURL+"/results?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstreamUnavailable, err)
	}

	data, err := extract.InitialDataBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstreamUnparseable, err)
	}
	return searchRecords(data)
}

func searchRecords(data extract.Record) ([]extract.Record, error) {
	if _, ok := extract.Get(data, searchSectionsPath); !ok {
		return nil, fmt.Errorf("%w: results page has no section list", models.ErrUpstreamUnparseable)
	}

	nodes := extract.Collect(data, searchItemsPath)
	records := make([]extract.Record, 0, len(nodes))
	for _, n := range nodes {
		if rec, ok := n.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Detail returns the ytInitialData object of the watch page for id.
func (c *Client) Detail(ctx context.Context, id string) (extract.Record, error) {
	q := url.Values{}
	q.Set("v", id)
	q.Set("hl", c.language)

	body, err := c.get(ctx, OpDetail, c.baseURL+"/watch?"+q.Encode())
	if err != nil {
		return nil, err
	}

	data, err := extract.InitialDataBytes(body)
	if err != nil {
		return nil, fmt.Errorf("youtube detail %s: %w", id, err)
	}
	return data, nil
}
