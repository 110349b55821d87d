// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import "github.com/tomtom215/vidrank/internal/extract"

// Schema lists where each field lives in provider records. Fields with
// several paths are tried in order; text paths accept both simpleText and
// runs nodes.
type Schema struct {
	// Candidate record, relative to one search item.
	ID          extract.Path
	Title       []extract.Path
	Description []extract.Path
	Thumbnail   []extract.Path
	Duration    []extract.Path
	Channel     []extract.Path
	Published   []extract.Path

	// Detail record. PrimaryInfo may contain wildcards and is resolved to
	// its first match; the remaining paths are relative to it.
	PrimaryInfo  extract.Path
	Views        []extract.Path
	Likes        []extract.Path
	RelativeDate []extract.Path
}

// YouTubeSchema returns the paths for ytInitialData results and watch pages.
func YouTubeSchema() Schema {
	p := extract.MustPath
	return Schema{
		ID:    p("videoId"),
		Title: []extract.Path{p("title"), p("headline")},
		Description: []extract.Path{
			p("detailedMetadataSnippets[0].snippetText"),
			p("descriptionSnippet"),
		},
		Thumbnail: []extract.Path{p("thumbnail.thumbnails[0].url")},
		Duration: []extract.Path{
			p("lengthText"),
			p("thumbnailOverlays[0].thumbnailOverlayTimeStatusRenderer.text"),
		},
		Channel:   []extract.Path{p("ownerText"), p("longBylineText"), p("shortBylineText")},
		Published: []extract.Path{p("publishedTimeText")},

		PrimaryInfo: p("contents.twoColumnWatchNextResults.results.results.contents[*].videoPrimaryInfoRenderer"),
		Views: []extract.Path{
			p("viewCount.videoViewCountRenderer.viewCount"),
			p("viewCount.videoViewCountRenderer.shortViewCount"),
		},
		Likes: []extract.Path{
			p("videoActions.menuRenderer.topLevelButtons[0].toggleButtonRenderer.defaultText"),
			p("videoActions.menuRenderer.topLevelButtons[0].segmentedLikeDislikeButtonViewModel.likeButtonViewModel.likeButtonViewModel.toggleButtonViewModel.toggleButtonViewModel.defaultButtonViewModel.buttonViewModel.title"),
			p("videoActions.menuRenderer.topLevelButtons[0].segmentedLikeDislikeButtonRenderer.likeButton.toggleButtonRenderer.defaultText"),
		},
		RelativeDate: []extract.Path{p("relativeDateText"), p("dateText")},
	}
}
