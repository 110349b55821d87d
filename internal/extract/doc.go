// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package extract reads typed values out of loosely structured, decoded JSON.

Provider payloads are deeply nested maps and arrays whose shape changes
without notice. Rather than decoding them into structs, callers describe the
location of a value as a Path and ask for it with a default:

	title := extract.String(rec, extract.MustPath("title.runs[0].text"), "Unknown")
	views := extract.Text(detail, extract.MustPath("viewCount.videoViewCountRenderer.viewCount"))

A missing key, an out-of-range index or an intermediate node of the wrong
type never produces an error. Get reports it as absent (ok == false) and the
typed helpers return their default. This is the normal case for partially
populated records, not an exceptional one.

Paths support a wildcard index ("contents[*]") through Collect, which fans
out over every element of an array and gathers the values found beneath.

InitialData locates the embedded ytInitialData object inside an HTML page
and decodes it into the map form that the other helpers operate on.
*/
package extract
