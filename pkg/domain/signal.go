package domain

import "time"

// SignalPoint is a single raw observation of a trend signal: how often a
// feature (a color, a pattern, a keyword) was seen at a point in time by one
// source in one region. Crawlers produce these; the forecast pipeline
// aggregates them into weekly series.
type SignalPoint struct {
	// Timestamp is when the observation was made.
	Timestamp time.Time `json:"timestamp"`
	// Signal is the feature being tracked, e.g. "color_lavender" or "keyword_y2k".
	Signal string `json:"signal"`
	// Count is the raw occurrence count for the observation window.
	Count float64 `json:"count"`
	// Source identifies where the observation came from (crawler, feed, ...).
	Source string `json:"source"`
	// Region is the market the observation belongs to.
	Region string `json:"region"`
	// Sentiment is an optional sentiment score in [0,1]; 0.5 means neutral.
	Sentiment float64 `json:"sentiment"`
}

// SeriesPoint is one bucket of an aggregated weekly signal series.
type SeriesPoint struct {
	Week  time.Time `json:"week"`
	Value float64   `json:"value"`
}
