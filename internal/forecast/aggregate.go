package forecast

import (
	"sort"
	"time"

	"aurora/pkg/domain"
)

// Series is one signal's weekly aggregated history plus the metadata needed
// for scoring: which sources reported it, in which regions, and the mean
// sentiment across observations.
type Series struct {
	Signal    string
	Points    []domain.SeriesPoint
	Sources   map[string]int
	Regions   []string
	Sentiment float64
}

// neutralSentiment is assumed when observations carry no sentiment at all.
const neutralSentiment = 0.5

// weekStart truncates t to the start of its ISO week (Monday, UTC).
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -weekday)
}

// Aggregate buckets raw signal points into weekly sums per signal and collects
// per-signal source/region/sentiment metadata. The result is sorted by signal
// name and each series is sorted by week.
func Aggregate(points []domain.SignalPoint) []Series {
	type acc struct {
		weeks        map[time.Time]float64
		sources      map[string]int
		regions      map[string]struct{}
		sentimentSum float64
		sentimentN   int
	}

	bySignal := make(map[string]*acc)
	for _, p := range points {
		a := bySignal[p.Signal]
		if a == nil {
			a = &acc{
				weeks:   make(map[time.Time]float64),
				sources: make(map[string]int),
				regions: make(map[string]struct{}),
			}
			bySignal[p.Signal] = a
		}

		a.weeks[weekStart(p.Timestamp)] += p.Count
		if p.Source != "" {
			a.sources[p.Source]++
		}
		if p.Region != "" {
			a.regions[p.Region] = struct{}{}
		}
		if p.Sentiment > 0 {
			a.sentimentSum += p.Sentiment
			a.sentimentN++
		}
	}

	out := make([]Series, 0, len(bySignal))
	for signal, a := range bySignal {
		series := Series{
			Signal:    signal,
			Points:    make([]domain.SeriesPoint, 0, len(a.weeks)),
			Sources:   a.sources,
			Regions:   make([]string, 0, len(a.regions)),
			Sentiment: neutralSentiment,
		}
		if a.sentimentN > 0 {
			series.Sentiment = a.sentimentSum / float64(a.sentimentN)
		}

		for week, value := range a.weeks {
			series.Points = append(series.Points, domain.SeriesPoint{Week: week, Value: value})
		}
		sort.Slice(series.Points, func(i, j int) bool {
			return series.Points[i].Week.Before(series.Points[j].Week)
		})

		for region := range a.regions {
			series.Regions = append(series.Regions, region)
		}
		sort.Strings(series.Regions)

		out = append(out, series)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Signal < out[j].Signal })

	return out
}

// Values returns just the weekly values of the series, oldest first.
func (s Series) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}

	return values
}
