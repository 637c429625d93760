package domain

import (
	"math"
	"sort"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
)

// DefaultMonthlyThresholdDays is the span above which the trend series
// switches from daily to monthly buckets.
const DefaultMonthlyThresholdDays = 40

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// TrendSeries is an ordered, labeled mention-count series. Labels[i]
// corresponds to Values[i]; labels ascend lexically, which equals
// chronological order for both label layouts.
type TrendSeries struct {
	Labels []string
	Values []int
}

// SpanDays returns the absolute span between two dates in whole days,
// rounded up.
func SpanDays(start, end time.Time) int {
	hours := math.Abs(end.Sub(start).Hours())
	return int(math.Ceil(hours / 24))
}

// Bucketize groups an already date-filtered mention set into a trend
// series. Spans longer than thresholdDays bucket by calendar month,
// shorter ones by calendar day. Buckets with zero mentions are not
// synthesized; use ZeroFilled for a continuous series.
func Bucketize(mentions []Mention, start, end time.Time, thresholdDays int) (TrendSeries, error) {
	if start.IsZero() || end.IsZero() {
		return TrendSeries{}, errors.BadRequest("INVALID_DATE_RANGE", "trend range is missing a valid start or end date")
	}
	if thresholdDays <= 0 {
		thresholdDays = DefaultMonthlyThresholdDays
	}

	layout := dayLayout
	if SpanDays(start, end) > thresholdDays {
		layout = monthLayout
	}

	counts := make(map[string]int, len(mentions))
	for _, m := range mentions {
		counts[m.PublicationDate.Format(layout)]++
	}

	series := TrendSeries{
		Labels: make([]string, 0, len(counts)),
		Values: make([]int, 0, len(counts)),
	}
	for label := range counts {
		series.Labels = append(series.Labels, label)
	}
	sort.Strings(series.Labels)
	for _, label := range series.Labels {
		series.Values = append(series.Values, counts[label])
	}
	return series, nil
}

// ZeroFilled returns a copy of the series with zero-count buckets
// inserted between the first and last label at the series' granularity.
// An empty series is returned unchanged.
func (s TrendSeries) ZeroFilled() TrendSeries {
	if len(s.Labels) < 2 {
		return s
	}

	layout := dayLayout
	step := func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	if len(s.Labels[0]) == len(monthLayout) {
		layout = monthLayout
		step = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	}

	first, err := time.Parse(layout, s.Labels[0])
	if err != nil {
		return s
	}
	last, err := time.Parse(layout, s.Labels[len(s.Labels)-1])
	if err != nil {
		return s
	}

	counts := make(map[string]int, len(s.Labels))
	for i, label := range s.Labels {
		counts[label] = s.Values[i]
	}

	var filled TrendSeries
	for t := first; !t.After(last); t = step(t) {
		label := t.Format(layout)
		filled.Labels = append(filled.Labels, label)
		filled.Values = append(filled.Values, counts[label])
	}
	return filled
}
