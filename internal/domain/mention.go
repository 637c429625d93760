package domain

import "time"

// Categorical values recognized by the aggregation engine. Mentions may
// carry other values; those are stored as-is and excluded from the
// sentiment breakdown.
const (
	TierOne = "Tier 1"

	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Mention is one recorded media item referencing a client. It belongs to
// exactly one report for its lifetime.
type Mention struct {
	ID              int
	ReportID        int
	PublicationDate time.Time
	MediaName       string
	Reporter        string
	Title           string
	KeyMessage      string
	Reach           int64
	AVEValue        float64
	Tier            string
	Sentiment       string
	MediaType       string
}
