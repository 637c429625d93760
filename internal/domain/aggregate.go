package domain

// SentimentCounts is the breakdown of mentions by recognized sentiment.
type SentimentCounts struct {
	Positive int
	Neutral  int
	Negative int
}

// Classified returns how many mentions fell into one of the three
// recognized sentiment buckets.
func (s SentimentCounts) Classified() int {
	return s.Positive + s.Neutral + s.Negative
}

// KPISummary holds the derived metrics for one set of mentions.
type KPISummary struct {
	TotalImpacts int
	TotalReach   int64
	TotalAVE     float64
	Tier1Count   int
	Sentiment    SentimentCounts
}

// Aggregate folds a mention set into its KPI summary. It is pure and
// order-invariant; an empty input yields all-zero results. Mentions whose
// sentiment matches none of the recognized categories count toward
// TotalImpacts but toward no sentiment bucket.
func Aggregate(mentions []Mention) KPISummary {
	var sum KPISummary
	for _, m := range mentions {
		sum.TotalImpacts++
		sum.TotalReach += m.Reach
		sum.TotalAVE += m.AVEValue
		if m.Tier == TierOne {
			sum.Tier1Count++
		}
		switch m.Sentiment {
		case SentimentPositive:
			sum.Sentiment.Positive++
		case SentimentNeutral:
			sum.Sentiment.Neutral++
		case SentimentNegative:
			sum.Sentiment.Negative++
		}
	}
	return sum
}
