package domain

import "time"

// Report is one reporting period for a client. KPIs and the trend series
// are always derived from the mentions, never stored on the report.
type Report struct {
	ID          int
	ClientID    int
	PeriodLabel string
	PeriodType  string
	StartDate   time.Time
	EndDate     time.Time

	// Joined from the owning client.
	ClientName string
	LogoURL    string

	Strategic StrategicFields
}

// StrategicFields are the free-text qualitative fields editable on a report.
type StrategicFields struct {
	SwotStrengths     string
	SwotOpportunities string
	SwotWeaknesses    string
	SwotThreats       string
	Milestones        string
	Roadmap           string
}

// DateRange is an inclusive publication-date filter.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ReportPayload is the assembled dashboard response: report metadata, the
// derived KPIs and trend series, and the raw mention list, all computed
// over the same filtered mention set.
type ReportPayload struct {
	Meta  *Report
	KPIs  KPISummary
	Trend TrendSeries
	News  []Mention
}
