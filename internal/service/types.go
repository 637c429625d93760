package service

import (
	"time"

	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/usecase"
)

const dateLayout = "2006-01-02"

// GetReportRequest carries the raw dashboard query parameters.
type GetReportRequest struct {
	ClientID string `json:"clientId"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Label    string `json:"label"`
}

// ReportMeta mirrors the report row joined with its client.
type ReportMeta struct {
	ID                int    `json:"id"`
	ClientID          int    `json:"client_id"`
	ClientName        string `json:"client_name"`
	LogoURL           string `json:"logo_url"`
	PeriodLabel       string `json:"period_label"`
	PeriodType        string `json:"period_type"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	SwotStrengths     string `json:"swot_strengths"`
	SwotOpportunities string `json:"swot_opportunities"`
	SwotWeaknesses    string `json:"swot_weaknesses"`
	SwotThreats       string `json:"swot_threats"`
	Milestones        string `json:"milestones"`
	Roadmap           string `json:"roadmap"`
}

type KPIReply struct {
	TotalImpacts int     `json:"total_impacts"`
	TotalReach   int64   `json:"total_reach"`
	TotalAVE     float64 `json:"total_ave"`
	Tier1Count   int     `json:"tier1_count"`
}

type SentimentReply struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type TrendReply struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

type MentionReply struct {
	ID              int     `json:"id"`
	ReportID        int     `json:"report_id"`
	PublicationDate string  `json:"publication_date"`
	MediaName       string  `json:"media_name"`
	Reporter        string  `json:"reporter"`
	Title           string  `json:"title"`
	KeyMessage      string  `json:"key_message"`
	Reach           int64   `json:"reach"`
	AVEValue        float64 `json:"ave_value"`
	Tier            string  `json:"tier"`
	Sentiment       string  `json:"sentiment"`
	MediaType       string  `json:"media_type"`
}

// ReportReply is the assembled dashboard payload.
type ReportReply struct {
	Meta            ReportMeta      `json:"meta"`
	KPIs            KPIReply        `json:"kpis"`
	SentimentCounts SentimentReply  `json:"sentimentCounts"`
	TrendData       TrendReply      `json:"trendData"`
	News            []*MentionReply `json:"news"`
}

// MentionRequest carries mention fields as submitted by the admin form.
// Numeric fields arrive as strings so supplied non-numeric values can be
// rejected with a validation error.
type MentionRequest struct {
	ClientID        int    `json:"clientId"`
	PublicationDate string `json:"publication_date"`
	MediaName       string `json:"media_name"`
	Reporter        string `json:"reporter"`
	Title           string `json:"title"`
	KeyMessage      string `json:"key_message"`
	Reach           string `json:"reach"`
	AVEValue        string `json:"ave_value"`
	Tier            string `json:"tier"`
	Sentiment       string `json:"sentiment"`
	MediaType       string `json:"media_type"`
}

type UpdateReportMetaRequest struct {
	SwotStrengths     string `json:"swot_strengths"`
	SwotOpportunities string `json:"swot_opportunities"`
	SwotWeaknesses    string `json:"swot_weaknesses"`
	SwotThreats       string `json:"swot_threats"`
	Milestones        string `json:"milestones"`
	Roadmap           string `json:"roadmap"`
}

type CreateClientRequest struct {
	Name string `json:"name"`
}

type ClientReply struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

type CreateReply struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type StatusReply struct {
	Message string `json:"message"`
}

func toReportMeta(r *domain.Report) ReportMeta {
	return ReportMeta{
		ID:                r.ID,
		ClientID:          r.ClientID,
		ClientName:        r.ClientName,
		LogoURL:           r.LogoURL,
		PeriodLabel:       r.PeriodLabel,
		PeriodType:        r.PeriodType,
		StartDate:         formatDate(r.StartDate),
		EndDate:           formatDate(r.EndDate),
		SwotStrengths:     r.Strategic.SwotStrengths,
		SwotOpportunities: r.Strategic.SwotOpportunities,
		SwotWeaknesses:    r.Strategic.SwotWeaknesses,
		SwotThreats:       r.Strategic.SwotThreats,
		Milestones:        r.Strategic.Milestones,
		Roadmap:           r.Strategic.Roadmap,
	}
}

func toMentionReply(m domain.Mention) *MentionReply {
	return &MentionReply{
		ID:              m.ID,
		ReportID:        m.ReportID,
		PublicationDate: formatDate(m.PublicationDate),
		MediaName:       m.MediaName,
		Reporter:        m.Reporter,
		Title:           m.Title,
		KeyMessage:      m.KeyMessage,
		Reach:           m.Reach,
		AVEValue:        m.AVEValue,
		Tier:            m.Tier,
		Sentiment:       m.Sentiment,
		MediaType:       m.MediaType,
	}
}

func toMentionInput(req *MentionRequest) usecase.MentionInput {
	return usecase.MentionInput{
		ClientID:        req.ClientID,
		PublicationDate: req.PublicationDate,
		MediaName:       req.MediaName,
		Reporter:        req.Reporter,
		Title:           req.Title,
		KeyMessage:      req.KeyMessage,
		Reach:           req.Reach,
		AVEValue:        req.AVEValue,
		Tier:            req.Tier,
		Sentiment:       req.Sentiment,
		MediaType:       req.MediaType,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
