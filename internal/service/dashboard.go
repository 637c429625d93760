package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/usecase"
)

// DashboardService translates HTTP requests into use-case calls.
type DashboardService struct {
	ucReport  *usecase.ReportUseCase
	ucMention *usecase.MentionUseCase
	ucClient  *usecase.ClientUseCase
	log       *log.Helper
}

func NewDashboardService(ucReport *usecase.ReportUseCase, ucMention *usecase.MentionUseCase, ucClient *usecase.ClientUseCase, logger log.Logger) *DashboardService {
	return &DashboardService{
		ucReport:  ucReport,
		ucMention: ucMention,
		ucClient:  ucClient,
		log:       log.NewHelper(logger),
	}
}

// GetReport assembles the dashboard payload for a client's current report.
func (s *DashboardService) GetReport(ctx context.Context, req *GetReportRequest) (*ReportReply, error) {
	clientID, err := strconv.Atoi(req.ClientID)
	if err != nil || clientID <= 0 {
		return nil, errors.BadRequest("VALIDATION_FAILED", "clientId must be a positive integer")
	}

	q := usecase.AssembleQuery{ClientID: clientID, LabelOverride: req.Label}
	// A lone bound is ignored: the filter only applies when both are present.
	if req.Start != "" && req.End != "" {
		q.Start, q.End, err = parseDateRange(req.Start, req.End)
		if err != nil {
			return nil, err
		}
	}

	payload, err := s.ucReport.Assemble(ctx, q)
	if err != nil {
		return nil, err
	}

	news := make([]*MentionReply, 0, len(payload.News))
	for _, m := range payload.News {
		news = append(news, toMentionReply(m))
	}
	return &ReportReply{
		Meta: toReportMeta(payload.Meta),
		KPIs: KPIReply{
			TotalImpacts: payload.KPIs.TotalImpacts,
			TotalReach:   payload.KPIs.TotalReach,
			TotalAVE:     payload.KPIs.TotalAVE,
			Tier1Count:   payload.KPIs.Tier1Count,
		},
		SentimentCounts: SentimentReply{
			Positive: payload.KPIs.Sentiment.Positive,
			Neutral:  payload.KPIs.Sentiment.Neutral,
			Negative: payload.KPIs.Sentiment.Negative,
		},
		TrendData: TrendReply{
			Labels: payload.Trend.Labels,
			Values: payload.Trend.Values,
		},
		News: news,
	}, nil
}

// UpdateReportMeta replaces a report's strategic fields.
func (s *DashboardService) UpdateReportMeta(ctx context.Context, reportID int, req *UpdateReportMetaRequest) (*StatusReply, error) {
	fields := domain.StrategicFields{
		SwotStrengths:     req.SwotStrengths,
		SwotOpportunities: req.SwotOpportunities,
		SwotWeaknesses:    req.SwotWeaknesses,
		SwotThreats:       req.SwotThreats,
		Milestones:        req.Milestones,
		Roadmap:           req.Roadmap,
	}
	if err := s.ucReport.UpdateMeta(ctx, reportID, fields); err != nil {
		return nil, err
	}
	return &StatusReply{Message: "strategy updated"}, nil
}

// ListNews returns every mention for the admin table.
func (s *DashboardService) ListNews(ctx context.Context) ([]*MentionReply, error) {
	mentions, err := s.ucMention.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	replies := make([]*MentionReply, 0, len(mentions))
	for _, m := range mentions {
		replies = append(replies, toMentionReply(m))
	}
	return replies, nil
}

// CreateNews stores a new mention on the client's current report.
func (s *DashboardService) CreateNews(ctx context.Context, req *MentionRequest) (*CreateReply, error) {
	id, err := s.ucMention.Create(ctx, toMentionInput(req))
	if err != nil {
		return nil, err
	}
	return &CreateReply{ID: id, Message: "mention saved"}, nil
}

// UpdateNews replaces a mention's fields.
func (s *DashboardService) UpdateNews(ctx context.Context, id int, req *MentionRequest) (*StatusReply, error) {
	if err := s.ucMention.Update(ctx, id, toMentionInput(req)); err != nil {
		return nil, err
	}
	return &StatusReply{Message: "mention updated"}, nil
}

// DeleteNews removes a mention.
func (s *DashboardService) DeleteNews(ctx context.Context, id int) (*StatusReply, error) {
	if err := s.ucMention.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &StatusReply{Message: "mention deleted"}, nil
}

// ListClients returns every registered client.
func (s *DashboardService) ListClients(ctx context.Context) ([]*ClientReply, error) {
	clients, err := s.ucClient.List(ctx)
	if err != nil {
		return nil, err
	}
	replies := make([]*ClientReply, 0, len(clients))
	for _, c := range clients {
		replies = append(replies, &ClientReply{ID: c.ID, Name: c.Name, LogoURL: c.LogoURL})
	}
	return replies, nil
}

// CreateClient registers a client and its first annual report.
func (s *DashboardService) CreateClient(ctx context.Context, req *CreateClientRequest) (*CreateReply, error) {
	id, err := s.ucClient.Create(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &CreateReply{ID: id, Message: "client and first report created"}, nil
}

// DeleteClient removes a client and its cascade-owned data.
func (s *DashboardService) DeleteClient(ctx context.Context, id int) (*StatusReply, error) {
	if err := s.ucClient.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &StatusReply{Message: "client deleted"}, nil
}

// parseDateRange validates an explicit filter: parseable and not inverted.
func parseDateRange(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("INVALID_DATE_RANGE", "start must be an ISO-8601 date")
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("INVALID_DATE_RANGE", "end must be an ISO-8601 date")
	}
	if s.After(e) {
		return time.Time{}, time.Time{}, errors.BadRequest("INVALID_DATE_RANGE", "start is after end")
	}
	return s, e, nil
}
