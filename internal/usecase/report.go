package usecase

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/conf"
	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/repo"
)

// AssembleQuery selects the data for one dashboard view. Start and End
// restrict the mention set when both are set; LabelOverride replaces the
// report's stored period label in the response.
type AssembleQuery struct {
	ClientID      int
	Start         time.Time
	End           time.Time
	LabelOverride string
}

// ReportUseCase resolves a client's current report and assembles its
// dashboard payload.
type ReportUseCase struct {
	reports   repo.ReportRepo
	mentions  repo.MentionRepo
	threshold int
	log       *log.Helper
}

// NewReportUseCase creates the report business logic instance.
func NewReportUseCase(reports repo.ReportRepo, mentions repo.MentionRepo, c *conf.Report, logger log.Logger) *ReportUseCase {
	threshold := domain.DefaultMonthlyThresholdDays
	if c != nil && c.MonthlyThresholdDays > 0 {
		threshold = int(c.MonthlyThresholdDays)
	}
	return &ReportUseCase{
		reports:   reports,
		mentions:  mentions,
		threshold: threshold,
		log:       log.NewHelper(logger),
	}
}

// Assemble resolves the client's current report, fetches its mentions
// under the optional date filter, and derives KPIs, sentiment counts and
// the trend series from that same set. A client with no report yields
// NotFound.
func (uc *ReportUseCase) Assemble(ctx context.Context, q AssembleQuery) (*domain.ReportPayload, error) {
	report, err := uc.reports.FindCurrentByClient(ctx, q.ClientID)
	if err != nil {
		return nil, err
	}

	var dr *domain.DateRange
	if !q.Start.IsZero() && !q.End.IsZero() {
		dr = &domain.DateRange{Start: q.Start, End: q.End}
	}
	mentions, err := uc.mentions.ListByReport(ctx, report.ID, dr)
	if err != nil {
		return nil, err
	}

	kpis := domain.Aggregate(mentions)
	if gap := kpis.TotalImpacts - kpis.Sentiment.Classified(); gap > 0 {
		uc.log.Warnf("report %d: %d mentions carry an unrecognized sentiment and appear in no sentiment bucket", report.ID, gap)
	}

	// Effective span: caller dates when both are present, otherwise the
	// report's own period.
	start, end := report.StartDate, report.EndDate
	if dr != nil {
		start, end = dr.Start, dr.End
	}
	trend, err := domain.Bucketize(mentions, start, end, uc.threshold)
	if err != nil {
		return nil, err
	}

	meta := *report
	if q.LabelOverride != "" {
		meta.PeriodLabel = q.LabelOverride
	}

	return &domain.ReportPayload{
		Meta:  &meta,
		KPIs:  kpis,
		Trend: trend,
		News:  mentions,
	}, nil
}

// UpdateMeta replaces the strategic text fields on a specific report,
// resolving it by id first so an unknown report surfaces as NotFound
// before any write is attempted.
func (uc *ReportUseCase) UpdateMeta(ctx context.Context, reportID int, f domain.StrategicFields) error {
	if _, err := uc.reports.FindByID(ctx, reportID); err != nil {
		return err
	}
	return uc.reports.UpdateStrategicFields(ctx, reportID, f)
}
