package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/domain"
)

// mockReportRepo serves a fixed report per client.
type mockReportRepo struct {
	report    *domain.Report
	updated   map[int]domain.StrategicFields
	idLookups int
}

func (m *mockReportRepo) FindCurrentByClient(ctx context.Context, clientID int) (*domain.Report, error) {
	if m.report == nil || m.report.ClientID != clientID {
		return nil, errors.NotFound("REPORT_NOT_FOUND", "client has no reports yet")
	}
	return m.report, nil
}

func (m *mockReportRepo) FindByID(ctx context.Context, id int) (*domain.Report, error) {
	m.idLookups++
	if m.report == nil || m.report.ID != id {
		return nil, errors.NotFound("REPORT_NOT_FOUND", "report not found")
	}
	return m.report, nil
}

func (m *mockReportRepo) UpdateStrategicFields(ctx context.Context, id int, f domain.StrategicFields) error {
	if m.report == nil || m.report.ID != id {
		return errors.NotFound("REPORT_NOT_FOUND", "report not found")
	}
	if m.updated == nil {
		m.updated = map[int]domain.StrategicFields{}
	}
	m.updated[id] = f
	return nil
}

// mockMentionRepo records the filter it was called with.
type mockMentionRepo struct {
	mentions  []domain.Mention
	lastID    int
	lastRange *domain.DateRange
	inserted  []*domain.Mention
}

func (m *mockMentionRepo) ListByReport(ctx context.Context, reportID int, dr *domain.DateRange) ([]domain.Mention, error) {
	m.lastID = reportID
	m.lastRange = dr
	return m.mentions, nil
}

func (m *mockMentionRepo) ListAll(ctx context.Context) ([]domain.Mention, error) {
	return m.mentions, nil
}

func (m *mockMentionRepo) InsertMention(ctx context.Context, mn *domain.Mention) (int, error) {
	m.inserted = append(m.inserted, mn)
	return len(m.inserted), nil
}

func (m *mockMentionRepo) UpdateMention(ctx context.Context, id int, mn *domain.Mention) error {
	return errors.NotFound("MENTION_NOT_FOUND", "mention not found")
}

func (m *mockMentionRepo) DeleteMention(ctx context.Context, id int) error {
	return errors.NotFound("MENTION_NOT_FOUND", "mention not found")
}

func annualReport() *domain.Report {
	return &domain.Report{
		ID:          7,
		ClientID:    3,
		ClientName:  "Acme Corp",
		PeriodLabel: "Annual Report 2025",
		PeriodType:  "annual",
		StartDate:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestReportUseCase_Assemble_NoReports(t *testing.T) {
	uc := NewReportUseCase(&mockReportRepo{}, &mockMentionRepo{}, nil, log.DefaultLogger)

	_, err := uc.Assemble(context.Background(), AssembleQuery{ClientID: 99})
	if !errors.IsNotFound(err) {
		t.Errorf("Assemble() error = %v, want NotFound", err)
	}
}

func TestReportUseCase_Assemble(t *testing.T) {
	mentions := []domain.Mention{
		{PublicationDate: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), Reach: 100, AVEValue: 10, Tier: domain.TierOne, Sentiment: domain.SentimentPositive},
		{PublicationDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), Reach: 50, AVEValue: 5, Sentiment: domain.SentimentNegative},
	}
	reports := &mockReportRepo{report: annualReport()}
	store := &mockMentionRepo{mentions: mentions}
	uc := NewReportUseCase(reports, store, nil, log.DefaultLogger)

	payload, err := uc.Assemble(context.Background(), AssembleQuery{ClientID: 3})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if store.lastID != 7 {
		t.Errorf("mentions fetched for report %d, want 7", store.lastID)
	}
	if store.lastRange != nil {
		t.Errorf("date filter = %+v, want none", store.lastRange)
	}
	if payload.KPIs.TotalImpacts != 2 || payload.KPIs.TotalReach != 150 || payload.KPIs.Tier1Count != 1 {
		t.Errorf("KPIs = %+v", payload.KPIs)
	}
	// Annual span buckets monthly.
	if len(payload.Trend.Labels) != 2 || payload.Trend.Labels[0] != "2025-01" || payload.Trend.Labels[1] != "2025-03" {
		t.Errorf("trend labels = %v, want [2025-01 2025-03]", payload.Trend.Labels)
	}
	if payload.Meta.PeriodLabel != "Annual Report 2025" {
		t.Errorf("period label = %q", payload.Meta.PeriodLabel)
	}
	if len(payload.News) != 2 {
		t.Errorf("news count = %d, want 2", len(payload.News))
	}
}

func TestReportUseCase_Assemble_CallerRange(t *testing.T) {
	mentions := []domain.Mention{
		{PublicationDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)},
	}
	store := &mockMentionRepo{mentions: mentions}
	uc := NewReportUseCase(&mockReportRepo{report: annualReport()}, store, nil, log.DefaultLogger)

	q := AssembleQuery{
		ClientID:      3,
		Start:         time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		LabelOverride: "June Snapshot",
	}
	payload, err := uc.Assemble(context.Background(), q)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if store.lastRange == nil || !store.lastRange.Start.Equal(q.Start) || !store.lastRange.End.Equal(q.End) {
		t.Errorf("date filter = %+v, want [%v, %v]", store.lastRange, q.Start, q.End)
	}
	// A 29-day caller span buckets daily even on an annual report.
	if len(payload.Trend.Labels) != 1 || payload.Trend.Labels[0] != "2025-06-03" {
		t.Errorf("trend labels = %v, want daily [2025-06-03]", payload.Trend.Labels)
	}
	if payload.Meta.PeriodLabel != "June Snapshot" {
		t.Errorf("period label = %q, want override", payload.Meta.PeriodLabel)
	}
}

func TestReportUseCase_UpdateMeta(t *testing.T) {
	reports := &mockReportRepo{report: annualReport()}
	uc := NewReportUseCase(reports, &mockMentionRepo{}, nil, log.DefaultLogger)

	fields := domain.StrategicFields{SwotStrengths: "brand recognition", Roadmap: "Q3 launch"}
	if err := uc.UpdateMeta(context.Background(), 7, fields); err != nil {
		t.Fatalf("UpdateMeta() error = %v", err)
	}
	if reports.idLookups != 1 {
		t.Errorf("by-id lookups = %d, want 1", reports.idLookups)
	}
	if got := reports.updated[7]; got != fields {
		t.Errorf("updated fields = %+v, want %+v", got, fields)
	}

	if err := uc.UpdateMeta(context.Background(), 404, fields); !errors.IsNotFound(err) {
		t.Errorf("UpdateMeta(unknown) error = %v, want NotFound", err)
	}
	if len(reports.updated) != 1 {
		t.Errorf("write attempted for unknown report: %v", reports.updated)
	}
}
