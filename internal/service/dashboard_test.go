package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/usecase"
)

type stubReportRepo struct {
	report *domain.Report
}

func (s *stubReportRepo) FindCurrentByClient(ctx context.Context, clientID int) (*domain.Report, error) {
	if s.report == nil || s.report.ClientID != clientID {
		return nil, errors.NotFound("REPORT_NOT_FOUND", "client has no reports yet")
	}
	return s.report, nil
}

func (s *stubReportRepo) FindByID(ctx context.Context, id int) (*domain.Report, error) {
	if s.report == nil || s.report.ID != id {
		return nil, errors.NotFound("REPORT_NOT_FOUND", "report not found")
	}
	return s.report, nil
}

func (s *stubReportRepo) UpdateStrategicFields(ctx context.Context, id int, f domain.StrategicFields) error {
	return nil
}

type stubMentionRepo struct {
	lastRange *domain.DateRange
}

func (s *stubMentionRepo) ListByReport(ctx context.Context, reportID int, dr *domain.DateRange) ([]domain.Mention, error) {
	s.lastRange = dr
	return nil, nil
}

func (s *stubMentionRepo) ListAll(ctx context.Context) ([]domain.Mention, error) {
	return nil, nil
}

func (s *stubMentionRepo) InsertMention(ctx context.Context, m *domain.Mention) (int, error) {
	return 1, nil
}

func (s *stubMentionRepo) UpdateMention(ctx context.Context, id int, m *domain.Mention) error {
	return nil
}

func (s *stubMentionRepo) DeleteMention(ctx context.Context, id int) error {
	return nil
}

func newTestService(mentions *stubMentionRepo) *DashboardService {
	reports := &stubReportRepo{report: &domain.Report{
		ID:          1,
		ClientID:    1,
		PeriodLabel: "Annual Report 2025",
		PeriodType:  "annual",
		StartDate:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	}}
	uc := usecase.NewReportUseCase(reports, mentions, nil, log.DefaultLogger)
	return NewDashboardService(uc, nil, nil, log.DefaultLogger)
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    bool
	}{
		{"valid", "2025-01-01", "2025-03-31", false},
		{"unparseable start", "01/02/2025", "2025-03-31", true},
		{"unparseable end", "2025-01-01", "yesterday", true},
		{"inverted", "2025-03-31", "2025-01-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e, err := parseDateRange(tt.start, tt.end)
			if tt.wantErr {
				if !errors.IsBadRequest(err) || errors.Reason(err) != "INVALID_DATE_RANGE" {
					t.Errorf("parseDateRange() error = %v, want INVALID_DATE_RANGE", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDateRange() error = %v", err)
			}
			if s.After(e) {
				t.Errorf("parsed range inverted: %v..%v", s, e)
			}
		})
	}
}

// A single supplied bound is ignored rather than rejected: the payload is
// assembled without a date filter.
func TestGetReport_LoneBoundMeansNoFilter(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"start only", "2025-01-01", ""},
		{"end only", "", "2025-03-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mentions := &stubMentionRepo{}
			s := newTestService(mentions)

			_, err := s.GetReport(context.Background(), &GetReportRequest{
				ClientID: "1", Start: tt.start, End: tt.end,
			})
			if err != nil {
				t.Fatalf("GetReport() error = %v, want unfiltered payload", err)
			}
			if mentions.lastRange != nil {
				t.Errorf("date filter = %+v, want none", mentions.lastRange)
			}
		})
	}
}

func TestGetReport_BothBoundsApplyFilter(t *testing.T) {
	mentions := &stubMentionRepo{}
	s := newTestService(mentions)

	_, err := s.GetReport(context.Background(), &GetReportRequest{
		ClientID: "1", Start: "2025-01-01", End: "2025-03-31",
	})
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}
	if mentions.lastRange == nil {
		t.Fatal("date filter missing with both bounds supplied")
	}

	_, err = s.GetReport(context.Background(), &GetReportRequest{
		ClientID: "1", Start: "2025-03-31", End: "2025-01-01",
	})
	if !errors.IsBadRequest(err) || errors.Reason(err) != "INVALID_DATE_RANGE" {
		t.Errorf("GetReport(inverted) error = %v, want INVALID_DATE_RANGE", err)
	}
}

func TestGetReport_BadClientID(t *testing.T) {
	s := &DashboardService{}
	for _, clientID := range []string{"", "abc", "0", "-3"} {
		_, err := s.GetReport(context.Background(), &GetReportRequest{ClientID: clientID})
		if !errors.IsBadRequest(err) {
			t.Errorf("GetReport(clientId=%q) error = %v, want BadRequest", clientID, err)
		}
	}
}
