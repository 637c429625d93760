package repo

import (
	"context"

	"github.com/tolko/rp-reports/internal/domain"
)

// ReportRepo resolves and mutates report records.
type ReportRepo interface {
	// FindCurrentByClient returns the client's most recent report (highest
	// id), joined with the client's name and logo. Clients with no report
	// yield NotFound.
	FindCurrentByClient(ctx context.Context, clientID int) (*domain.Report, error)
	// FindByID returns a specific report. Unknown ids yield NotFound.
	FindByID(ctx context.Context, id int) (*domain.Report, error)
	// UpdateStrategicFields replaces the report's qualitative text fields.
	// Unknown ids yield NotFound.
	UpdateStrategicFields(ctx context.Context, id int, f domain.StrategicFields) error
}
