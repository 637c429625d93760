package repo

import (
	"context"

	"github.com/tolko/rp-reports/internal/domain"
)

// MentionRepo persists news-item records.
type MentionRepo interface {
	// ListByReport returns the report's mentions ordered by publication
	// date descending, restricted to the inclusive range when non-nil.
	ListByReport(ctx context.Context, reportID int, dr *domain.DateRange) ([]domain.Mention, error)
	// ListAll returns every mention ordered by publication date descending.
	ListAll(ctx context.Context) ([]domain.Mention, error)
	// InsertMention stores a new mention and returns its id.
	InsertMention(ctx context.Context, m *domain.Mention) (int, error)
	// UpdateMention replaces a mention's fields. Unknown ids yield NotFound.
	UpdateMention(ctx context.Context, id int, m *domain.Mention) error
	// DeleteMention removes a mention. Unknown ids yield NotFound.
	DeleteMention(ctx context.Context, id int) error
}
