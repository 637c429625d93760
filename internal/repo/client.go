package repo

import (
	"context"

	"github.com/tolko/rp-reports/internal/domain"
)

// ClientRepo persists clients and their cascade-owned data.
type ClientRepo interface {
	// ListClients returns every registered client.
	ListClients(ctx context.Context) ([]*domain.Client, error)
	// CreateClient inserts a client together with its first report in one
	// transaction and returns the new client id.
	CreateClient(ctx context.Context, name string, first *domain.Report) (int, error)
	// DeleteClient removes a client and, by cascade, its reports and
	// mentions. Unknown ids yield NotFound.
	DeleteClient(ctx context.Context, id int) error
}
