package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/repo"
)

// ClientUseCase handles client registration and removal.
type ClientUseCase struct {
	clients repo.ClientRepo
	log     *log.Helper
}

// NewClientUseCase creates the client business logic instance.
func NewClientUseCase(clients repo.ClientRepo, logger log.Logger) *ClientUseCase {
	return &ClientUseCase{clients: clients, log: log.NewHelper(logger)}
}

// List returns every registered client.
func (uc *ClientUseCase) List(ctx context.Context) ([]*domain.Client, error) {
	return uc.clients.ListClients(ctx)
}

// Create registers a client together with its first report, an annual
// period spanning the current year.
func (uc *ClientUseCase) Create(ctx context.Context, name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, errors.BadRequest("VALIDATION_FAILED", "client name is required")
	}

	year := time.Now().Year()
	first := &domain.Report{
		PeriodLabel: fmt.Sprintf("Annual Report %d", year),
		PeriodType:  "annual",
		StartDate:   time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	return uc.clients.CreateClient(ctx, name, first)
}

// Delete removes a client; the store cascades to its reports and mentions.
func (uc *ClientUseCase) Delete(ctx context.Context, id int) error {
	return uc.clients.DeleteClient(ctx, id)
}
