package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/repo"
)

type clientRepo struct {
	data *Data
	log  *log.Helper
}

func NewClientRepo(data *Data, logger log.Logger) repo.ClientRepo {
	return &clientRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *clientRepo) ListClients(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.data.db.QueryContext(ctx, `SELECT id, name, logo_url FROM clients ORDER BY id`)
	if err != nil {
		return nil, upstreamErr(r.log, "list clients", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.LogoURL); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// CreateClient inserts the client and its first report atomically so a
// registered client is never observable without a report.
func (r *clientRepo) CreateClient(ctx context.Context, name string, first *domain.Report) (int, error) {
	tx, err := r.data.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, upstreamErr(r.log, "create client", err)
	}

	var clientID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO clients (name) VALUES ($1) RETURNING id`, name).Scan(&clientID)
	if err != nil {
		tx.Rollback()
		return 0, upstreamErr(r.log, "create client", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reports (client_id, period_label, period_type, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)`,
		clientID, first.PeriodLabel, first.PeriodType, first.StartDate, first.EndDate)
	if err != nil {
		tx.Rollback()
		return 0, upstreamErr(r.log, "create first report", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, upstreamErr(r.log, "create client", err)
	}
	return clientID, nil
}

func (r *clientRepo) DeleteClient(ctx context.Context, id int) error {
	res, err := r.data.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return upstreamErr(r.log, "delete client", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NotFound("CLIENT_NOT_FOUND", "client not found")
	}
	return nil
}
