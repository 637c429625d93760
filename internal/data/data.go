package data

import (
	"context"
	"database/sql"
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"net"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/conf"
	_ "github.com/lib/pq"
)

// Data wraps the shared database handle. It is constructed once at
// process start and closed by the returned cleanup func.
type Data struct {
	db *sql.DB
}

func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	db, err := sql.Open(c.Database.Driver, c.Database.Source)
	if err != nil {
		return nil, nil, err
	}
	if c.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(int(c.Database.MaxOpenConns))
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to init schema: %w", err)
	}

	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		db.Close()
	}
	return &Data{db: db}, cleanup, nil
}

func initSchema(db *sql.DB) error {
	statements := []string{`
		CREATE TABLE IF NOT EXISTS clients (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			logo_url TEXT NOT NULL DEFAULT ''
		)`, `
		CREATE TABLE IF NOT EXISTS reports (
			id SERIAL PRIMARY KEY,
			client_id INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
			period_label TEXT NOT NULL DEFAULT '',
			period_type TEXT NOT NULL DEFAULT '',
			start_date DATE,
			end_date DATE,
			swot_strengths TEXT NOT NULL DEFAULT '',
			swot_opportunities TEXT NOT NULL DEFAULT '',
			swot_weaknesses TEXT NOT NULL DEFAULT '',
			swot_threats TEXT NOT NULL DEFAULT '',
			milestones TEXT NOT NULL DEFAULT '',
			roadmap TEXT NOT NULL DEFAULT ''
		)`, `
		CREATE TABLE IF NOT EXISTS news_items (
			id SERIAL PRIMARY KEY,
			report_id INTEGER NOT NULL REFERENCES reports(id) ON DELETE CASCADE,
			publication_date DATE NOT NULL,
			media_name TEXT NOT NULL DEFAULT '',
			reporter TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			key_message TEXT NOT NULL DEFAULT '',
			reach BIGINT NOT NULL DEFAULT 0,
			ave_value NUMERIC(14,2) NOT NULL DEFAULT 0,
			tier TEXT NOT NULL DEFAULT '',
			sentiment TEXT NOT NULL DEFAULT '',
			media_type TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// upstreamErr maps store connectivity failures to a retry-safe
// UPSTREAM_UNAVAILABLE; everything else passes through wrapped.
func upstreamErr(l *log.Helper, op string, err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) ||
		stderrors.Is(err, driver.ErrBadConn) ||
		stderrors.As(err, &netErr) {
		l.Errorf("%s: store unavailable: %v", op, err)
		return errors.ServiceUnavailable("UPSTREAM_UNAVAILABLE", "store unavailable")
	}
	return fmt.Errorf("%s: %w", op, err)
}
