package data

import (
	"context"
	"database/sql"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/repo"
)

type mentionRepo struct {
	data *Data
	log  *log.Helper
}

func NewMentionRepo(data *Data, logger log.Logger) repo.MentionRepo {
	return &mentionRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

const mentionColumns = `
	id, report_id, publication_date, media_name, reporter, title, key_message,
	reach, ave_value, tier, sentiment, media_type`

func (r *mentionRepo) ListByReport(ctx context.Context, reportID int, dr *domain.DateRange) ([]domain.Mention, error) {
	query := `SELECT ` + mentionColumns + ` FROM news_items WHERE report_id = $1`
	args := []any{reportID}
	if dr != nil {
		query += ` AND publication_date BETWEEN $2 AND $3`
		args = append(args, dr.Start, dr.End)
	}
	query += ` ORDER BY publication_date DESC`

	rows, err := r.data.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, upstreamErr(r.log, "list mentions by report", err)
	}
	defer rows.Close()
	return scanMentions(rows)
}

func (r *mentionRepo) ListAll(ctx context.Context) ([]domain.Mention, error) {
	rows, err := r.data.db.QueryContext(ctx,
		`SELECT `+mentionColumns+` FROM news_items ORDER BY publication_date DESC`)
	if err != nil {
		return nil, upstreamErr(r.log, "list all mentions", err)
	}
	defer rows.Close()
	return scanMentions(rows)
}

func (r *mentionRepo) InsertMention(ctx context.Context, m *domain.Mention) (int, error) {
	var id int
	err := r.data.db.QueryRowContext(ctx, `
		INSERT INTO news_items
			(report_id, publication_date, media_name, reporter, title, key_message,
			 reach, ave_value, tier, sentiment, media_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		m.ReportID, m.PublicationDate, m.MediaName, m.Reporter, m.Title, m.KeyMessage,
		m.Reach, m.AVEValue, m.Tier, m.Sentiment, m.MediaType).Scan(&id)
	if err != nil {
		return 0, upstreamErr(r.log, "insert mention", err)
	}
	return id, nil
}

func (r *mentionRepo) UpdateMention(ctx context.Context, id int, m *domain.Mention) error {
	res, err := r.data.db.ExecContext(ctx, `
		UPDATE news_items SET
			publication_date = $1, media_name = $2, reporter = $3, title = $4,
			key_message = $5, reach = $6, ave_value = $7, tier = $8,
			sentiment = $9, media_type = $10
		WHERE id = $11`,
		m.PublicationDate, m.MediaName, m.Reporter, m.Title,
		m.KeyMessage, m.Reach, m.AVEValue, m.Tier,
		m.Sentiment, m.MediaType, id)
	if err != nil {
		return upstreamErr(r.log, "update mention", err)
	}
	return notFoundOnZero(res, "MENTION_NOT_FOUND", "mention not found")
}

func (r *mentionRepo) DeleteMention(ctx context.Context, id int) error {
	res, err := r.data.db.ExecContext(ctx, `DELETE FROM news_items WHERE id = $1`, id)
	if err != nil {
		return upstreamErr(r.log, "delete mention", err)
	}
	return notFoundOnZero(res, "MENTION_NOT_FOUND", "mention not found")
}

// scanMentions reads rows with the numeric coercion applied in one
// place: NULL or negative reach/ave normalize to zero.
func scanMentions(rows *sql.Rows) ([]domain.Mention, error) {
	var mentions []domain.Mention
	for rows.Next() {
		var (
			m     domain.Mention
			reach sql.NullInt64
			ave   sql.NullFloat64
		)
		err := rows.Scan(
			&m.ID, &m.ReportID, &m.PublicationDate, &m.MediaName, &m.Reporter,
			&m.Title, &m.KeyMessage, &reach, &ave, &m.Tier, &m.Sentiment, &m.MediaType,
		)
		if err != nil {
			return nil, err
		}
		if reach.Valid && reach.Int64 > 0 {
			m.Reach = reach.Int64
		}
		if ave.Valid && ave.Float64 > 0 {
			m.AVEValue = ave.Float64
		}
		mentions = append(mentions, m)
	}
	return mentions, rows.Err()
}

func notFoundOnZero(res sql.Result, reason, msg string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NotFound(reason, msg)
	}
	return nil
}
