package data

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/repo"
)

type reportRepo struct {
	data *Data
	log  *log.Helper
}

func NewReportRepo(data *Data, logger log.Logger) repo.ReportRepo {
	return &reportRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

const reportColumns = `
	r.id, r.client_id, r.period_label, r.period_type, r.start_date, r.end_date,
	r.swot_strengths, r.swot_opportunities, r.swot_weaknesses, r.swot_threats,
	r.milestones, r.roadmap, c.name, c.logo_url`

func (r *reportRepo) FindCurrentByClient(ctx context.Context, clientID int) (*domain.Report, error) {
	row := r.data.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports r
		JOIN clients c ON r.client_id = c.id
		WHERE r.client_id = $1
		ORDER BY r.id DESC
		LIMIT 1`, clientID)

	report, err := scanReport(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("REPORT_NOT_FOUND", "client has no reports yet")
	}
	if err != nil {
		return nil, upstreamErr(r.log, "find current report", err)
	}
	return report, nil
}

func (r *reportRepo) FindByID(ctx context.Context, id int) (*domain.Report, error) {
	row := r.data.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports r
		JOIN clients c ON r.client_id = c.id
		WHERE r.id = $1`, id)

	report, err := scanReport(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFound("REPORT_NOT_FOUND", "report not found")
	}
	if err != nil {
		return nil, upstreamErr(r.log, "find report by id", err)
	}
	return report, nil
}

func (r *reportRepo) UpdateStrategicFields(ctx context.Context, id int, f domain.StrategicFields) error {
	res, err := r.data.db.ExecContext(ctx, `
		UPDATE reports SET
			swot_strengths = $1, swot_opportunities = $2, swot_weaknesses = $3,
			swot_threats = $4, milestones = $5, roadmap = $6
		WHERE id = $7`,
		f.SwotStrengths, f.SwotOpportunities, f.SwotWeaknesses,
		f.SwotThreats, f.Milestones, f.Roadmap, id)
	if err != nil {
		return upstreamErr(r.log, "update strategic fields", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return upstreamErr(r.log, "update strategic fields", err)
	}
	if affected == 0 {
		return errors.NotFound("REPORT_NOT_FOUND", "report not found")
	}
	return nil
}

func scanReport(row *sql.Row) (*domain.Report, error) {
	var (
		report     domain.Report
		start, end sql.NullTime
	)
	err := row.Scan(
		&report.ID, &report.ClientID, &report.PeriodLabel, &report.PeriodType,
		&start, &end,
		&report.Strategic.SwotStrengths, &report.Strategic.SwotOpportunities,
		&report.Strategic.SwotWeaknesses, &report.Strategic.SwotThreats,
		&report.Strategic.Milestones, &report.Strategic.Roadmap,
		&report.ClientName, &report.LogoURL,
	)
	if err != nil {
		return nil, err
	}
	report.StartDate = start.Time
	report.EndDate = end.Time
	return &report, nil
}
