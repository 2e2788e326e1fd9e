package moderation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines moderation data access interface
type Repository interface {
	CreateReport(ctx context.Context, report *Report) error
	GetReportByID(ctx context.Context, id uuid.UUID) (*Report, error)
	ListReports(ctx context.Context, filter *ListReportsFilter) ([]*Report, error)
	ListReportsByReporter(ctx context.Context, reporterID uuid.UUID) ([]*Report, error)
	CountReports(ctx context.Context, filter *ListReportsFilter) (int, error)

	// UpdateReportStatus mutates status, assignee and resolution in a
	// single statement. Returns false when no report with the given id
	// exists. The write is last-write-wins: concurrent admins can
	// overwrite each other's resolution.
	UpdateReportStatus(ctx context.Context, id uuid.UUID, status ReportStatus, adminID uuid.UUID, resolution string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new moderation repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateReport(ctx context.Context, report *Report) error {
	query := `
		INSERT INTO reports (
			id, post_id, post_title, reporter_id, reporter_name,
			type, reason, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.PostID,
		report.PostTitle,
		report.ReporterID,
		report.ReporterName,
		report.Type,
		report.Reason,
		report.Status,
		report.CreatedAt,
	)
	return err
}

func (r *repository) GetReportByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	query := `SELECT * FROM reports WHERE id = $1`
	var report Report
	err := r.db.GetContext(ctx, &report, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *repository) ListReports(ctx context.Context, filter *ListReportsFilter) ([]*Report, error) {
	query := `
		SELECT * FROM reports
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter != nil && filter.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argPos)
		args = append(args, filter.Status)
		argPos++
	}

	// Moderation queues read newest first
	query += ` ORDER BY created_at DESC`

	limit := 50
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		if filter.Offset > 0 {
			offset = filter.Offset
		}
	}
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, offset)

	var reports []*Report
	err := r.db.SelectContext(ctx, &reports, query, args...)
	return reports, err
}

func (r *repository) ListReportsByReporter(ctx context.Context, reporterID uuid.UUID) ([]*Report, error) {
	query := `
		SELECT * FROM reports
		WHERE reporter_id = $1
		ORDER BY created_at DESC
	`
	var reports []*Report
	err := r.db.SelectContext(ctx, &reports, query, reporterID)
	return reports, err
}

func (r *repository) CountReports(ctx context.Context, filter *ListReportsFilter) (int, error) {
	query := `SELECT COUNT(*) FROM reports WHERE 1=1`
	args := []interface{}{}

	if filter != nil && filter.Status != "" {
		query += ` AND status = $1`
		args = append(args, filter.Status)
	}

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

func (r *repository) UpdateReportStatus(ctx context.Context, id uuid.UUID, status ReportStatus, adminID uuid.UUID, resolution string) (bool, error) {
	var resolvedAt sql.NullTime
	if status.IsTerminal() {
		resolvedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	query := `
		UPDATE reports
		SET status = $1, assigned_to = $2, resolution = $3, resolved_at = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		status,
		uuid.NullUUID{UUID: adminID, Valid: adminID != uuid.Nil},
		sql.NullString{String: resolution, Valid: resolution != ""},
		resolvedAt,
		id,
	)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
