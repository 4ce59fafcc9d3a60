package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wheelix/internal"
	"wheelix/internal/apperr"
	"wheelix/internal/model"
)

type ReportRepository struct {
	*internal.Database
}

func NewReportRepository(database *internal.Database) *ReportRepository {
	return &ReportRepository{database}
}

const reportColumns = `id, user_id, car_id, reason, message, resolved, created_at`

func (repository *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	query := `INSERT INTO reports (id, user_id, car_id, reason, message)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING created_at`

	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	err := repository.DB.QueryRowxContext(ctx, query,
		report.ID, report.UserID, report.CarID, report.Reason, report.Message,
	).Scan(&report.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка вставки жалобы: %w", err)
	}

	return nil
}

func (repository *ReportRepository) FindAll(ctx context.Context) ([]model.Report, error) {
	reports := []model.Report{}

	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC`
	if err := repository.DB.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("ошибка выборки жалоб: %w", err)
	}

	return reports, nil
}

func (repository *ReportRepository) Update(ctx context.Context, id string, upd *model.UpdateReport) (*model.Report, error) {
	query := `UPDATE reports SET resolved = COALESCE($2, resolved)
			  WHERE id = $1
			  RETURNING ` + reportColumns

	var report model.Report
	err := repository.DB.QueryRowxContext(ctx, query, id, upd.Resolved).StructScan(&report)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления жалобы: %w", err)
	}

	return &report, nil
}
