package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialgram/internal/models"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create вставляет жалобу, один пользователь - одна жалоба на пост
func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	report.ReportID = uuid.New().String()
	report.Status = models.ReportStatusPending
	report.CreatedAt = time.Now()

	query := `
		INSERT INTO reports (report_id, reporter_id, post_id, reason, status, created_at)
		VALUES (:report_id, :reporter_id, :post_id, :reason, :status, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, report)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return models.NewDuplicateError("жалоба на этот пост уже подана")
		}
		return fmt.Errorf("ошибка при создании жалобы: %w", err)
	}

	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, reportID string) (*models.Report, error) {
	var report models.Report

	query := `SELECT * FROM reports WHERE report_id = $1`

	err := r.db.GetContext(ctx, &report, query, reportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError(fmt.Sprintf("жалоба с ID %s не найдена", reportID))
		}
		return nil, fmt.Errorf("ошибка при получении жалобы: %w", err)
	}

	return &report, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, reportID, status string) error {
	query := `UPDATE reports SET status = $1 WHERE report_id = $2`

	result, err := r.db.ExecContext(ctx, query, status, reportID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса жалобы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewNotFoundError(fmt.Sprintf("жалоба с ID %s не найдена", reportID))
	}

	return nil
}

// ListPendingByPost возвращает нерассмотренные жалобы в порядке подачи
func (r *reportRepository) ListPendingByPost(ctx context.Context, postID string) ([]models.Report, error) {
	query := `
		SELECT * FROM reports
		WHERE post_id = $1 AND status = $2
		ORDER BY created_at
	`

	var reports []models.Report
	err := r.db.SelectContext(ctx, &reports, query, postID, models.ReportStatusPending)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении жалоб: %w", err)
	}

	return reports, nil
}

// HasActionTaken проверяет, была ли хоть одна жалоба на пост доведена до action_taken
func (r *reportRepository) HasActionTaken(ctx context.Context, postID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reports
			WHERE post_id = $1 AND status = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, postID, models.ReportStatusActionTaken)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке статуса жалоб: %w", err)
	}

	return exists, nil
}

func (r *reportRepository) ListAll(ctx context.Context) ([]models.Report, error) {
	query := `SELECT * FROM reports ORDER BY created_at DESC`

	var reports []models.Report
	err := r.db.SelectContext(ctx, &reports, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка жалоб: %w", err)
	}

	return reports, nil
}
