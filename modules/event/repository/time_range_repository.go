package repository

import (
	"context"
	"database/sql"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/event/entity"

	"github.com/google/uuid"
)

type TimeRangeRepositoryInterface interface {
	Create(ctx context.Context, tr *entity.TimeRange) (*entity.TimeRange, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeRange, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.TimeRange, error)
}

type TimeRangeRepository struct {
	db database.IDatabase
}

func NewTimeRangeRepository(db database.IDatabase) *TimeRangeRepository {
	return &TimeRangeRepository{db: db}
}

func (r *TimeRangeRepository) Create(ctx context.Context, tr *entity.TimeRange) (*entity.TimeRange, error) {
	query := `
		INSERT INTO event_time_ranges (event_id, day_date, start_time, end_time)
		VALUES (:event_id, :day_date, :start_time, :end_time)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, tr)
	if err != nil {
		logger.Error("TimeRangeRepository:Create:Error:", err)
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&tr.ID); err != nil {
			logger.Error("TimeRangeRepository:Create:Scan:Error:", err)
			return nil, err
		}
	}
	return tr, nil
}

func (r *TimeRangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeRange, error) {
	query := `
		SELECT id, event_id, day_date, start_time, end_time, created_at
		FROM event_time_ranges WHERE id = $1
	`

	var tr entity.TimeRange
	err := r.db.GetContext(ctx, &tr, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TimeRangeRepository:GetByID:Error:", err)
		return nil, err
	}
	return &tr, nil
}

func (r *TimeRangeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM event_time_ranges WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("TimeRangeRepository:Delete:Error:", err)
		return err
	}
	return nil
}

func (r *TimeRangeRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.TimeRange, error) {
	query := `
		SELECT id, event_id, day_date, start_time, end_time, created_at
		FROM event_time_ranges WHERE event_id = $1
		ORDER BY start_time
	`

	ranges := []entity.TimeRange{}
	err := r.db.SelectContext(ctx, &ranges, query, eventID)
	if err != nil {
		logger.Error("TimeRangeRepository:ListByEvent:Error:", err)
		return nil, err
	}
	return ranges, nil
}
