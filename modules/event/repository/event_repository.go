package repository

import (
	"context"
	"database/sql"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	List(ctx context.Context) ([]entity.Event, error)
	SetCurrentPhase(ctx context.Context, id uuid.UUID, phase int) error
}

type EventRepository struct {
	db database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, name, event_date, interview_duration_minutes, buffer_minutes,
	slots_per_time, phase_mode, current_phase, phase1_start, phase1_end,
	phase2_start, phase2_end, phase1_booking_limit, phase2_booking_limit,
	active, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (
			name, event_date, interview_duration_minutes, buffer_minutes,
			slots_per_time, phase_mode, current_phase, phase1_start, phase1_end,
			phase2_start, phase2_end, phase1_booking_limit, phase2_booking_limit, active
		) VALUES (
			:name, :event_date, :interview_duration_minutes, :buffer_minutes,
			:slots_per_time, :phase_mode, :current_phase, :phase1_start, :phase1_end,
			:phase2_start, :phase2_end, :phase1_booking_limit, :phase2_booking_limit, :active
		)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, event)
	if err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&event.ID); err != nil {
			logger.Error("EventRepository:Create:Scan:Error:", err)
			return nil, err
		}
	}
	return event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events SET
			name = :name,
			event_date = :event_date,
			interview_duration_minutes = :interview_duration_minutes,
			buffer_minutes = :buffer_minutes,
			slots_per_time = :slots_per_time,
			phase_mode = :phase_mode,
			current_phase = :current_phase,
			phase1_start = :phase1_start,
			phase1_end = :phase1_end,
			phase2_start = :phase2_start,
			phase2_end = :phase2_end,
			phase1_booking_limit = :phase1_booking_limit,
			phase2_booking_limit = :phase2_booking_limit,
			active = :active,
			updated_at = NOW()
		WHERE id = :id
	`

	_, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return err
	}
	return nil
}

func (r *EventRepository) List(ctx context.Context) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date DESC`

	events := []entity.Event{}
	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		logger.Error("EventRepository:List:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) SetCurrentPhase(ctx context.Context, id uuid.UUID, phase int) error {
	query := `UPDATE events SET current_phase = $2, updated_at = NOW() WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id, phase)
	if err != nil {
		logger.Error("EventRepository:SetCurrentPhase:Error:", err)
		return err
	}
	return nil
}
