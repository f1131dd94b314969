package repository

import (
	"context"
	"database/sql"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/event/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SlotRepositoryInterface interface {
	ListByEventWithCounts(ctx context.Context, eventID uuid.UUID) ([]entity.SlotWithCount, error)
	ApplyRegenerationPlan(ctx context.Context, reactivate, deactivate, deleteIDs []uuid.UUID, create []entity.Slot) error
	ReportByCompany(ctx context.Context, eventID uuid.UUID) ([]entity.CompanyReportRow, error)
}

type SlotRepository struct {
	db database.IDatabase
}

func NewSlotRepository(db database.IDatabase) *SlotRepository {
	return &SlotRepository{db: db}
}

// ListByEventWithCounts returns every slot of the event, including inactive
// ones, with its confirmed booking count. The regeneration planner needs the
// full picture, not just what students can see.
func (r *SlotRepository) ListByEventWithCounts(ctx context.Context, eventID uuid.UUID) ([]entity.SlotWithCount, error) {
	query := `
		SELECT s.id, s.event_id, s.company_id, s.slot_time, s.duration_minutes,
		       s.capacity, s.active, s.created_at,
		       COUNT(b.id) FILTER (WHERE b.status = 'confirmed') AS booked_count
		FROM slots s
		LEFT JOIN bookings b ON b.slot_id = s.id
		WHERE s.event_id = $1
		GROUP BY s.id
		ORDER BY s.slot_time, s.company_id
	`

	slots := []entity.SlotWithCount{}
	err := r.db.SelectContext(ctx, &slots, query, eventID)
	if err != nil {
		logger.Error("SlotRepository:ListByEventWithCounts:Error:", err)
		return nil, err
	}
	return slots, nil
}

// ApplyRegenerationPlan executes a regeneration diff in a single transaction,
// so concurrent readers never observe a half-regenerated slot set.
func (r *SlotRepository) ApplyRegenerationPlan(ctx context.Context, reactivate, deactivate, deleteIDs []uuid.UUID, create []entity.Slot) error {
	err := r.db.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := execOnIDs(ctx, tx, `UPDATE slots SET active = TRUE WHERE id IN (?)`, reactivate); err != nil {
			return err
		}
		if err := execOnIDs(ctx, tx, `UPDATE slots SET active = FALSE WHERE id IN (?)`, deactivate); err != nil {
			return err
		}
		if err := execOnIDs(ctx, tx, `DELETE FROM slots WHERE id IN (?)`, deleteIDs); err != nil {
			return err
		}

		for i := range create {
			_, err := tx.NamedExecContext(ctx, `
				INSERT INTO slots (event_id, company_id, slot_time, duration_minutes, capacity, active)
				VALUES (:event_id, :company_id, :slot_time, :duration_minutes, :capacity, :active)
			`, &create[i])
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("SlotRepository:ApplyRegenerationPlan:Error:", err)
		return err
	}
	return nil
}

func execOnIDs(ctx context.Context, tx *sqlx.Tx, query string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(q), args...)
	return err
}

func (r *SlotRepository) ReportByCompany(ctx context.Context, eventID uuid.UUID) ([]entity.CompanyReportRow, error) {
	// Slots and bookings are aggregated separately; summing capacity over a
	// joined row set would multiply it by the booking rows.
	query := `
		SELECT sc.company_id, c.name AS company_name,
		       sc.slot_count, sc.total_capacity,
		       COALESCE(bc.confirmed_bookings, 0) AS confirmed_bookings
		FROM (
			SELECT company_id, COUNT(*) AS slot_count, SUM(capacity) AS total_capacity
			FROM slots WHERE event_id = $1 AND active = TRUE
			GROUP BY company_id
		) sc
		JOIN companies c ON c.user_id = sc.company_id
		LEFT JOIN (
			SELECT s.company_id, COUNT(*) AS confirmed_bookings
			FROM bookings b
			JOIN slots s ON s.id = b.slot_id
			WHERE s.event_id = $1 AND b.status = 'confirmed'
			GROUP BY s.company_id
		) bc ON bc.company_id = sc.company_id
		ORDER BY c.name
	`

	rows := []entity.CompanyReportRow{}
	err := r.db.SelectContext(ctx, &rows, query, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return rows, nil
		}
		logger.Error("SlotRepository:ReportByCompany:Error:", err)
		return nil, err
	}
	return rows, nil
}
