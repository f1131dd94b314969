package repository

import (
	"context"
	"database/sql"
	"errors"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/booking/entity"
	eventEntity "internhub/modules/event/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Sentinel violations surfaced by the transactional booking insert. The
// service maps them to structured refusals.
var (
	ErrSlotFull         = errors.New("slot is at capacity")
	ErrSlotUnavailable  = errors.New("slot is not available")
	ErrDuplicateCompany = errors.New("student already booked with this company")
	ErrTimeOverlap      = errors.New("booking overlaps another interview")
)

type BookingRepositoryInterface interface {
	BookInterview(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	CountConfirmedForEvent(ctx context.Context, studentID, eventID uuid.UUID) (int, error)
	GetSlotWithCount(ctx context.Context, slotID uuid.UUID) (*eventEntity.SlotWithCount, error)
	ListAvailableSlots(ctx context.Context, eventID, companyID uuid.UUID) ([]eventEntity.SlotWithCount, error)
	ListMyBookings(ctx context.Context, studentID uuid.UUID) ([]entity.BookingDetail, error)
	GetDetail(ctx context.Context, bookingID uuid.UUID) (*entity.BookingDetail, error)
}

type BookingRepository struct {
	db database.IDatabase
}

func NewBookingRepository(db database.IDatabase) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookInterview runs the atomic part of the allocation: the slot row is
// locked, so the capacity count, the per-company uniqueness check and the
// overlap check cannot race with a concurrent booking of the same slot.
func (r *BookingRepository) BookInterview(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	err := r.db.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		var slot eventEntity.Slot
		err := tx.GetContext(ctx, &slot, `
			SELECT id, event_id, company_id, slot_time, duration_minutes, capacity, active, created_at
			FROM slots WHERE id = $1
			FOR UPDATE
		`, booking.SlotID)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrSlotUnavailable
			}
			return err
		}
		if !slot.Active {
			return ErrSlotUnavailable
		}

		var confirmed int
		err = tx.GetContext(ctx, &confirmed, `
			SELECT COUNT(*) FROM bookings WHERE slot_id = $1 AND status = $2
		`, slot.ID, entity.StatusConfirmed)
		if err != nil {
			return err
		}
		if confirmed >= slot.Capacity {
			return ErrSlotFull
		}

		var sameCompany int
		err = tx.GetContext(ctx, &sameCompany, `
			SELECT COUNT(*)
			FROM bookings b
			JOIN slots s ON s.id = b.slot_id
			WHERE b.student_id = $1 AND b.status = $2
			  AND s.event_id = $3 AND s.company_id = $4
		`, booking.StudentID, entity.StatusConfirmed, slot.EventID, slot.CompanyID)
		if err != nil {
			return err
		}
		if sameCompany > 0 {
			return ErrDuplicateCompany
		}

		var overlapping int
		err = tx.GetContext(ctx, &overlapping, `
			SELECT COUNT(*)
			FROM bookings b
			JOIN slots s ON s.id = b.slot_id
			WHERE b.student_id = $1 AND b.status = $2 AND s.event_id = $3
			  AND s.slot_time < $4::timestamptz + make_interval(mins => $5)
			  AND s.slot_time + make_interval(mins => s.duration_minutes) > $4::timestamptz
		`, booking.StudentID, entity.StatusConfirmed, slot.EventID, slot.SlotTime, slot.DurationMinutes)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrTimeOverlap
		}

		booking.Status = entity.StatusConfirmed
		return tx.QueryRowContext(ctx, `
			INSERT INTO bookings (slot_id, student_id, offer_id, status, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, booking.SlotID, booking.StudentID, booking.OfferID, booking.Status, booking.Notes).Scan(&booking.ID)
	})
	if err != nil {
		if !isViolation(err) {
			logger.Error("BookingRepository:BookInterview:Error:", err)
		}
		return nil, err
	}
	return booking, nil
}

func isViolation(err error) bool {
	return errors.Is(err, ErrSlotFull) ||
		errors.Is(err, ErrSlotUnavailable) ||
		errors.Is(err, ErrDuplicateCompany) ||
		errors.Is(err, ErrTimeOverlap)
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, slot_id, student_id, offer_id, status, notes, created_at, updated_at
		FROM bookings WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetByID:Error:", err)
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id, entity.StatusCancelled)
	if err != nil {
		logger.Error("BookingRepository:Cancel:Error:", err)
		return err
	}
	return nil
}

func (r *BookingRepository) CountConfirmedForEvent(ctx context.Context, studentID, eventID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id
		WHERE b.student_id = $1 AND b.status = $2 AND s.event_id = $3
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, studentID, entity.StatusConfirmed, eventID)
	if err != nil {
		logger.Error("BookingRepository:CountConfirmedForEvent:Error:", err)
		return 0, err
	}
	return count, nil
}

func (r *BookingRepository) GetSlotWithCount(ctx context.Context, slotID uuid.UUID) (*eventEntity.SlotWithCount, error) {
	query := `
		SELECT s.id, s.event_id, s.company_id, s.slot_time, s.duration_minutes,
		       s.capacity, s.active, s.created_at,
		       COUNT(b.id) FILTER (WHERE b.status = 'confirmed') AS booked_count
		FROM slots s
		LEFT JOIN bookings b ON b.slot_id = s.id
		WHERE s.id = $1
		GROUP BY s.id
	`

	var slot eventEntity.SlotWithCount
	err := r.db.GetContext(ctx, &slot, query, slotID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetSlotWithCount:Error:", err)
		return nil, err
	}
	return &slot, nil
}

func (r *BookingRepository) ListAvailableSlots(ctx context.Context, eventID, companyID uuid.UUID) ([]eventEntity.SlotWithCount, error) {
	query := `
		SELECT s.id, s.event_id, s.company_id, s.slot_time, s.duration_minutes,
		       s.capacity, s.active, s.created_at,
		       COUNT(b.id) FILTER (WHERE b.status = 'confirmed') AS booked_count
		FROM slots s
		LEFT JOIN bookings b ON b.slot_id = s.id
		WHERE s.event_id = $1 AND s.company_id = $2 AND s.active = TRUE
		GROUP BY s.id
		HAVING COUNT(b.id) FILTER (WHERE b.status = 'confirmed') < s.capacity
		ORDER BY s.slot_time
	`

	slots := []eventEntity.SlotWithCount{}
	err := r.db.SelectContext(ctx, &slots, query, eventID, companyID)
	if err != nil {
		logger.Error("BookingRepository:ListAvailableSlots:Error:", err)
		return nil, err
	}
	return slots, nil
}

const bookingDetailQuery = `
	SELECT b.id, b.status, b.notes, b.slot_id, s.slot_time, s.duration_minutes,
	       b.offer_id, o.title AS offer_title,
	       s.company_id, c.name AS company_name,
	       s.event_id, e.name AS event_name,
	       b.created_at
	FROM bookings b
	JOIN slots s ON s.id = b.slot_id
	JOIN offers o ON o.id = b.offer_id
	JOIN companies c ON c.user_id = s.company_id
	JOIN events e ON e.id = s.event_id
`

func (r *BookingRepository) ListMyBookings(ctx context.Context, studentID uuid.UUID) ([]entity.BookingDetail, error) {
	query := bookingDetailQuery + `
		WHERE b.student_id = $1
		ORDER BY s.slot_time
	`

	bookings := []entity.BookingDetail{}
	err := r.db.SelectContext(ctx, &bookings, query, studentID)
	if err != nil {
		logger.Error("BookingRepository:ListMyBookings:Error:", err)
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) GetDetail(ctx context.Context, bookingID uuid.UUID) (*entity.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.id = $1`

	var detail entity.BookingDetail
	err := r.db.GetContext(ctx, &detail, query, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetDetail:Error:", err)
		return nil, err
	}
	return &detail, nil
}
