package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. Bookings are inserted as confirmed; pending exists for
// flows that stage a booking before confirmation (e.g. imports).
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SlotID    uuid.UUID `db:"slot_id" json:"slot_id"`
	StudentID uuid.UUID `db:"student_id" json:"student_id"`
	OfferID   uuid.UUID `db:"offer_id" json:"offer_id"`
	Status    string    `db:"status" json:"status"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BookingDetail is the student-facing listing row, joined across slot, offer,
// company and event.
type BookingDetail struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Status          string    `db:"status" json:"status"`
	Notes           string    `db:"notes" json:"notes"`
	SlotID          uuid.UUID `db:"slot_id" json:"slot_id"`
	SlotTime        time.Time `db:"slot_time" json:"slot_time"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	OfferID         uuid.UUID `db:"offer_id" json:"offer_id"`
	OfferTitle      string    `db:"offer_title" json:"offer_title"`
	CompanyID       uuid.UUID `db:"company_id" json:"company_id"`
	CompanyName     string    `db:"company_name" json:"company_name"`
	EventID         uuid.UUID `db:"event_id" json:"event_id"`
	EventName       string    `db:"event_name" json:"event_name"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
