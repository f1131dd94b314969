package entity

import (
	"time"

	"github.com/google/uuid"
)

// Phase control modes.
const (
	PhaseModeManual    = "manual"
	PhaseModeAutomatic = "automatic"
)

// Event is a forum day with interview parameters and booking phase windows.
//
// In manual mode CurrentPhase is authoritative. In automatic mode the active
// phase is derived from the phase windows at evaluation time.
type Event struct {
	ID                       uuid.UUID `db:"id" json:"id"`
	Name                     string    `db:"name" json:"name"`
	EventDate                time.Time `db:"event_date" json:"event_date"`
	InterviewDurationMinutes int       `db:"interview_duration_minutes" json:"interview_duration_minutes"`
	BufferMinutes            int       `db:"buffer_minutes" json:"buffer_minutes"`
	SlotsPerTime             int       `db:"slots_per_time" json:"slots_per_time"`
	PhaseMode                string    `db:"phase_mode" json:"phase_mode"`
	CurrentPhase             int       `db:"current_phase" json:"current_phase"`
	Phase1Start              time.Time `db:"phase1_start" json:"phase1_start"`
	Phase1End                time.Time `db:"phase1_end" json:"phase1_end"`
	Phase2Start              time.Time `db:"phase2_start" json:"phase2_start"`
	Phase2End                time.Time `db:"phase2_end" json:"phase2_end"`
	Phase1BookingLimit       int       `db:"phase1_booking_limit" json:"phase1_booking_limit"`
	Phase2BookingLimit       int       `db:"phase2_booking_limit" json:"phase2_booking_limit"`
	Active                   bool      `db:"active" json:"active"`
	CreatedAt                time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time `db:"updated_at" json:"updated_at"`
}

// TimeRange is an interview window on an event day. Start and end are absolute
// timestamps; slots are stepped through the range at generation time.
type TimeRange struct {
	ID        uuid.UUID `db:"id" json:"id"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	DayDate   time.Time `db:"day_date" json:"day_date"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Slot struct {
	ID              uuid.UUID `db:"id" json:"id"`
	EventID         uuid.UUID `db:"event_id" json:"event_id"`
	CompanyID       uuid.UUID `db:"company_id" json:"company_id"`
	SlotTime        time.Time `db:"slot_time" json:"slot_time"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Capacity        int       `db:"capacity" json:"capacity"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// SlotWithCount carries the query-time aggregate of confirmed bookings.
type SlotWithCount struct {
	Slot
	BookedCount int `db:"booked_count" json:"booked_count"`
}

// CompanyReportRow aggregates an event's slots and confirmed bookings per company.
type CompanyReportRow struct {
	CompanyID         uuid.UUID `db:"company_id" json:"company_id"`
	CompanyName       string    `db:"company_name" json:"company_name"`
	SlotCount         int       `db:"slot_count" json:"slot_count"`
	TotalCapacity     int       `db:"total_capacity" json:"total_capacity"`
	ConfirmedBookings int       `db:"confirmed_bookings" json:"confirmed_bookings"`
}
