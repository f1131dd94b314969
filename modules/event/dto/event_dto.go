package dto

import (
	"time"

	"internhub/modules/event/entity"
)

type CreateEventRequest struct {
	Name                     string    `json:"name" validate:"required"`
	EventDate                time.Time `json:"event_date" validate:"required"`
	InterviewDurationMinutes int       `json:"interview_duration_minutes" validate:"required"`
	BufferMinutes            int       `json:"buffer_minutes"`
	SlotsPerTime             int       `json:"slots_per_time" validate:"required"`
	PhaseMode                string    `json:"phase_mode"`
	Phase1Start              time.Time `json:"phase1_start" validate:"required"`
	Phase1End                time.Time `json:"phase1_end" validate:"required"`
	Phase2Start              time.Time `json:"phase2_start" validate:"required"`
	Phase2End                time.Time `json:"phase2_end" validate:"required"`
	Phase1BookingLimit       int       `json:"phase1_booking_limit" validate:"required"`
	Phase2BookingLimit       int       `json:"phase2_booking_limit" validate:"required"`
}

type UpdateEventRequest struct {
	Name                     *string    `json:"name"`
	EventDate                *time.Time `json:"event_date"`
	InterviewDurationMinutes *int       `json:"interview_duration_minutes"`
	BufferMinutes            *int       `json:"buffer_minutes"`
	SlotsPerTime             *int       `json:"slots_per_time"`
	PhaseMode                *string    `json:"phase_mode"`
	Phase1Start              *time.Time `json:"phase1_start"`
	Phase1End                *time.Time `json:"phase1_end"`
	Phase2Start              *time.Time `json:"phase2_start"`
	Phase2End                *time.Time `json:"phase2_end"`
	Phase1BookingLimit       *int       `json:"phase1_booking_limit"`
	Phase2BookingLimit       *int       `json:"phase2_booking_limit"`
	Active                   *bool      `json:"active"`
}

type SetPhaseRequest struct {
	Phase int `json:"phase"`
}

type AddTimeRangeRequest struct {
	DayDate   time.Time `json:"day_date" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

// RegenerateResponse mirrors what the regeneration run did. Success with zero
// slots created is a valid outcome; Message explains it.
type RegenerateResponse struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	SlotsCreated        int    `json:"slots_created"`
	SlotsDeleted        int    `json:"slots_deleted"`
	SlotsDeactivated    int    `json:"slots_deactivated"`
	SlotsReactivated    int    `json:"slots_reactivated"`
	CompaniesProcessed  int    `json:"companies_processed"`
	TimeRangesProcessed int    `json:"time_ranges_processed"`
}

type EventReportResponse struct {
	EventID           string                    `json:"event_id"`
	EventName         string                    `json:"event_name"`
	TotalSlots        int                       `json:"total_slots"`
	TotalCapacity     int                       `json:"total_capacity"`
	ConfirmedBookings int                       `json:"confirmed_bookings"`
	FillRate          float64                   `json:"fill_rate"`
	Companies         []entity.CompanyReportRow `json:"companies"`
}
