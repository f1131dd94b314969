package dto

import (
	"time"

	"internhub/modules/booking/entity"
)

type CreateBookingRequest struct {
	SlotID  string `json:"slot_id" validate:"required"`
	OfferID string `json:"offer_id" validate:"required"`
	Notes   string `json:"notes"`
}

// BookingResult is the structured outcome of a booking or cancellation
// attempt. Constraint violations come back as success=false with a message
// naming the failed rule; they are not errors.
type BookingResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Booking *entity.Booking `json:"booking,omitempty"`
}

type LimitResponse struct {
	CanBook         bool   `json:"can_book"`
	CurrentBookings int    `json:"current_bookings"`
	MaxAllowed      int    `json:"max_allowed"`
	CurrentPhase    int    `json:"current_phase"`
	Message         string `json:"message,omitempty"`
}

type AvailableSlotResponse struct {
	SlotID          string    `json:"slot_id"`
	SlotTime        time.Time `json:"slot_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Capacity        int       `json:"capacity"`
	BookedCount     int       `json:"booked_count"`
	AvailableCount  int       `json:"available_count"`
	EventID         string    `json:"event_id"`
	EventName       string    `json:"event_name"`
	EventDate       time.Time `json:"event_date"`
}

type MyBookingResponse struct {
	entity.BookingDetail
	CanCancel bool `json:"can_cancel"`
}
