package service

import (
	"time"

	"internhub/core/constants"
	eventEntity "internhub/modules/event/entity"
)

// ResolvePhase returns the booking phase in effect at the given instant.
// Manual mode makes the stored phase authoritative; automatic mode derives it
// from the configured windows, with everything outside them closed.
func ResolvePhase(event *eventEntity.Event, now time.Time) int {
	if event.PhaseMode == eventEntity.PhaseModeManual {
		return event.CurrentPhase
	}

	switch {
	case now.Before(event.Phase1Start):
		return constants.PhaseClosed
	case now.Before(event.Phase1End):
		return constants.PhasePriority
	case now.Before(event.Phase2Start):
		return constants.PhaseClosed
	case now.Before(event.Phase2End):
		return constants.PhaseOpen
	default:
		return constants.PhaseClosed
	}
}

// PhaseLimit is the booking ceiling of a phase. The closed phase allows none.
func PhaseLimit(event *eventEntity.Event, phase int) int {
	switch phase {
	case constants.PhasePriority:
		return event.Phase1BookingLimit
	case constants.PhaseOpen:
		return event.Phase2BookingLimit
	default:
		return 0
	}
}

// GateResult is the phase gate's verdict for one student on one event.
type GateResult struct {
	Allowed         bool
	Message         string
	Phase           int
	CurrentBookings int
	MaxAllowed      int
}

// EvaluateGate applies the phase rules: the event must be in an open phase,
// head-start students sit out the priority phase, and the student's TOTAL
// confirmed bookings for the event must be under the active phase's ceiling.
func EvaluateGate(event *eventEntity.Event, headStart bool, confirmedBookings int, now time.Time) GateResult {
	phase := ResolvePhase(event, now)
	result := GateResult{
		Phase:           phase,
		CurrentBookings: confirmedBookings,
		MaxAllowed:      PhaseLimit(event, phase),
	}

	if phase == constants.PhaseClosed {
		result.Message = "Booking is not open for this event"
		return result
	}
	if phase == constants.PhasePriority && headStart {
		result.Message = "Students with a confirmed internship cannot book during the priority phase"
		return result
	}
	if confirmedBookings >= result.MaxAllowed {
		result.Message = "You have reached the booking limit for the current phase"
		return result
	}

	result.Allowed = true
	return result
}
