package service

import (
	"testing"
	"time"

	"internhub/core/constants"
	eventEntity "internhub/modules/event/entity"
)

func phaseTestEvent() *eventEntity.Event {
	return &eventEntity.Event{
		PhaseMode:          eventEntity.PhaseModeAutomatic,
		Phase1Start:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Phase1End:          time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		Phase2Start:        time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		Phase2End:          time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC),
		Phase1BookingLimit: 2,
		Phase2BookingLimit: 5,
	}
}

func TestResolvePhaseAutomatic(t *testing.T) {
	event := phaseTestEvent()

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before phase 1", time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC), constants.PhaseClosed},
		{"at phase 1 start", event.Phase1Start, constants.PhasePriority},
		{"inside phase 1", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), constants.PhasePriority},
		{"gap between phases", time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), constants.PhaseClosed},
		{"at phase 2 start", event.Phase2Start, constants.PhaseOpen},
		{"inside phase 2", time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC), constants.PhaseOpen},
		{"after phase 2", time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), constants.PhaseClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePhase(event, tt.now); got != tt.want {
				t.Fatalf("ResolvePhase = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolvePhaseManualOverride(t *testing.T) {
	event := phaseTestEvent()
	event.PhaseMode = eventEntity.PhaseModeManual
	event.CurrentPhase = constants.PhaseOpen

	// Manual mode ignores the windows entirely.
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := ResolvePhase(event, now); got != constants.PhaseOpen {
		t.Fatalf("manual mode must return the stored phase, got %d", got)
	}
}

func TestEvaluateGate(t *testing.T) {
	inPhase1 := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	inPhase2 := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	closed := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		headStart   bool
		confirmed   int
		now         time.Time
		wantAllowed bool
		wantMax     int
	}{
		{"phase 1 under limit", false, 1, inPhase1, true, 2},
		{"phase 1 at limit", false, 2, inPhase1, false, 2},
		{"phase 1 head start excluded", true, 0, inPhase1, false, 2},
		{"phase 2 head start allowed", true, 0, inPhase2, true, 5},
		{"phase 2 under limit", false, 4, inPhase2, true, 5},
		{"phase 2 at limit", false, 5, inPhase2, false, 5},
		{"closed phase", false, 0, closed, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateGate(phaseTestEvent(), tt.headStart, tt.confirmed, tt.now)
			if got.Allowed != tt.wantAllowed {
				t.Fatalf("Allowed = %v, want %v (message %q)", got.Allowed, tt.wantAllowed, got.Message)
			}
			if got.MaxAllowed != tt.wantMax {
				t.Fatalf("MaxAllowed = %d, want %d", got.MaxAllowed, tt.wantMax)
			}
			if got.CurrentBookings != tt.confirmed {
				t.Fatalf("CurrentBookings = %d, want %d", got.CurrentBookings, tt.confirmed)
			}
			if !got.Allowed && got.Message == "" {
				t.Fatalf("refusals must carry a message")
			}
		})
	}
}

// Phase 2's ceiling applies to the TOTAL confirmed count, not to bookings made
// during phase 2 alone.
func TestEvaluateGateCountsTotalBookings(t *testing.T) {
	event := phaseTestEvent()
	inPhase2 := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)

	got := EvaluateGate(event, false, 2, inPhase2)
	if !got.Allowed {
		t.Fatalf("2 of 5 used must allow booking in phase 2: %q", got.Message)
	}
	if got.CurrentBookings != 2 || got.MaxAllowed != 5 {
		t.Fatalf("counts = (%d, %d), want (2, 5)", got.CurrentBookings, got.MaxAllowed)
	}
}
