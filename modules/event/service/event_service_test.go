package service

import (
	"testing"
	"time"

	"internhub/modules/event/entity"
)

func validTestEvent() *entity.Event {
	return &entity.Event{
		Name:                     "Spring Forum",
		EventDate:                time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		InterviewDurationMinutes: 20,
		BufferMinutes:            5,
		SlotsPerTime:             2,
		PhaseMode:                entity.PhaseModeAutomatic,
		Phase1Start:              time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Phase1End:                time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		Phase2Start:              time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		Phase2End:                time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC),
		Phase1BookingLimit:       2,
		Phase2BookingLimit:       5,
	}
}

func TestValidateEventConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *entity.Event)
		valid  bool
	}{
		{"valid configuration", func(e *entity.Event) {}, true},
		{"missing name", func(e *entity.Event) { e.Name = "" }, false},
		{"zero duration", func(e *entity.Event) { e.InterviewDurationMinutes = 0 }, false},
		{"negative buffer", func(e *entity.Event) { e.BufferMinutes = -1 }, false},
		{"zero capacity", func(e *entity.Event) { e.SlotsPerTime = 0 }, false},
		{"unknown phase mode", func(e *entity.Event) { e.PhaseMode = "always-on" }, false},
		{"phase out of range", func(e *entity.Event) { e.CurrentPhase = 3 }, false},
		{"inverted phase 1 window", func(e *entity.Event) {
			e.Phase1Start, e.Phase1End = e.Phase1End, e.Phase1Start
		}, false},
		{"inverted phase 2 window", func(e *entity.Event) {
			e.Phase2Start, e.Phase2End = e.Phase2End, e.Phase2Start
		}, false},
		{"phase 1 overlapping phase 2", func(e *entity.Event) {
			e.Phase1End = e.Phase2Start.Add(time.Hour)
		}, false},
		{"phase 1 limit above phase 2 limit", func(e *entity.Event) {
			e.Phase1BookingLimit = 6
		}, false},
		{"negative limit", func(e *entity.Event) { e.Phase2BookingLimit = -1 }, false},
		{"equal limits allowed", func(e *entity.Event) {
			e.Phase1BookingLimit = 5
			e.Phase2BookingLimit = 5
		}, true},
		{"phase 1 ending exactly at phase 2 start", func(e *entity.Event) {
			e.Phase1End = e.Phase2Start
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := validTestEvent()
			tt.mutate(event)

			appErr := validateEventConfig(event)
			if tt.valid && appErr != nil {
				t.Fatalf("expected valid, got %q", appErr.Message)
			}
			if !tt.valid && appErr == nil {
				t.Fatalf("expected a validation error")
			}
		})
	}
}
