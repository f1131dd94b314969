package service

import (
	"testing"
	"time"

	"internhub/modules/event/entity"

	"github.com/google/uuid"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestGenerateSlotTimes(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		buffer   int
		want     []string
	}{
		{
			name:     "three blocks in one hour",
			start:    "2026-03-10T09:00:00Z",
			end:      "2026-03-10T10:00:00Z",
			duration: 20,
			buffer:   5,
			want:     []string{"2026-03-10T09:00:00Z", "2026-03-10T09:25:00Z", "2026-03-10T09:50:00Z"},
		},
		{
			name:     "no buffer packs evenly",
			start:    "2026-03-10T09:00:00Z",
			end:      "2026-03-10T10:00:00Z",
			duration: 30,
			buffer:   0,
			want:     []string{"2026-03-10T09:00:00Z", "2026-03-10T09:30:00Z"},
		},
		{
			name:     "empty range produces nothing",
			start:    "2026-03-10T09:00:00Z",
			end:      "2026-03-10T09:00:00Z",
			duration: 20,
			buffer:   5,
			want:     nil,
		},
		{
			name:     "zero duration produces nothing",
			start:    "2026-03-10T09:00:00Z",
			end:      "2026-03-10T10:00:00Z",
			duration: 0,
			buffer:   5,
			want:     nil,
		},
		{
			name:     "negative buffer produces nothing",
			start:    "2026-03-10T09:00:00Z",
			end:      "2026-03-10T10:00:00Z",
			duration: 20,
			buffer:   -1,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlotTimes(mustTime(t, tt.start), mustTime(t, tt.end), tt.duration, tt.buffer)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d times, want %d: %v", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if !got[i].Equal(mustTime(t, want)) {
					t.Fatalf("time[%d] = %v, want %v", i, got[i], want)
				}
			}
		})
	}
}

func testRange(t *testing.T, eventID uuid.UUID, start, end string) entity.TimeRange {
	t.Helper()
	return entity.TimeRange{
		ID:        uuid.New(),
		EventID:   eventID,
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
	}
}

func TestPlanRegenerationCreatesPerCompanyAndRange(t *testing.T) {
	eventID := uuid.New()
	companyA := uuid.New()
	companyB := uuid.New()
	ranges := []entity.TimeRange{
		testRange(t, eventID, "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z"),
	}

	plan := PlanRegeneration(nil, []uuid.UUID{companyA, companyB}, ranges, 20, 5, 2)

	if len(plan.Create) != 6 {
		t.Fatalf("expected 6 slots (3 times x 2 companies), got %d", len(plan.Create))
	}
	if plan.CompaniesProcessed != 2 || plan.TimeRangesProcessed != 1 {
		t.Fatalf("processed counts = (%d companies, %d ranges), want (2, 1)",
			plan.CompaniesProcessed, plan.TimeRangesProcessed)
	}
	if len(plan.Delete) != 0 || len(plan.Deactivate) != 0 || len(plan.Reactivate) != 0 {
		t.Fatalf("fresh generation should only create, got %+v", plan)
	}
}

func TestPlanRegenerationIsIdempotent(t *testing.T) {
	eventID := uuid.New()
	company := uuid.New()
	ranges := []entity.TimeRange{
		testRange(t, eventID, "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z"),
	}

	first := PlanRegeneration(nil, []uuid.UUID{company}, ranges, 20, 5, 2)

	existing := make([]ExistingSlot, 0, len(first.Create))
	for _, spec := range first.Create {
		existing = append(existing, ExistingSlot{
			ID:              uuid.New(),
			CompanyID:       spec.CompanyID,
			SlotTime:        spec.SlotTime,
			DurationMinutes: 20,
			Capacity:        2,
			Active:          true,
		})
	}

	second := PlanRegeneration(existing, []uuid.UUID{company}, ranges, 20, 5, 2)
	if !second.Empty() {
		t.Fatalf("re-planning an unchanged configuration must be empty, got %+v", second)
	}
}

// Changing slots_per_time must not leave surviving slots at their old
// capacity: unbooked slots at a still-wanted time get replaced.
func TestPlanRegenerationReplacesUnbookedSlotsOnCapacityChange(t *testing.T) {
	eventID := uuid.New()
	company := uuid.New()
	ranges := []entity.TimeRange{
		testRange(t, eventID, "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z"),
	}

	first := PlanRegeneration(nil, []uuid.UUID{company}, ranges, 20, 5, 2)

	existing := make([]ExistingSlot, 0, len(first.Create))
	for _, spec := range first.Create {
		existing = append(existing, ExistingSlot{
			ID:              uuid.New(),
			CompanyID:       spec.CompanyID,
			SlotTime:        spec.SlotTime,
			DurationMinutes: 20,
			Capacity:        2,
			Active:          true,
		})
	}

	second := PlanRegeneration(existing, []uuid.UUID{company}, ranges, 20, 5, 3)
	if second.Empty() {
		t.Fatalf("a capacity change must produce a non-empty plan")
	}
	if len(second.Delete) != 3 || len(second.Create) != 3 {
		t.Fatalf("expected 3 deletes and 3 creates, got %d and %d", len(second.Delete), len(second.Create))
	}
}

// A duration change where old and new series share a start time (every range
// start does) must still replace the colliding unbooked slot.
func TestPlanRegenerationReplacesUnbookedSlotsOnDurationChange(t *testing.T) {
	eventID := uuid.New()
	company := uuid.New()
	ranges := []entity.TimeRange{
		testRange(t, eventID, "2026-03-10T09:00:00Z", "2026-03-10T09:20:00Z"),
	}

	existing := []ExistingSlot{{
		ID:              uuid.New(),
		CompanyID:       company,
		SlotTime:        mustTime(t, "2026-03-10T09:00:00Z"),
		DurationMinutes: 20,
		Capacity:        2,
		Active:          true,
	}}

	plan := PlanRegeneration(existing, []uuid.UUID{company}, ranges, 15, 5, 2)
	if len(plan.Delete) != 1 || plan.Delete[0] != existing[0].ID {
		t.Fatalf("slot with a stale duration must be deleted, got %+v", plan)
	}
	if len(plan.Create) != 1 {
		t.Fatalf("expected 1 replacement slot, got %d", len(plan.Create))
	}
	if len(plan.Reactivate) != 0 {
		t.Fatalf("a replaced slot must not also be reactivated: %+v", plan)
	}
}

// Booked slots are exempt from replacement: they keep their stored parameters.
func TestPlanRegenerationKeepsBookedSlotsOnCapacityChange(t *testing.T) {
	eventID := uuid.New()
	company := uuid.New()
	ranges := []entity.TimeRange{
		testRange(t, eventID, "2026-03-10T09:00:00Z", "2026-03-10T09:20:00Z"),
	}

	booked := ExistingSlot{
		ID:              uuid.New(),
		CompanyID:       company,
		SlotTime:        mustTime(t, "2026-03-10T09:00:00Z"),
		DurationMinutes: 20,
		Capacity:        2,
		Active:          true,
		BookedCount:     1,
	}

	plan := PlanRegeneration([]ExistingSlot{booked}, []uuid.UUID{company}, ranges, 20, 5, 3)
	if len(plan.Delete) != 0 {
		t.Fatalf("booked slot must never be deleted, got %+v", plan)
	}
	if len(plan.Create) != 0 {
		t.Fatalf("the preserved slot's time must not be re-created, got %d creates", len(plan.Create))
	}
}

func TestPlanRegenerationPreservesBookedSlots(t *testing.T) {
	eventID := uuid.New()
	company := uuid.New()

	// Two slots exist from the deleted 09:00-10:00 range; one carries a
	// confirmed booking. The event now only has an afternoon range.
	booked := ExistingSlot{
		ID:              uuid.New(),
		CompanyID:       company,
		SlotTime:        mustTime(t, "2026-03-10T09:00:00Z"),
		DurationMinutes: 20,
		Capacity:        2,
		Active:          true,
		BookedCount:     1,
	}
	unbooked := ExistingSlot{
		ID:              uuid.New(),
		CompanyID:       company,
		SlotTime:        mustTime(t, "2026-03-10T09:25:00Z"),
		DurationMinutes: 20,
		Capacity:        2,
		Active:          true,
	}
	ranges := []entity.TimeRange{
		testRange(t, eventID, "2026-03-10T14:00:00Z", "2026-03-10T15:00:00Z"),
	}

	plan := PlanRegeneration([]ExistingSlot{booked, unbooked}, []uuid.UUID{company}, ranges, 20, 5, 2)

	if len(plan.Deactivate) != 1 || plan.Deactivate[0] != booked.ID {
		t.Fatalf("booked slot must be deactivated, not deleted: %+v", plan)
	}
	if len(plan.Delete) != 1 || plan.Delete[0] != unbooked.ID {
		t.Fatalf("unbooked slot must be deleted: %+v", plan)
	}
	if len(plan.Create) != 3 {
		t.Fatalf("afternoon range should create 3 slots, got %d", len(plan.Create))
	}
}

func TestPlanRegenerationReactivatesBookedSlotBackInRange(t *testing.T) {
	eventID := uuid.New()
	company := uuid.New()

	deactivated := ExistingSlot{
		ID:              uuid.New(),
		CompanyID:       company,
		SlotTime:        mustTime(t, "2026-03-10T09:00:00Z"),
		DurationMinutes: 20,
		Capacity:        2,
		Active:          false,
		BookedCount:     1,
	}
	ranges := []entity.TimeRange{
		testRange(t, eventID, "2026-03-10T09:00:00Z", "2026-03-10T09:20:00Z"),
	}

	plan := PlanRegeneration([]ExistingSlot{deactivated}, []uuid.UUID{company}, ranges, 20, 0, 2)

	if len(plan.Reactivate) != 1 || plan.Reactivate[0] != deactivated.ID {
		t.Fatalf("slot matching a restored range must be reactivated, got %+v", plan)
	}
	if len(plan.Create) != 0 {
		t.Fatalf("the preserved slot must not be re-created, got %d creates", len(plan.Create))
	}
}

func TestPlanRegenerationNoCompanies(t *testing.T) {
	eventID := uuid.New()
	ranges := []entity.TimeRange{
		testRange(t, eventID, "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z"),
	}

	plan := PlanRegeneration(nil, nil, ranges, 20, 5, 2)
	if !plan.Empty() {
		t.Fatalf("no approved companies must produce an empty plan, got %+v", plan)
	}
	if plan.TimeRangesProcessed != 1 || plan.CompaniesProcessed != 0 {
		t.Fatalf("processed counts = (%d, %d), want (0 companies, 1 range)",
			plan.CompaniesProcessed, plan.TimeRangesProcessed)
	}
}
