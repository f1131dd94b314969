package service

import (
	"time"

	"internhub/modules/event/entity"

	"github.com/google/uuid"
)

// GenerateSlotTimes steps through a time range: the first interview starts at
// the range start and each next one duration+buffer later, for as long as the
// start still falls inside the range. A 09:00-10:00 range with 20-minute
// interviews and a 5-minute buffer yields 09:00, 09:25 and 09:50.
func GenerateSlotTimes(rangeStart, rangeEnd time.Time, durationMinutes, bufferMinutes int) []time.Time {
	if durationMinutes <= 0 || bufferMinutes < 0 {
		return nil
	}

	step := time.Duration(durationMinutes+bufferMinutes) * time.Minute

	var times []time.Time
	for t := rangeStart; t.Before(rangeEnd); t = t.Add(step) {
		times = append(times, t)
	}
	return times
}

// NewSlotSpec describes a slot the regeneration plan wants created.
type NewSlotSpec struct {
	CompanyID uuid.UUID
	SlotTime  time.Time
}

// ExistingSlot is the planner's view of a stored slot.
type ExistingSlot struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	SlotTime        time.Time
	DurationMinutes int
	Capacity        int
	Active          bool
	BookedCount     int
}

// RegenerationPlan is the diff between the stored slots and the slot set the
// current configuration calls for. Slots holding confirmed bookings are never
// deleted or re-created: a booked slot whose time is still wanted is kept (and
// reactivated if needed), a booked slot whose time is no longer wanted is
// deactivated. Unbooked slots are free to be deleted and created from scratch,
// which is also how an unbooked slot picks up a changed interview duration or
// capacity: a stored slot only counts as matching a desired one when its
// parameters match too.
type RegenerationPlan struct {
	Reactivate []uuid.UUID
	Deactivate []uuid.UUID
	Delete     []uuid.UUID
	Create     []NewSlotSpec

	TimeRangesProcessed int
	CompaniesProcessed  int
}

type slotKey struct {
	companyID uuid.UUID
	unixTime  int64
}

// PlanRegeneration computes the plan for one slot series per approved company
// per time range, with each slot carrying the event's current interview
// duration and capacity. Running it again on an unchanged configuration
// produces an empty plan. Booked slots keep their stored parameters even when
// the event's have changed since.
func PlanRegeneration(existing []ExistingSlot, companyIDs []uuid.UUID, ranges []entity.TimeRange, durationMinutes, bufferMinutes, capacity int) RegenerationPlan {
	plan := RegenerationPlan{
		TimeRangesProcessed: len(ranges),
		CompaniesProcessed:  len(companyIDs),
	}

	desired := make(map[slotKey]NewSlotSpec)
	for _, r := range ranges {
		times := GenerateSlotTimes(r.StartTime, r.EndTime, durationMinutes, bufferMinutes)
		for _, t := range times {
			for _, companyID := range companyIDs {
				desired[slotKey{companyID: companyID, unixTime: t.Unix()}] = NewSlotSpec{
					CompanyID: companyID,
					SlotTime:  t,
				}
			}
		}
	}

	for _, slot := range existing {
		key := slotKey{companyID: slot.CompanyID, unixTime: slot.SlotTime.Unix()}
		stale := slot.DurationMinutes != durationMinutes || slot.Capacity != capacity
		if _, wanted := desired[key]; wanted {
			if stale && slot.BookedCount == 0 {
				// Same time but outdated parameters: replace it. The desired
				// entry stays so the slot is re-created with the current ones.
				plan.Delete = append(plan.Delete, slot.ID)
				continue
			}
			delete(desired, key)
			if !slot.Active {
				plan.Reactivate = append(plan.Reactivate, slot.ID)
			}
			continue
		}
		if slot.BookedCount > 0 {
			if slot.Active {
				plan.Deactivate = append(plan.Deactivate, slot.ID)
			}
			continue
		}
		plan.Delete = append(plan.Delete, slot.ID)
	}

	for _, spec := range desired {
		plan.Create = append(plan.Create, spec)
	}
	return plan
}

// Empty reports whether applying the plan would change nothing.
func (p RegenerationPlan) Empty() bool {
	return len(p.Reactivate) == 0 && len(p.Deactivate) == 0 && len(p.Delete) == 0 && len(p.Create) == 0
}
