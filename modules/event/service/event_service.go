package service

import (
	"context"
	"fmt"

	"internhub/core/constants"
	"internhub/core/errors"
	"internhub/core/logger"
	registrationRepo "internhub/modules/company/repository"
	"internhub/modules/event/dto"
	"internhub/modules/event/entity"
	"internhub/modules/event/repository"

	"github.com/google/uuid"
)

type EventServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*entity.Event, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, *errors.AppError)
	List(ctx context.Context) ([]entity.Event, *errors.AppError)
	SetPhase(ctx context.Context, id uuid.UUID, phase int) *errors.AppError

	AddTimeRange(ctx context.Context, eventID uuid.UUID, req *dto.AddTimeRangeRequest) (*dto.RegenerateResponse, *errors.AppError)
	DeleteTimeRange(ctx context.Context, timeRangeID uuid.UUID) (*dto.RegenerateResponse, *errors.AppError)
	ListTimeRanges(ctx context.Context, eventID uuid.UUID) ([]entity.TimeRange, *errors.AppError)

	RegenerateSlots(ctx context.Context, eventID uuid.UUID) (*dto.RegenerateResponse, *errors.AppError)
	Report(ctx context.Context, eventID uuid.UUID) (*dto.EventReportResponse, *errors.AppError)
}

type EventService struct {
	repo          repository.EventRepositoryInterface
	timeRanges    repository.TimeRangeRepositoryInterface
	slots         repository.SlotRepositoryInterface
	registrations registrationRepo.RegistrationRepositoryInterface
}

func NewEventService(
	repo repository.EventRepositoryInterface,
	timeRanges repository.TimeRangeRepositoryInterface,
	slots repository.SlotRepositoryInterface,
	registrations registrationRepo.RegistrationRepositoryInterface,
) EventServiceInterface {
	return &EventService{
		repo:          repo,
		timeRanges:    timeRanges,
		slots:         slots,
		registrations: registrations,
	}
}

// validateEventConfig enforces the invariants the rest of the engine relies
// on. A violation rejects the write before anything is stored.
func validateEventConfig(event *entity.Event) *errors.AppError {
	fail := func(msg string) *errors.AppError {
		return errors.NewAppError(errors.ErrInvalidInput, msg, nil)
	}

	if event.Name == "" {
		return fail("Event name is required")
	}
	if event.InterviewDurationMinutes <= 0 {
		return fail("Interview duration must be positive")
	}
	if event.BufferMinutes < 0 {
		return fail("Buffer minutes cannot be negative")
	}
	if event.SlotsPerTime < 1 {
		return fail("Slots per time must be at least 1")
	}
	if event.PhaseMode != entity.PhaseModeManual && event.PhaseMode != entity.PhaseModeAutomatic {
		return fail("Phase mode must be manual or automatic")
	}
	if event.CurrentPhase < constants.PhaseClosed || event.CurrentPhase > constants.PhaseOpen {
		return fail("Current phase must be 0, 1 or 2")
	}
	if !event.Phase1Start.Before(event.Phase1End) {
		return fail("Phase 1 start must be before phase 1 end")
	}
	if !event.Phase2Start.Before(event.Phase2End) {
		return fail("Phase 2 start must be before phase 2 end")
	}
	if event.Phase1End.After(event.Phase2Start) {
		return fail("Phase 1 must end before phase 2 starts")
	}
	if event.Phase1BookingLimit < 0 || event.Phase2BookingLimit < 0 {
		return fail("Booking limits cannot be negative")
	}
	if event.Phase1BookingLimit > event.Phase2BookingLimit {
		return fail("Phase 1 booking limit cannot exceed the phase 2 limit")
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError) {
	phaseMode := req.PhaseMode
	if phaseMode == "" {
		phaseMode = entity.PhaseModeAutomatic
	}

	event := &entity.Event{
		Name:                     req.Name,
		EventDate:                req.EventDate,
		InterviewDurationMinutes: req.InterviewDurationMinutes,
		BufferMinutes:            req.BufferMinutes,
		SlotsPerTime:             req.SlotsPerTime,
		PhaseMode:                phaseMode,
		CurrentPhase:             constants.PhaseClosed,
		Phase1Start:              req.Phase1Start,
		Phase1End:                req.Phase1End,
		Phase2Start:              req.Phase2Start,
		Phase2End:                req.Phase2End,
		Phase1BookingLimit:       req.Phase1BookingLimit,
		Phase2BookingLimit:       req.Phase2BookingLimit,
		Active:                   true,
	}
	if appErr := validateEventConfig(event); appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	logger.Info("EventService:Create:Success", "event_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *EventService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*entity.Event, *errors.AppError) {
	event, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.InterviewDurationMinutes != nil {
		event.InterviewDurationMinutes = *req.InterviewDurationMinutes
	}
	if req.BufferMinutes != nil {
		event.BufferMinutes = *req.BufferMinutes
	}
	if req.SlotsPerTime != nil {
		event.SlotsPerTime = *req.SlotsPerTime
	}
	if req.PhaseMode != nil {
		event.PhaseMode = *req.PhaseMode
	}
	if req.Phase1Start != nil {
		event.Phase1Start = *req.Phase1Start
	}
	if req.Phase1End != nil {
		event.Phase1End = *req.Phase1End
	}
	if req.Phase2Start != nil {
		event.Phase2Start = *req.Phase2Start
	}
	if req.Phase2End != nil {
		event.Phase2End = *req.Phase2End
	}
	if req.Phase1BookingLimit != nil {
		event.Phase1BookingLimit = *req.Phase1BookingLimit
	}
	if req.Phase2BookingLimit != nil {
		event.Phase2BookingLimit = *req.Phase2BookingLimit
	}
	if req.Active != nil {
		event.Active = *req.Active
	}

	if appErr := validateEventConfig(event); appErr != nil {
		return nil, appErr
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}
	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]entity.Event, *errors.AppError) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}
	return events, nil
}

func (s *EventService) SetPhase(ctx context.Context, id uuid.UUID, phase int) *errors.AppError {
	if phase < constants.PhaseClosed || phase > constants.PhaseOpen {
		return errors.NewAppError(errors.ErrInvalidInput, "Phase must be 0, 1 or 2", nil)
	}
	if _, appErr := s.GetByID(ctx, id); appErr != nil {
		return appErr
	}
	if err := s.repo.SetCurrentPhase(ctx, id, phase); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to set phase", err)
	}
	logger.Info("EventService:SetPhase:Success", "event_id", id, "phase", phase)
	return nil
}

func (s *EventService) AddTimeRange(ctx context.Context, eventID uuid.UUID, req *dto.AddTimeRangeRequest) (*dto.RegenerateResponse, *errors.AppError) {
	if _, appErr := s.GetByID(ctx, eventID); appErr != nil {
		return nil, appErr
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Range start must be before range end", nil)
	}

	tr := &entity.TimeRange{
		EventID:   eventID,
		DayDate:   req.DayDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if _, err := s.timeRanges.Create(ctx, tr); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add time range", err)
	}

	return s.RegenerateSlots(ctx, eventID)
}

func (s *EventService) DeleteTimeRange(ctx context.Context, timeRangeID uuid.UUID) (*dto.RegenerateResponse, *errors.AppError) {
	tr, err := s.timeRanges.GetByID(ctx, timeRangeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get time range", err)
	}
	if tr == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Time range not found", nil)
	}

	if err := s.timeRanges.Delete(ctx, timeRangeID); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to delete time range", err)
	}

	return s.RegenerateSlots(ctx, tr.EventID)
}

func (s *EventService) ListTimeRanges(ctx context.Context, eventID uuid.UUID) ([]entity.TimeRange, *errors.AppError) {
	ranges, err := s.timeRanges.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list time ranges", err)
	}
	return ranges, nil
}

// RegenerateSlots rebuilds the event's slot set from its time ranges and
// approved companies. Booked slots survive by identity; a configuration with
// no producible slots succeeds with a warning message.
func (s *EventService) RegenerateSlots(ctx context.Context, eventID uuid.UUID) (*dto.RegenerateResponse, *errors.AppError) {
	event, appErr := s.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	ranges, err := s.timeRanges.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list time ranges", err)
	}
	companyIDs, err := s.registrations.ListApprovedCompanyIDs(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list approved companies", err)
	}
	stored, err := s.slots.ListByEventWithCounts(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list slots", err)
	}

	existing := make([]ExistingSlot, 0, len(stored))
	for _, slot := range stored {
		existing = append(existing, ExistingSlot{
			ID:              slot.ID,
			CompanyID:       slot.CompanyID,
			SlotTime:        slot.SlotTime,
			DurationMinutes: slot.DurationMinutes,
			Capacity:        slot.Capacity,
			Active:          slot.Active,
			BookedCount:     slot.BookedCount,
		})
	}

	plan := PlanRegeneration(existing, companyIDs, ranges, event.InterviewDurationMinutes, event.BufferMinutes, event.SlotsPerTime)

	create := make([]entity.Slot, 0, len(plan.Create))
	for _, spec := range plan.Create {
		create = append(create, entity.Slot{
			EventID:         eventID,
			CompanyID:       spec.CompanyID,
			SlotTime:        spec.SlotTime,
			DurationMinutes: event.InterviewDurationMinutes,
			Capacity:        event.SlotsPerTime,
			Active:          true,
		})
	}

	if !plan.Empty() {
		if err := s.slots.ApplyRegenerationPlan(ctx, plan.Reactivate, plan.Deactivate, plan.Delete, create); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to regenerate slots", err)
		}
	}

	resp := &dto.RegenerateResponse{
		Success:             true,
		SlotsCreated:        len(plan.Create),
		SlotsDeleted:        len(plan.Delete),
		SlotsDeactivated:    len(plan.Deactivate),
		SlotsReactivated:    len(plan.Reactivate),
		CompaniesProcessed:  plan.CompaniesProcessed,
		TimeRangesProcessed: plan.TimeRangesProcessed,
	}
	switch {
	case len(ranges) == 0:
		resp.Message = "No slots produced: the event has no time ranges"
	case len(companyIDs) == 0:
		resp.Message = "No slots produced: the event has no approved companies"
	case plan.Empty():
		resp.Message = "Slot set already up to date"
	default:
		resp.Message = fmt.Sprintf("Regenerated slots for %d companies across %d time ranges", plan.CompaniesProcessed, plan.TimeRangesProcessed)
	}

	logger.Info("EventService:RegenerateSlots:Success",
		"event_id", eventID,
		"created", resp.SlotsCreated,
		"deleted", resp.SlotsDeleted,
		"deactivated", resp.SlotsDeactivated,
		"reactivated", resp.SlotsReactivated,
	)
	return resp, nil
}

func (s *EventService) Report(ctx context.Context, eventID uuid.UUID) (*dto.EventReportResponse, *errors.AppError) {
	event, appErr := s.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	rows, err := s.slots.ReportByCompany(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to build report", err)
	}

	resp := &dto.EventReportResponse{
		EventID:   event.ID.String(),
		EventName: event.Name,
		Companies: rows,
	}
	for _, row := range rows {
		resp.TotalSlots += row.SlotCount
		resp.TotalCapacity += row.TotalCapacity
		resp.ConfirmedBookings += row.ConfirmedBookings
	}
	if resp.TotalCapacity > 0 {
		resp.FillRate = float64(resp.ConfirmedBookings) / float64(resp.TotalCapacity)
	}
	return resp, nil
}
