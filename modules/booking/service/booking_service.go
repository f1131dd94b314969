package service

import (
	"context"
	stderrors "errors"
	"time"

	"internhub/core/constants"
	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/tasks"
	authRepo "internhub/modules/auth/repository"
	"internhub/modules/booking/dto"
	"internhub/modules/booking/entity"
	"internhub/modules/booking/repository"
	companyRepo "internhub/modules/company/repository"
	eventRepo "internhub/modules/event/repository"
	notificationDto "internhub/modules/notification/dto"
	notificationEntity "internhub/modules/notification/entity"
	notificationService "internhub/modules/notification/service"
	offerRepo "internhub/modules/offer/repository"
	studentRepo "internhub/modules/student/repository"

	"github.com/google/uuid"
)

type BookingServiceInterface interface {
	CheckLimit(ctx context.Context, studentID, eventID uuid.UUID) (*dto.LimitResponse, *errors.AppError)
	ListAvailableSlots(ctx context.Context, offerID uuid.UUID) ([]dto.AvailableSlotResponse, *errors.AppError)
	Book(ctx context.Context, studentID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResult, *errors.AppError)
	Cancel(ctx context.Context, studentID, bookingID uuid.UUID) (*dto.BookingResult, *errors.AppError)
	MyBookings(ctx context.Context, studentID uuid.UUID) ([]dto.MyBookingResponse, *errors.AppError)
}

type BookingService struct {
	repo          repository.BookingRepositoryInterface
	events        eventRepo.EventRepositoryInterface
	offers        offerRepo.OfferRepositoryInterface
	students      studentRepo.StudentRepositoryInterface
	companies     companyRepo.CompanyRepositoryInterface
	users         authRepo.AuthRepositoryInterface
	notifications *notificationService.NotificationService
	tasks         *tasks.Client
	now           func() time.Time
}

func NewBookingService(
	repo repository.BookingRepositoryInterface,
	events eventRepo.EventRepositoryInterface,
	offers offerRepo.OfferRepositoryInterface,
	students studentRepo.StudentRepositoryInterface,
	companies companyRepo.CompanyRepositoryInterface,
	users authRepo.AuthRepositoryInterface,
	notifications *notificationService.NotificationService,
	tasksClient *tasks.Client,
) *BookingService {
	return &BookingService{
		repo:          repo,
		events:        events,
		offers:        offers,
		students:      students,
		companies:     companies,
		users:         users,
		notifications: notifications,
		tasks:         tasksClient,
		now:           time.Now,
	}
}

func refusal(message string) *dto.BookingResult {
	return &dto.BookingResult{Success: false, Message: message}
}

func (s *BookingService) CheckLimit(ctx context.Context, studentID, eventID uuid.UUID) (*dto.LimitResponse, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	student, err := s.students.GetByUserID(ctx, studentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get student", err)
	}
	if student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student profile not found", nil)
	}

	confirmed, err := s.repo.CountConfirmedForEvent(ctx, studentID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count bookings", err)
	}

	gate := EvaluateGate(event, student.HeadStart, confirmed, s.now())
	return &dto.LimitResponse{
		CanBook:         gate.Allowed,
		CurrentBookings: gate.CurrentBookings,
		MaxAllowed:      gate.MaxAllowed,
		CurrentPhase:    gate.Phase,
		Message:         gate.Message,
	}, nil
}

func (s *BookingService) ListAvailableSlots(ctx context.Context, offerID uuid.UUID) ([]dto.AvailableSlotResponse, *errors.AppError) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get offer", err)
	}
	if offer == nil || !offer.Active {
		return nil, errors.NewAppError(errors.ErrNotFound, "Offer not found", nil)
	}
	if offer.EventID == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "The offer is not attached to an event", nil)
	}

	event, err := s.events.GetByID(ctx, *offer.EventID)
	if err != nil || event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", err)
	}

	slots, err := s.repo.ListAvailableSlots(ctx, *offer.EventID, offer.CompanyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list slots", err)
	}

	result := make([]dto.AvailableSlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, dto.AvailableSlotResponse{
			SlotID:          slot.ID.String(),
			SlotTime:        slot.SlotTime,
			DurationMinutes: slot.DurationMinutes,
			Capacity:        slot.Capacity,
			BookedCount:     slot.BookedCount,
			AvailableCount:  slot.Capacity - slot.BookedCount,
			EventID:         event.ID.String(),
			EventName:       event.Name,
			EventDate:       event.EventDate,
		})
	}
	return result, nil
}

// Book runs the allocation preconditions in order; the first violated rule
// wins and comes back as a structured refusal, never as an error.
func (s *BookingService) Book(ctx context.Context, studentID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResult, *errors.AppError) {
	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid slot ID", err)
	}
	offerID, err := uuid.Parse(req.OfferID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid offer ID", err)
	}

	// 1. Existence and activity of slot, event, offer and company.
	slot, err := s.repo.GetSlotWithCount(ctx, slotID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get slot", err)
	}
	if slot == nil || !slot.Active {
		return refusal("This time slot is not available"), nil
	}

	event, err := s.events.GetByID(ctx, slot.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil || !event.Active {
		return refusal("This event is not available"), nil
	}

	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get offer", err)
	}
	if offer == nil || !offer.Active {
		return refusal("This offer is not available"), nil
	}
	if offer.CompanyID != slot.CompanyID {
		return refusal("The offer does not belong to the slot's company"), nil
	}

	company, err := s.companies.GetByUserID(ctx, slot.CompanyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
	}
	if company == nil || !company.Verified {
		return refusal("This offer is not available"), nil
	}

	// 2. Phase gate.
	student, err := s.students.GetByUserID(ctx, studentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get student", err)
	}
	if student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student profile not found", nil)
	}

	// The count is read outside the insert transaction: only slot capacity is
	// guarded by the row lock, so simultaneous bookings on different slots can
	// momentarily exceed the phase ceiling.
	confirmed, err := s.repo.CountConfirmedForEvent(ctx, studentID, slot.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count bookings", err)
	}
	gate := EvaluateGate(event, student.HeadStart, confirmed, s.now())
	if !gate.Allowed {
		return refusal(gate.Message), nil
	}

	// 3-5. Capacity, per-company uniqueness and overlap, checked under the
	// slot row lock inside the insert transaction.
	booking := &entity.Booking{
		SlotID:    slotID,
		StudentID: studentID,
		OfferID:   offerID,
		Notes:     req.Notes,
	}
	created, err := s.repo.BookInterview(ctx, booking)
	if err != nil {
		switch {
		case stderrors.Is(err, repository.ErrSlotUnavailable):
			return refusal("This time slot is not available"), nil
		case stderrors.Is(err, repository.ErrSlotFull):
			return refusal("This time slot is full"), nil
		case stderrors.Is(err, repository.ErrDuplicateCompany):
			return refusal("You already have an interview with this company"), nil
		case stderrors.Is(err, repository.ErrTimeOverlap):
			return refusal("This time overlaps with another of your interviews"), nil
		default:
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to book the interview", err)
		}
	}

	s.notifyBooking(ctx, created, event.Name, offer.Title, company.Name, slot.SlotTime, true)
	logger.Info("BookingService:Book:Success", "booking_id", created.ID, "student_id", studentID, "slot_id", slotID)

	return &dto.BookingResult{
		Success: true,
		Message: "Interview booked",
		Booking: created,
	}, nil
}

// Cancel releases a booking if it belongs to the student, is confirmed and
// starts at least 24 hours from now. The seat becomes available immediately
// because availability is a derived count.
func (s *BookingService) Cancel(ctx context.Context, studentID, bookingID uuid.UUID) (*dto.BookingResult, *errors.AppError) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get booking", err)
	}
	if booking == nil || booking.StudentID != studentID {
		return refusal("Booking not found"), nil
	}
	if booking.Status != entity.StatusConfirmed {
		return refusal("Only confirmed bookings can be cancelled"), nil
	}

	slot, err := s.repo.GetSlotWithCount(ctx, booking.SlotID)
	if err != nil || slot == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get slot", err)
	}
	if slot.SlotTime.Sub(s.now()) < constants.CancellationCutoff {
		return refusal("Bookings can only be cancelled at least 24 hours before the interview"), nil
	}

	if err := s.repo.Cancel(ctx, bookingID); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to cancel the booking", err)
	}

	event, _ := s.events.GetByID(ctx, slot.EventID)
	offer, _ := s.offers.GetByID(ctx, booking.OfferID)
	company, _ := s.companies.GetByUserID(ctx, slot.CompanyID)
	eventName, offerTitle, companyName := "", "", ""
	if event != nil {
		eventName = event.Name
	}
	if offer != nil {
		offerTitle = offer.Title
	}
	if company != nil {
		companyName = company.Name
	}
	s.notifyBooking(ctx, booking, eventName, offerTitle, companyName, slot.SlotTime, false)
	logger.Info("BookingService:Cancel:Success", "booking_id", bookingID, "student_id", studentID)

	return &dto.BookingResult{Success: true, Message: "Booking cancelled"}, nil
}

func (s *BookingService) MyBookings(ctx context.Context, studentID uuid.UUID) ([]dto.MyBookingResponse, *errors.AppError) {
	bookings, err := s.repo.ListMyBookings(ctx, studentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list bookings", err)
	}

	now := s.now()
	result := make([]dto.MyBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, dto.MyBookingResponse{
			BookingDetail: b,
			CanCancel:     b.Status == entity.StatusConfirmed && b.SlotTime.Sub(now) >= constants.CancellationCutoff,
		})
	}
	return result, nil
}

// notifyBooking fans out the in-app notification and queued email; both are
// best-effort and never fail the booking operation.
func (s *BookingService) notifyBooking(ctx context.Context, booking *entity.Booking, eventName, offerTitle, companyName string, slotTime time.Time, confirmed bool) {
	notifType := notificationEntity.TypeBookingCancelled
	title := "Interview cancelled"
	message := "Your interview for " + offerTitle + " with " + companyName + " was cancelled."
	if confirmed {
		notifType = notificationEntity.TypeBookingConfirmed
		title = "Interview confirmed"
		message = "Your interview for " + offerTitle + " with " + companyName + " is confirmed."
	}

	s.notifications.Notify(ctx, &notificationDto.CreateNotificationRequest{
		UserID:  booking.StudentID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Data: map[string]interface{}{
			"booking_id": booking.ID.String(),
			"slot_time":  slotTime.Format(time.RFC3339),
		},
	})

	user, err := s.users.GetUserByID(ctx, booking.StudentID)
	if err != nil || user == nil {
		logger.Warn("BookingService:notifyBooking:UserLookupFailed", "student_id", booking.StudentID)
		return
	}

	payload := tasks.BookingEmailPayload{
		Email:       user.Email,
		FullName:    user.FullName,
		OfferTitle:  offerTitle,
		CompanyName: companyName,
		EventName:   eventName,
		SlotTime:    slotTime.Format("Mon, 02 Jan 2006 15:04"),
	}
	if confirmed {
		s.tasks.EnqueueBookingConfirmedEmail(payload)
	} else {
		s.tasks.EnqueueBookingCancelledEmail(payload)
	}
}
