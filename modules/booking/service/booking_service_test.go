package service

import (
	"context"
	"testing"
	"time"

	authEntity "internhub/modules/auth/entity"
	"internhub/modules/booking/dto"
	"internhub/modules/booking/entity"
	"internhub/modules/booking/repository"
	companyEntity "internhub/modules/company/entity"
	eventEntity "internhub/modules/event/entity"
	offerEntity "internhub/modules/offer/entity"
	studentEntity "internhub/modules/student/entity"

	"github.com/google/uuid"
)

type fakeBookingRepo struct {
	slots          map[uuid.UUID]*eventEntity.SlotWithCount
	bookings       map[uuid.UUID]*entity.Booking
	confirmedCount int
	bookErr        error
	details        []entity.BookingDetail
	cancelled      []uuid.UUID
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		slots:    map[uuid.UUID]*eventEntity.SlotWithCount{},
		bookings: map[uuid.UUID]*entity.Booking{},
	}
}

func (f *fakeBookingRepo) BookInterview(_ context.Context, booking *entity.Booking) (*entity.Booking, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	booking.ID = uuid.New()
	booking.Status = entity.StatusConfirmed
	f.bookings[booking.ID] = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id uuid.UUID) error {
	f.cancelled = append(f.cancelled, id)
	if b, ok := f.bookings[id]; ok {
		b.Status = entity.StatusCancelled
	}
	return nil
}

func (f *fakeBookingRepo) CountConfirmedForEvent(_ context.Context, _, _ uuid.UUID) (int, error) {
	return f.confirmedCount, nil
}

func (f *fakeBookingRepo) GetSlotWithCount(_ context.Context, id uuid.UUID) (*eventEntity.SlotWithCount, error) {
	return f.slots[id], nil
}

func (f *fakeBookingRepo) ListAvailableSlots(_ context.Context, _, _ uuid.UUID) ([]eventEntity.SlotWithCount, error) {
	out := []eventEntity.SlotWithCount{}
	for _, s := range f.slots {
		if s.Active && s.BookedCount < s.Capacity {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListMyBookings(_ context.Context, _ uuid.UUID) ([]entity.BookingDetail, error) {
	return f.details, nil
}

func (f *fakeBookingRepo) GetDetail(_ context.Context, _ uuid.UUID) (*entity.BookingDetail, error) {
	return nil, nil
}

type fakeEventRepo struct{ event *eventEntity.Event }

func (f *fakeEventRepo) Create(_ context.Context, e *eventEntity.Event) (*eventEntity.Event, error) {
	return e, nil
}
func (f *fakeEventRepo) GetByID(_ context.Context, _ uuid.UUID) (*eventEntity.Event, error) {
	return f.event, nil
}
func (f *fakeEventRepo) Update(_ context.Context, _ *eventEntity.Event) error { return nil }
func (f *fakeEventRepo) List(_ context.Context) ([]eventEntity.Event, error)  { return nil, nil }
func (f *fakeEventRepo) SetCurrentPhase(_ context.Context, _ uuid.UUID, _ int) error {
	return nil
}

type fakeOfferRepo struct{ offer *offerEntity.Offer }

func (f *fakeOfferRepo) Create(_ context.Context, o *offerEntity.Offer) (*offerEntity.Offer, error) {
	return o, nil
}
func (f *fakeOfferRepo) GetByID(_ context.Context, _ uuid.UUID) (*offerEntity.Offer, error) {
	return f.offer, nil
}
func (f *fakeOfferRepo) GetBySlug(_ context.Context, _ string) (*offerEntity.Offer, error) {
	return f.offer, nil
}
func (f *fakeOfferRepo) Update(_ context.Context, _ *offerEntity.Offer) error { return nil }
func (f *fakeOfferRepo) ListByCompany(_ context.Context, _ uuid.UUID) ([]offerEntity.Offer, error) {
	return nil, nil
}
func (f *fakeOfferRepo) ListActive(_ context.Context, _ *uuid.UUID, _ string, _ *bool) ([]offerEntity.OfferWithCompany, error) {
	return nil, nil
}
func (f *fakeOfferRepo) CountBySlugPrefix(_ context.Context, _ string) (int, error) { return 0, nil }

type fakeStudentRepo struct{ student *studentEntity.Student }

func (f *fakeStudentRepo) CreateProfile(_ context.Context, _ *studentEntity.Student) error {
	return nil
}
func (f *fakeStudentRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*studentEntity.Student, error) {
	return f.student, nil
}
func (f *fakeStudentRepo) UpdateProfile(_ context.Context, _ *studentEntity.Student) error {
	return nil
}
func (f *fakeStudentRepo) SetHeadStart(_ context.Context, _ uuid.UUID, _ bool) error { return nil }
func (f *fakeStudentRepo) SetFileKey(_ context.Context, _ uuid.UUID, _, _ string) error {
	return nil
}

type fakeCompanyRepo struct{ company *companyEntity.Company }

func (f *fakeCompanyRepo) CreateProfile(_ context.Context, _ *companyEntity.Company) error {
	return nil
}
func (f *fakeCompanyRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*companyEntity.Company, error) {
	return f.company, nil
}
func (f *fakeCompanyRepo) UpdateProfile(_ context.Context, _ *companyEntity.Company) error {
	return nil
}
func (f *fakeCompanyRepo) SetVerified(_ context.Context, _ uuid.UUID, _ bool) error  { return nil }
func (f *fakeCompanyRepo) SetLogoKey(_ context.Context, _ uuid.UUID, _ string) error { return nil }
func (f *fakeCompanyRepo) ListVerified(_ context.Context) ([]companyEntity.Company, error) {
	return nil, nil
}

type fakeUserRepo struct{ user *authEntity.User }

func (f *fakeUserRepo) CreateUser(_ context.Context, u *authEntity.User) (*authEntity.User, error) {
	return u, nil
}
func (f *fakeUserRepo) GetUserByEmail(_ context.Context, _ string) (*authEntity.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) GetUserByID(_ context.Context, _ uuid.UUID) (*authEntity.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) UpdatePassword(_ context.Context, _ uuid.UUID, _ string) error { return nil }

type bookingFixture struct {
	svc       *BookingService
	repo      *fakeBookingRepo
	studentID uuid.UUID
	companyID uuid.UUID
	slotID    uuid.UUID
	offerID   uuid.UUID
	event     *eventEntity.Event
	offer     *offerEntity.Offer
	company   *companyEntity.Company
	slot      *eventEntity.SlotWithCount
}

// newBookingFixture wires a fully bookable situation: phase 1 open, verified
// company, active slot 8 days out with free capacity.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	eventID := uuid.New()
	companyID := uuid.New()
	studentID := uuid.New()
	slotID := uuid.New()
	offerID := uuid.New()

	event := &eventEntity.Event{
		ID:                 eventID,
		Name:               "Spring Forum",
		PhaseMode:          eventEntity.PhaseModeAutomatic,
		Phase1Start:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Phase1End:          time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		Phase2Start:        time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		Phase2End:          time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC),
		Phase1BookingLimit: 2,
		Phase2BookingLimit: 5,
		Active:             true,
	}
	slot := &eventEntity.SlotWithCount{
		Slot: eventEntity.Slot{
			ID:              slotID,
			EventID:         eventID,
			CompanyID:       companyID,
			SlotTime:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			DurationMinutes: 20,
			Capacity:        2,
			Active:          true,
		},
	}
	offer := &offerEntity.Offer{
		ID:        offerID,
		CompanyID: companyID,
		EventID:   &eventID,
		Title:     "Backend Intern",
		Active:    true,
	}
	company := &companyEntity.Company{
		UserID:   companyID,
		Name:     "Acme",
		Verified: true,
	}
	student := &studentEntity.Student{UserID: studentID}
	user := &authEntity.User{ID: studentID, Email: "student@example.edu", FullName: "Sam Student"}

	repo := newFakeBookingRepo()
	repo.slots[slotID] = slot

	svc := NewBookingService(
		repo,
		&fakeEventRepo{event: event},
		&fakeOfferRepo{offer: offer},
		&fakeStudentRepo{student: student},
		&fakeCompanyRepo{company: company},
		&fakeUserRepo{user: user},
		nil,
		nil,
	)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }

	return &bookingFixture{
		svc:       svc,
		repo:      repo,
		studentID: studentID,
		companyID: companyID,
		slotID:    slotID,
		offerID:   offerID,
		event:     event,
		offer:     offer,
		company:   company,
		slot:      slot,
	}
}

func (f *bookingFixture) bookRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		SlotID:  f.slotID.String(),
		OfferID: f.offerID.String(),
		Notes:   "looking forward to it",
	}
}

func TestBookSuccess(t *testing.T) {
	f := newBookingFixture(t)

	result, appErr := f.svc.Book(context.Background(), f.studentID, f.bookRequest())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !result.Success {
		t.Fatalf("expected success, got refusal %q", result.Message)
	}
	if result.Booking == nil || result.Booking.Status != entity.StatusConfirmed {
		t.Fatalf("booking must be confirmed, got %+v", result.Booking)
	}
}

func TestBookRefusals(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *bookingFixture)
		message string
	}{
		{
			name:    "inactive slot",
			mutate:  func(f *bookingFixture) { f.slot.Active = false },
			message: "This time slot is not available",
		},
		{
			name:    "inactive event",
			mutate:  func(f *bookingFixture) { f.event.Active = false },
			message: "This event is not available",
		},
		{
			name:    "inactive offer",
			mutate:  func(f *bookingFixture) { f.offer.Active = false },
			message: "This offer is not available",
		},
		{
			name:    "unverified company",
			mutate:  func(f *bookingFixture) { f.company.Verified = false },
			message: "This offer is not available",
		},
		{
			name:    "offer from another company",
			mutate:  func(f *bookingFixture) { f.offer.CompanyID = uuid.New() },
			message: "The offer does not belong to the slot's company",
		},
		{
			name: "phase closed",
			mutate: func(f *bookingFixture) {
				f.svc.now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
			},
			message: "Booking is not open for this event",
		},
		{
			name:    "phase limit reached",
			mutate:  func(f *bookingFixture) { f.repo.confirmedCount = 2 },
			message: "You have reached the booking limit for the current phase",
		},
		{
			name:    "slot full",
			mutate:  func(f *bookingFixture) { f.repo.bookErr = repository.ErrSlotFull },
			message: "This time slot is full",
		},
		{
			name:    "duplicate company",
			mutate:  func(f *bookingFixture) { f.repo.bookErr = repository.ErrDuplicateCompany },
			message: "You already have an interview with this company",
		},
		{
			name:    "overlapping interview",
			mutate:  func(f *bookingFixture) { f.repo.bookErr = repository.ErrTimeOverlap },
			message: "This time overlaps with another of your interviews",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			tt.mutate(f)

			result, appErr := f.svc.Book(context.Background(), f.studentID, f.bookRequest())
			if appErr != nil {
				t.Fatalf("violations must not be errors: %v", appErr)
			}
			if result.Success {
				t.Fatalf("expected refusal")
			}
			if result.Message != tt.message {
				t.Fatalf("message = %q, want %q", result.Message, tt.message)
			}
		})
	}
}

func TestCancelThirtyHoursAhead(t *testing.T) {
	f := newBookingFixture(t)

	booking := &entity.Booking{
		ID:        uuid.New(),
		SlotID:    f.slotID,
		StudentID: f.studentID,
		OfferID:   f.offerID,
		Status:    entity.StatusConfirmed,
	}
	f.repo.bookings[booking.ID] = booking
	f.svc.now = func() time.Time { return f.slot.SlotTime.Add(-30 * time.Hour) }

	result, appErr := f.svc.Cancel(context.Background(), f.studentID, booking.ID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !result.Success {
		t.Fatalf("30 hours ahead must cancel, got %q", result.Message)
	}
	if booking.Status != entity.StatusCancelled {
		t.Fatalf("booking status = %q, want cancelled", booking.Status)
	}
}

func TestCancelRefusals(t *testing.T) {
	f := newBookingFixture(t)

	booking := &entity.Booking{
		ID:        uuid.New(),
		SlotID:    f.slotID,
		StudentID: f.studentID,
		OfferID:   f.offerID,
		Status:    entity.StatusConfirmed,
	}
	f.repo.bookings[booking.ID] = booking

	t.Run("inside the cutoff", func(t *testing.T) {
		f.svc.now = func() time.Time { return f.slot.SlotTime.Add(-23 * time.Hour) }
		result, appErr := f.svc.Cancel(context.Background(), f.studentID, booking.ID)
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if result.Success {
			t.Fatalf("23 hours ahead must be refused")
		}
	})

	t.Run("another student's booking", func(t *testing.T) {
		f.svc.now = func() time.Time { return f.slot.SlotTime.Add(-30 * time.Hour) }
		result, appErr := f.svc.Cancel(context.Background(), uuid.New(), booking.ID)
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if result.Success {
			t.Fatalf("foreign booking must not be cancellable")
		}
		if result.Message != "Booking not found" {
			t.Fatalf("message = %q, want %q", result.Message, "Booking not found")
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		booking.Status = entity.StatusCancelled
		f.svc.now = func() time.Time { return f.slot.SlotTime.Add(-30 * time.Hour) }
		result, appErr := f.svc.Cancel(context.Background(), f.studentID, booking.ID)
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if result.Success {
			t.Fatalf("cancelled booking must not cancel again")
		}
	})
}

func TestCheckLimitReportsPhaseState(t *testing.T) {
	f := newBookingFixture(t)
	f.repo.confirmedCount = 1

	result, appErr := f.svc.CheckLimit(context.Background(), f.studentID, f.event.ID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !result.CanBook {
		t.Fatalf("1 of 2 used in phase 1 must allow booking: %q", result.Message)
	}
	if result.CurrentBookings != 1 || result.MaxAllowed != 2 || result.CurrentPhase != 1 {
		t.Fatalf("got (%d, %d, phase %d), want (1, 2, phase 1)",
			result.CurrentBookings, result.MaxAllowed, result.CurrentPhase)
	}
}

func TestMyBookingsCanCancelFlag(t *testing.T) {
	f := newBookingFixture(t)
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	f.repo.details = []entity.BookingDetail{
		{ID: uuid.New(), Status: entity.StatusConfirmed, SlotTime: now.Add(48 * time.Hour)},
		{ID: uuid.New(), Status: entity.StatusConfirmed, SlotTime: now.Add(12 * time.Hour)},
		{ID: uuid.New(), Status: entity.StatusCancelled, SlotTime: now.Add(48 * time.Hour)},
	}

	result, appErr := f.svc.MyBookings(context.Background(), f.studentID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	want := []bool{true, false, false}
	for i, w := range want {
		if result[i].CanCancel != w {
			t.Fatalf("booking[%d].CanCancel = %v, want %v", i, result[i].CanCancel, w)
		}
	}
}
