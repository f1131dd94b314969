package service

import (
	"context"

	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/storage"
	"internhub/modules/company/dto"
	"internhub/modules/company/entity"
	"internhub/modules/company/repository"
	notificationDto "internhub/modules/notification/dto"
	notificationEntity "internhub/modules/notification/entity"
	notificationService "internhub/modules/notification/service"

	"github.com/google/uuid"
)

type CompanyServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.CompanyProfileResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateCompanyProfileRequest) (*dto.CompanyProfileResponse, *errors.AppError)
	UploadLogo(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*dto.UploadResponse, *errors.AppError)
	SetVerified(ctx context.Context, userID uuid.UUID, verified bool) *errors.AppError
	ListVerified(ctx context.Context) ([]dto.CompanyProfileResponse, *errors.AppError)

	RequestRegistration(ctx context.Context, companyID uuid.UUID, req *dto.CreateRegistrationRequest) (*entity.Registration, *errors.AppError)
	DecideRegistration(ctx context.Context, registrationID uuid.UUID, req *dto.DecideRegistrationRequest) *errors.AppError
	ListRegistrationsByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.RegistrationWithCompany, *errors.AppError)
	ListMyRegistrations(ctx context.Context, companyID uuid.UUID) ([]entity.Registration, *errors.AppError)
}

type CompanyService struct {
	repo          repository.CompanyRepositoryInterface
	registrations repository.RegistrationRepositoryInterface
	storage       storage.Storage
	notifications *notificationService.NotificationService
}

func NewCompanyService(
	repo repository.CompanyRepositoryInterface,
	registrations repository.RegistrationRepositoryInterface,
	store storage.Storage,
	notifications *notificationService.NotificationService,
) CompanyServiceInterface {
	return &CompanyService{
		repo:          repo,
		registrations: registrations,
		storage:       store,
		notifications: notifications,
	}
}

func toProfileResponse(company *entity.Company) *dto.CompanyProfileResponse {
	resp := &dto.CompanyProfileResponse{
		UserID:      company.UserID.String(),
		Name:        company.Name,
		Website:     company.Website,
		Description: company.Description,
		Verified:    company.Verified,
		UpdatedAt:   company.UpdatedAt,
	}
	if company.LogoKey != nil {
		resp.LogoKey = *company.LogoKey
	}
	return resp
}

func (s *CompanyService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.CompanyProfileResponse, *errors.AppError) {
	company, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get profile", err)
	}
	if company == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Company profile not found", nil)
	}
	return toProfileResponse(company), nil
}

func (s *CompanyService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateCompanyProfileRequest) (*dto.CompanyProfileResponse, *errors.AppError) {
	company, err := s.repo.GetByUserID(ctx, userID)
	if err != nil || company == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Company profile not found", err)
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Description != "" {
		company.Description = req.Description
	}

	if err := s.repo.UpdateProfile(ctx, company); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update profile", err)
	}
	return s.GetProfile(ctx, userID)
}

func (s *CompanyService) UploadLogo(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*dto.UploadResponse, *errors.AppError) {
	key, err := s.storage.Upload(ctx, "companies/"+userID.String(), filename, contentType, data)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload logo", err)
	}
	if err := s.repo.SetLogoKey(ctx, userID, key); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save logo reference", err)
	}
	return &dto.UploadResponse{Key: key}, nil
}

func (s *CompanyService) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) *errors.AppError {
	company, err := s.repo.GetByUserID(ctx, userID)
	if err != nil || company == nil {
		return errors.NewAppError(errors.ErrNotFound, "Company profile not found", err)
	}
	if err := s.repo.SetVerified(ctx, userID, verified); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to update verification", err)
	}

	if verified && !company.Verified {
		s.notifications.Notify(ctx, &notificationDto.CreateNotificationRequest{
			UserID:  userID,
			Title:   "Company verified",
			Message: "Your company has been verified. You can now register for forum events.",
			Type:    notificationEntity.TypeCompanyVerified,
		})
	}

	logger.Info("CompanyService:SetVerified:Success", "company_id", userID, "verified", verified)
	return nil
}

func (s *CompanyService) ListVerified(ctx context.Context) ([]dto.CompanyProfileResponse, *errors.AppError) {
	companies, err := s.repo.ListVerified(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list companies", err)
	}

	result := make([]dto.CompanyProfileResponse, 0, len(companies))
	for i := range companies {
		result = append(result, *toProfileResponse(&companies[i]))
	}
	return result, nil
}

func (s *CompanyService) RequestRegistration(ctx context.Context, companyID uuid.UUID, req *dto.CreateRegistrationRequest) (*entity.Registration, *errors.AppError) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", err)
	}

	company, err := s.repo.GetByUserID(ctx, companyID)
	if err != nil || company == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Company profile not found", err)
	}
	if !company.Verified {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only verified companies can register for events", nil)
	}

	existing, err := s.registrations.GetByEventAndCompany(ctx, eventID, companyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check registration", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A registration for this event already exists", nil)
	}

	reg := &entity.Registration{
		EventID:   eventID,
		CompanyID: companyID,
		Status:    entity.RegistrationPending,
	}
	created, err := s.registrations.Create(ctx, reg)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create registration", err)
	}

	logger.Info("CompanyService:RequestRegistration:Success", "company_id", companyID, "event_id", eventID)
	return created, nil
}

func (s *CompanyService) DecideRegistration(ctx context.Context, registrationID uuid.UUID, req *dto.DecideRegistrationRequest) *errors.AppError {
	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get registration", err)
	}
	if reg == nil {
		return errors.NewAppError(errors.ErrNotFound, "Registration not found", nil)
	}
	if reg.Status != entity.RegistrationPending {
		return errors.NewAppError(errors.ErrInvalidInput, "Registration has already been decided", nil)
	}

	status := entity.RegistrationRejected
	message := "Your registration for the event was rejected."
	if req.Approve {
		status = entity.RegistrationApproved
		message = "Your registration for the event was approved."
	}

	if err := s.registrations.Decide(ctx, registrationID, status, req.AdminNotes); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to update registration", err)
	}

	s.notifications.Notify(ctx, &notificationDto.CreateNotificationRequest{
		UserID:  reg.CompanyID,
		Title:   "Event registration decision",
		Message: message,
		Type:    notificationEntity.TypeRegistrationDecision,
		Data:    map[string]interface{}{"event_id": reg.EventID.String(), "status": status},
	})

	logger.Info("CompanyService:DecideRegistration:Success", "registration_id", registrationID, "status", status)
	return nil
}

func (s *CompanyService) ListRegistrationsByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.RegistrationWithCompany, *errors.AppError) {
	regs, err := s.registrations.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list registrations", err)
	}
	return regs, nil
}

func (s *CompanyService) ListMyRegistrations(ctx context.Context, companyID uuid.UUID) ([]entity.Registration, *errors.AppError) {
	regs, err := s.registrations.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list registrations", err)
	}
	return regs, nil
}
