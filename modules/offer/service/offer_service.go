package service

import (
	"context"
	"fmt"

	"internhub/core/errors"
	"internhub/core/logger"
	companyEntity "internhub/modules/company/entity"
	companyRepo "internhub/modules/company/repository"
	"internhub/modules/offer/dto"
	"internhub/modules/offer/entity"
	"internhub/modules/offer/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lib/pq"
)

type OfferServiceInterface interface {
	Create(ctx context.Context, companyID uuid.UUID, req *dto.CreateOfferRequest) (*entity.Offer, *errors.AppError)
	Update(ctx context.Context, companyID, offerID uuid.UUID, req *dto.UpdateOfferRequest) (*entity.Offer, *errors.AppError)
	GetBySlug(ctx context.Context, offerSlug string) (*entity.Offer, *errors.AppError)
	ListMine(ctx context.Context, companyID uuid.UUID) ([]entity.Offer, *errors.AppError)
	List(ctx context.Context, filter *dto.OfferFilter) ([]entity.OfferWithCompany, *errors.AppError)
}

type OfferService struct {
	repo          repository.OfferRepositoryInterface
	companies     companyRepo.CompanyRepositoryInterface
	registrations companyRepo.RegistrationRepositoryInterface
}

func NewOfferService(
	repo repository.OfferRepositoryInterface,
	companies companyRepo.CompanyRepositoryInterface,
	registrations companyRepo.RegistrationRepositoryInterface,
) OfferServiceInterface {
	return &OfferService{
		repo:          repo,
		companies:     companies,
		registrations: registrations,
	}
}

func (s *OfferService) deriveSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	count, err := s.repo.CountBySlugPrefix(ctx, base)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}
	return fmt.Sprintf("%s-%d", base, count+1), nil
}

func (s *OfferService) Create(ctx context.Context, companyID uuid.UUID, req *dto.CreateOfferRequest) (*entity.Offer, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Offer title is required", nil)
	}

	company, err := s.companies.GetByUserID(ctx, companyID)
	if err != nil || company == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Company profile not found", err)
	}
	if !company.Verified {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only verified companies can publish offers", nil)
	}

	var eventID *uuid.UUID
	if req.EventID != "" {
		parsed, err := uuid.Parse(req.EventID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", err)
		}

		reg, err := s.registrations.GetByEventAndCompany(ctx, parsed, companyID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check registration", err)
		}
		if reg == nil || reg.Status != companyEntity.RegistrationApproved {
			return nil, errors.NewAppError(errors.ErrForbidden, "The company is not approved for this event", nil)
		}
		eventID = &parsed
	}

	offerSlug, err := s.deriveSlug(ctx, req.Title)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create offer", err)
	}

	offer := &entity.Offer{
		CompanyID:     companyID,
		EventID:       eventID,
		Title:         req.Title,
		Slug:          offerSlug,
		Description:   req.Description,
		Category:      req.Category,
		Department:    req.Department,
		DurationWeeks: req.DurationWeeks,
		Paid:          req.Paid,
		Remote:        req.Remote,
		Skills:        pq.StringArray(req.Skills),
		Active:        true,
	}

	created, err := s.repo.Create(ctx, offer)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create offer", err)
	}

	logger.Info("OfferService:Create:Success", "offer_id", created.ID, "company_id", companyID, "slug", created.Slug)
	return created, nil
}

func (s *OfferService) Update(ctx context.Context, companyID, offerID uuid.UUID, req *dto.UpdateOfferRequest) (*entity.Offer, *errors.AppError) {
	offer, err := s.repo.GetByID(ctx, offerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get offer", err)
	}
	if offer == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Offer not found", nil)
	}
	if offer.CompanyID != companyID {
		return nil, errors.NewAppError(errors.ErrForbidden, "The offer belongs to another company", nil)
	}

	if req.Title != nil && *req.Title != "" {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.Category != nil {
		offer.Category = *req.Category
	}
	if req.Department != nil {
		offer.Department = *req.Department
	}
	if req.DurationWeeks != nil {
		offer.DurationWeeks = *req.DurationWeeks
	}
	if req.Paid != nil {
		offer.Paid = *req.Paid
	}
	if req.Remote != nil {
		offer.Remote = *req.Remote
	}
	if req.Skills != nil {
		offer.Skills = pq.StringArray(req.Skills)
	}
	if req.Active != nil {
		offer.Active = *req.Active
	}

	if err := s.repo.Update(ctx, offer); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update offer", err)
	}
	return offer, nil
}

func (s *OfferService) GetBySlug(ctx context.Context, offerSlug string) (*entity.Offer, *errors.AppError) {
	offer, err := s.repo.GetBySlug(ctx, offerSlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get offer", err)
	}
	if offer == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Offer not found", nil)
	}
	return offer, nil
}

func (s *OfferService) ListMine(ctx context.Context, companyID uuid.UUID) ([]entity.Offer, *errors.AppError) {
	offers, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list offers", err)
	}
	return offers, nil
}

func (s *OfferService) List(ctx context.Context, filter *dto.OfferFilter) ([]entity.OfferWithCompany, *errors.AppError) {
	var eventID *uuid.UUID
	if filter.EventID != "" {
		parsed, err := uuid.Parse(filter.EventID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", err)
		}
		eventID = &parsed
	}

	offers, err := s.repo.ListActive(ctx, eventID, filter.Category, filter.Remote)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list offers", err)
	}
	return offers, nil
}
