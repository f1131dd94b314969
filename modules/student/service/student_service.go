package service

import (
	"context"

	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/storage"
	"internhub/modules/student/dto"
	"internhub/modules/student/repository"

	"github.com/google/uuid"
)

type StudentServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.StudentProfileResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) (*dto.StudentProfileResponse, *errors.AppError)
	SetHeadStart(ctx context.Context, userID uuid.UUID, headStart bool) *errors.AppError
	UploadDocument(ctx context.Context, userID uuid.UUID, kind, filename, contentType string, data []byte) (*dto.UploadResponse, *errors.AppError)
}

type StudentService struct {
	repo    repository.StudentRepositoryInterface
	storage storage.Storage
}

func NewStudentService(repo repository.StudentRepositoryInterface, store storage.Storage) StudentServiceInterface {
	return &StudentService{repo: repo, storage: store}
}

func (s *StudentService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.StudentProfileResponse, *errors.AppError) {
	student, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get profile", err)
	}
	if student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student profile not found", nil)
	}

	resp := &dto.StudentProfileResponse{
		UserID:     student.UserID.String(),
		Program:    student.Program,
		CohortYear: student.CohortYear,
		HeadStart:  student.HeadStart,
		UpdatedAt:  student.UpdatedAt,
	}
	if student.ResumeKey != nil {
		resp.ResumeKey = *student.ResumeKey
	}
	if student.CVKey != nil {
		resp.CVKey = *student.CVKey
	}
	return resp, nil
}

func (s *StudentService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) (*dto.StudentProfileResponse, *errors.AppError) {
	student, err := s.repo.GetByUserID(ctx, userID)
	if err != nil || student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student profile not found", err)
	}

	if req.Program != "" {
		student.Program = req.Program
	}
	if req.CohortYear > 0 {
		student.CohortYear = req.CohortYear
	}

	if err := s.repo.UpdateProfile(ctx, student); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update profile", err)
	}
	return s.GetProfile(ctx, userID)
}

func (s *StudentService) SetHeadStart(ctx context.Context, userID uuid.UUID, headStart bool) *errors.AppError {
	student, err := s.repo.GetByUserID(ctx, userID)
	if err != nil || student == nil {
		return errors.NewAppError(errors.ErrNotFound, "Student profile not found", err)
	}
	if err := s.repo.SetHeadStart(ctx, userID, headStart); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to update head start flag", err)
	}
	logger.Info("StudentService:SetHeadStart:Success", "user_id", userID, "head_start", headStart)
	return nil
}

// UploadDocument stores a resume or CV and records its object key.
func (s *StudentService) UploadDocument(ctx context.Context, userID uuid.UUID, kind, filename, contentType string, data []byte) (*dto.UploadResponse, *errors.AppError) {
	var column string
	switch kind {
	case "resume":
		column = "resume_key"
	case "cv":
		column = "cv_key"
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Document kind must be resume or cv", nil)
	}

	key, err := s.storage.Upload(ctx, "students/"+userID.String(), filename, contentType, data)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload document", err)
	}

	if err := s.repo.SetFileKey(ctx, userID, column, key); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save document reference", err)
	}
	return &dto.UploadResponse{Key: key}, nil
}
