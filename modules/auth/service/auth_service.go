package service

import (
	"context"
	"strings"
	"time"

	"internhub/core/cache"
	"internhub/core/config"
	"internhub/core/constants"
	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/tasks"
	"internhub/core/utils"
	"internhub/modules/auth/dto"
	"internhub/modules/auth/entity"
	"internhub/modules/auth/repository"
	companyEntity "internhub/modules/company/entity"
	companyRepo "internhub/modules/company/repository"
	studentEntity "internhub/modules/student/entity"
	studentRepo "internhub/modules/student/repository"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.TokenResponse, *errors.AppError)
	CreateCompanyAccount(ctx context.Context, req *dto.CreateCompanyAccountRequest) (*dto.UserResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

type AuthService struct {
	repo        repository.AuthRepositoryInterface
	studentRepo studentRepo.StudentRepositoryInterface
	companyRepo companyRepo.CompanyRepositoryInterface
	cache       cache.Cache
	tasks       *tasks.Client
}

func NewAuthService(
	repo repository.AuthRepositoryInterface,
	studentRepo studentRepo.StudentRepositoryInterface,
	companyRepo companyRepo.CompanyRepositoryInterface,
	cache cache.Cache,
	tasksClient *tasks.Client,
) AuthServiceInterface {
	return &AuthService{
		repo:        repo,
		studentRepo: studentRepo,
		companyRepo: companyRepo,
		cache:       cache,
		tasks:       tasksClient,
	}
}

// Login authenticates by email/password and issues a JWT.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", err)
	}
	if user == nil || !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}
	if !user.Active {
		return nil, errors.NewAppError(errors.ErrForbidden, "Account is deactivated", nil)
	}

	return s.tokenResponse(user)
}

// RegisterStudent creates a student account plus its profile row.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.TokenResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "An account with this email already exists", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Role:         constants.RoleStudent,
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Active:       true,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	profile := &studentEntity.Student{
		UserID:     user.ID,
		Program:    req.Program,
		CohortYear: req.CohortYear,
	}
	if err := s.studentRepo.CreateProfile(ctx, profile); err != nil {
		logger.Error("AuthService:RegisterStudent:CreateProfile:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create student profile", err)
	}

	return s.tokenResponse(user)
}

// CreateCompanyAccount is used by admins to onboard a company. The generated
// password is queued for delivery by email; it is never returned in the response.
func (s *AuthService) CreateCompanyAccount(ctx context.Context, req *dto.CreateCompanyAccountRequest) (*dto.UserResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "An account with this email already exists", nil)
	}

	password := utils.GeneratePassword()
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Role:         constants.RoleCompany,
		Email:        email,
		PasswordHash: hash,
		FullName:     req.ContactName,
		Active:       true,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	profile := &companyEntity.Company{
		UserID:  user.ID,
		Name:    req.CompanyName,
		Website: req.Website,
	}
	if err := s.companyRepo.CreateProfile(ctx, profile); err != nil {
		logger.Error("AuthService:CreateCompanyAccount:CreateProfile:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create company profile", err)
	}

	s.tasks.EnqueueCredentialsEmail(tasks.CredentialsEmailPayload{
		Email:    user.Email,
		FullName: user.FullName,
		Password: password,
	})

	logger.Info("AuthService:CreateCompanyAccount:Success", "user_id", user.ID, "company", req.CompanyName)
	resp := toUserResponse(user)
	return &resp, nil
}

// Logout blacklists the token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "Invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke session", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get account", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Account not found", nil)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *AuthService) tokenResponse(user *entity.User) (*dto.TokenResponse, *errors.AppError) {
	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		logger.Error("AuthService:tokenResponse:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	cfg := config.Get()
	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: cfg.JWT.ExpiryHours * 3600,
		User:      toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID.String(),
		Role:      user.Role,
		Email:     user.Email,
		FullName:  user.FullName,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}
