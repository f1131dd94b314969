package repository

import (
	"context"
	"database/sql"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/company/entity"

	"github.com/google/uuid"
)

type CompanyRepositoryInterface interface {
	CreateProfile(ctx context.Context, company *entity.Company) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Company, error)
	UpdateProfile(ctx context.Context, company *entity.Company) error
	SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error
	SetLogoKey(ctx context.Context, userID uuid.UUID, key string) error
	ListVerified(ctx context.Context) ([]entity.Company, error)
}

type CompanyRepository struct {
	db database.IDatabase
}

func NewCompanyRepository(db database.IDatabase) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) CreateProfile(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (user_id, name, website, description)
		VALUES ($1, $2, $3, $4)
	`
	err := r.db.ExecContext(ctx, query, company.UserID, company.Name, company.Website, company.Description)
	if err != nil {
		logger.Error("CompanyRepository:CreateProfile:Error:", err)
		return err
	}
	return nil
}

func (r *CompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Company, error) {
	query := `
		SELECT user_id, name, website, description, logo_key, verified, created_at, updated_at
		FROM companies WHERE user_id = $1
	`

	var company entity.Company
	err := r.db.GetContext(ctx, &company, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CompanyRepository:GetByUserID:Error:", err)
		return nil, err
	}

	return &company, nil
}

func (r *CompanyRepository) UpdateProfile(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, website = $3, description = $4, updated_at = NOW()
		WHERE user_id = $1
	`
	err := r.db.ExecContext(ctx, query, company.UserID, company.Name, company.Website, company.Description)
	if err != nil {
		logger.Error("CompanyRepository:UpdateProfile:Error:", err)
		return err
	}
	return nil
}

func (r *CompanyRepository) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	query := `UPDATE companies SET verified = $2, updated_at = NOW() WHERE user_id = $1`
	err := r.db.ExecContext(ctx, query, userID, verified)
	if err != nil {
		logger.Error("CompanyRepository:SetVerified:Error:", err)
		return err
	}
	return nil
}

func (r *CompanyRepository) SetLogoKey(ctx context.Context, userID uuid.UUID, key string) error {
	query := `UPDATE companies SET logo_key = $2, updated_at = NOW() WHERE user_id = $1`
	err := r.db.ExecContext(ctx, query, userID, key)
	if err != nil {
		logger.Error("CompanyRepository:SetLogoKey:Error:", err)
		return err
	}
	return nil
}

func (r *CompanyRepository) ListVerified(ctx context.Context) ([]entity.Company, error) {
	query := `
		SELECT user_id, name, website, description, logo_key, verified, created_at, updated_at
		FROM companies WHERE verified = TRUE ORDER BY name
	`

	companies := []entity.Company{}
	err := r.db.SelectContext(ctx, &companies, query)
	if err != nil {
		logger.Error("CompanyRepository:ListVerified:Error:", err)
		return nil, err
	}
	return companies, nil
}
