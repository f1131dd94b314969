package repository

import (
	"context"
	"database/sql"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/auth/entity"

	"github.com/google/uuid"
)

type AuthRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type AuthRepository struct {
	db database.IDatabase
}

func NewAuthRepository(db database.IDatabase) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (role, email, password_hash, full_name, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, role, email, password_hash, full_name, active, email_verified_at, created_at, updated_at
	`

	var created entity.User
	err := r.db.GetContext(ctx, &created, query,
		user.Role, user.Email, user.PasswordHash, user.FullName, user.Active)
	if err != nil {
		logger.Error("AuthRepository:CreateUser:Error:", err)
		return nil, err
	}

	return &created, nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, role, email, password_hash, full_name, active, email_verified_at, created_at, updated_at
		FROM users WHERE email = $1
	`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail:Error:", err)
		return nil, err
	}

	return &user, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, role, email, password_hash, full_name, active, email_verified_at, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByID:Error:", err)
		return nil, err
	}

	return &user, nil
}

func (r *AuthRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		logger.Error("AuthRepository:UpdatePassword:Error:", err)
		return err
	}
	return nil
}
