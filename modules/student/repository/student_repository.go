package repository

import (
	"context"
	"database/sql"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/student/entity"

	"github.com/google/uuid"
)

type StudentRepositoryInterface interface {
	CreateProfile(ctx context.Context, student *entity.Student) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error)
	UpdateProfile(ctx context.Context, student *entity.Student) error
	SetHeadStart(ctx context.Context, userID uuid.UUID, headStart bool) error
	SetFileKey(ctx context.Context, userID uuid.UUID, column, key string) error
}

type StudentRepository struct {
	db database.IDatabase
}

func NewStudentRepository(db database.IDatabase) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) CreateProfile(ctx context.Context, student *entity.Student) error {
	query := `
		INSERT INTO students (user_id, program, cohort_year, head_start)
		VALUES ($1, $2, $3, $4)
	`
	err := r.db.ExecContext(ctx, query, student.UserID, student.Program, student.CohortYear, student.HeadStart)
	if err != nil {
		logger.Error("StudentRepository:CreateProfile:Error:", err)
		return err
	}
	return nil
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error) {
	query := `
		SELECT user_id, program, cohort_year, head_start, resume_key, cv_key, created_at, updated_at
		FROM students WHERE user_id = $1
	`

	var student entity.Student
	err := r.db.GetContext(ctx, &student, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("StudentRepository:GetByUserID:Error:", err)
		return nil, err
	}

	return &student, nil
}

func (r *StudentRepository) UpdateProfile(ctx context.Context, student *entity.Student) error {
	query := `
		UPDATE students SET program = $2, cohort_year = $3, updated_at = NOW()
		WHERE user_id = $1
	`
	err := r.db.ExecContext(ctx, query, student.UserID, student.Program, student.CohortYear)
	if err != nil {
		logger.Error("StudentRepository:UpdateProfile:Error:", err)
		return err
	}
	return nil
}

func (r *StudentRepository) SetHeadStart(ctx context.Context, userID uuid.UUID, headStart bool) error {
	query := `UPDATE students SET head_start = $2, updated_at = NOW() WHERE user_id = $1`
	err := r.db.ExecContext(ctx, query, userID, headStart)
	if err != nil {
		logger.Error("StudentRepository:SetHeadStart:Error:", err)
		return err
	}
	return nil
}

// SetFileKey updates resume_key or cv_key. The column name is restricted to
// the two known values before it is interpolated.
func (r *StudentRepository) SetFileKey(ctx context.Context, userID uuid.UUID, column, key string) error {
	if column != "resume_key" && column != "cv_key" {
		return sql.ErrNoRows
	}
	query := `UPDATE students SET ` + column + ` = $2, updated_at = NOW() WHERE user_id = $1`
	err := r.db.ExecContext(ctx, query, userID, key)
	if err != nil {
		logger.Error("StudentRepository:SetFileKey:Error:", err)
		return err
	}
	return nil
}
