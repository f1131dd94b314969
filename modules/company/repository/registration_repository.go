package repository

import (
	"context"
	"database/sql"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/company/entity"

	"github.com/google/uuid"
)

type RegistrationRepositoryInterface interface {
	Create(ctx context.Context, reg *entity.Registration) (*entity.Registration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error)
	GetByEventAndCompany(ctx context.Context, eventID, companyID uuid.UUID) (*entity.Registration, error)
	Decide(ctx context.Context, id uuid.UUID, status, adminNotes string) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.RegistrationWithCompany, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Registration, error)
	ListApprovedCompanyIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
}

type RegistrationRepository struct {
	db database.IDatabase
}

func NewRegistrationRepository(db database.IDatabase) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *entity.Registration) (*entity.Registration, error) {
	query := `
		INSERT INTO event_registrations (event_id, company_id, status)
		VALUES (:event_id, :company_id, :status)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, reg)
	if err != nil {
		logger.Error("RegistrationRepository:Create:Error:", err)
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&reg.ID); err != nil {
			logger.Error("RegistrationRepository:Create:Scan:Error:", err)
			return nil, err
		}
	}
	return reg, nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	query := `
		SELECT id, event_id, company_id, status, admin_notes, decided_at, created_at, updated_at
		FROM event_registrations WHERE id = $1
	`

	var reg entity.Registration
	err := r.db.GetContext(ctx, &reg, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RegistrationRepository:GetByID:Error:", err)
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) GetByEventAndCompany(ctx context.Context, eventID, companyID uuid.UUID) (*entity.Registration, error) {
	query := `
		SELECT id, event_id, company_id, status, admin_notes, decided_at, created_at, updated_at
		FROM event_registrations WHERE event_id = $1 AND company_id = $2
	`

	var reg entity.Registration
	err := r.db.GetContext(ctx, &reg, query, eventID, companyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RegistrationRepository:GetByEventAndCompany:Error:", err)
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) Decide(ctx context.Context, id uuid.UUID, status, adminNotes string) error {
	query := `
		UPDATE event_registrations
		SET status = $2, admin_notes = $3, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, id, status, adminNotes)
	if err != nil {
		logger.Error("RegistrationRepository:Decide:Error:", err)
		return err
	}
	return nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.RegistrationWithCompany, error) {
	query := `
		SELECT r.id, r.event_id, r.company_id, r.status, r.admin_notes, r.decided_at,
		       r.created_at, r.updated_at,
		       c.name AS company_name, c.website AS company_website
		FROM event_registrations r
		JOIN companies c ON c.user_id = r.company_id
		WHERE r.event_id = $1
		ORDER BY r.created_at
	`

	regs := []entity.RegistrationWithCompany{}
	err := r.db.SelectContext(ctx, &regs, query, eventID)
	if err != nil {
		logger.Error("RegistrationRepository:ListByEvent:Error:", err)
		return nil, err
	}
	return regs, nil
}

func (r *RegistrationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Registration, error) {
	query := `
		SELECT id, event_id, company_id, status, admin_notes, decided_at, created_at, updated_at
		FROM event_registrations WHERE company_id = $1
		ORDER BY created_at DESC
	`

	regs := []entity.Registration{}
	err := r.db.SelectContext(ctx, &regs, query, companyID)
	if err != nil {
		logger.Error("RegistrationRepository:ListByCompany:Error:", err)
		return nil, err
	}
	return regs, nil
}

// ListApprovedCompanyIDs feeds slot generation: only approved companies get
// interview slots for the event.
func (r *RegistrationRepository) ListApprovedCompanyIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT company_id FROM event_registrations
		WHERE event_id = $1 AND status = $2
		ORDER BY company_id
	`

	ids := []uuid.UUID{}
	err := r.db.SelectContext(ctx, &ids, query, eventID, entity.RegistrationApproved)
	if err != nil {
		logger.Error("RegistrationRepository:ListApprovedCompanyIDs:Error:", err)
		return nil, err
	}
	return ids, nil
}
