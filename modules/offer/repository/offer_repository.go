package repository

import (
	"context"
	"database/sql"
	"fmt"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/offer/entity"

	"github.com/google/uuid"
)

type OfferRepositoryInterface interface {
	Create(ctx context.Context, offer *entity.Offer) (*entity.Offer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Offer, error)
	Update(ctx context.Context, offer *entity.Offer) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Offer, error)
	ListActive(ctx context.Context, eventID *uuid.UUID, category string, remote *bool) ([]entity.OfferWithCompany, error)
	CountBySlugPrefix(ctx context.Context, prefix string) (int, error)
}

type OfferRepository struct {
	db database.IDatabase
}

func NewOfferRepository(db database.IDatabase) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = `id, company_id, event_id, title, slug, description, category,
	department, duration_weeks, paid, remote, skills, active, created_at, updated_at`

func (r *OfferRepository) Create(ctx context.Context, offer *entity.Offer) (*entity.Offer, error) {
	query := `
		INSERT INTO offers (
			company_id, event_id, title, slug, description, category,
			department, duration_weeks, paid, remote, skills, active
		) VALUES (
			:company_id, :event_id, :title, :slug, :description, :category,
			:department, :duration_weeks, :paid, :remote, :skills, :active
		)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, offer)
	if err != nil {
		logger.Error("OfferRepository:Create:Error:", err)
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&offer.ID); err != nil {
			logger.Error("OfferRepository:Create:Scan:Error:", err)
			return nil, err
		}
	}
	return offer, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	var offer entity.Offer
	err := r.db.GetContext(ctx, &offer, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("OfferRepository:GetByID:Error:", err)
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) GetBySlug(ctx context.Context, slug string) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE slug = $1`

	var offer entity.Offer
	err := r.db.GetContext(ctx, &offer, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("OfferRepository:GetBySlug:Error:", err)
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) Update(ctx context.Context, offer *entity.Offer) error {
	query := `
		UPDATE offers SET
			title = :title,
			description = :description,
			category = :category,
			department = :department,
			duration_weeks = :duration_weeks,
			paid = :paid,
			remote = :remote,
			skills = :skills,
			active = :active,
			updated_at = NOW()
		WHERE id = :id
	`

	_, err := r.db.NamedExecContext(ctx, query, offer)
	if err != nil {
		logger.Error("OfferRepository:Update:Error:", err)
		return err
	}
	return nil
}

func (r *OfferRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE company_id = $1 ORDER BY created_at DESC`

	offers := []entity.Offer{}
	err := r.db.SelectContext(ctx, &offers, query, companyID)
	if err != nil {
		logger.Error("OfferRepository:ListByCompany:Error:", err)
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepository) ListActive(ctx context.Context, eventID *uuid.UUID, category string, remote *bool) ([]entity.OfferWithCompany, error) {
	query := `
		SELECT o.id, o.company_id, o.event_id, o.title, o.slug, o.description,
		       o.category, o.department, o.duration_weeks, o.paid, o.remote,
		       o.skills, o.active, o.created_at, o.updated_at,
		       c.name AS company_name
		FROM offers o
		JOIN companies c ON c.user_id = o.company_id
		WHERE o.active = TRUE AND c.verified = TRUE
	`
	args := []any{}
	if eventID != nil {
		args = append(args, *eventID)
		query += fmt.Sprintf(" AND o.event_id = $%d", len(args))
	}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND o.category = $%d", len(args))
	}
	if remote != nil {
		args = append(args, *remote)
		query += fmt.Sprintf(" AND o.remote = $%d", len(args))
	}
	query += ` ORDER BY o.created_at DESC`

	offers := []entity.OfferWithCompany{}
	err := r.db.SelectContext(ctx, &offers, query, args...)
	if err != nil {
		logger.Error("OfferRepository:ListActive:Error:", err)
		return nil, err
	}
	return offers, nil
}

// CountBySlugPrefix supports unique slug derivation: "title", "title-2", ...
func (r *OfferRepository) CountBySlugPrefix(ctx context.Context, prefix string) (int, error) {
	query := `SELECT COUNT(*) FROM offers WHERE slug = $1 OR slug LIKE $1 || '-%'`

	var count int
	err := r.db.GetContext(ctx, &count, query, prefix)
	if err != nil {
		logger.Error("OfferRepository:CountBySlugPrefix:Error:", err)
		return 0, err
	}
	return count, nil
}
