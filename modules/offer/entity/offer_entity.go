package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Offer struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	CompanyID     uuid.UUID      `db:"company_id" json:"company_id"`
	EventID       *uuid.UUID     `db:"event_id" json:"event_id,omitempty"`
	Title         string         `db:"title" json:"title"`
	Slug          string         `db:"slug" json:"slug"`
	Description   string         `db:"description" json:"description"`
	Category      string         `db:"category" json:"category"`
	Department    string         `db:"department" json:"department"`
	DurationWeeks int            `db:"duration_weeks" json:"duration_weeks"`
	Paid          bool           `db:"paid" json:"paid"`
	Remote        bool           `db:"remote" json:"remote"`
	Skills        pq.StringArray `db:"skills" json:"skills"`
	Active        bool           `db:"active" json:"active"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// OfferWithCompany is the public listing row.
type OfferWithCompany struct {
	Offer
	CompanyName string `db:"company_name" json:"company_name"`
}
