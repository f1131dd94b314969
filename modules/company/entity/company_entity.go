package entity

import (
	"time"

	"github.com/google/uuid"
)

// Registration statuses for a company joining a forum event.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

type Company struct {
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Website     string    `db:"website" json:"website"`
	Description string    `db:"description" json:"description"`
	LogoKey     *string   `db:"logo_key" json:"logo_key,omitempty"`
	Verified    bool      `db:"verified" json:"verified"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Registration ties a company to a forum event. Only approved companies take
// part in slot generation and can publish offers for the event.
type Registration struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	EventID    uuid.UUID  `db:"event_id" json:"event_id"`
	CompanyID  uuid.UUID  `db:"company_id" json:"company_id"`
	Status     string     `db:"status" json:"status"`
	AdminNotes *string    `db:"admin_notes" json:"admin_notes,omitempty"`
	DecidedAt  *time.Time `db:"decided_at" json:"decided_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// RegistrationWithCompany is the admin listing row.
type RegistrationWithCompany struct {
	Registration
	CompanyName    string `db:"company_name" json:"company_name"`
	CompanyWebsite string `db:"company_website" json:"company_website"`
}
