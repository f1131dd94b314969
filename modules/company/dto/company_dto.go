package dto

import "time"

type UpdateCompanyProfileRequest struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}

type CompanyProfileResponse struct {
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	LogoKey     string    `json:"logo_key,omitempty"`
	Verified    bool      `json:"verified"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateRegistrationRequest struct {
	EventID string `json:"event_id" validate:"required"`
}

type DecideRegistrationRequest struct {
	Approve    bool   `json:"approve"`
	AdminNotes string `json:"admin_notes"`
}

type UploadResponse struct {
	Key string `json:"key"`
}
