package dto

import "time"

// ===================== Request DTOs =====================

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterStudentRequest self-service signup; companies are created by admins.
type RegisterStudentRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FullName   string `json:"full_name" validate:"required"`
	Program    string `json:"program"`
	CohortYear int    `json:"cohort_year"`
}

// CreateCompanyAccountRequest is admin-only; the generated password is
// delivered to the company contact by email.
type CreateCompanyAccountRequest struct {
	Email       string `json:"email" validate:"required,email"`
	ContactName string `json:"contact_name" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	Website     string `json:"website"`
}

// ===================== Response DTOs =====================

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // seconds
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
