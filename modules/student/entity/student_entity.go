package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student is the profile row backing a user with the student role.
// HeadStart marks students in the early-placement cohort; they are excluded
// from priority-phase booking and become eligible when the open phase starts.
type Student struct {
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Program    string    `db:"program" json:"program"`
	CohortYear int       `db:"cohort_year" json:"cohort_year"`
	HeadStart  bool      `db:"head_start" json:"head_start"`
	ResumeKey  *string   `db:"resume_key" json:"resume_key,omitempty"`
	CVKey      *string   `db:"cv_key" json:"cv_key,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
