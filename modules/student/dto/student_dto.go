package dto

import "time"

type UpdateStudentProfileRequest struct {
	Program    string `json:"program"`
	CohortYear int    `json:"cohort_year"`
}

type SetHeadStartRequest struct {
	HeadStart bool `json:"head_start"`
}

type StudentProfileResponse struct {
	UserID     string    `json:"user_id"`
	Program    string    `json:"program"`
	CohortYear int       `json:"cohort_year"`
	HeadStart  bool      `json:"head_start"`
	ResumeKey  string    `json:"resume_key,omitempty"`
	CVKey      string    `json:"cv_key,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UploadResponse struct {
	Key string `json:"key"`
}
