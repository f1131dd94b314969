package dto

type CreateOfferRequest struct {
	EventID       string   `json:"event_id"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Department    string   `json:"department"`
	DurationWeeks int      `json:"duration_weeks"`
	Paid          bool     `json:"paid"`
	Remote        bool     `json:"remote"`
	Skills        []string `json:"skills"`
}

type UpdateOfferRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Department    *string  `json:"department"`
	DurationWeeks *int     `json:"duration_weeks"`
	Paid          *bool    `json:"paid"`
	Remote        *bool    `json:"remote"`
	Skills        []string `json:"skills"`
	Active        *bool    `json:"active"`
}

type OfferFilter struct {
	EventID  string `query:"event_id"`
	Category string `query:"category"`
	Remote   *bool  `query:"remote"`
}
