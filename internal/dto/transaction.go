package dto

import "time"

type TransactionResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	Reference   string    `json:"reference" example:"5f3a1c9e-8d5b-4a6f-9c2d-1e7b8a0f4c3d"`
	MemberID    *int      `json:"member_id,omitempty"`
	LoanID      *int      `json:"loan_id,omitempty"`
	Type        string    `json:"type" example:"deposit"`
	Amount      float64   `json:"amount" example:"100000"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
