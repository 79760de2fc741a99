package dto

import "time"

type CreateDepositRequestDTO struct {
	MemberID int     `json:"member_id" example:"1"`
	Amount   float64 `json:"amount" example:"100000"`
	Method   string  `json:"method" example:"cash"`
	Notes    string  `json:"notes,omitempty"`
}

type DepositResponseDTO struct {
	ID            int        `json:"id" example:"1"`
	DepositNumber string     `json:"deposit_number" example:"DEP-9F2C41AB"`
	MemberID      int        `json:"member_id" example:"1"`
	Amount        float64    `json:"amount" example:"100000"`
	Method        string     `json:"method" example:"cash"`
	Status        string     `json:"status" example:"pending"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
