package dto

import "time"

type RegisterMemberRequestDTO struct {
	MemberNumber string `json:"member_number" example:"VFA010"`
	FirstName    string `json:"first_name" example:"Amina"`
	LastName     string `json:"last_name" example:"Odhiambo"`
	Phone        string `json:"phone" example:"+255700123456"`
	Email        string `json:"email,omitempty" example:"amina@example.com"`
	NationalID   string `json:"national_id,omitempty" example:"19870402-00001"`
	Address      string `json:"address,omitempty" example:"Mwanza"`
}

type UpdateMemberStatusRequestDTO struct {
	Status string `json:"status" example:"frozen"`
}

type MemberResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	MemberNumber string    `json:"member_number" example:"VFA010"`
	FirstName    string    `json:"first_name" example:"Amina"`
	LastName     string    `json:"last_name" example:"Odhiambo"`
	Phone        string    `json:"phone" example:"+255700123456"`
	Email        string    `json:"email,omitempty"`
	NationalID   string    `json:"national_id,omitempty"`
	Address      string    `json:"address,omitempty"`
	Status       string    `json:"status" example:"active"`
	IsActive     bool      `json:"is_active" example:"true"`
	JoinedAt     time.Time `json:"joined_at"`
	Savings      float64   `json:"savings_balance" example:"100000"`
}
