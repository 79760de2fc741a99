package dto

import "time"

type CreateLoanRequestDTO struct {
	MemberID     int     `json:"member_id" example:"1"`
	Principal    float64 `json:"principal" example:"1200000"`
	InterestRate float64 `json:"interest_rate" example:"15"`
	TermMonths   int     `json:"term_months" example:"12"`
	Purpose      string  `json:"purpose" example:"working capital"`
}

type LoanResponseDTO struct {
	ID           int        `json:"id" example:"1"`
	LoanNumber   string     `json:"loan_number" example:"LN-7D01E3F2"`
	MemberID     int        `json:"member_id" example:"1"`
	Principal    float64    `json:"principal" example:"1200000"`
	InterestRate float64    `json:"interest_rate" example:"15"`
	TermMonths   int        `json:"term_months" example:"12"`
	Purpose      string     `json:"purpose,omitempty"`
	Status       string     `json:"status" example:"pending"`
	Balance      float64    `json:"balance" example:"1200000"`
	DisbursedAt  *time.Time `json:"disbursed_at,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type RecordRepaymentRequestDTO struct {
	Amount float64 `json:"amount" example:"400000"`
	Method string  `json:"method" example:"mobile_money"`
	Notes  string  `json:"notes,omitempty"`
}

type RepaymentResponseDTO struct {
	ID     int       `json:"id" example:"1"`
	LoanID int       `json:"loan_id" example:"1"`
	Amount float64   `json:"amount" example:"400000"`
	Method string    `json:"method" example:"mobile_money"`
	Notes  string    `json:"notes,omitempty"`
	PaidAt time.Time `json:"paid_at"`
}

type MonthlyPaymentResponseDTO struct {
	Principal      float64 `json:"principal" example:"1200000"`
	InterestRate   float64 `json:"interest_rate" example:"15"`
	TermMonths     int     `json:"term_months" example:"12"`
	MonthlyPayment float64 `json:"monthly_payment" example:"108309.97"`
}
