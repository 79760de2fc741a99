package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Member struct {
	ID           int       `db:"id"`
	MemberNumber string    `db:"member_number"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Phone        string    `db:"phone"`
	Email        string    `db:"email"`
	NationalID   string    `db:"national_id"`
	Address      string    `db:"address"`
	Status       string    `db:"status"`
	IsActive     bool      `db:"is_active"`
	JoinedAt     time.Time `db:"joined_at"`
}

type Savings struct {
	ID        int       `db:"id"`
	MemberID  int       `db:"member_id"`
	Balance   float64   `db:"balance"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Deposit struct {
	ID            int        `db:"id"`
	DepositNumber string     `db:"deposit_number"`
	MemberID      int        `db:"member_id"`
	Amount        float64    `db:"amount"`
	Method        string     `db:"method"`
	Status        string     `db:"status"`
	RecordedBy    int        `db:"recorded_by"`
	ApprovedBy    *int       `db:"approved_by"`
	ApprovedAt    *time.Time `db:"approved_at"`
	Notes         string     `db:"notes"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Loan struct {
	ID           int        `db:"id"`
	LoanNumber   string     `db:"loan_number"`
	MemberID     int        `db:"member_id"`
	Principal    float64    `db:"principal"`
	InterestRate float64    `db:"interest_rate"`
	TermMonths   int        `db:"term_months"`
	Purpose      string     `db:"purpose"`
	Status       string     `db:"status"`
	Balance      float64    `db:"balance"`
	DisbursedAt  *time.Time `db:"disbursed_at"`
	DueDate      *time.Time `db:"due_date"`
	ApprovedBy   *int       `db:"approved_by"`
	ApprovedAt   *time.Time `db:"approved_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Repayment struct {
	ID          int       `db:"id"`
	LoanID      int       `db:"loan_id"`
	Amount      float64   `db:"amount"`
	Method      string    `db:"method"`
	ProcessedBy int       `db:"processed_by"`
	Notes       string    `db:"notes"`
	PaidAt      time.Time `db:"paid_at"`
}

// Transaction types recorded in the audit log.
const (
	TxTypeDeposit          = "deposit"
	TxTypeWithdrawal       = "withdrawal"
	TxTypeLoanDisbursement = "loan_disbursement"
	TxTypeLoanPayment      = "loan_payment"
)

// Transaction is an append-only audit entry. Every savings or loan balance
// change writes exactly one of these in the same database transaction.
type Transaction struct {
	ID          int       `db:"id"`
	Reference   string    `db:"reference"`
	MemberID    *int      `db:"member_id"`
	LoanID      *int      `db:"loan_id"`
	Type        string    `db:"type"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	ProcessedBy int       `db:"processed_by"`
	CreatedAt   time.Time `db:"created_at"`
}

type DashboardStats struct {
	ActiveMembers     int     `json:"active_members"`
	TotalSavings      float64 `json:"total_savings"`
	ActiveLoanBalance float64 `json:"active_loan_balance"`
	PendingLoans      int     `json:"pending_loans"`
	DefaultRate       float64 `json:"default_rate"`
}
