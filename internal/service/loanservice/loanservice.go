package loanservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/pkg/validate"
	"go.uber.org/zap"
)

type LoanRepo interface {
	Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)
	GetByID(ctx context.Context, id int) (*domain.Loan, error)
	Approve(ctx context.Context, id, approverID int, disbursedAt, dueDate time.Time) (*domain.Loan, error)
	Reject(ctx context.Context, id, approverID int, rejectedAt time.Time) (*domain.Loan, error)
	ApplyRepayment(ctx context.Context, id int, amount float64) (*domain.Loan, error)
	ListByMemberID(ctx context.Context, memberID int) ([]domain.Loan, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Loan, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	MarkDefaulted(ctx context.Context, cutoff time.Time) (int64, error)
}

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
}

type RepaymentRepo interface {
	Create(ctx context.Context, repayment *domain.Repayment) (*domain.Repayment, error)
	ListByLoanID(ctx context.Context, loanID int) ([]domain.Repayment, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	loanRepo        LoanRepo
	memberRepo      MemberRepo
	repaymentRepo   RepaymentRepo
	transactionRepo TransactionRepo
	txManager       TXManager
}

func New(loanRepo LoanRepo, memberRepo MemberRepo, repaymentRepo RepaymentRepo, transactionRepo TransactionRepo, txManager TXManager) *Service {
	return &Service{
		loanRepo:        loanRepo,
		memberRepo:      memberRepo,
		repaymentRepo:   repaymentRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Loan statuses. pending may move to active or rejected; active loans become
// paid when the balance reaches zero, or overdue/defaulted via the sweep.
const (
	PendingLoanStatus   string = "pending"
	ActiveLoanStatus    string = "active"
	RejectedLoanStatus  string = "rejected"
	PaidLoanStatus      string = "paid"
	OverdueLoanStatus   string = "overdue"
	DefaultedLoanStatus string = "defaulted"
)

var (
	ErrLoanNotFound   = errors.New("loan not found")
	ErrNotPending     = errors.New("loan is not pending")
	ErrLoanNotPayable = errors.New("loan is not active")
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrInvalidMethod  = errors.New("unknown payment method")
	ErrInvalidTerm    = errors.New("term months must be positive")
	ErrInvalidRate    = errors.New("interest rate cannot be negative")
)

func newLoanNumber() string {
	return "LN-" + strings.ToUpper(uuid.New().String()[:8])
}

type CreateInput struct {
	MemberID     int
	Principal    float64
	InterestRate float64
	TermMonths   int
	Purpose      string
}

// Create opens a pending loan. The balance is forced to the principal no
// matter what the caller sends, so balance and principal cannot drift at
// creation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Loan, error) {
	if !validate.IsPositiveAmount(input.Principal) {
		return nil, ErrInvalidAmount
	}
	if input.TermMonths <= 0 {
		return nil, ErrInvalidTerm
	}
	if input.InterestRate < 0 {
		return nil, ErrInvalidRate
	}

	member, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	loan := &domain.Loan{
		LoanNumber:   newLoanNumber(),
		MemberID:     input.MemberID,
		Principal:    input.Principal,
		InterestRate: input.InterestRate,
		TermMonths:   input.TermMonths,
		Purpose:      input.Purpose,
		Status:       PendingLoanStatus,
		Balance:      input.Principal,
	}

	loan, err = s.loanRepo.Create(ctx, loan)
	if err != nil {
		zap.L().Error("can't create loan", zap.Error(err))
		return nil, err
	}

	zap.L().Info("loan application created", zap.String("loan_number", loan.LoanNumber))
	return loan, nil
}

// Approve activates a pending loan and writes the disbursement audit
// transaction for the full principal in the same database transaction.
func (s *Service) Approve(ctx context.Context, loanID, approverID int) (*domain.Loan, error) {
	var approved *domain.Loan
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, err := s.loanRepo.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if loan == nil {
			return ErrLoanNotFound
		}

		now := time.Now()
		dueDate := now.AddDate(0, loan.TermMonths, 0)
		approved, err = s.loanRepo.Approve(ctx, loanID, approverID, now, dueDate)
		if err != nil {
			return err
		}
		if approved == nil {
			return ErrNotPending
		}

		memberID := approved.MemberID
		loanRef := approved.ID
		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			Reference:   uuid.New().String(),
			MemberID:    &memberID,
			LoanID:      &loanRef,
			Type:        domain.TxTypeLoanDisbursement,
			Amount:      approved.Principal,
			Description: fmt.Sprintf("loan %s disbursed", approved.LoanNumber),
			ProcessedBy: approverID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrLoanNotFound) && !errors.Is(err, ErrNotPending) {
			zap.L().Error("can't approve loan", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("loan approved", zap.String("loan_number", approved.LoanNumber), zap.Int("approver", approverID))
	return approved, nil
}

// Reject closes a pending loan. Terminal; no audit transaction because no
// balance changed.
func (s *Service) Reject(ctx context.Context, loanID, approverID int) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}

	rejected, err := s.loanRepo.Reject(ctx, loanID, approverID, time.Now())
	if err != nil {
		zap.L().Error("can't reject loan", zap.Error(err))
		return nil, err
	}
	if rejected == nil {
		return nil, ErrNotPending
	}

	zap.L().Info("loan rejected", zap.String("loan_number", rejected.LoanNumber), zap.Int("approver", approverID))
	return rejected, nil
}

// RecordRepayment applies a payment to an active or overdue loan. The
// repayment record, the floored balance update (with paid flip at zero) and
// the audit transaction all commit together. Overpayment is accepted and
// simply floors the balance at zero.
func (s *Service) RecordRepayment(ctx context.Context, loanID int, amount float64, method string, processorID int, notes string) (*domain.Repayment, *domain.Loan, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, nil, ErrInvalidAmount
	}
	if !validate.IsPaymentMethod(method) {
		return nil, nil, ErrInvalidMethod
	}

	var repayment *domain.Repayment
	var updated *domain.Loan
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, err := s.loanRepo.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if loan == nil {
			return ErrLoanNotFound
		}

		updated, err = s.loanRepo.ApplyRepayment(ctx, loanID, amount)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrLoanNotPayable
		}

		repayment, err = s.repaymentRepo.Create(ctx, &domain.Repayment{
			LoanID:      loanID,
			Amount:      amount,
			Method:      method,
			ProcessedBy: processorID,
			Notes:       notes,
			PaidAt:      time.Now(),
		})
		if err != nil {
			return err
		}

		memberID := updated.MemberID
		loanRef := updated.ID
		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			Reference:   uuid.New().String(),
			MemberID:    &memberID,
			LoanID:      &loanRef,
			Type:        domain.TxTypeLoanPayment,
			Amount:      amount,
			Description: fmt.Sprintf("repayment on loan %s", updated.LoanNumber),
			ProcessedBy: processorID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrLoanNotFound) && !errors.Is(err, ErrLoanNotPayable) {
			zap.L().Error("can't record repayment", zap.Error(err))
		}
		return nil, nil, err
	}

	zap.L().Info("repayment recorded",
		zap.String("loan_number", updated.LoanNumber),
		zap.Float64("amount", amount),
		zap.String("status", updated.Status))
	return repayment, updated, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get loan", zap.Error(err))
		return nil, err
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}
	return loan, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID int) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch loans", zap.Error(err))
		return nil, err
	}
	return loans, nil
}

func (s *Service) ListRepayments(ctx context.Context, loanID int) ([]domain.Repayment, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}

	repayments, err := s.repaymentRepo.ListByLoanID(ctx, loanID)
	if err != nil {
		zap.L().Error("failed to fetch repayments", zap.Error(err))
		return nil, err
	}
	return repayments, nil
}

// MonthlyPayment is the reducing-balance annuity estimate: P·r·(1+r)^n /
// ((1+r)^n − 1) with r the monthly rate. Display-only; never mutates the
// ledger. Zero-rate loans degenerate to principal/term.
func (s *Service) MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(termMonths)
	}
	r := annualRate / 100 / 12
	factor := math.Pow(1+r, float64(termMonths))
	return principal * r * factor / (factor - 1)
}

// MarkOverdueLoans is the sweep entry point: active loans past their due date
// become overdue, and overdue loans more than graceDays past due become
// defaulted.
func (s *Service) MarkOverdueLoans(ctx context.Context, now time.Time, graceDays int) (int64, int64, error) {
	defaulted, err := s.loanRepo.MarkDefaulted(ctx, now.AddDate(0, 0, -graceDays))
	if err != nil {
		zap.L().Error("defaulted sweep failed", zap.Error(err))
		return 0, 0, err
	}

	overdue, err := s.loanRepo.MarkOverdue(ctx, now)
	if err != nil {
		zap.L().Error("overdue sweep failed", zap.Error(err))
		return 0, defaulted, err
	}

	return overdue, defaulted, nil
}
