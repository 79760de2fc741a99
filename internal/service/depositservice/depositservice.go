package depositservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/pkg/validate"
	"go.uber.org/zap"
)

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	GetByID(ctx context.Context, id int) (*domain.Deposit, error)
	Resolve(ctx context.Context, id int, status string, approverID int, approvedAt time.Time) (*domain.Deposit, error)
	ListByMemberID(ctx context.Context, memberID int) ([]domain.Deposit, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Deposit, error)
}

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
}

type SavingsRepo interface {
	AddToBalance(ctx context.Context, memberID int, amount float64) (*domain.Savings, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	depositRepo     DepositRepo
	memberRepo      MemberRepo
	savingsRepo     SavingsRepo
	transactionRepo TransactionRepo
	txManager       TXManager
}

func New(depositRepo DepositRepo, memberRepo MemberRepo, savingsRepo SavingsRepo, transactionRepo TransactionRepo, txManager TXManager) *Service {
	return &Service{
		depositRepo:     depositRepo,
		memberRepo:      memberRepo,
		savingsRepo:     savingsRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Deposit statuses. pending is the only state transitions start from.
const (
	PendingDepositStatus  string = "pending"
	ApprovedDepositStatus string = "approved"
	RejectedDepositStatus string = "rejected"
)

var (
	ErrDepositNotFound = errors.New("deposit not found")
	ErrNotPending      = errors.New("deposit is not pending")
	ErrMemberNotFound  = errors.New("member not found")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidMethod   = errors.New("unknown payment method")
)

func newDepositNumber() string {
	return "DEP-" + strings.ToUpper(uuid.New().String()[:8])
}

// Create records a member funds-in request. Status is always pending no
// matter what the caller sends.
func (s *Service) Create(ctx context.Context, memberID int, amount float64, method string, recorderID int, notes string) (*domain.Deposit, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if !validate.IsPaymentMethod(method) {
		return nil, ErrInvalidMethod
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	deposit := &domain.Deposit{
		DepositNumber: newDepositNumber(),
		MemberID:      memberID,
		Amount:        amount,
		Method:        method,
		Status:        PendingDepositStatus,
		RecordedBy:    recorderID,
		Notes:         notes,
	}

	deposit, err = s.depositRepo.Create(ctx, deposit)
	if err != nil {
		zap.L().Error("can't create deposit", zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit created", zap.String("deposit_number", deposit.DepositNumber))
	return deposit, nil
}

// Approve credits the member's savings and writes the audit transaction in
// the same database transaction as the status change. The pending guard is
// re-checked against persisted state, so concurrent approvals cannot both
// succeed.
func (s *Service) Approve(ctx context.Context, depositID, approverID int) (*domain.Deposit, error) {
	var approved *domain.Deposit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deposit, err := s.depositRepo.GetByID(ctx, depositID)
		if err != nil {
			return err
		}
		if deposit == nil {
			return ErrDepositNotFound
		}

		approved, err = s.depositRepo.Resolve(ctx, depositID, ApprovedDepositStatus, approverID, time.Now())
		if err != nil {
			return err
		}
		if approved == nil {
			return ErrNotPending
		}

		if _, err := s.savingsRepo.AddToBalance(ctx, approved.MemberID, approved.Amount); err != nil {
			return err
		}

		memberID := approved.MemberID
		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			Reference:   uuid.New().String(),
			MemberID:    &memberID,
			Type:        domain.TxTypeDeposit,
			Amount:      approved.Amount,
			Description: fmt.Sprintf("deposit %s approved", approved.DepositNumber),
			ProcessedBy: approverID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrDepositNotFound) && !errors.Is(err, ErrNotPending) {
			zap.L().Error("can't approve deposit", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("deposit approved", zap.String("deposit_number", approved.DepositNumber), zap.Int("approver", approverID))
	return approved, nil
}

// Reject closes a pending deposit without touching the savings balance. No
// audit transaction is written because no balance changed.
func (s *Service) Reject(ctx context.Context, depositID, approverID int) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, ErrDepositNotFound
	}

	rejected, err := s.depositRepo.Resolve(ctx, depositID, RejectedDepositStatus, approverID, time.Now())
	if err != nil {
		zap.L().Error("can't reject deposit", zap.Error(err))
		return nil, err
	}
	if rejected == nil {
		return nil, ErrNotPending
	}

	zap.L().Info("deposit rejected", zap.String("deposit_number", rejected.DepositNumber), zap.Int("approver", approverID))
	return rejected, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get deposit", zap.Error(err))
		return nil, err
	}
	if deposit == nil {
		return nil, ErrDepositNotFound
	}
	return deposit, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID int) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.ListByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.ListByStatus(ctx, PendingDepositStatus)
	if err != nil {
		zap.L().Error("failed to fetch pending deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
