package ledgerservice

import (
	"context"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/service/loanservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TransactionRepo interface {
	List(ctx context.Context, memberID *int, limit int) ([]domain.Transaction, error)
}

type MemberRepo interface {
	CountActive(ctx context.Context) (int, error)
}

type SavingsRepo interface {
	TotalBalance(ctx context.Context) (float64, error)
}

type LoanRepo interface {
	SumActiveBalances(ctx context.Context) (float64, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	Count(ctx context.Context) (int, error)
}

type Service struct {
	transactionRepo TransactionRepo
	memberRepo      MemberRepo
	savingsRepo     SavingsRepo
	loanRepo        LoanRepo
}

func New(transactionRepo TransactionRepo, memberRepo MemberRepo, savingsRepo SavingsRepo, loanRepo LoanRepo) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		memberRepo:      memberRepo,
		savingsRepo:     savingsRepo,
		loanRepo:        loanRepo,
	}
}

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 200
)

func (s *Service) ListTransactions(ctx context.Context, memberID *int, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}

	txns, err := s.transactionRepo.List(ctx, memberID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

// DashboardStats recomputes every aggregate from the full collections on each
// call. A simple fold is enough at SACCO scale; there is no cache to go
// stale.
func (s *Service) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	var totalLoans, defaultedLoans int

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.ActiveMembers, err = s.memberRepo.CountActive(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalSavings, err = s.savingsRepo.TotalBalance(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ActiveLoanBalance, err = s.loanRepo.SumActiveBalances(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PendingLoans, err = s.loanRepo.CountByStatus(ctx, loanservice.PendingLoanStatus)
		return err
	})
	g.Go(func() error {
		var err error
		totalLoans, err = s.loanRepo.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		defaultedLoans, err = s.loanRepo.CountByStatus(ctx, loanservice.DefaultedLoanStatus)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute dashboard stats", zap.Error(err))
		return nil, err
	}

	if totalLoans > 0 {
		stats.DefaultRate = float64(defaultedLoans) / float64(totalLoans)
	}
	return &stats, nil
}
