package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/service/loanservice"
)

func NewMock(t *testing.T) (*Service, *MockTransactionRepo, *MockMemberRepo, *MockSavingsRepo, *MockLoanRepo) {
	ctrl := gomock.NewController(t)
	transactionRepo := NewMockTransactionRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	savingsRepo := NewMockSavingsRepo(ctrl)
	loanRepo := NewMockLoanRepo(ctrl)

	service := New(transactionRepo, memberRepo, savingsRepo, loanRepo)
	defer ctrl.Finish()
	return service, transactionRepo, memberRepo, savingsRepo, loanRepo
}

func TestListTransactions(t *testing.T) {
	service, transactionRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "Zero limit falls back to the default", limit: 0, expectedLimit: 50},
		{name: "Negative limit falls back to the default", limit: -5, expectedLimit: 50},
		{name: "Explicit limit is honored", limit: 20, expectedLimit: 20},
		{name: "Oversized limit is capped", limit: 1000, expectedLimit: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactionRepo.EXPECT().List(context.Background(), nil, tt.expectedLimit).Return([]domain.Transaction{}, nil)

			_, err := service.ListTransactions(context.Background(), nil, tt.limit)
			assert.NoError(t, err)
		})
	}

	t.Run("Member filter is passed through", func(t *testing.T) {
		memberID := 3
		transactionRepo.EXPECT().List(context.Background(), &memberID, 50).Return([]domain.Transaction{{ID: 1}}, nil)

		txns, err := service.ListTransactions(context.Background(), &memberID, 0)
		assert.NoError(t, err)
		assert.Len(t, txns, 1)
	})
}

func TestDashboardStats(t *testing.T) {
	service, _, memberRepo, savingsRepo, loanRepo := NewMock(t)

	t.Run("Aggregates are assembled from every store", func(t *testing.T) {
		memberRepo.EXPECT().CountActive(gomock.Any()).Return(25, nil)
		savingsRepo.EXPECT().TotalBalance(gomock.Any()).Return(4200000.0, nil)
		loanRepo.EXPECT().SumActiveBalances(gomock.Any()).Return(1500000.0, nil)
		loanRepo.EXPECT().CountByStatus(gomock.Any(), loanservice.PendingLoanStatus).Return(3, nil)
		loanRepo.EXPECT().CountByStatus(gomock.Any(), loanservice.DefaultedLoanStatus).Return(2, nil)
		loanRepo.EXPECT().Count(gomock.Any()).Return(10, nil)

		stats, err := service.DashboardStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 25, stats.ActiveMembers)
		assert.Equal(t, 4200000.0, stats.TotalSavings)
		assert.Equal(t, 1500000.0, stats.ActiveLoanBalance)
		assert.Equal(t, 3, stats.PendingLoans)
		assert.InDelta(t, 0.2, stats.DefaultRate, 1e-9)
	})

	t.Run("No loans means zero default rate", func(t *testing.T) {
		memberRepo.EXPECT().CountActive(gomock.Any()).Return(0, nil)
		savingsRepo.EXPECT().TotalBalance(gomock.Any()).Return(0.0, nil)
		loanRepo.EXPECT().SumActiveBalances(gomock.Any()).Return(0.0, nil)
		loanRepo.EXPECT().CountByStatus(gomock.Any(), loanservice.PendingLoanStatus).Return(0, nil)
		loanRepo.EXPECT().CountByStatus(gomock.Any(), loanservice.DefaultedLoanStatus).Return(0, nil)
		loanRepo.EXPECT().Count(gomock.Any()).Return(0, nil)

		stats, err := service.DashboardStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0.0, stats.DefaultRate)
	})

	t.Run("Any store failure fails the whole dashboard", func(t *testing.T) {
		memberRepo.EXPECT().CountActive(gomock.Any()).Return(0, errors.New("database error"))
		savingsRepo.EXPECT().TotalBalance(gomock.Any()).Return(0.0, nil).AnyTimes()
		loanRepo.EXPECT().SumActiveBalances(gomock.Any()).Return(0.0, nil).AnyTimes()
		loanRepo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
		loanRepo.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()

		stats, err := service.DashboardStats(context.Background())
		assert.Error(t, err)
		assert.Nil(t, stats)
	})
}
