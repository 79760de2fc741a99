package loanservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/pkg/validate"
)

func NewMock(t *testing.T) (*Service, *MockLoanRepo, *MockMemberRepo, *MockRepaymentRepo, *MockTransactionRepo, *MockTXManager) {
	ctrl := gomock.NewController(t)
	loanRepo := NewMockLoanRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	repaymentRepo := NewMockRepaymentRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := NewMockTXManager(ctrl)

	service := New(loanRepo, memberRepo, repaymentRepo, transactionRepo, txManager)
	defer ctrl.Finish()
	return service, loanRepo, memberRepo, repaymentRepo, transactionRepo, txManager
}

func passthroughTx(txManager *MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreate(t *testing.T) {
	service, loanRepo, memberRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		input         CreateInput
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Application starts pending with balance equal to principal",
			input: CreateInput{MemberID: 1, Principal: 1200000, InterestRate: 15, TermMonths: 12, Purpose: "working capital"},
			prepareMock: func() {
				memberRepo.EXPECT().GetByID(context.Background(), 1).Return(&domain.Member{ID: 1}, nil)
				loanRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
						assert.Equal(t, PendingLoanStatus, loan.Status)
						assert.Equal(t, 1200000.0, loan.Balance)
						assert.NotEmpty(t, loan.LoanNumber)
						loan.ID = 1
						return loan, nil
					})
			},
			expectedError: nil,
		},
		{
			name:          "Non-positive principal rejected",
			input:         CreateInput{MemberID: 1, Principal: 0, InterestRate: 15, TermMonths: 12},
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Non-positive term rejected",
			input:         CreateInput{MemberID: 1, Principal: 1200000, InterestRate: 15, TermMonths: 0},
			prepareMock:   func() {},
			expectedError: ErrInvalidTerm,
		},
		{
			name:          "Negative rate rejected",
			input:         CreateInput{MemberID: 1, Principal: 1200000, InterestRate: -1, TermMonths: 12},
			prepareMock:   func() {},
			expectedError: ErrInvalidRate,
		},
		{
			name:  "Unknown member rejected",
			input: CreateInput{MemberID: 42, Principal: 1200000, InterestRate: 15, TermMonths: 12},
			prepareMock: func() {
				memberRepo.EXPECT().GetByID(context.Background(), 42).Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			loan, err := service.Create(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, loan)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, PendingLoanStatus, loan.Status)
				assert.Equal(t, loan.Principal, loan.Balance)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	service, loanRepo, _, _, transactionRepo, txManager := NewMock(t)

	pending := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", MemberID: 3, Principal: 1200000, TermMonths: 12, Status: PendingLoanStatus, Balance: 1200000}
	active := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", MemberID: 3, Principal: 1200000, TermMonths: 12, Status: ActiveLoanStatus, Balance: 1200000}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Approval activates the loan and writes the disbursement transaction",
			prepareMock: func() {
				passthroughTx(txManager)
				loanRepo.EXPECT().GetByID(gomock.Any(), 1).Return(pending, nil)
				loanRepo.EXPECT().Approve(gomock.Any(), 1, 9, gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, id, approverID int, disbursedAt, dueDate time.Time) (*domain.Loan, error) {
						assert.Equal(t, disbursedAt.AddDate(0, 12, 0), dueDate)
						return active, nil
					})
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TxTypeLoanDisbursement, txn.Type)
						assert.Equal(t, 1200000.0, txn.Amount)
						assert.Equal(t, 1, *txn.LoanID)
						return txn, nil
					})
			},
			expectedError: nil,
		},
		{
			name: "Unknown loan",
			prepareMock: func() {
				passthroughTx(txManager)
				loanRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrLoanNotFound,
		},
		{
			name: "Rejected loan cannot be approved afterwards",
			prepareMock: func() {
				passthroughTx(txManager)
				rejected := &domain.Loan{ID: 1, Status: RejectedLoanStatus}
				loanRepo.EXPECT().GetByID(gomock.Any(), 1).Return(rejected, nil)
				loanRepo.EXPECT().Approve(gomock.Any(), 1, 9, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			loan, err := service.Approve(context.Background(), 1, 9)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, loan)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, ActiveLoanStatus, loan.Status)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, loanRepo, _, _, _, _ := NewMock(t)

	pending := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", Status: PendingLoanStatus}
	rejected := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", Status: RejectedLoanStatus}

	t.Run("Rejection closes a pending loan", func(t *testing.T) {
		loanRepo.EXPECT().GetByID(context.Background(), 1).Return(pending, nil)
		loanRepo.EXPECT().Reject(context.Background(), 1, 9, gomock.Any()).Return(rejected, nil)

		loan, err := service.Reject(context.Background(), 1, 9)
		assert.NoError(t, err)
		assert.Equal(t, RejectedLoanStatus, loan.Status)
	})

	t.Run("Active loan cannot be rejected", func(t *testing.T) {
		active := &domain.Loan{ID: 1, Status: ActiveLoanStatus}
		loanRepo.EXPECT().GetByID(context.Background(), 1).Return(active, nil)
		loanRepo.EXPECT().Reject(context.Background(), 1, 9, gomock.Any()).Return(nil, nil)

		loan, err := service.Reject(context.Background(), 1, 9)
		assert.ErrorIs(t, err, ErrNotPending)
		assert.Nil(t, loan)
	})
}

func TestRecordRepayment(t *testing.T) {
	service, loanRepo, _, repaymentRepo, transactionRepo, txManager := NewMock(t)

	active := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", MemberID: 3, Principal: 1200000, Status: ActiveLoanStatus, Balance: 1200000}

	expectLedgerWrites := func(amount float64, updated *domain.Loan) {
		repaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, r *domain.Repayment) (*domain.Repayment, error) {
				assert.Equal(t, amount, r.Amount)
				r.ID = 1
				return r, nil
			})
		transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxTypeLoanPayment, txn.Type)
				assert.Equal(t, amount, txn.Amount)
				return txn, nil
			})
	}

	t.Run("Partial repayment reduces the balance", func(t *testing.T) {
		passthroughTx(txManager)
		updated := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", MemberID: 3, Status: ActiveLoanStatus, Balance: 800000}
		loanRepo.EXPECT().GetByID(gomock.Any(), 1).Return(active, nil)
		loanRepo.EXPECT().ApplyRepayment(gomock.Any(), 1, 400000.0).Return(updated, nil)
		expectLedgerWrites(400000, updated)

		repayment, loan, err := service.RecordRepayment(context.Background(), 1, 400000, validate.MethodMobileMoney, 9, "")
		assert.NoError(t, err)
		assert.Equal(t, 800000.0, loan.Balance)
		assert.Equal(t, ActiveLoanStatus, loan.Status)
		assert.Equal(t, 400000.0, repayment.Amount)
	})

	t.Run("Final repayment flips the loan to paid", func(t *testing.T) {
		passthroughTx(txManager)
		remaining := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", MemberID: 3, Status: ActiveLoanStatus, Balance: 400000}
		paid := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", MemberID: 3, Status: PaidLoanStatus, Balance: 0}
		loanRepo.EXPECT().GetByID(gomock.Any(), 1).Return(remaining, nil)
		loanRepo.EXPECT().ApplyRepayment(gomock.Any(), 1, 400000.0).Return(paid, nil)
		expectLedgerWrites(400000, paid)

		_, loan, err := service.RecordRepayment(context.Background(), 1, 400000, validate.MethodCash, 9, "")
		assert.NoError(t, err)
		assert.Equal(t, PaidLoanStatus, loan.Status)
		assert.Equal(t, 0.0, loan.Balance)
	})

	t.Run("Overpayment floors the balance at zero", func(t *testing.T) {
		passthroughTx(txManager)
		remaining := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", MemberID: 3, Status: ActiveLoanStatus, Balance: 500000}
		paid := &domain.Loan{ID: 1, LoanNumber: "LN-AB12CD34", MemberID: 3, Status: PaidLoanStatus, Balance: 0}
		loanRepo.EXPECT().GetByID(gomock.Any(), 1).Return(remaining, nil)
		loanRepo.EXPECT().ApplyRepayment(gomock.Any(), 1, 2000000.0).Return(paid, nil)
		expectLedgerWrites(2000000, paid)

		repayment, loan, err := service.RecordRepayment(context.Background(), 1, 2000000, validate.MethodBankTransfer, 9, "")
		assert.NoError(t, err)
		assert.Equal(t, 0.0, loan.Balance)
		assert.Equal(t, PaidLoanStatus, loan.Status)
		assert.Equal(t, 2000000.0, repayment.Amount)
	})

	t.Run("Pending loan is not payable", func(t *testing.T) {
		passthroughTx(txManager)
		pending := &domain.Loan{ID: 1, Status: PendingLoanStatus}
		loanRepo.EXPECT().GetByID(gomock.Any(), 1).Return(pending, nil)
		loanRepo.EXPECT().ApplyRepayment(gomock.Any(), 1, 400000.0).Return(nil, nil)

		_, _, err := service.RecordRepayment(context.Background(), 1, 400000, validate.MethodCash, 9, "")
		assert.ErrorIs(t, err, ErrLoanNotPayable)
	})

	t.Run("Unknown loan", func(t *testing.T) {
		passthroughTx(txManager)
		loanRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)

		_, _, err := service.RecordRepayment(context.Background(), 1, 400000, validate.MethodCash, 9, "")
		assert.ErrorIs(t, err, ErrLoanNotFound)
	})

	t.Run("Non-positive amount rejected before any lookup", func(t *testing.T) {
		_, _, err := service.RecordRepayment(context.Background(), 1, 0, validate.MethodCash, 9, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Unknown method rejected before any lookup", func(t *testing.T) {
		_, _, err := service.RecordRepayment(context.Background(), 1, 400000, "iou", 9, "")
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})
}

func TestMonthlyPayment(t *testing.T) {
	service, _, _, _, _, _ := NewMock(t)

	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		termMonths int
		expected   float64
	}{
		{name: "Annuity payment", principal: 1200000, annualRate: 15, termMonths: 12, expected: 108309.97},
		{name: "Zero rate degenerates to principal over term", principal: 1200000, annualRate: 0, termMonths: 12, expected: 100000},
		{name: "Zero principal", principal: 0, annualRate: 15, termMonths: 12, expected: 0},
		{name: "Zero term", principal: 1200000, annualRate: 15, termMonths: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.MonthlyPayment(tt.principal, tt.annualRate, tt.termMonths)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestMarkOverdueLoans(t *testing.T) {
	service, loanRepo, _, _, _, _ := NewMock(t)

	now := time.Date(2026, 8, 1, 2, 0, 0, 0, time.UTC)

	t.Run("Defaulted sweep runs before the overdue sweep", func(t *testing.T) {
		gomock.InOrder(
			loanRepo.EXPECT().MarkDefaulted(context.Background(), now.AddDate(0, 0, -90)).Return(int64(2), nil),
			loanRepo.EXPECT().MarkOverdue(context.Background(), now).Return(int64(5), nil),
		)

		overdue, defaulted, err := service.MarkOverdueLoans(context.Background(), now, 90)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), overdue)
		assert.Equal(t, int64(2), defaulted)
	})

	t.Run("Sweep failure is surfaced", func(t *testing.T) {
		loanRepo.EXPECT().MarkDefaulted(context.Background(), gomock.Any()).Return(int64(0), errors.New("database error"))

		_, _, err := service.MarkOverdueLoans(context.Background(), now, 90)
		assert.Error(t, err)
	})
}

func TestListRepayments(t *testing.T) {
	service, loanRepo, _, repaymentRepo, _, _ := NewMock(t)

	t.Run("Returns repayments for an existing loan", func(t *testing.T) {
		loanRepo.EXPECT().GetByID(context.Background(), 1).Return(&domain.Loan{ID: 1}, nil)
		repaymentRepo.EXPECT().ListByLoanID(context.Background(), 1).Return([]domain.Repayment{{ID: 1, LoanID: 1}}, nil)

		repayments, err := service.ListRepayments(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, repayments, 1)
	})

	t.Run("Unknown loan", func(t *testing.T) {
		loanRepo.EXPECT().GetByID(context.Background(), 42).Return(nil, nil)

		_, err := service.ListRepayments(context.Background(), 42)
		assert.ErrorIs(t, err, ErrLoanNotFound)
	})
}
