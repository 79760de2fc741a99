package repaymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/vfasacco/saccoledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	paidAt := time.Now()
	repayment := &domain.Repayment{
		LoanID:      1,
		Amount:      400000,
		Method:      "mobile_money",
		ProcessedBy: 9,
		PaidAt:      paidAt,
	}

	t.Run("Insert returns generated id", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO repayments (loan_id, amount, method, processed_by, notes, paid_at)`)).
			WithArgs(1, 400000.0, "mobile_money", 9, "", paidAt).
			WillReturnRows(rows)

		result, err := repo.Create(context.Background(), repayment)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO repayments (loan_id, amount, method, processed_by, notes, paid_at)`)).
			WithArgs(1, 400000.0, "mobile_money", 9, "", paidAt).
			WillReturnError(errors.New("database error"))

		result, err := repo.Create(context.Background(), repayment)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByLoanID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Repayments newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "loan_id", "amount", "method", "processed_by", "notes", "paid_at"}).
			AddRow(2, 1, 400000.0, "cash", 9, "", time.Now()).
			AddRow(1, 1, 400000.0, "mobile_money", 9, "", time.Now().Add(-24*time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE loan_id = $1`)).
			WithArgs(1).
			WillReturnRows(rows)

		repayments, err := repo.ListByLoanID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, repayments, 2)
		assert.Equal(t, 2, repayments[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE loan_id = $1`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		repayments, err := repo.ListByLoanID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, repayments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
