package savingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateForMember(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("New account starts at zero", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "member_id", "balance", "updated_at"}).
			AddRow(1, 1, 0.0, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO savings (member_id, balance)`)).
			WithArgs(1).
			WillReturnRows(rows)

		savings, err := repo.CreateForMember(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, savings.MemberID)
		assert.Zero(t, savings.Balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO savings (member_id, balance)`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		savings, err := repo.CreateForMember(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, savings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByMemberID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Existing account", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "member_id", "balance", "updated_at"}).
			AddRow(1, 1, 100000.0, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE member_id = $1`)).
			WithArgs(1).
			WillReturnRows(rows)

		savings, err := repo.GetByMemberID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 100000.0, savings.Balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown member returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE member_id = $1`)).
			WithArgs(42).
			WillReturnError(pgx.ErrNoRows)

		savings, err := repo.GetByMemberID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Nil(t, savings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_AddToBalance(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Credit is applied", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "member_id", "balance", "updated_at"}).
			AddRow(1, 1, 150000.0, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1, updated_at = now()`)).
			WithArgs(50000.0, 1).
			WillReturnRows(rows)

		savings, err := repo.AddToBalance(context.Background(), 1, 50000)
		assert.NoError(t, err)
		assert.Equal(t, 150000.0, savings.Balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing account returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1, updated_at = now()`)).
			WithArgs(50000.0, 42).
			WillReturnError(pgx.ErrNoRows)

		savings, err := repo.AddToBalance(context.Background(), 42, 50000)
		assert.NoError(t, err)
		assert.Nil(t, savings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_TotalBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(balance), 0) FROM savings`)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(4200000.0))

	total, err := repo.TotalBalance(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 4200000.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
