package savingsrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateForMember(ctx context.Context, memberID int) (*domain.Savings, error) {
	query := `
        INSERT INTO savings (member_id, balance)
        VALUES ($1, 0)
        RETURNING id, member_id, balance, updated_at
    `
	row := r.db.QueryRow(ctx, query, memberID)
	var s domain.Savings
	err := row.Scan(&s.ID, &s.MemberID, &s.Balance, &s.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create savings account", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetByMemberID(ctx context.Context, memberID int) (*domain.Savings, error) {
	query := `
        SELECT id, member_id, balance, updated_at
        FROM savings
        WHERE member_id = $1
    `
	row := r.db.QueryRow(ctx, query, memberID)
	var s domain.Savings
	err := row.Scan(&s.ID, &s.MemberID, &s.Balance, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get savings account", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// AddToBalance credits the member's savings account. Only deposit approval
// calls this; savings are never mutated directly.
func (r *Repository) AddToBalance(ctx context.Context, memberID int, amount float64) (*domain.Savings, error) {
	query := `
		UPDATE savings
		SET balance = balance + $1, updated_at = now()
		WHERE member_id = $2
		RETURNING id, member_id, balance, updated_at
	`
	row := r.db.QueryRow(ctx, query, amount, memberID)
	var s domain.Savings
	err := row.Scan(&s.ID, &s.MemberID, &s.Balance, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update savings balance", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) TotalBalance(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM savings`
	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("failed to sum savings balances", zap.Error(err))
		return 0, err
	}
	return total, nil
}
