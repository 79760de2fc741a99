package repaymentrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, repayment *domain.Repayment) (*domain.Repayment, error) {
	query := `
		INSERT INTO repayments (loan_id, amount, method, processed_by, notes, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		repayment.LoanID, repayment.Amount, repayment.Method,
		repayment.ProcessedBy, repayment.Notes, repayment.PaidAt,
	).Scan(&repayment.ID)
	if err != nil {
		zap.L().Error("can't save repayment", zap.Error(err))
		return nil, err
	}
	return repayment, nil
}

func (r *Repository) ListByLoanID(ctx context.Context, loanID int) ([]domain.Repayment, error) {
	query := `
        SELECT id, loan_id, amount, method, processed_by, notes, paid_at
        FROM repayments
        WHERE loan_id = $1
        ORDER BY paid_at DESC
    `
	rows, err := r.db.Query(ctx, query, loanID)
	if err != nil {
		zap.L().Error("failed to fetch repayments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var repayments []domain.Repayment
	for rows.Next() {
		var rp domain.Repayment
		err := rows.Scan(&rp.ID, &rp.LoanID, &rp.Amount, &rp.Method, &rp.ProcessedBy, &rp.Notes, &rp.PaidAt)
		if err != nil {
			zap.L().Error("failed to scan repayment row", zap.Error(err))
			return nil, err
		}
		repayments = append(repayments, rp)
	}

	return repayments, nil
}
