package transactionrepo

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

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (reference, member_id, loan_id, type, amount, description, processed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		txn.Reference, txn.MemberID, txn.LoanID, txn.Type,
		txn.Amount, txn.Description, txn.ProcessedBy,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// List returns transactions ordered by recency. A nil memberID returns all
// members' entries.
func (r *Repository) List(ctx context.Context, memberID *int, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, reference, member_id, loan_id, type, amount, description, processed_by, created_at
        FROM transactions
        WHERE $1::int IS NULL OR member_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, memberID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.Reference, &txn.MemberID, &txn.LoanID, &txn.Type,
			&txn.Amount, &txn.Description, &txn.ProcessedBy, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}
