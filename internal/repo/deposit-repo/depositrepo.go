package depositrepo

import (
	"context"
	"time"

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

const depositColumns = "id, deposit_number, member_id, amount, method, status, recorded_by, approved_by, approved_at, notes, created_at"

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	err := row.Scan(&d.ID, &d.DepositNumber, &d.MemberID, &d.Amount, &d.Method, &d.Status,
		&d.RecordedBy, &d.ApprovedBy, &d.ApprovedAt, &d.Notes, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (deposit_number, member_id, amount, method, status, recorded_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		deposit.DepositNumber, deposit.MemberID, deposit.Amount, deposit.Method,
		deposit.Status, deposit.RecordedBy, deposit.Notes,
	).Scan(&deposit.ID, &deposit.CreatedAt)
	if err != nil {
		zap.L().Error("can't create deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE id = $1
    `
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// Resolve moves a pending deposit to approved or rejected. The WHERE clause
// re-checks the pending status at commit time; a concurrent resolution makes
// this return nil, nil.
func (r *Repository) Resolve(ctx context.Context, id int, status string, approverID int, approvedAt time.Time) (*domain.Deposit, error) {
	query := `
		UPDATE deposits
		SET status = $1, approved_by = $2, approved_at = $3
		WHERE id = $4 AND status = 'pending'
		RETURNING ` + depositColumns + `
	`
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, status, approverID, approvedAt, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to resolve deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) ListByMemberID(ctx context.Context, memberID int) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE member_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, memberID)
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE status = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, status)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Deposit, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("failed to scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}

	return deposits, nil
}
