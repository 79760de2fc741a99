package loanrepo

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

const loanColumns = "id, loan_number, member_id, principal, interest_rate, term_months, purpose, status, balance, disbursed_at, due_date, approved_by, approved_at, created_at"

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var l domain.Loan
	err := row.Scan(&l.ID, &l.LoanNumber, &l.MemberID, &l.Principal, &l.InterestRate, &l.TermMonths,
		&l.Purpose, &l.Status, &l.Balance, &l.DisbursedAt, &l.DueDate, &l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	query := `
		INSERT INTO loans (loan_number, member_id, principal, interest_rate, term_months, purpose, status, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		loan.LoanNumber, loan.MemberID, loan.Principal, loan.InterestRate,
		loan.TermMonths, loan.Purpose, loan.Status, loan.Balance,
	).Scan(&loan.ID, &loan.CreatedAt)
	if err != nil {
		zap.L().Error("can't create loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE id = $1
    `
	loan, err := scanLoan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

// Approve activates a pending loan, stamping approver, disbursement and due
// dates. The pending guard is re-checked in the WHERE clause; a lost race
// returns nil, nil.
func (r *Repository) Approve(ctx context.Context, id, approverID int, disbursedAt, dueDate time.Time) (*domain.Loan, error) {
	query := `
		UPDATE loans
		SET status = 'active', approved_by = $1, approved_at = $2, disbursed_at = $2, due_date = $3
		WHERE id = $4 AND status = 'pending'
		RETURNING ` + loanColumns + `
	`
	loan, err := scanLoan(r.db.QueryRow(ctx, query, approverID, disbursedAt, dueDate, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to approve loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) Reject(ctx context.Context, id, approverID int, rejectedAt time.Time) (*domain.Loan, error) {
	query := `
		UPDATE loans
		SET status = 'rejected', approved_by = $1, approved_at = $2
		WHERE id = $3 AND status = 'pending'
		RETURNING ` + loanColumns + `
	`
	loan, err := scanLoan(r.db.QueryRow(ctx, query, approverID, rejectedAt, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to reject loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

// ApplyRepayment decrements the balance floored at zero and flips the status
// to paid when the balance reaches zero. Only active and overdue loans take
// repayments; anything else returns nil, nil.
func (r *Repository) ApplyRepayment(ctx context.Context, id int, amount float64) (*domain.Loan, error) {
	query := `
		UPDATE loans
		SET balance = GREATEST(balance - $1, 0),
		    status = CASE WHEN balance - $1 <= 0 THEN 'paid' ELSE status END
		WHERE id = $2 AND status IN ('active', 'overdue')
		RETURNING ` + loanColumns + `
	`
	loan, err := scanLoan(r.db.QueryRow(ctx, query, amount, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to apply repayment", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) ListByMemberID(ctx context.Context, memberID int) ([]domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE member_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, memberID)
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE status = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, status)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch loans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			zap.L().Error("failed to scan loan row", zap.Error(err))
			return nil, err
		}
		loans = append(loans, *loan)
	}

	return loans, nil
}

func (r *Repository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE loans
		SET status = 'overdue'
		WHERE status = 'active' AND due_date < $1
	`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to mark overdue loans", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) MarkDefaulted(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE loans
		SET status = 'defaulted'
		WHERE status = 'overdue' AND due_date < $1
	`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("failed to mark defaulted loans", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) SumActiveBalances(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM loans WHERE status = 'active'`
	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("failed to sum active loan balances", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM loans WHERE status = $1`
	var count int
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		zap.L().Error("failed to count loans by status", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM loans`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("failed to count loans", zap.Error(err))
		return 0, err
	}
	return count, nil
}
