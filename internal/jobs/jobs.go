package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type LoanSweeper interface {
	MarkOverdueLoans(ctx context.Context, now time.Time, graceDays int) (int64, int64, error)
}

// Runner holds the scheduled maintenance jobs. Each job recovers from panics
// so a bad sweep never takes the scheduler down.
type Runner struct {
	loanService LoanSweeper
	graceDays   int
}

func New(loanService LoanSweeper, graceDays int) *Runner {
	return &Runner{
		loanService: loanService,
		graceDays:   graceDays,
	}
}

// SweepLoans marks active loans past their due date as overdue and overdue
// loans past the grace period as defaulted.
func (r *Runner) SweepLoans() {
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Error("loan sweep panicked", zap.Any("panic", rec))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	overdue, defaulted, err := r.loanService.MarkOverdueLoans(ctx, time.Now().UTC(), r.graceDays)
	if err != nil {
		zap.L().Error("loan sweep failed", zap.Error(err))
		return
	}
	zap.L().Info("loan sweep completed",
		zap.Int64("marked_overdue", overdue),
		zap.Int64("marked_defaulted", defaulted),
	)
}
