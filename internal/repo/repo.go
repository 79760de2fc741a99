package repo

import (
	"github.com/vfasacco/saccoledger/internal/pg"
	depositrepo "github.com/vfasacco/saccoledger/internal/repo/deposit-repo"
	loanrepo "github.com/vfasacco/saccoledger/internal/repo/loan-repo"
	memberrepo "github.com/vfasacco/saccoledger/internal/repo/member-repo"
	repaymentrepo "github.com/vfasacco/saccoledger/internal/repo/repayment-repo"
	savingsrepo "github.com/vfasacco/saccoledger/internal/repo/savings-repo"
	transactionrepo "github.com/vfasacco/saccoledger/internal/repo/transaction-repo"
	userrepo "github.com/vfasacco/saccoledger/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	MemberRepo      *memberrepo.Repository
	SavingsRepo     *savingsrepo.Repository
	DepositRepo     *depositrepo.Repository
	LoanRepo        *loanrepo.Repository
	RepaymentRepo   *repaymentrepo.Repository
	TransactionRepo *transactionrepo.Repository
}

func New(db pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(db),
		MemberRepo:      memberrepo.New(db),
		SavingsRepo:     savingsrepo.New(db),
		DepositRepo:     depositrepo.New(db),
		LoanRepo:        loanrepo.New(db),
		RepaymentRepo:   repaymentrepo.New(db),
		TransactionRepo: transactionrepo.New(db),
	}
}
