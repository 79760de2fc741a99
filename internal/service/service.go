package service

import (
	authhandlers "github.com/vfasacco/saccoledger/internal/handlers/auth"
	deposithandlers "github.com/vfasacco/saccoledger/internal/handlers/deposits"
	ledgerhandlers "github.com/vfasacco/saccoledger/internal/handlers/ledger"
	loanhandlers "github.com/vfasacco/saccoledger/internal/handlers/loans"
	memberhandlers "github.com/vfasacco/saccoledger/internal/handlers/members"

	pkgauth "github.com/vfasacco/saccoledger/pkg/auth"

	"github.com/vfasacco/saccoledger/internal/jobs"
	"github.com/vfasacco/saccoledger/internal/pg"
	"github.com/vfasacco/saccoledger/internal/repo"
	authservice "github.com/vfasacco/saccoledger/internal/service/authservice"
	depositservice "github.com/vfasacco/saccoledger/internal/service/depositservice"
	ledgerservice "github.com/vfasacco/saccoledger/internal/service/ledgerservice"
	loanservice "github.com/vfasacco/saccoledger/internal/service/loanservice"
	memberservice "github.com/vfasacco/saccoledger/internal/service/memberservice"
)

type Services struct {
	AuthService    authhandlers.Service
	MemberService  memberhandlers.Service
	DepositService deposithandlers.Service
	LoanService    loanhandlers.Service
	LedgerService  ledgerhandlers.Service

	// LoanSweeper is the scheduler-facing view of the loan service.
	LoanSweeper jobs.LoanSweeper
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	memberService := memberservice.New(repo.MemberRepo, repo.SavingsRepo, txManager)
	depositService := depositservice.New(repo.DepositRepo, repo.MemberRepo, repo.SavingsRepo, repo.TransactionRepo, txManager)
	loanService := loanservice.New(repo.LoanRepo, repo.MemberRepo, repo.RepaymentRepo, repo.TransactionRepo, txManager)
	ledgerService := ledgerservice.New(repo.TransactionRepo, repo.MemberRepo, repo.SavingsRepo, repo.LoanRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		MemberService:  memberService,
		DepositService: depositService,
		LoanService:    loanService,
		LedgerService:  ledgerService,
		LoanSweeper:    loanService,
	}
}
