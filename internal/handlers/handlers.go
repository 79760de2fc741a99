package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vfasacco/saccoledger/docs"
	authhandlers "github.com/vfasacco/saccoledger/internal/handlers/auth"
	deposithandlers "github.com/vfasacco/saccoledger/internal/handlers/deposits"
	ledgerhandlers "github.com/vfasacco/saccoledger/internal/handlers/ledger"
	loanhandlers "github.com/vfasacco/saccoledger/internal/handlers/loans"
	memberhandlers "github.com/vfasacco/saccoledger/internal/handlers/members"
	"github.com/vfasacco/saccoledger/internal/service"
	"github.com/vfasacco/saccoledger/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListByMember(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	RecordRepayment(w http.ResponseWriter, r *http.Request)
	ListRepayments(w http.ResponseWriter, r *http.Request)
	ListByMember(w http.ResponseWriter, r *http.Request)
	Estimate(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	MemberHandler  MemberHandler
	DepositHandler DepositHandler
	LoanHandler    LoanHandler
	LedgerHandler  LedgerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		MemberHandler:  memberhandlers.New(s.MemberService),
		DepositHandler: deposithandlers.New(s.DepositService),
		LoanHandler:    loanhandlers.New(s.LoanService),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/members", func(r chi.Router) {
				r.Post("/", h.MemberHandler.Register)
				r.Get("/", h.MemberHandler.List)
				r.Get("/{id}", h.MemberHandler.Get)
				r.Get("/{id}/deposits", h.DepositHandler.ListByMember)
				r.Get("/{id}/loans", h.LoanHandler.ListByMember)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleManager, auth.RoleAdmin))
					r.Patch("/{id}/status", h.MemberHandler.UpdateStatus)
					r.Delete("/{id}", h.MemberHandler.Deactivate)
				})
			})

			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.Create)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleManager, auth.RoleAdmin))
					r.Get("/pending", h.DepositHandler.ListPending)
					r.Post("/{id}/approve", h.DepositHandler.Approve)
					r.Post("/{id}/reject", h.DepositHandler.Reject)
				})
			})

			r.Route("/loans", func(r chi.Router) {
				r.Post("/", h.LoanHandler.Create)
				r.Get("/estimate", h.LoanHandler.Estimate)
				r.Get("/{id}", h.LoanHandler.Get)
				r.Post("/{id}/repayments", h.LoanHandler.RecordRepayment)
				r.Get("/{id}/repayments", h.LoanHandler.ListRepayments)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleManager, auth.RoleAdmin))
					r.Post("/{id}/approve", h.LoanHandler.Approve)
					r.Post("/{id}/reject", h.LoanHandler.Reject)
				})
			})

			r.Get("/transactions", h.LedgerHandler.GetTransactions)
			r.Get("/dashboard", h.LedgerHandler.GetDashboard)
		})
	})

	return r
}
