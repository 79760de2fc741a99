package loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/dto"
	loanservice "github.com/vfasacco/saccoledger/internal/service/loanservice"
	"github.com/vfasacco/saccoledger/pkg/auth"
	"github.com/vfasacco/saccoledger/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, input loanservice.CreateInput) (*domain.Loan, error)
	GetByID(ctx context.Context, id int) (*domain.Loan, error)
	Approve(ctx context.Context, loanID, approverID int) (*domain.Loan, error)
	Reject(ctx context.Context, loanID, approverID int) (*domain.Loan, error)
	RecordRepayment(ctx context.Context, loanID int, amount float64, method string, processorID int, notes string) (*domain.Repayment, *domain.Loan, error)
	ListByMember(ctx context.Context, memberID int) ([]domain.Loan, error)
	ListRepayments(ctx context.Context, loanID int) ([]domain.Repayment, error)
	MonthlyPayment(principal, annualRate float64, termMonths int) float64
}

type LoanHandler struct {
	loanService Service
}

func New(loanService Service) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

func toLoanDTO(l *domain.Loan) dto.LoanResponseDTO {
	return dto.LoanResponseDTO{
		ID:           l.ID,
		LoanNumber:   l.LoanNumber,
		MemberID:     l.MemberID,
		Principal:    l.Principal,
		InterestRate: l.InterestRate,
		TermMonths:   l.TermMonths,
		Purpose:      l.Purpose,
		Status:       l.Status,
		Balance:      l.Balance,
		DisbursedAt:  l.DisbursedAt,
		DueDate:      l.DueDate,
		CreatedAt:    l.CreatedAt,
	}
}

// Create godoc
//
//	@Summary		Create a loan application
//	@Description	Open a pending loan. The balance is always initialized to the principal.
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateLoanRequestDTO	true	"Loan application"
//	@Success		201		{object}	dto.LoanResponseDTO			"Created loan"
//	@Failure		400		{object}	utils.Response				"Invalid principal, term or rate"
//	@Failure		404		{object}	utils.Response				"Member not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loans [post]
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loan, err := h.loanService.Create(r.Context(), loanservice.CreateInput{
		MemberID:     req.MemberID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		TermMonths:   req.TermMonths,
		Purpose:      req.Purpose,
	})
	if err != nil {
		switch {
		case errors.Is(err, loanservice.ErrInvalidAmount),
			errors.Is(err, loanservice.ErrInvalidTerm),
			errors.Is(err, loanservice.ErrInvalidRate):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, loanservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toLoanDTO(loan))
}

// Get godoc
//
//	@Summary		Get a loan
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Loan ID"
//	@Success		200	{object}	dto.LoanResponseDTO	"Loan"
//	@Failure		404	{object}	utils.Response		"Loan not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/loans/{id} [get]
func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid loan id")
		return
	}

	loan, err := h.loanService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, loanservice.ErrLoanNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLoanDTO(loan))
}

func (h *LoanHandler) resolve(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, loanID, approverID int) (*domain.Loan, error)) {
	approverID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid loan id")
		return
	}

	loan, err := fn(r.Context(), id, approverID)
	if err != nil {
		switch {
		case errors.Is(err, loanservice.ErrLoanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, loanservice.ErrNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLoanDTO(loan))
}

// Approve godoc
//
//	@Summary		Approve a loan
//	@Description	Activate a pending loan, stamping disbursement and due dates and writing the disbursement transaction.
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Loan ID"
//	@Success		200	{object}	dto.LoanResponseDTO	"Active loan"
//	@Failure		404	{object}	utils.Response		"Loan not found"
//	@Failure		409	{object}	utils.Response		"Loan is not pending"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/loans/{id}/approve [post]
func (h *LoanHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.loanService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a loan
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Loan ID"
//	@Success		200	{object}	dto.LoanResponseDTO	"Rejected loan"
//	@Failure		404	{object}	utils.Response		"Loan not found"
//	@Failure		409	{object}	utils.Response		"Loan is not pending"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/loans/{id}/reject [post]
func (h *LoanHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.loanService.Reject)
}

// RecordRepayment godoc
//
//	@Summary		Record a repayment
//	@Description	Apply a payment to an active or overdue loan. Overpayment floors the balance at zero; a zero balance flips the loan to paid.
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Loan ID"
//	@Param			request	body		dto.RecordRepaymentRequestDTO	true	"Repayment payload"
//	@Success		201		{object}	dto.RepaymentResponseDTO	"Recorded repayment"
//	@Failure		400		{object}	utils.Response				"Invalid amount or method"
//	@Failure		404		{object}	utils.Response				"Loan not found"
//	@Failure		409		{object}	utils.Response				"Loan is not active"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loans/{id}/repayments [post]
func (h *LoanHandler) RecordRepayment(w http.ResponseWriter, r *http.Request) {
	processorID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid loan id")
		return
	}

	var req dto.RecordRepaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	repayment, _, err := h.loanService.RecordRepayment(r.Context(), id, req.Amount, req.Method, processorID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, loanservice.ErrInvalidAmount), errors.Is(err, loanservice.ErrInvalidMethod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, loanservice.ErrLoanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, loanservice.ErrLoanNotPayable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RepaymentResponseDTO{
		ID:     repayment.ID,
		LoanID: repayment.LoanID,
		Amount: repayment.Amount,
		Method: repayment.Method,
		Notes:  repayment.Notes,
		PaidAt: repayment.PaidAt,
	})
}

// ListRepayments godoc
//
//	@Summary		List a loan's repayments
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Loan ID"
//	@Success		200	{array}		dto.RepaymentResponseDTO	"Repayments, newest first"
//	@Failure		404	{object}	utils.Response				"Loan not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/loans/{id}/repayments [get]
func (h *LoanHandler) ListRepayments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid loan id")
		return
	}

	repayments, err := h.loanService.ListRepayments(r.Context(), id)
	if err != nil {
		if errors.Is(err, loanservice.ErrLoanNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch repayments")
		return
	}

	response := make([]dto.RepaymentResponseDTO, len(repayments))
	for i, rp := range repayments {
		response[i] = dto.RepaymentResponseDTO{
			ID:     rp.ID,
			LoanID: rp.LoanID,
			Amount: rp.Amount,
			Method: rp.Method,
			Notes:  rp.Notes,
			PaidAt: rp.PaidAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListByMember godoc
//
//	@Summary		List a member's loans
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Member ID"
//	@Success		200	{array}		dto.LoanResponseDTO	"Loans, newest first"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/members/{id}/loans [get]
func (h *LoanHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	loans, err := h.loanService.ListByMember(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch loans")
		return
	}

	response := make([]dto.LoanResponseDTO, len(loans))
	for i, l := range loans {
		loan := l
		response[i] = toLoanDTO(&loan)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Estimate godoc
//
//	@Summary		Estimate the monthly payment
//	@Description	Reducing-balance annuity estimate. Display-only; nothing is written.
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			principal	query		number	true	"Principal"
//	@Param			rate		query		number	true	"Annual interest rate percent"
//	@Param			term		query		int		true	"Term in months"
//	@Success		200			{object}	dto.MonthlyPaymentResponseDTO	"Estimate"
//	@Failure		400			{object}	utils.Response					"Invalid parameters"
//	@Router			/api/loans/estimate [get]
func (h *LoanHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	principal, err := strconv.ParseFloat(r.URL.Query().Get("principal"), 64)
	if err != nil || principal <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid principal")
		return
	}
	rate, err := strconv.ParseFloat(r.URL.Query().Get("rate"), 64)
	if err != nil || rate < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid rate")
		return
	}
	term, err := strconv.Atoi(r.URL.Query().Get("term"))
	if err != nil || term <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid term")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MonthlyPaymentResponseDTO{
		Principal:      principal,
		InterestRate:   rate,
		TermMonths:     term,
		MonthlyPayment: h.loanService.MonthlyPayment(principal, rate, term),
	})
}
