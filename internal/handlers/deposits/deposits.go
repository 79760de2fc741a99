package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/dto"
	depositservice "github.com/vfasacco/saccoledger/internal/service/depositservice"
	"github.com/vfasacco/saccoledger/pkg/auth"
	"github.com/vfasacco/saccoledger/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, memberID int, amount float64, method string, recorderID int, notes string) (*domain.Deposit, error)
	Approve(ctx context.Context, depositID, approverID int) (*domain.Deposit, error)
	Reject(ctx context.Context, depositID, approverID int) (*domain.Deposit, error)
	ListByMember(ctx context.Context, memberID int) ([]domain.Deposit, error)
	ListPending(ctx context.Context) ([]domain.Deposit, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

func toDepositDTO(d *domain.Deposit) dto.DepositResponseDTO {
	return dto.DepositResponseDTO{
		ID:            d.ID,
		DepositNumber: d.DepositNumber,
		MemberID:      d.MemberID,
		Amount:        d.Amount,
		Method:        d.Method,
		Status:        d.Status,
		ApprovedAt:    d.ApprovedAt,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
	}
}

// Create godoc
//
//	@Summary		Create a deposit
//	@Description	Record a member funds-in request. The deposit starts pending regardless of input.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDepositRequestDTO	true	"Deposit payload"
//	@Success		201		{object}	dto.DepositResponseDTO		"Created deposit"
//	@Failure		400		{object}	utils.Response				"Invalid amount or method"
//	@Failure		404		{object}	utils.Response				"Member not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/deposits [post]
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	recorderID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deposit, err := h.depositService.Create(r.Context(), req.MemberID, req.Amount, req.Method, recorderID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrInvalidAmount), errors.Is(err, depositservice.ErrInvalidMethod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, depositservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDepositDTO(deposit))
}

func (h *DepositHandler) resolve(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, depositID, approverID int) (*domain.Deposit, error)) {
	approverID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	deposit, err := fn(r.Context(), id, approverID)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrDepositNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, depositservice.ErrNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDepositDTO(deposit))
}

// Approve godoc
//
//	@Summary		Approve a deposit
//	@Description	Approve a pending deposit, crediting the member's savings and writing the audit transaction.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Deposit ID"
//	@Success		200	{object}	dto.DepositResponseDTO	"Approved deposit"
//	@Failure		404	{object}	utils.Response			"Deposit not found"
//	@Failure		409	{object}	utils.Response			"Deposit is not pending"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/deposits/{id}/approve [post]
func (h *DepositHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.depositService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a deposit
//	@Description	Reject a pending deposit. The savings balance is never touched.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Deposit ID"
//	@Success		200	{object}	dto.DepositResponseDTO	"Rejected deposit"
//	@Failure		404	{object}	utils.Response			"Deposit not found"
//	@Failure		409	{object}	utils.Response			"Deposit is not pending"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/deposits/{id}/reject [post]
func (h *DepositHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.depositService.Reject)
}

// ListByMember godoc
//
//	@Summary		List a member's deposits
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Member ID"
//	@Success		200	{array}		dto.DepositResponseDTO	"Deposits, newest first"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/members/{id}/deposits [get]
func (h *DepositHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	deposits, err := h.depositService.ListByMember(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}
	h.respondList(w, deposits)
}

// ListPending godoc
//
//	@Summary		List pending deposits
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"Pending deposits"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/deposits/pending [get]
func (h *DepositHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.depositService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}
	h.respondList(w, deposits)
}

func (h *DepositHandler) respondList(w http.ResponseWriter, deposits []domain.Deposit) {
	response := make([]dto.DepositResponseDTO, len(deposits))
	for i, d := range deposits {
		deposit := d
		response[i] = toDepositDTO(&deposit)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
