package ledger

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/dto"
	"github.com/vfasacco/saccoledger/pkg/utils"
)

type Service interface {
	ListTransactions(ctx context.Context, memberID *int, limit int) ([]domain.Transaction, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetTransactions godoc
//
//	@Summary		Transaction history
//	@Description	Audit transactions ordered by recency, optionally filtered by member.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			member_id	query		int	false	"Filter by member"
//	@Param			limit		query		int	false	"Max entries (default 50, cap 200)"
//	@Success		200			{array}		dto.TransactionResponseDTO	"Transactions"
//	@Failure		400			{object}	utils.Response				"Invalid filter"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/transactions [get]
func (h *LedgerHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	var memberID *int
	if raw := r.URL.Query().Get("member_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid member_id")
			return
		}
		memberID = &id
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	txns, err := h.ledgerService.ListTransactions(r.Context(), memberID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.TransactionResponseDTO{
			ID:          txn.ID,
			Reference:   txn.Reference,
			MemberID:    txn.MemberID,
			LoanID:      txn.LoanID,
			Type:        txn.Type,
			Amount:      txn.Amount,
			Description: txn.Description,
			CreatedAt:   txn.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetDashboard godoc
//
//	@Summary		Dashboard aggregates
//	@Description	Active member count, savings total, active loan balance, pending loan count and default rate.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.DashboardStats	"Aggregates"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/dashboard [get]
func (h *LedgerHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledgerService.DashboardStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute dashboard stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
