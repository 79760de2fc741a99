package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/dto"
	memberservice "github.com/vfasacco/saccoledger/internal/service/memberservice"
	"github.com/vfasacco/saccoledger/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, input memberservice.RegisterInput) (*domain.Member, error)
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Member, error)
	Deactivate(ctx context.Context, id int) (*domain.Member, error)
	GetSavings(ctx context.Context, memberID int) (*domain.Savings, error)
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func toMemberDTO(m *domain.Member, savings float64) dto.MemberResponseDTO {
	return dto.MemberResponseDTO{
		ID:           m.ID,
		MemberNumber: m.MemberNumber,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        m.Phone,
		Email:        m.Email,
		NationalID:   m.NationalID,
		Address:      m.Address,
		Status:       m.Status,
		IsActive:     m.IsActive,
		JoinedAt:     m.JoinedAt,
		Savings:      savings,
	}
}

// Register godoc
//
//	@Summary		Register a member
//	@Description	Create a member with a paired zero-balance savings account.
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterMemberRequestDTO	true	"Member details"
//	@Success		201		{object}	dto.MemberResponseDTO			"Created member"
//	@Failure		400		{object}	utils.Response					"Invalid payload"
//	@Failure		409		{object}	utils.Response					"Member number already in use"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/members [post]
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.memberService.Register(r.Context(), memberservice.RegisterInput{
		MemberNumber: req.MemberNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Email:        req.Email,
		NationalID:   req.NationalID,
		Address:      req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrDuplicateMemberNumber):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, memberservice.ErrMissingRequiredField):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toMemberDTO(member, 0))
}

// Get godoc
//
//	@Summary		Get a member
//	@Description	Fetch a member with their current savings balance.
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Member ID"
//	@Success		200	{object}	dto.MemberResponseDTO	"Member"
//	@Failure		404	{object}	utils.Response			"Member not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/members/{id} [get]
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	member, err := h.memberService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	savings, err := h.memberService.GetSavings(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberDTO(member, savings.Balance))
}

// List godoc
//
//	@Summary		List members
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.MemberResponseDTO	"Members"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/members [get]
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch members")
		return
	}

	response := make([]dto.MemberResponseDTO, len(members))
	for i, m := range members {
		member := m
		response[i] = toMemberDTO(&member, 0)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary		Update member status
//	@Description	Move a member to any status in the flat set: active, part-time, deactivated, frozen.
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Member ID"
//	@Param			request	body		dto.UpdateMemberStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.MemberResponseDTO			"Updated member"
//	@Failure		400		{object}	utils.Response					"Unknown status"
//	@Failure		404		{object}	utils.Response					"Member not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/members/{id}/status [patch]
func (h *MemberHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var req dto.UpdateMemberStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.memberService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, memberservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberDTO(member, 0))
}

// Deactivate godoc
//
//	@Summary		Deactivate a member
//	@Description	Soft delete: the member row is kept so existing loans and transactions stay referenced.
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Member ID"
//	@Success		200	{object}	dto.MemberResponseDTO	"Deactivated member"
//	@Failure		404	{object}	utils.Response			"Member not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/members/{id} [delete]
func (h *MemberHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	member, err := h.memberService.Deactivate(r.Context(), id)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberDTO(member, 0))
}
