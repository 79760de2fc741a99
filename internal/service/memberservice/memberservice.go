package memberservice

import (
	"context"
	"errors"
	"strings"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/pkg/validate"
	"go.uber.org/zap"
)

type MemberRepo interface {
	FindByMemberNumber(ctx context.Context, memberNumber string) (*domain.Member, error)
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	UpdateStatus(ctx context.Context, id int, status string, isActive bool) (*domain.Member, error)
}

type SavingsRepo interface {
	CreateForMember(ctx context.Context, memberID int) (*domain.Savings, error)
	GetByMemberID(ctx context.Context, memberID int) (*domain.Savings, error)
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	memberRepo  MemberRepo
	savingsRepo SavingsRepo
	txManager   TXManager
}

func New(memberRepo MemberRepo, savingsRepo SavingsRepo, txManager TXManager) *Service {
	return &Service{
		memberRepo:  memberRepo,
		savingsRepo: savingsRepo,
		txManager:   txManager,
	}
}

var (
	ErrMemberNotFound        = errors.New("member not found")
	ErrDuplicateMemberNumber = errors.New("member number already in use")
	ErrInvalidStatus         = errors.New("unknown member status")
	ErrMissingRequiredField  = errors.New("missing required field")
)

type RegisterInput struct {
	MemberNumber string
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	NationalID   string
	Address      string
}

// Register creates a member together with a zero-balance savings account in
// one database transaction.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Member, error) {
	input.MemberNumber = strings.TrimSpace(input.MemberNumber)
	if input.MemberNumber == "" || input.FirstName == "" || input.LastName == "" || input.Phone == "" {
		return nil, ErrMissingRequiredField
	}

	var member *domain.Member
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.memberRepo.FindByMemberNumber(ctx, input.MemberNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			zap.L().Info("member number already in use", zap.String("member_number", input.MemberNumber))
			return ErrDuplicateMemberNumber
		}

		member, err = s.memberRepo.Create(ctx, &domain.Member{
			MemberNumber: input.MemberNumber,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Phone:        input.Phone,
			Email:        input.Email,
			NationalID:   input.NationalID,
			Address:      input.Address,
			Status:       validate.MemberStatusActive,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		if _, err := s.savingsRepo.CreateForMember(ctx, member.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateMemberNumber) {
			zap.L().Error("can't register member", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("member registered", zap.String("member_number", member.MemberNumber))
	return member, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list members", zap.Error(err))
		return nil, err
	}
	return members, nil
}

// UpdateStatus moves a member to any status in the flat status set. There is
// no transition graph between member statuses.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*domain.Member, error) {
	if !validate.IsMemberStatus(status) {
		return nil, ErrInvalidStatus
	}

	isActive := status != validate.MemberStatusDeactivated
	member, err := s.memberRepo.UpdateStatus(ctx, id, status, isActive)
	if err != nil {
		zap.L().Error("failed to update member status", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// Deactivate is the delete operation: members are never removed, only marked
// inactive, so loans and transactions keep valid references.
func (s *Service) Deactivate(ctx context.Context, id int) (*domain.Member, error) {
	return s.UpdateStatus(ctx, id, validate.MemberStatusDeactivated)
}

func (s *Service) GetSavings(ctx context.Context, memberID int) (*domain.Savings, error) {
	savings, err := s.savingsRepo.GetByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get savings", zap.Error(err))
		return nil, err
	}
	if savings == nil {
		return nil, ErrMemberNotFound
	}
	return savings, nil
}
