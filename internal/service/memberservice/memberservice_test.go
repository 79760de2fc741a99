package memberservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/pkg/validate"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockSavingsRepo, *MockTXManager) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	savingsRepo := NewMockSavingsRepo(ctrl)
	txManager := NewMockTXManager(ctrl)

	service := New(memberRepo, savingsRepo, txManager)
	defer ctrl.Finish()
	return service, memberRepo, savingsRepo, txManager
}

func passthroughTx(txManager *MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestRegister(t *testing.T) {
	service, memberRepo, savingsRepo, txManager := NewMock(t)

	valid := RegisterInput{
		MemberNumber: "VFA010",
		FirstName:    "Amina",
		LastName:     "Odhiambo",
		Phone:        "+255700123456",
	}

	tests := []struct {
		name          string
		input         RegisterInput
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Member and savings account created together",
			input: valid,
			prepareMock: func() {
				passthroughTx(txManager)
				memberRepo.EXPECT().FindByMemberNumber(gomock.Any(), "VFA010").Return(nil, nil)
				memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, m *domain.Member) (*domain.Member, error) {
						assert.Equal(t, validate.MemberStatusActive, m.Status)
						assert.True(t, m.IsActive)
						m.ID = 1
						return m, nil
					})
				savingsRepo.EXPECT().CreateForMember(gomock.Any(), 1).Return(&domain.Savings{ID: 1, MemberID: 1}, nil)
			},
			expectedError: nil,
		},
		{
			name:  "Duplicate member number",
			input: valid,
			prepareMock: func() {
				passthroughTx(txManager)
				memberRepo.EXPECT().FindByMemberNumber(gomock.Any(), "VFA010").Return(&domain.Member{ID: 1}, nil)
			},
			expectedError: ErrDuplicateMemberNumber,
		},
		{
			name:          "Missing member number",
			input:         RegisterInput{FirstName: "Amina", LastName: "Odhiambo", Phone: "+255700123456"},
			prepareMock:   func() {},
			expectedError: ErrMissingRequiredField,
		},
		{
			name:          "Missing phone",
			input:         RegisterInput{MemberNumber: "VFA011", FirstName: "Amina", LastName: "Odhiambo"},
			prepareMock:   func() {},
			expectedError: ErrMissingRequiredField,
		},
		{
			name:  "Savings creation failure aborts registration",
			input: valid,
			prepareMock: func() {
				passthroughTx(txManager)
				memberRepo.EXPECT().FindByMemberNumber(gomock.Any(), "VFA010").Return(nil, nil)
				memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, m *domain.Member) (*domain.Member, error) {
						m.ID = 1
						return m, nil
					})
				savingsRepo.EXPECT().CreateForMember(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			member, err := service.Register(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, member)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "VFA010", member.MemberNumber)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	service, memberRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Freeze keeps the member active",
			status: validate.MemberStatusFrozen,
			prepareMock: func() {
				memberRepo.EXPECT().UpdateStatus(context.Background(), 1, validate.MemberStatusFrozen, true).
					Return(&domain.Member{ID: 1, Status: validate.MemberStatusFrozen, IsActive: true}, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Deactivation clears the active flag",
			status: validate.MemberStatusDeactivated,
			prepareMock: func() {
				memberRepo.EXPECT().UpdateStatus(context.Background(), 1, validate.MemberStatusDeactivated, false).
					Return(&domain.Member{ID: 1, Status: validate.MemberStatusDeactivated, IsActive: false}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Unknown status",
			status:        "suspended",
			prepareMock:   func() {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:   "Unknown member",
			status: validate.MemberStatusFrozen,
			prepareMock: func() {
				memberRepo.EXPECT().UpdateStatus(context.Background(), 1, validate.MemberStatusFrozen, true).Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			member, err := service.UpdateStatus(context.Background(), 1, tt.status)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, member)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, member.Status)
			}
		})
	}
}

func TestDeactivate(t *testing.T) {
	service, memberRepo, _, _ := NewMock(t)

	memberRepo.EXPECT().UpdateStatus(context.Background(), 1, validate.MemberStatusDeactivated, false).
		Return(&domain.Member{ID: 1, Status: validate.MemberStatusDeactivated, IsActive: false}, nil)

	member, err := service.Deactivate(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, member.IsActive)
	assert.Equal(t, validate.MemberStatusDeactivated, member.Status)
}

func TestGetByID(t *testing.T) {
	service, memberRepo, _, _ := NewMock(t)

	t.Run("Existing member", func(t *testing.T) {
		memberRepo.EXPECT().GetByID(context.Background(), 1).Return(&domain.Member{ID: 1}, nil)

		member, err := service.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, member.ID)
	})

	t.Run("Unknown member", func(t *testing.T) {
		memberRepo.EXPECT().GetByID(context.Background(), 42).Return(nil, nil)

		_, err := service.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestGetSavings(t *testing.T) {
	service, _, savingsRepo, _ := NewMock(t)

	t.Run("Existing account", func(t *testing.T) {
		savingsRepo.EXPECT().GetByMemberID(context.Background(), 1).Return(&domain.Savings{MemberID: 1, Balance: 100000}, nil)

		savings, err := service.GetSavings(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 100000.0, savings.Balance)
	})

	t.Run("Unknown member", func(t *testing.T) {
		savingsRepo.EXPECT().GetByMemberID(context.Background(), 42).Return(nil, nil)

		_, err := service.GetSavings(context.Background(), 42)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}
