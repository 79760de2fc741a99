package memberrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/vfasacco/saccoledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var memberColumns = []string{"id", "member_number", "first_name", "last_name", "phone", "email", "national_id", "address", "status", "is_active", "joined_at"}

func memberRow(m domain.Member) *pgxmock.Rows {
	return pgxmock.NewRows(memberColumns).
		AddRow(m.ID, m.MemberNumber, m.FirstName, m.LastName, m.Phone, m.Email, m.NationalID, m.Address, m.Status, m.IsActive, m.JoinedAt)
}

func TestRepository_FindByMemberNumber(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name         string
		memberNumber string
		mockSetup    func()
		expectErr    bool
		found        bool
	}{
		{
			name:         "Existing member",
			memberNumber: "VFA010",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE member_number = $1`)).
					WithArgs("VFA010").
					WillReturnRows(memberRow(domain.Member{ID: 1, MemberNumber: "VFA010", FirstName: "Amina", LastName: "Odhiambo", Phone: "+255700123456", Status: "active", IsActive: true, JoinedAt: time.Now()}))
			},
			found: true,
		},
		{
			name:         "Unknown member number returns nil",
			memberNumber: "VFA999",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE member_number = $1`)).
					WithArgs("VFA999").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name:         "Database error",
			memberNumber: "VFA010",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE member_number = $1`)).
					WithArgs("VFA010").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			member, err := repo.FindByMemberNumber(context.Background(), tt.memberNumber)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.found {
					assert.Equal(t, tt.memberNumber, member.MemberNumber)
				} else {
					assert.Nil(t, member)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	member := &domain.Member{
		MemberNumber: "VFA010",
		FirstName:    "Amina",
		LastName:     "Odhiambo",
		Phone:        "+255700123456",
		Status:       "active",
		IsActive:     true,
	}

	t.Run("Insert returns generated id and join date", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "joined_at"}).AddRow(1, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO members (member_number, first_name, last_name, phone, email, national_id, address, status, is_active)`)).
			WithArgs("VFA010", "Amina", "Odhiambo", "+255700123456", "", "", "", "active", true).
			WillReturnRows(rows)

		result, err := repo.Create(context.Background(), member)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO members (member_number, first_name, last_name, phone, email, national_id, address, status, is_active)`)).
			WithArgs("VFA010", "Amina", "Odhiambo", "+255700123456", "", "", "", "active", true).
			WillReturnError(errors.New("database error"))

		result, err := repo.Create(context.Background(), member)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Status and active flag updated together", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = $1, is_active = $2`)).
			WithArgs("frozen", true, 1).
			WillReturnRows(memberRow(domain.Member{ID: 1, MemberNumber: "VFA010", Status: "frozen", IsActive: true, JoinedAt: time.Now()}))

		member, err := repo.UpdateStatus(context.Background(), 1, "frozen", true)
		assert.NoError(t, err)
		assert.Equal(t, "frozen", member.Status)
		assert.True(t, member.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown member returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = $1, is_active = $2`)).
			WithArgs("frozen", true, 42).
			WillReturnError(pgx.ErrNoRows)

		member, err := repo.UpdateStatus(context.Background(), 42, "frozen", true)
		assert.NoError(t, err)
		assert.Nil(t, member)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(memberColumns).
		AddRow(2, "VFA011", "Joseph", "Mwanza", "+255700765432", "", "", "", "active", true, time.Now()).
		AddRow(1, "VFA010", "Amina", "Odhiambo", "+255700123456", "", "", "", "frozen", true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`FROM members`)).
		WillReturnRows(rows)

	members, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, "VFA011", members[0].MemberNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountActive(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM members WHERE is_active = TRUE`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(25))

	count, err := repo.CountActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 25, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
