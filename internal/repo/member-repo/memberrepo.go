package memberrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByMemberNumber(ctx context.Context, memberNumber string) (*domain.Member, error) {
	query := `
        SELECT id, member_number, first_name, last_name, phone, email, national_id, address, status, is_active, joined_at
        FROM members
        WHERE member_number = $1
    `
	row := r.db.QueryRow(ctx, query, memberNumber)
	var m domain.Member
	err := row.Scan(&m.ID, &m.MemberNumber, &m.FirstName, &m.LastName, &m.Phone, &m.Email, &m.NationalID, &m.Address, &m.Status, &m.IsActive, &m.JoinedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find member by number", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	query := `
        SELECT id, member_number, first_name, last_name, phone, email, national_id, address, status, is_active, joined_at
        FROM members
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var m domain.Member
	err := row.Scan(&m.ID, &m.MemberNumber, &m.FirstName, &m.LastName, &m.Phone, &m.Email, &m.NationalID, &m.Address, &m.Status, &m.IsActive, &m.JoinedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get member", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		INSERT INTO members (member_number, first_name, last_name, phone, email, national_id, address, status, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, joined_at
	`
	err := r.db.QueryRow(ctx, query,
		member.MemberNumber, member.FirstName, member.LastName, member.Phone,
		member.Email, member.NationalID, member.Address, member.Status, member.IsActive,
	).Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Member, error) {
	query := `
        SELECT id, member_number, first_name, last_name, phone, email, national_id, address, status, is_active, joined_at
        FROM members
        ORDER BY joined_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		err := rows.Scan(&m.ID, &m.MemberNumber, &m.FirstName, &m.LastName, &m.Phone, &m.Email, &m.NationalID, &m.Address, &m.Status, &m.IsActive, &m.JoinedAt)
		if err != nil {
			zap.L().Error("failed to scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, isActive bool) (*domain.Member, error) {
	query := `
		UPDATE members
		SET status = $1, is_active = $2
		WHERE id = $3
		RETURNING id, member_number, first_name, last_name, phone, email, national_id, address, status, is_active, joined_at
	`
	row := r.db.QueryRow(ctx, query, status, isActive, id)
	var m domain.Member
	err := row.Scan(&m.ID, &m.MemberNumber, &m.FirstName, &m.LastName, &m.Phone, &m.Email, &m.NationalID, &m.Address, &m.Status, &m.IsActive, &m.JoinedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update member status", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) CountActive(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM members WHERE is_active = TRUE`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("failed to count active members", zap.Error(err))
		return 0, err
	}
	return count, nil
}
