package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

const membershipColumns = `id, org_id, user_id, name, nim, faculty, program, joined_on, active`

func (r *membershipRepository) GetActive(ctx context.Context, orgID, userID int32) (*domain.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships
	          WHERE org_id = $1 AND user_id = $2 AND active`
	m := &domain.Membership{}
	err := r.db.QueryRowContext(ctx, query, orgID, userID).Scan(
		&m.ID, &m.OrgID, &m.UserID,
		&m.Profile.Name, &m.Profile.NIM, &m.Profile.Faculty, &m.Profile.Program,
		&m.JoinedOn, &m.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *membershipRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships
	          WHERE org_id = $1 AND active ORDER BY joined_on`
	return r.list(ctx, query, orgID)
}

func (r *membershipRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships
	          WHERE user_id = $1 AND active ORDER BY joined_on`
	return r.list(ctx, query, userID)
}

func (r *membershipRepository) CountActiveByOrg(ctx context.Context, orgID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM memberships WHERE org_id = $1 AND active`
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(&count)
	return count, err
}

func (r *membershipRepository) list(ctx context.Context, query string, args ...any) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(
			&m.ID, &m.OrgID, &m.UserID,
			&m.Profile.Name, &m.Profile.NIM, &m.Profile.Faculty, &m.Profile.Program,
			&m.JoinedOn, &m.Active,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
