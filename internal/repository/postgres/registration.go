package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/repository"
)

type registrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

const registrationColumns = `id, org_id, user_id, name, nim, faculty, program, motivation,
	       ktm_file, COALESCE(certificate_file, ''), status, COALESCE(rejection_reason, ''),
	       decided_on, decided_by, created_on`

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (org_id, user_id, name, nim, faculty, program, motivation,
	              ktm_file, certificate_file, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		reg.OrgID, reg.UserID, reg.Profile.Name, reg.Profile.NIM, reg.Profile.Faculty, reg.Profile.Program,
		reg.Motivation, reg.KTMFile, reg.CertificateFile, reg.Status, time.Now(),
	).Scan(&reg.ID, &reg.CreatedOn)
}

func scanRegistration(row interface{ Scan(...any) error }) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var decidedOn sql.NullTime
	var decidedBy sql.NullInt32
	err := row.Scan(
		&reg.ID, &reg.OrgID, &reg.UserID,
		&reg.Profile.Name, &reg.Profile.NIM, &reg.Profile.Faculty, &reg.Profile.Program,
		&reg.Motivation, &reg.KTMFile, &reg.CertificateFile,
		&reg.Status, &reg.RejectionReason, &decidedOn, &decidedBy, &reg.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	if decidedOn.Valid {
		reg.DecidedOn = &decidedOn.Time
	}
	if decidedBy.Valid {
		v := decidedBy.Int32
		reg.DecidedBy = &v
	}
	return reg, nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id int32) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE user_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, userID)
}

func (r *registrationRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE org_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, orgID)
}

func (r *registrationRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations
	          WHERE status = $1 AND created_on < $2 ORDER BY created_on`
	return r.list(ctx, query, domain.RegistrationStatusPending, cutoff)
}

func (r *registrationRepository) HasPending(ctx context.Context, orgID, userID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM registrations WHERE org_id = $1 AND user_id = $2 AND status = $3)`
	err := r.db.QueryRowContext(ctx, query, orgID, userID, domain.RegistrationStatusPending).Scan(&exists)
	return exists, err
}

func (r *registrationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Registration, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, *reg)
	}
	return regs, rows.Err()
}
