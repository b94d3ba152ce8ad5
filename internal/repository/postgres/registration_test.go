package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"ukm-registry-backend/internal/domain"
)

var registrationRows = []string{
	"id", "org_id", "user_id", "name", "nim", "faculty", "program", "motivation",
	"ktm_file", "certificate_file", "status", "rejection_reason",
	"decided_on", "decided_by", "created_on",
}

func TestRegistrationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery("INSERT INTO registrations").
		WithArgs(int64(1), int64(42), "Budi Santoso", "2110512345", "Ilmu Komputer", "Sistem Informasi",
			"Ingin mengembangkan kemampuan", "a3f0-ktm.pdf", "", string(domain.RegistrationStatusPending), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(7, created))

	repo := NewRegistrationRepository(db)
	reg := &domain.Registration{
		OrgID:  1,
		UserID: 42,
		Profile: domain.ProfileSnapshot{
			Name:    "Budi Santoso",
			NIM:     "2110512345",
			Faculty: "Ilmu Komputer",
			Program: "Sistem Informasi",
		},
		Motivation: "Ingin mengembangkan kemampuan",
		KTMFile:    "a3f0-ktm.pdf",
		Status:     domain.RegistrationStatusPending,
	}

	err = repo.Create(context.Background(), reg)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), reg.ID)
	assert.WithinDuration(t, created, reg.CreatedOn, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	decided := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM registrations WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(registrationRows).AddRow(
			7, 1, 42, "Budi Santoso", "2110512345", "Ilmu Komputer", "Sistem Informasi",
			"Ingin mengembangkan kemampuan", "a3f0-ktm.pdf", "", "APPROVED", "",
			decided, 99, decided.Add(-72*time.Hour),
		))

	repo := NewRegistrationRepository(db)
	reg, err := repo.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusApproved, reg.Status)
	assert.Equal(t, "Budi Santoso", reg.Profile.Name)
	assert.NotNil(t, reg.DecidedOn)
	assert.Equal(t, int32(99), *reg.DecidedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM registrations WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(registrationRows))

	repo := NewRegistrationRepository(db)
	_, err = repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_GetByID_Pending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM registrations WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(registrationRows).AddRow(
			7, 1, 42, "Budi Santoso", "2110512345", "", "", "", "a3f0-ktm.pdf", "",
			"PENDING", "", nil, nil, time.Now(),
		))

	repo := NewRegistrationRepository(db)
	reg, err := repo.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusPending, reg.Status)
	assert.False(t, reg.Status.Terminal())
	assert.Nil(t, reg.DecidedOn)
	assert.Nil(t, reg.DecidedBy)
}

func TestRegistrationRepository_HasPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(42), string(domain.RegistrationStatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewRegistrationRepository(db)
	pending, err := repo.HasPending(context.Background(), 1, 42)

	assert.NoError(t, err)
	assert.True(t, pending)
	assert.NoError(t, mock.ExpectationsWereMet())
}
