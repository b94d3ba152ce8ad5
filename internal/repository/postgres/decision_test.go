package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/repository"
)

func approvalWriteSet(now time.Time) *repository.DecisionWriteSet {
	actor := int32(99)
	applicant := int32(42)
	org := int32(1)
	return &repository.DecisionWriteSet{
		Registration: &domain.Registration{
			ID:        7,
			OrgID:     1,
			UserID:    42,
			Profile:   domain.ProfileSnapshot{Name: "Budi Santoso", NIM: "2110512345"},
			Status:    domain.RegistrationStatusApproved,
			DecidedOn: &now,
			DecidedBy: &actor,
		},
		ExpectedStatus: domain.RegistrationStatusPending,
		Membership: &domain.Membership{
			OrgID:    1,
			UserID:   42,
			Profile:  domain.ProfileSnapshot{Name: "Budi Santoso", NIM: "2110512345"},
			JoinedOn: now,
		},
		Notifications: []*domain.Notification{
			{UserID: &applicant, Kind: domain.NotificationKindMembershipApproved, Title: "Pendaftaran UKM Paduan Suara", Message: "Selamat! Anda telah diterima di UKM Paduan Suara", CreatedOn: now},
			{OrgID: &org, Kind: domain.NotificationKindNewMemberJoined, Title: "Anggota Baru", Message: "Budi Santoso telah bergabung dengan UKM Paduan Suara", CreatedOn: now},
		},
	}
}

func TestDecisionStore_CommitDecision_Approve(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	ws := approvalWriteSet(now)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE registrations").
		WithArgs(string(domain.RegistrationStatusApproved), "", sqlmock.AnyArg(), int64(99), int64(7), string(domain.RegistrationStatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO memberships").
		WithArgs(int64(1), int64(42), "Budi Santoso", "2110512345", "", "", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectCommit()

	store := NewDecisionStore(db)
	err = store.CommitDecision(context.Background(), ws)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), ws.Membership.ID)
	assert.True(t, ws.Membership.Active)
	assert.Equal(t, int32(100), ws.Notifications[0].ID)
	assert.Equal(t, int32(101), ws.Notifications[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecisionStore_CommitDecision_StatusConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ws := approvalWriteSet(time.Now())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE registrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	store := NewDecisionStore(db)
	err = store.CommitDecision(context.Background(), ws)

	assert.ErrorIs(t, err, domain.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecisionStore_CommitDecision_DuplicateMembership(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ws := approvalWriteSet(time.Now())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE registrations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO memberships").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "memberships_org_user_active_key"})
	mock.ExpectRollback()

	store := NewDecisionStore(db)
	err = store.CommitDecision(context.Background(), ws)

	assert.ErrorIs(t, err, domain.ErrDuplicateMembership)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecisionStore_CommitDecision_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ws := approvalWriteSet(time.Now())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE registrations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO memberships").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	store := NewDecisionStore(db)
	err = store.CommitDecision(context.Background(), ws)

	assert.Error(t, err)
	assert.True(t, domain.Retriable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecisionStore_CommitDecision_NotificationFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ws := approvalWriteSet(time.Now())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE registrations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO memberships").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	store := NewDecisionStore(db)
	err = store.CommitDecision(context.Background(), ws)

	assert.ErrorIs(t, err, domain.ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
