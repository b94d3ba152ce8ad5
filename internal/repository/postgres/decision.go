package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/logger"
	"ukm-registry-backend/internal/repository"
)

// uniqueViolation is the postgres error code raised by the partial unique
// index on active (org_id, user_id) membership pairs.
const uniqueViolation = "23505"

type decisionStore struct {
	db *sql.DB
}

func NewDecisionStore(db *sql.DB) repository.DecisionStore {
	return &decisionStore{db: db}
}

// CommitDecision applies the whole write-set inside one transaction. The
// registration update is conditional on the expected prior status, so of two
// racing decisions only one commit succeeds; the loser gets
// domain.ErrStatusConflict and nothing else it wrote survives the rollback.
func (s *decisionStore) CommitDecision(ctx context.Context, ws *repository.DecisionWriteSet) error {
	logger.EnterMethod("decisionStore.CommitDecision", "registrationID", ws.Registration.ID, "status", ws.Registration.Status)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("decisionStore.CommitDecision", err, "stage", "begin")
		return fmt.Errorf("%w: begin: %v", domain.ErrCommitFailed, err)
	}
	defer tx.Rollback()

	if err := updateRegistration(ctx, tx, ws); err != nil {
		logger.ExitMethodWithError("decisionStore.CommitDecision", err, "stage", "registration")
		return err
	}

	if ws.Membership != nil {
		if err := insertMembership(ctx, tx, ws.Membership); err != nil {
			logger.ExitMethodWithError("decisionStore.CommitDecision", err, "stage", "membership")
			return err
		}
	}

	for _, n := range ws.Notifications {
		if err := insertNotification(ctx, tx, n); err != nil {
			logger.ExitMethodWithError("decisionStore.CommitDecision", err, "stage", "notification")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("decisionStore.CommitDecision", err, "stage", "commit")
		return fmt.Errorf("%w: commit: %v", domain.ErrCommitFailed, err)
	}

	logger.ExitMethod("decisionStore.CommitDecision", "registrationID", ws.Registration.ID)
	return nil
}

func updateRegistration(ctx context.Context, tx *sql.Tx, ws *repository.DecisionWriteSet) error {
	reg := ws.Registration
	query := `UPDATE registrations
	          SET status = $1, rejection_reason = $2, decided_on = $3, decided_by = $4
	          WHERE id = $5 AND status = $6`
	result, err := tx.ExecContext(ctx, query,
		reg.Status, reg.RejectionReason, reg.DecidedOn, reg.DecidedBy, reg.ID, ws.ExpectedStatus,
	)
	if err != nil {
		return fmt.Errorf("%w: registration update: %v", domain.ErrCommitFailed, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: registration update: %v", domain.ErrCommitFailed, err)
	}
	if rows == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func insertMembership(ctx context.Context, tx *sql.Tx, m *domain.Membership) error {
	query := `INSERT INTO memberships (org_id, user_id, name, nim, faculty, program, joined_on, active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE) RETURNING id`
	err := tx.QueryRowContext(ctx, query,
		m.OrgID, m.UserID, m.Profile.Name, m.Profile.NIM, m.Profile.Faculty, m.Profile.Program, m.JoinedOn,
	).Scan(&m.ID)
	if err == nil {
		m.Active = true
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateMembership
	}
	return fmt.Errorf("%w: membership insert: %v", domain.ErrCommitFailed, err)
}

func insertNotification(ctx context.Context, tx *sql.Tx, n *domain.Notification) error {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return fmt.Errorf("%w: notification payload: %v", domain.ErrCommitFailed, err)
	}
	query := `INSERT INTO notifications (user_id, org_id, kind, title, message, is_read, payload, created_on)
	          VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		n.UserID, n.OrgID, n.Kind, n.Title, n.Message, payload, n.CreatedOn,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("%w: notification insert: %v", domain.ErrCommitFailed, err)
	}
	return nil
}
