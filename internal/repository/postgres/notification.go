package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/logger"
	"ukm-registry-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

const notificationColumns = `id, user_id, org_id, kind, title, message, is_read, payload, created_on`

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	logger.EnterMethod("notificationRepository.Create", "kind", n.Kind)

	payload, err := json.Marshal(n.Payload)
	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "reason", "failed to marshal payload")
		return err
	}

	query := `INSERT INTO notifications (user_id, org_id, kind, title, message, is_read, payload, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = r.db.QueryRowContext(ctx, query,
		n.UserID, n.OrgID, n.Kind, n.Title, n.Message, n.IsRead, payload, time.Now(),
	).Scan(&n.ID)

	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "kind", n.Kind)
	} else {
		logger.ExitMethod("notificationRepository.Create", "notificationID", n.ID)
	}
	return err
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID, limit, offset int32) ([]domain.Notification, int32, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	countQuery := `SELECT count(*) FROM notifications WHERE user_id = $1`
	return r.list(ctx, query, countQuery, userID, limit, offset)
}

func (r *notificationRepository) ListByOrg(ctx context.Context, orgID, limit, offset int32) ([]domain.Notification, int32, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE org_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	countQuery := `SELECT count(*) FROM notifications WHERE org_id = $1`
	return r.list(ctx, query, countQuery, orgID, limit, offset)
}

func (r *notificationRepository) UnreadCountByUser(ctx context.Context, userID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *notificationRepository) UnreadCountByOrg(ctx context.Context, orgID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM notifications WHERE org_id = $1 AND NOT is_read`
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(&count)
	return count, err
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int32) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("notification %d not found", id)
	}
	return nil
}

func (r *notificationRepository) list(ctx context.Context, query, countQuery string, recipientID, limit, offset int32) ([]domain.Notification, int32, error) {
	rows, err := r.db.QueryContext(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var userID, orgID sql.NullInt32
		var payload []byte
		if err := rows.Scan(&n.ID, &userID, &orgID, &n.Kind, &n.Title, &n.Message, &n.IsRead, &payload, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		if userID.Valid {
			v := userID.Int32
			n.UserID = &v
		}
		if orgID.Valid {
			v := orgID.Int32
			n.OrgID = &v
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &n.Payload); err != nil {
				return nil, 0, err
			}
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, recipientID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return notes, count, nil
}
