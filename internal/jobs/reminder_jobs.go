package jobs

import (
	"context"
	"time"

	"ukm-registry-backend/internal/logger"
)

// SendPendingRegistrationReminders emails each unit admin a summary of
// registrations that have been waiting for a decision longer than the
// configured age.
func (jr *JobRunner) SendPendingRegistrationReminders() {
	jr.runWithRecovery("SendPendingRegistrationReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Scheduler.PendingAgeDays)

		query := `
			SELECT o.id, o.name, o.admin_email, count(*), min(r.created_on)
			FROM registrations r
			JOIN orgs o ON r.org_id = o.id
			WHERE r.status = 'PENDING' AND r.created_on < $1
			GROUP BY o.id, o.name, o.admin_email
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to query stale pending registrations", "error", err)
			return
		}
		defer rows.Close()

		reminded := 0
		for rows.Next() {
			var (
				orgID      int32
				orgName    string
				adminEmail string
				count      int32
				oldest     time.Time
			)
			if err := rows.Scan(&orgID, &orgName, &adminEmail, &count, &oldest); err != nil {
				logger.Error("Failed to scan pending reminder row", "error", err)
				continue
			}

			if adminEmail == "" {
				logger.Warn("Unit has no admin email, skipping reminder", "orgID", orgID)
				continue
			}

			if err := jr.email.SendPendingReminder(ctx, adminEmail, orgName, count, oldest); err != nil {
				logger.Error("Failed to send pending reminder", "orgID", orgID, "error", err)
				continue
			}
			reminded++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Pending reminder row iteration failed", "error", err)
		}

		logger.Info("Pending registration reminders sent", "units", reminded)
	})
}
