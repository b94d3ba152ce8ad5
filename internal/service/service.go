package service

import (
	"context"
	"time"

	"ukm-registry-backend/internal/domain"
)

// DecisionInput is one approval/rejection request for a pending registration.
// Reason is required when the outcome is rejection and ignored otherwise.
type DecisionInput struct {
	RegistrationID int32
	Outcome        domain.DecisionOutcome
	Reason         string
	ActorID        int32
}

// DecisionResult reports the terminal status after a decision. AlreadyApplied
// marks an idempotent echo: the registration was resolved by an earlier call
// with the same outcome and no new side effects were produced.
type DecisionResult struct {
	Status          domain.RegistrationStatus `json:"status"`
	NotificationIDs []int32                   `json:"notification_ids,omitempty"`
	AlreadyApplied  bool                      `json:"already_applied,omitempty"`
}

type DecisionService interface {
	Decide(ctx context.Context, in DecisionInput) (*DecisionResult, error)
}

type SubmitRegistrationInput struct {
	OrgID           int32
	UserID          int32
	Profile         domain.ProfileSnapshot
	Motivation      string
	KTMFile         string
	CertificateFile string
}

type RegistrationService interface {
	Submit(ctx context.Context, in SubmitRegistrationInput) (*domain.Registration, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Registration, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Registration, error)
}

// NotificationFeed is one page of a recipient's inbox.
type NotificationFeed struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int32                 `json:"total"`
	UnreadCount   int32                 `json:"unread_count"`
}

type NotificationService interface {
	UserFeed(ctx context.Context, userID, page, pageSize int32) (*NotificationFeed, error)
	OrgFeed(ctx context.Context, orgID, page, pageSize int32) (*NotificationFeed, error)
	MarkAsRead(ctx context.Context, id int32) error
}

type OrganizationService interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	GetOrganization(ctx context.Context, id int32) (*domain.Organization, error)
	ListMembers(ctx context.Context, orgID int32) ([]domain.Membership, error)
}

type EmailService interface {
	SendRegistrationApproved(ctx context.Context, email, name, orgName string) error
	SendRegistrationRejected(ctx context.Context, email, name, orgName, reason string) error
	SendPendingReminder(ctx context.Context, adminEmail, orgName string, count int32, oldest time.Time) error
}

// PushService delivers a best-effort device push mirroring an inbox
// notification. Implementations must tolerate an empty token.
type PushService interface {
	SendNotification(ctx context.Context, deviceToken string, n *domain.Notification) error
}
