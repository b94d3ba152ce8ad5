package repository

import (
	"context"
	"time"

	"ukm-registry-backend/internal/domain"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id int32) (*domain.Registration, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Registration, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Registration, error)
	// HasPending reports whether an undecided registration exists for the pair.
	HasPending(ctx context.Context, orgID, userID int32) (bool, error)
	// ListStalePending returns pending registrations submitted before cutoff.
	ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.Registration, error)
}

type MembershipRepository interface {
	// GetActive returns the active roster entry for the pair, or (nil, nil)
	// when there is none.
	GetActive(ctx context.Context, orgID, userID int32) (*domain.Membership, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Membership, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error)
	CountActiveByOrg(ctx context.Context, orgID int32) (int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID, limit, offset int32) ([]domain.Notification, int32, error)
	ListByOrg(ctx context.Context, orgID, limit, offset int32) ([]domain.Notification, int32, error)
	UnreadCountByUser(ctx context.Context, userID int32) (int32, error)
	UnreadCountByOrg(ctx context.Context, orgID int32) (int32, error)
	MarkAsRead(ctx context.Context, id int32) error
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// DecisionWriteSet is the full set of writes produced by one registration
// decision. Registration carries the terminal state to persist; ExpectedStatus
// is the prior status the conditional update must still observe. Membership is
// nil for rejections. Notification IDs are backfilled on commit.
type DecisionWriteSet struct {
	Registration   *domain.Registration
	ExpectedStatus domain.RegistrationStatus
	Membership     *domain.Membership
	Notifications  []*domain.Notification
}

// DecisionStore commits a decision write-set as a single all-or-nothing unit.
// On any failure nothing is visible: domain.ErrStatusConflict when the
// expected status no longer matched, domain.ErrDuplicateMembership when the
// roster insert hit an existing active entry, and domain.ErrCommitFailed
// (wrapped) for transient storage failures.
type DecisionStore interface {
	CommitDecision(ctx context.Context, ws *DecisionWriteSet) error
}
