package domain

import "time"

type NotificationKind string

const (
	NotificationKindMembershipApproved NotificationKind = "MEMBERSHIP_APPROVED"
	NotificationKindMembershipRejected NotificationKind = "MEMBERSHIP_REJECTED"
	NotificationKindNewMemberJoined    NotificationKind = "NEW_MEMBER_JOINED"
)

// Notification is an append-only inbox entry for either a user or an org.
// Exactly one of UserID/OrgID is set. Read state is flipped by the feed
// endpoints, never by the decision engine.
type Notification struct {
	ID        int32             `json:"id"`
	UserID    *int32            `json:"user_id,omitempty"`
	OrgID     *int32            `json:"org_id,omitempty"`
	Kind      NotificationKind  `json:"kind"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Payload   map[string]string `json:"payload,omitempty"`
	IsRead    bool              `json:"is_read"`
	CreatedOn time.Time         `json:"created_on"`
}
