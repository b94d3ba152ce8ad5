package domain

import "time"

// Membership is one active (org, user) roster entry. At most one active
// entry may exist per pair; the database enforces this with a partial
// unique index on (org_id, user_id) WHERE active.
type Membership struct {
	ID       int32           `json:"id"`
	OrgID    int32           `json:"org_id"`
	UserID   int32           `json:"user_id"`
	Profile  ProfileSnapshot `json:"profile"`
	JoinedOn time.Time       `json:"joined_on"`
	Active   bool            `json:"active"`
}
