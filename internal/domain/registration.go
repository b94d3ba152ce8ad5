package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "PENDING"
	RegistrationStatusApproved RegistrationStatus = "APPROVED"
	RegistrationStatusRejected RegistrationStatus = "REJECTED"
)

// Terminal reports whether the status is a final decision outcome.
func (s RegistrationStatus) Terminal() bool {
	return s == RegistrationStatusApproved || s == RegistrationStatusRejected
}

type DecisionOutcome string

const (
	DecisionOutcomeApproved DecisionOutcome = "APPROVED"
	DecisionOutcomeRejected DecisionOutcome = "REJECTED"
)

// Status returns the registration status a decision outcome resolves to.
func (o DecisionOutcome) Status() RegistrationStatus {
	if o == DecisionOutcomeApproved {
		return RegistrationStatusApproved
	}
	return RegistrationStatusRejected
}

// ProfileSnapshot is the applicant's profile as captured at submission time.
// It is copied into the membership roster on approval and never updated from
// the live user record afterwards.
type ProfileSnapshot struct {
	Name    string `json:"name"`
	NIM     string `json:"nim"`
	Faculty string `json:"faculty"`
	Program string `json:"program"`
}

type Registration struct {
	ID              int32              `json:"id"`
	OrgID           int32              `json:"org_id"`
	UserID          int32              `json:"user_id"`
	Profile         ProfileSnapshot    `json:"profile"`
	Motivation      string             `json:"motivation"`
	KTMFile         string             `json:"ktm_file"`
	CertificateFile string             `json:"certificate_file,omitempty"`
	Status          RegistrationStatus `json:"status"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	DecidedOn       *time.Time         `json:"decided_on,omitempty"`
	DecidedBy       *int32             `json:"decided_by,omitempty"`
	CreatedOn       time.Time          `json:"created_on"`
}
