package domain

import (
	"errors"
	"fmt"
)

// Decision error taxonomy. NotFound, OutcomeConflict and DuplicateMembership
// are terminal; CommitFailed is the only retriable condition and guarantees
// that no partial write is visible.
var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrDuplicateMembership  = errors.New("an active membership already exists for this user and unit")
	ErrOutcomeConflict      = errors.New("requested outcome conflicts with the recorded decision")
	ErrCommitFailed         = errors.New("decision commit failed")

	// ErrStatusConflict is returned by the storage layer when the conditional
	// registration update matched zero rows. Callers re-read and report the
	// winning terminal status instead of surfacing this directly.
	ErrStatusConflict = errors.New("registration status changed concurrently")
)

// AlreadyResolvedError reports that the registration already carries a
// terminal status. It is an idempotent echo of the prior decision, not a
// failure the caller should retry.
type AlreadyResolvedError struct {
	Status RegistrationStatus
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("registration already resolved with status %s", e.Status)
}

// Retriable reports whether the caller may safely retry the decision.
func Retriable(err error) bool {
	return errors.Is(err, ErrCommitFailed)
}
