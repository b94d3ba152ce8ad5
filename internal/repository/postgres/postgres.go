package postgres

import (
	"database/sql"

	"ukm-registry-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RegistrationRepository
	repository.MembershipRepository
	repository.NotificationRepository
	repository.OrganizationRepository
	repository.UserRepository
	repository.DecisionStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		RegistrationRepository: NewRegistrationRepository(db),
		MembershipRepository:   NewMembershipRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		UserRepository:         NewUserRepository(db),
		DecisionStore:          NewDecisionStore(db),
	}
}
