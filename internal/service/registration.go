package service

import (
	"context"
	"fmt"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/repository"
)

type registrationService struct {
	regRepo    repository.RegistrationRepository
	memberRepo repository.MembershipRepository
	orgRepo    repository.OrganizationRepository
}

func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	memberRepo repository.MembershipRepository,
	orgRepo repository.OrganizationRepository,
) RegistrationService {
	return &registrationService{regRepo: regRepo, memberRepo: memberRepo, orgRepo: orgRepo}
}

// Submit creates a pending registration. Document references are stored
// verbatim; the profile snapshot is frozen as supplied.
func (s *registrationService) Submit(ctx context.Context, in SubmitRegistrationInput) (*domain.Registration, error) {
	if in.Profile.Name == "" || in.Profile.NIM == "" {
		return nil, fmt.Errorf("name and NIM are required")
	}
	if in.KTMFile == "" {
		return nil, fmt.Errorf("a student card (KTM) document is required")
	}

	if _, err := s.orgRepo.GetByID(ctx, in.OrgID); err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	existing, err := s.memberRepo.GetActive(ctx, in.OrgID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check roster: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateMembership
	}

	pending, err := s.regRepo.HasPending(ctx, in.OrgID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending registrations: %w", err)
	}
	if pending {
		return nil, fmt.Errorf("a pending registration already exists for this unit")
	}

	reg := &domain.Registration{
		OrgID:           in.OrgID,
		UserID:          in.UserID,
		Profile:         in.Profile,
		Motivation:      in.Motivation,
		KTMFile:         in.KTMFile,
		CertificateFile: in.CertificateFile,
		Status:          domain.RegistrationStatusPending,
	}
	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) ListByUser(ctx context.Context, userID int32) ([]domain.Registration, error) {
	return s.regRepo.ListByUser(ctx, userID)
}

func (s *registrationService) ListByOrg(ctx context.Context, orgID int32) ([]domain.Registration, error) {
	return s.regRepo.ListByOrg(ctx, orgID)
}
