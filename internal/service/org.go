package service

import (
	"context"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/repository"
)

type organizationService struct {
	orgRepo    repository.OrganizationRepository
	memberRepo repository.MembershipRepository
}

func NewOrganizationService(orgRepo repository.OrganizationRepository, memberRepo repository.MembershipRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo, memberRepo: memberRepo}
}

func (s *organizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orgs {
		count, err := s.memberRepo.CountActiveByOrg(ctx, orgs[i].ID)
		if err != nil {
			return nil, err
		}
		orgs[i].MemberCount = count
	}
	return orgs, nil
}

func (s *organizationService) GetOrganization(ctx context.Context, id int32) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.memberRepo.CountActiveByOrg(ctx, id)
	if err != nil {
		return nil, err
	}
	org.MemberCount = count
	return org, nil
}

func (s *organizationService) ListMembers(ctx context.Context, orgID int32) ([]domain.Membership, error) {
	return s.memberRepo.ListByOrg(ctx, orgID)
}
