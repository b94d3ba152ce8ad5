package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ukm-registry-backend/internal/domain"
)

func submitInput() SubmitRegistrationInput {
	return SubmitRegistrationInput{
		OrgID:  1,
		UserID: 42,
		Profile: domain.ProfileSnapshot{
			Name:    "Budi Santoso",
			NIM:     "2110512345",
			Faculty: "Ilmu Komputer",
			Program: "Sistem Informasi",
		},
		Motivation: "Ingin mengembangkan kemampuan",
		KTMFile:    "a3f0-ktm.pdf",
	}
}

func TestRegistrationService_Submit(t *testing.T) {
	regRepo := new(MockRegistrationRepo)
	memberRepo := new(MockMembershipRepo)
	orgRepo := new(MockOrganizationRepo)
	svc := NewRegistrationService(regRepo, memberRepo, orgRepo)
	ctx := context.Background()

	orgRepo.On("GetByID", ctx, int32(1)).Return(&domain.Organization{ID: 1, Name: "Paduan Suara"}, nil).Once()
	memberRepo.On("GetActive", ctx, int32(1), int32(42)).Return(nil, nil).Once()
	regRepo.On("HasPending", ctx, int32(1), int32(42)).Return(false, nil).Once()
	regRepo.On("Create", ctx, mock.AnythingOfType("*domain.Registration")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Registration).ID = 7
		}).Return(nil).Once()

	reg, err := svc.Submit(ctx, submitInput())
	assert.NoError(t, err)
	assert.Equal(t, int32(7), reg.ID)
	assert.Equal(t, domain.RegistrationStatusPending, reg.Status)
	assert.Equal(t, "Budi Santoso", reg.Profile.Name)
	regRepo.AssertExpectations(t)
}

func TestRegistrationService_Submit_MissingDocument(t *testing.T) {
	svc := NewRegistrationService(new(MockRegistrationRepo), new(MockMembershipRepo), new(MockOrganizationRepo))

	in := submitInput()
	in.KTMFile = ""

	_, err := svc.Submit(context.Background(), in)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "KTM")
}

func TestRegistrationService_Submit_AlreadyMember(t *testing.T) {
	regRepo := new(MockRegistrationRepo)
	memberRepo := new(MockMembershipRepo)
	orgRepo := new(MockOrganizationRepo)
	svc := NewRegistrationService(regRepo, memberRepo, orgRepo)
	ctx := context.Background()

	orgRepo.On("GetByID", ctx, int32(1)).Return(&domain.Organization{ID: 1}, nil).Once()
	memberRepo.On("GetActive", ctx, int32(1), int32(42)).
		Return(&domain.Membership{ID: 3, OrgID: 1, UserID: 42, Active: true}, nil).Once()

	_, err := svc.Submit(ctx, submitInput())
	assert.ErrorIs(t, err, domain.ErrDuplicateMembership)
	regRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrationService_Submit_PendingExists(t *testing.T) {
	regRepo := new(MockRegistrationRepo)
	memberRepo := new(MockMembershipRepo)
	orgRepo := new(MockOrganizationRepo)
	svc := NewRegistrationService(regRepo, memberRepo, orgRepo)
	ctx := context.Background()

	orgRepo.On("GetByID", ctx, int32(1)).Return(&domain.Organization{ID: 1}, nil).Once()
	memberRepo.On("GetActive", ctx, int32(1), int32(42)).Return(nil, nil).Once()
	regRepo.On("HasPending", ctx, int32(1), int32(42)).Return(true, nil).Once()

	_, err := svc.Submit(ctx, submitInput())
	assert.Error(t, err)
	regRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
