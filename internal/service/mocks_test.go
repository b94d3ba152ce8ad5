package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/repository"
)

type MockRegistrationRepo struct {
	mock.Mock
}

func (m *MockRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}
func (m *MockRegistrationRepo) GetByID(ctx context.Context, id int32) (*domain.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Registration, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.Registration, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) HasPending(ctx context.Context, orgID, userID int32) (bool, error) {
	args := m.Called(ctx, orgID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRegistrationRepo) ListStalePending(ctx context.Context, cutoff time.Time) ([]domain.Registration, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Registration), args.Error(1)
}

type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) GetActive(ctx context.Context, orgID, userID int32) (*domain.Membership, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.Membership, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) CountActiveByOrg(ctx context.Context, orgID int32) (int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int32), args.Error(1)
}

type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrganizationRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) List(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Organization), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockDecisionStore struct {
	mock.Mock
}

func (m *MockDecisionStore) CommitDecision(ctx context.Context, ws *repository.DecisionWriteSet) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRegistrationApproved(ctx context.Context, email, name, orgName string) error {
	args := m.Called(ctx, email, name, orgName)
	return args.Error(0)
}
func (m *MockEmailService) SendRegistrationRejected(ctx context.Context, email, name, orgName, reason string) error {
	args := m.Called(ctx, email, name, orgName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingReminder(ctx context.Context, adminEmail, orgName string, count int32, oldest time.Time) error {
	args := m.Called(ctx, adminEmail, orgName, count, oldest)
	return args.Error(0)
}

type MockPushService struct {
	mock.Mock
}

func (m *MockPushService) SendNotification(ctx context.Context, deviceToken string, n *domain.Notification) error {
	args := m.Called(ctx, deviceToken, n)
	return args.Error(0)
}

// MockDecisionService stands in for the engine under the idempotency guard.
type MockDecisionService struct {
	mock.Mock
}

func (m *MockDecisionService) Decide(ctx context.Context, in DecisionInput) (*DecisionResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DecisionResult), args.Error(1)
}
