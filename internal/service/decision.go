package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/logger"
	"ukm-registry-backend/internal/repository"
)

// ErrInvalidDecision marks a malformed decision request (unknown outcome or a
// rejection without a reason). Nothing was read or written.
var ErrInvalidDecision = errors.New("invalid decision request")

// decisionFanout enumerates the notification writes per outcome: approval
// notifies the applicant and the unit, rejection only the applicant.
var decisionFanout = map[domain.DecisionOutcome][]domain.NotificationKind{
	domain.DecisionOutcomeApproved: {
		domain.NotificationKindMembershipApproved,
		domain.NotificationKindNewMemberJoined,
	},
	domain.DecisionOutcomeRejected: {
		domain.NotificationKindMembershipRejected,
	},
}

type decisionService struct {
	regRepo    repository.RegistrationRepository
	memberRepo repository.MembershipRepository
	orgRepo    repository.OrganizationRepository
	userRepo   repository.UserRepository
	decisions  repository.DecisionStore
	emailSvc   EmailService
	pushSvc    PushService
	timeout    time.Duration
}

// NewDecisionService builds the registration decision engine. emailSvc and
// pushSvc may be nil; they are best-effort side channels outside the atomic
// commit. timeout bounds every storage call for one decision.
func NewDecisionService(
	regRepo repository.RegistrationRepository,
	memberRepo repository.MembershipRepository,
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	decisions repository.DecisionStore,
	emailSvc EmailService,
	pushSvc PushService,
	timeout time.Duration,
) DecisionService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &decisionService{
		regRepo:    regRepo,
		memberRepo: memberRepo,
		orgRepo:    orgRepo,
		userRepo:   userRepo,
		decisions:  decisions,
		emailSvc:   emailSvc,
		pushSvc:    pushSvc,
		timeout:    timeout,
	}
}

func (s *decisionService) Decide(ctx context.Context, in DecisionInput) (*DecisionResult, error) {
	logger.EnterMethod("decisionService.Decide", "registrationID", in.RegistrationID, "outcome", in.Outcome)

	if err := validateInput(in); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reg, err := s.regRepo.GetByID(ctx, in.RegistrationID)
	if err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: load registration: %v", domain.ErrCommitFailed, err)
	}

	// The status check happens before the roster check, so a repeated decision
	// on the same registration is reported as already-resolved and never as a
	// duplicate membership.
	if reg.Status.Terminal() {
		return nil, &domain.AlreadyResolvedError{Status: reg.Status}
	}

	if in.Outcome == domain.DecisionOutcomeApproved {
		existing, err := s.memberRepo.GetActive(ctx, reg.OrgID, reg.UserID)
		if err != nil {
			return nil, fmt.Errorf("%w: roster check: %v", domain.ErrCommitFailed, err)
		}
		if existing != nil {
			// The registration stays pending for manual disambiguation.
			return nil, domain.ErrDuplicateMembership
		}
	}

	org, err := s.orgRepo.GetByID(ctx, reg.OrgID)
	if err != nil {
		return nil, fmt.Errorf("%w: load organization: %v", domain.ErrCommitFailed, err)
	}

	ws := buildWriteSet(reg, org, in, time.Now())

	if err := s.decisions.CommitDecision(ctx, ws); err != nil {
		return nil, s.mapCommitErr(ctx, in.RegistrationID, err)
	}

	ids := make([]int32, len(ws.Notifications))
	for i, n := range ws.Notifications {
		ids[i] = n.ID
	}

	s.notifyApplicant(ctx, reg, org, in, ws)

	logger.ExitMethod("decisionService.Decide", "registrationID", in.RegistrationID, "status", ws.Registration.Status)
	return &DecisionResult{Status: ws.Registration.Status, NotificationIDs: ids}, nil
}

func validateInput(in DecisionInput) error {
	switch in.Outcome {
	case domain.DecisionOutcomeApproved:
	case domain.DecisionOutcomeRejected:
		if in.Reason == "" {
			return fmt.Errorf("%w: rejection requires a reason", ErrInvalidDecision)
		}
	default:
		return fmt.Errorf("%w: unknown outcome %q", ErrInvalidDecision, in.Outcome)
	}
	return nil
}

// mapCommitErr translates a lost optimistic-concurrency race into the
// already-resolved echo carrying the winner's outcome.
func (s *decisionService) mapCommitErr(ctx context.Context, registrationID int32, err error) error {
	if !errors.Is(err, domain.ErrStatusConflict) {
		return err
	}
	current, readErr := s.regRepo.GetByID(ctx, registrationID)
	if readErr != nil || !current.Status.Terminal() {
		return fmt.Errorf("%w: status conflict", domain.ErrCommitFailed)
	}
	return &domain.AlreadyResolvedError{Status: current.Status}
}

func buildWriteSet(reg *domain.Registration, org *domain.Organization, in DecisionInput, now time.Time) *repository.DecisionWriteSet {
	decided := *reg
	decided.Status = in.Outcome.Status()
	decided.DecidedOn = &now
	decided.DecidedBy = &in.ActorID
	if in.Outcome == domain.DecisionOutcomeRejected {
		decided.RejectionReason = in.Reason
	}

	ws := &repository.DecisionWriteSet{
		Registration:   &decided,
		ExpectedStatus: domain.RegistrationStatusPending,
	}

	if in.Outcome == domain.DecisionOutcomeApproved {
		ws.Membership = &domain.Membership{
			OrgID:    reg.OrgID,
			UserID:   reg.UserID,
			Profile:  reg.Profile,
			JoinedOn: now,
		}
	}

	for _, kind := range decisionFanout[in.Outcome] {
		ws.Notifications = append(ws.Notifications, buildNotification(kind, reg, org, in.Reason, now))
	}
	return ws
}

func buildNotification(kind domain.NotificationKind, reg *domain.Registration, org *domain.Organization, reason string, now time.Time) *domain.Notification {
	n := &domain.Notification{
		Kind:      kind,
		CreatedOn: now,
	}
	regID := strconv.Itoa(int(reg.ID))

	switch kind {
	case domain.NotificationKindMembershipApproved:
		n.UserID = &reg.UserID
		n.Title = fmt.Sprintf("Pendaftaran UKM %s", org.Name)
		n.Message = fmt.Sprintf("Selamat! Anda telah diterima di UKM %s", org.Name)
		n.Payload = map[string]string{"registration_id": regID}
	case domain.NotificationKindMembershipRejected:
		n.UserID = &reg.UserID
		n.Title = fmt.Sprintf("Pendaftaran UKM %s", org.Name)
		n.Message = fmt.Sprintf("Maaf, pendaftaran Anda di UKM %s ditolak. %s", org.Name, reason)
		n.Payload = map[string]string{"registration_id": regID, "reason": reason}
	case domain.NotificationKindNewMemberJoined:
		n.OrgID = &reg.OrgID
		n.Title = "Anggota Baru"
		n.Message = fmt.Sprintf("%s telah bergabung dengan UKM %s", reg.Profile.Name, org.Name)
		n.Payload = map[string]string{
			"registration_id": regID,
			"user_id":         strconv.Itoa(int(reg.UserID)),
			"name":            reg.Profile.Name,
			"nim":             reg.Profile.NIM,
			"faculty":         reg.Profile.Faculty,
			"program":         reg.Profile.Program,
		}
	}
	return n
}

// notifyApplicant fans the committed decision out to the side channels.
// Failures here never affect the already-committed decision.
func (s *decisionService) notifyApplicant(ctx context.Context, reg *domain.Registration, org *domain.Organization, in DecisionInput, ws *repository.DecisionWriteSet) {
	if s.emailSvc == nil && s.pushSvc == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, reg.UserID)
	if err != nil {
		logger.Warn("Skipping decision side-channel notifications", "registrationID", reg.ID, "error", err)
		return
	}
	if s.emailSvc != nil {
		if in.Outcome == domain.DecisionOutcomeApproved {
			_ = s.emailSvc.SendRegistrationApproved(ctx, user.Email, reg.Profile.Name, org.Name)
		} else {
			_ = s.emailSvc.SendRegistrationRejected(ctx, user.Email, reg.Profile.Name, org.Name, in.Reason)
		}
	}
	if s.pushSvc != nil && user.DeviceToken != "" {
		for _, n := range ws.Notifications {
			if n.UserID != nil && *n.UserID == user.ID {
				_ = s.pushSvc.SendNotification(ctx, user.DeviceToken, n)
			}
		}
	}
}
