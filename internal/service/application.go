package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
	"clubelect-backend/internal/security"
)

type applicationService struct {
	appRepo  repository.ApplicationRepository
	nomRepo  repository.NominationRepository
	clubRepo repository.ClubRepository
	noteRepo repository.NotificationRepository
	now      Clock
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	nomRepo repository.NominationRepository,
	clubRepo repository.ClubRepository,
	noteRepo repository.NotificationRepository,
	now Clock,
) ApplicationService {
	if now == nil {
		now = time.Now
	}
	return &applicationService{
		appRepo:  appRepo,
		nomRepo:  nomRepo,
		clubRepo: clubRepo,
		noteRepo: noteRepo,
		now:      now,
	}
}

func (s *applicationService) Apply(ctx context.Context, p *security.Principal, in ApplyInput) (*domain.Application, error) {
	if err := security.AuthorizeAny(p, domain.RoleUser, domain.RoleCandidate); err != nil {
		return nil, err
	}

	nom, err := s.nomRepo.GetByID(ctx, in.NominationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("nomination %d not found", in.NominationID)
		}
		return nil, fmt.Errorf("failed to get nomination: %w", err)
	}
	if !nom.OpenForApplication(s.now()) {
		return nil, domain.PreconditionFailed("nomination %d is not open for applications", nom.ID)
	}

	isMember, err := s.clubRepo.IsMember(ctx, p.UserID, nom.ClubID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, domain.PreconditionFailed("user %d is not a member of club %d", p.UserID, nom.ClubID)
	}

	if len(strings.TrimSpace(in.Statement)) < domain.MinStatementLength {
		return nil, domain.InvalidInput("statement must be at least %d characters", domain.MinStatementLength)
	}

	app := &domain.Application{
		NominationID: nom.ID,
		UserID:       p.UserID,
		Statement:    strings.TrimSpace(in.Statement),
		Status:       domain.ApplicationStatusPending,
	}
	// The insert is the duplicate check; two concurrent submissions
	// for the same (nomination, user) yield exactly one row.
	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict("user %d has already applied to nomination %d", p.UserID, nom.ID)
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

func (s *applicationService) Review(ctx context.Context, p *security.Principal, applicationID int32, decision domain.ReviewDecision) (*domain.Application, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}

	var status domain.ApplicationStatus
	switch decision {
	case domain.ReviewDecisionApprove:
		status = domain.ApplicationStatusApproved
	case domain.ReviewDecisionReject:
		status = domain.ApplicationStatusRejected
	default:
		return nil, domain.InvalidInput("unknown review decision %q", decision)
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("application %d not found", applicationID)
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	// One-shot review: the conditional update only matches PENDING
	// rows, so concurrent reviewers cannot both win.
	changed, err := s.appRepo.Review(ctx, applicationID, status, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to review application: %w", err)
	}
	if !changed {
		return nil, domain.Conflict("application %d has already been reviewed", applicationID)
	}

	app.Status = status
	reviewer := p.UserID
	app.ReviewedBy = &reviewer

	note := &domain.Notification{
		UserID:  app.UserID,
		Title:   "Application " + string(status),
		Message: fmt.Sprintf("Your application %d was %s", app.ID, strings.ToLower(string(status))),
		Attributes: map[string]string{
			"type":           "APPLICATION_REVIEWED",
			"application_id": fmt.Sprintf("%d", app.ID),
		},
	}
	_ = s.noteRepo.Create(ctx, note)

	return app, nil
}

func (s *applicationService) ListByNomination(ctx context.Context, p *security.Principal, nominationID int32) ([]domain.Application, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.appRepo.ListByNomination(ctx, nominationID)
}

func (s *applicationService) MyApplications(ctx context.Context, p *security.Principal) ([]domain.Application, error) {
	if err := security.AuthorizeAny(p, domain.RoleUser, domain.RoleCandidate); err != nil {
		return nil, err
	}
	return s.appRepo.ListByUser(ctx, p.UserID)
}
