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

type nominationService struct {
	nomRepo  repository.NominationRepository
	clubRepo repository.ClubRepository
	now      Clock
}

func NewNominationService(nomRepo repository.NominationRepository, clubRepo repository.ClubRepository, now Clock) NominationService {
	if now == nil {
		now = time.Now
	}
	return &nominationService{nomRepo: nomRepo, clubRepo: clubRepo, now: now}
}

func (s *nominationService) Open(ctx context.Context, p *security.Principal, in OpenNominationInput) (*domain.Nomination, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Position) == "" {
		return nil, domain.InvalidInput("position is required")
	}
	// The end date must be strictly future; the start date may be in
	// the past so a window can open immediately.
	if !in.EndDate.After(s.now()) {
		return nil, domain.InvalidInput("end date must be in the future")
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, domain.InvalidInput("end date must be after start date")
	}
	if _, err := s.clubRepo.GetByID(ctx, in.ClubID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("club %d not found", in.ClubID)
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	nom := &domain.Nomination{
		ClubID:      in.ClubID,
		Position:    strings.TrimSpace(in.Position),
		Description: in.Description,
		Status:      domain.NominationStatusActive,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	if err := s.nomRepo.Create(ctx, nom); err != nil {
		return nil, fmt.Errorf("failed to create nomination: %w", err)
	}
	return nom, nil
}

func (s *nominationService) Close(ctx context.Context, p *security.Principal, id int32) (*domain.Nomination, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}
	nom, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if nom.Status == domain.NominationStatusClosed {
		return nil, domain.Conflict("nomination %d is already closed", id)
	}

	changed, err := s.nomRepo.TransitionStatus(ctx, id, nom.Status, domain.NominationStatusClosed)
	if err != nil {
		return nil, fmt.Errorf("failed to close nomination: %w", err)
	}
	if !changed {
		return nil, domain.Conflict("nomination %d is already closed", id)
	}
	nom.Status = domain.NominationStatusClosed
	return nom, nil
}

func (s *nominationService) Get(ctx context.Context, id int32) (*domain.Nomination, error) {
	nom, err := s.nomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("nomination %d not found", id)
		}
		return nil, fmt.Errorf("failed to get nomination: %w", err)
	}
	return nom, nil
}

func (s *nominationService) ListByClub(ctx context.Context, clubID int32) ([]domain.Nomination, error) {
	return s.nomRepo.ListByClub(ctx, clubID)
}

func (s *nominationService) IsOpenForApplication(ctx context.Context, id int32, now time.Time) (bool, error) {
	nom, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return nom.OpenForApplication(now), nil
}
