package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
	"clubelect-backend/internal/security"
)

type clubService struct {
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
}

func NewClubService(clubRepo repository.ClubRepository, userRepo repository.UserRepository) ClubService {
	return &clubService{clubRepo: clubRepo, userRepo: userRepo}
}

func (s *clubService) CreateClub(ctx context.Context, p *security.Principal, name, description string) (*domain.Club, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.InvalidInput("club name is required")
	}
	club := &domain.Club{
		Name:        strings.TrimSpace(name),
		Description: description,
		Status:      domain.ClubStatusActive,
	}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict("club %q already exists", club.Name)
		}
		return nil, fmt.Errorf("failed to create club: %w", err)
	}
	return club, nil
}

func (s *clubService) GetClub(ctx context.Context, id int32) (*domain.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("club %d not found", id)
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return club, nil
}

func (s *clubService) ListClubs(ctx context.Context) ([]domain.Club, error) {
	return s.clubRepo.List(ctx)
}

func (s *clubService) JoinClub(ctx context.Context, p *security.Principal, clubID, userID int32) error {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound("user %d not found", userID)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return err
	}

	member := &domain.ClubMember{ClubID: clubID, UserID: userID}
	if err := s.clubRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.Conflict("user %d is already a member of club %d", userID, clubID)
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (s *clubService) IsMember(ctx context.Context, userID, clubID int32) (bool, error) {
	return s.clubRepo.IsMember(ctx, userID, clubID)
}

func (s *clubService) ClubsOf(ctx context.Context, userID int32) ([]domain.Club, error) {
	return s.clubRepo.ListClubsByUser(ctx, userID)
}
