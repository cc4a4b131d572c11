package service

import (
	"context"
	"errors"
	"fmt"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
	"clubelect-backend/internal/security"
)

type userService struct {
	userRepo repository.UserRepository
	clubRepo repository.ClubRepository
}

func NewUserService(userRepo repository.UserRepository, clubRepo repository.ClubRepository) UserService {
	return &userService{userRepo: userRepo, clubRepo: clubRepo}
}

func (s *userService) GetProfile(ctx context.Context, p *security.Principal) (*domain.User, []domain.Club, error) {
	if err := security.AuthorizeAny(p, domain.RoleUser, domain.RoleCandidate, domain.RoleAdmin); err != nil {
		return nil, nil, err
	}
	user, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, domain.NotFound("user %d not found", p.UserID)
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	clubs, err := s.clubRepo.ListClubsByUser(ctx, p.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return user, clubs, nil
}

func (s *userService) PromoteToCandidate(ctx context.Context, p *security.Principal, userID int32) (*domain.User, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("user %d not found", userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	clubs, err := s.clubRepo.ListClubsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	if len(clubs) == 0 {
		return nil, domain.PreconditionFailed("user %d must belong to at least one club to run", userID)
	}

	if user.HasRole(domain.RoleCandidate) {
		return nil, domain.Conflict("user %d is already a candidate", userID)
	}

	// A racing second promotion loses on the unique (user_id, role)
	// constraint; duplicate promotion is an error, never a silent no-op.
	if err := s.userRepo.AddRole(ctx, userID, domain.RoleCandidate); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict("user %d is already a candidate", userID)
		}
		return nil, fmt.Errorf("failed to grant candidate role: %w", err)
	}

	user.Roles = append(user.Roles, domain.RoleCandidate)
	return user, nil
}
