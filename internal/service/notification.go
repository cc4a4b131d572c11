package service

import (
	"context"
	"errors"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
	"clubelect-backend/internal/security"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, p *security.Principal, page, pageSize int32) ([]domain.Notification, int32, error) {
	if err := security.AuthorizeAny(p, domain.RoleUser, domain.RoleCandidate, domain.RoleAdmin); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, p.UserID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, p *security.Principal, notificationID int32) error {
	if err := security.AuthorizeAny(p, domain.RoleUser, domain.RoleCandidate, domain.RoleAdmin); err != nil {
		return err
	}
	err := s.noteRepo.MarkAsRead(ctx, notificationID, p.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NotFound("notification %d not found", notificationID)
	}
	return err
}
