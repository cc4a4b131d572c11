package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubelect-backend/internal/domain"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestNominationService_Open(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("EndDateInPast", func(t *testing.T) {
		svc := NewNominationService(new(MockNominationRepo), new(MockClubRepo), fixedClock(now))
		_, err := svc.Open(ctx, adminPrincipal(), OpenNominationInput{
			ClubID:    1,
			Position:  "President",
			StartDate: now.Add(-48 * time.Hour),
			EndDate:   now.Add(-time.Hour),
		})
		assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
	})

	t.Run("MissingPosition", func(t *testing.T) {
		svc := NewNominationService(new(MockNominationRepo), new(MockClubRepo), fixedClock(now))
		_, err := svc.Open(ctx, adminPrincipal(), OpenNominationInput{
			ClubID:  1,
			EndDate: now.Add(time.Hour),
		})
		assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		svc := NewNominationService(new(MockNominationRepo), new(MockClubRepo), fixedClock(now))
		_, err := svc.Open(ctx, memberPrincipal(1), OpenNominationInput{
			ClubID:   1,
			Position: "President",
			EndDate:  now.Add(time.Hour),
		})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("StartDateMayBePast", func(t *testing.T) {
		// An already-running window is legal: only the end must be future.
		nomRepo := new(MockNominationRepo)
		clubRepo := new(MockClubRepo)
		clubRepo.On("GetByID", ctx, int32(1)).Return(&domain.Club{ID: 1}, nil)
		nomRepo.On("Create", ctx, mock.AnythingOfType("*domain.Nomination")).Return(nil)
		svc := NewNominationService(nomRepo, clubRepo, fixedClock(now))

		nom, err := svc.Open(ctx, adminPrincipal(), OpenNominationInput{
			ClubID:    1,
			Position:  "President",
			StartDate: now.Add(-time.Hour),
			EndDate:   now.Add(72 * time.Hour),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.NominationStatusActive, nom.Status)
	})
}

func TestNominationService_Close(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("AlreadyClosed", func(t *testing.T) {
		nomRepo := new(MockNominationRepo)
		nomRepo.On("GetByID", ctx, int32(4)).Return(
			&domain.Nomination{ID: 4, Status: domain.NominationStatusClosed}, nil)
		svc := NewNominationService(nomRepo, new(MockClubRepo), fixedClock(now))

		_, err := svc.Close(ctx, adminPrincipal(), 4)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})

	t.Run("Success", func(t *testing.T) {
		nomRepo := new(MockNominationRepo)
		nomRepo.On("GetByID", ctx, int32(4)).Return(
			&domain.Nomination{ID: 4, Status: domain.NominationStatusActive}, nil)
		nomRepo.On("TransitionStatus", ctx, int32(4),
			domain.NominationStatusActive, domain.NominationStatusClosed).Return(true, nil)
		svc := NewNominationService(nomRepo, new(MockClubRepo), fixedClock(now))

		nom, err := svc.Close(ctx, adminPrincipal(), 4)
		assert.NoError(t, err)
		assert.Equal(t, domain.NominationStatusClosed, nom.Status)
	})
}

func TestNominationService_IsOpenForApplication(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	nomRepo := new(MockNominationRepo)
	// Status still reads ACTIVE but the window ended yesterday.
	nomRepo.On("GetByID", ctx, int32(9)).Return(&domain.Nomination{
		ID:        9,
		Status:    domain.NominationStatusActive,
		StartDate: now.Add(-72 * time.Hour),
		EndDate:   now.Add(-24 * time.Hour),
	}, nil)
	svc := NewNominationService(nomRepo, new(MockClubRepo), fixedClock(now))

	open, err := svc.IsOpenForApplication(ctx, 9, now)
	assert.NoError(t, err)
	assert.False(t, open)
}
