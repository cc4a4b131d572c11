package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
	"clubelect-backend/internal/repository/postgres"
)

func TestNominationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNominationRepository(db)
	ctx := context.Background()

	nom := &domain.Nomination{
		ClubID:    10,
		Position:  "President",
		Status:    domain.NominationStatusActive,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery("INSERT INTO nominations").
		WithArgs(nom.ClubID, nom.Position, nom.Description, nom.Status, nom.StartDate, nom.EndDate, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.Create(ctx, nom)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), nom.ID)
}

func TestNominationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNominationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "club_id", "position", "description", "status", "start_date", "end_date", "created_on"}).
			AddRow(1, 10, "President", "", "ACTIVE", time.Now(), time.Now().Add(24*time.Hour), time.Now())
		mock.ExpectQuery("SELECT (.+) FROM nominations WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		nom, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.NominationStatusActive, nom.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM nominations WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "club_id", "position", "description", "status", "start_date", "end_date", "created_on"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestNominationRepository_TransitionStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNominationRepository(db)
	ctx := context.Background()

	t.Run("ActiveRowClosed", func(t *testing.T) {
		mock.ExpectExec("UPDATE nominations SET status").
			WithArgs(domain.NominationStatusClosed, int32(1), domain.NominationStatusActive).
			WillReturnResult(sqlmock.NewResult(0, 1))

		changed, err := repo.TransitionStatus(ctx, 1, domain.NominationStatusActive, domain.NominationStatusClosed)
		assert.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("AlreadyClosedNoRows", func(t *testing.T) {
		mock.ExpectExec("UPDATE nominations SET status").
			WithArgs(domain.NominationStatusClosed, int32(1), domain.NominationStatusActive).
			WillReturnResult(sqlmock.NewResult(0, 0))

		changed, err := repo.TransitionStatus(ctx, 1, domain.NominationStatusActive, domain.NominationStatusClosed)
		assert.NoError(t, err)
		assert.False(t, changed)
	})
}
