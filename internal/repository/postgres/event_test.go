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

func eventColumns() []string {
	return []string{"id", "club_id", "position", "status", "event_date", "winner_id", "tie", "created_on"}
}

func TestEventRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewEventRepository(db)
	ctx := context.Background()

	event := &domain.Event{
		ClubID:     10,
		Position:   "President",
		Status:     domain.EventStatusUpcoming,
		EventDate:  time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
		Candidates: []int32{7, 8},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO events").
		WithArgs(event.ClubID, event.Position, event.Status, event.EventDate, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec("INSERT INTO event_candidates").
		WithArgs(int32(5), int32(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO event_candidates").
		WithArgs(int32(5), int32(8)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = repo.Create(ctx, event)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_TransitionStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewEventRepository(db)
	ctx := context.Background()

	t.Run("RowMatched", func(t *testing.T) {
		mock.ExpectExec("UPDATE events SET status").
			WithArgs(domain.EventStatusOngoing, int32(5), domain.EventStatusUpcoming).
			WillReturnResult(sqlmock.NewResult(0, 1))

		changed, err := repo.TransitionStatus(ctx, 5, domain.EventStatusUpcoming, domain.EventStatusOngoing)
		assert.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("NoRowMatched", func(t *testing.T) {
		mock.ExpectExec("UPDATE events SET status").
			WithArgs(domain.EventStatusOngoing, int32(5), domain.EventStatusUpcoming).
			WillReturnResult(sqlmock.NewResult(0, 0))

		changed, err := repo.TransitionStatus(ctx, 5, domain.EventStatusUpcoming, domain.EventStatusOngoing)
		assert.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestEventRepository_Complete(t *testing.T) {
	ctx := context.Background()
	eventDate := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)

	t.Run("TalliesAndSeals", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()
		repo := postgres.NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM events WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows(eventColumns()).
				AddRow(5, 10, "President", "ONGOING", eventDate, nil, false, time.Now()))
		mock.ExpectQuery("SELECT candidate_id, COUNT\\(\\*\\) FROM votes").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"candidate_id", "count"}).
				AddRow(7, 5).
				AddRow(8, 3))
		mock.ExpectExec("UPDATE events SET status").
			WithArgs(domain.EventStatusCompleted, int32(7), false, int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT user_id FROM event_candidates").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7).AddRow(8))

		event, err := repo.Complete(ctx, 5, func(tally []domain.TallyEntry) (*int32, bool) {
			assert.Equal(t, []domain.TallyEntry{{CandidateID: 7, Votes: 5}, {CandidateID: 8, Votes: 3}}, tally)
			winner := tally[0].CandidateID
			return &winner, false
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.EventStatusCompleted, event.Status)
		assert.Equal(t, int32(7), *event.WinnerID)
		assert.False(t, event.Tie)
		assert.Equal(t, []int32{7, 8}, event.Candidates)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyTerminal", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()
		repo := postgres.NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM events WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows(eventColumns()).
				AddRow(5, 10, "President", "COMPLETED", eventDate, 7, false, time.Now()))
		mock.ExpectRollback()

		_, err = repo.Complete(ctx, 5, func(tally []domain.TallyEntry) (*int32, bool) {
			t.Fatal("resolver must not run for a terminal event")
			return nil, false
		})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()
		repo := postgres.NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM events WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(eventColumns()))
		mock.ExpectRollback()

		_, err = repo.Complete(ctx, 99, func(tally []domain.TallyEntry) (*int32, bool) {
			return nil, false
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
