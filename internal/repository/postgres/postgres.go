package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"clubelect-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ClubRepository
	repository.NominationRepository
	repository.ApplicationRepository
	repository.EventRepository
	repository.VoteRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ClubRepository:         NewClubRepository(db),
		NominationRepository:   NewNominationRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		EventRepository:        NewEventRepository(db),
		VoteRepository:         NewVoteRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// uniqueViolation is the postgres error code for a violated unique
// constraint, i.e. the losing side of an insert race.
const uniqueViolation = "23505"

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return err
}
