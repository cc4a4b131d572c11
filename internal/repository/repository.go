package repository

import (
	"context"
	"errors"
	"time"

	"clubelect-backend/internal/domain"
)

// Storage-level sentinels. Implementations map driver errors onto
// these so services can translate them into the caller-facing
// taxonomy: ErrDuplicate is how a unique constraint reports the losing
// side of a race (duplicate vote, duplicate application, duplicate
// role grant).
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// AddRole appends a role to the user's role set as a single atomic
	// insert; granting a role the user already holds fails ErrDuplicate.
	AddRole(ctx context.Context, userID int32, role domain.Role) error
}

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id int32) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)

	// Membership set
	AddMember(ctx context.Context, member *domain.ClubMember) error
	IsMember(ctx context.Context, userID, clubID int32) (bool, error)
	ListClubsByUser(ctx context.Context, userID int32) ([]domain.Club, error)
	ListMemberIDs(ctx context.Context, clubID int32) ([]int32, error)
}

type NominationRepository interface {
	Create(ctx context.Context, nom *domain.Nomination) error
	GetByID(ctx context.Context, id int32) (*domain.Nomination, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Nomination, error)

	// TransitionStatus flips status only when the current value matches
	// from; returns false when no row changed.
	TransitionStatus(ctx context.Context, id int32, from, to domain.NominationStatus) (bool, error)

	// ListEndingBetween returns ACTIVE nominations whose window closes
	// inside (from, to]. Used by the reminder jobs only.
	ListEndingBetween(ctx context.Context, from, to time.Time) ([]domain.Nomination, error)
}

type ApplicationRepository interface {
	// Create inserts the application; the (nomination_id, user_id)
	// unique constraint makes the duplicate check and the insert one
	// atomic step, so concurrent double-submission loses with
	// ErrDuplicate rather than creating two rows.
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	ListByNomination(ctx context.Context, nominationID int32) ([]domain.Application, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Application, error)

	// Review sets the final status only while the row is still PENDING;
	// returns false when the application was already reviewed.
	Review(ctx context.Context, id int32, status domain.ApplicationStatus, reviewedBy int32) (bool, error)

	// HasApproved reports whether the user holds an APPROVED
	// application for a nomination matching (clubID, position).
	HasApproved(ctx context.Context, userID, clubID int32, position string) (bool, error)
}

type EventRepository interface {
	// Create writes the event and its candidate roster in one
	// transaction.
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error)

	// TransitionStatus flips status only when the current value matches
	// from; returns false when no row changed.
	TransitionStatus(ctx context.Context, id int32, from, to domain.EventStatus) (bool, error)

	// Complete seals the event. Inside a single transaction it locks
	// the event row, refuses terminal states with ErrDuplicate, reads a
	// consistent tally of the event's votes, asks resolve for the
	// outcome, and writes COMPLETED with the winner and tie flag.
	Complete(ctx context.Context, id int32, resolve func(tally []domain.TallyEntry) (winnerID *int32, tie bool)) (*domain.Event, error)

	// ListScheduledBetween returns UPCOMING events dated inside
	// (from, to]. Used by the reminder jobs only.
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}

type VoteRepository interface {
	// Create inserts the ballot; the (event_id, voter_id) unique
	// constraint enforces one ballot per voter per event atomically.
	Create(ctx context.Context, vote *domain.Vote) error
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Vote, error)
	TallyByEvent(ctx context.Context, eventID int32) ([]domain.TallyEntry, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
