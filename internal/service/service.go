package service

import (
	"context"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/security"
)

// Clock supplies the current time to time-sensitive services so tests
// can pin it. Pass nil to a constructor to use time.Now.
type Clock func() time.Time

type SignupInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type OpenNominationInput struct {
	ClubID      int32     `json:"club_id"`
	Position    string    `json:"position"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

type ApplyInput struct {
	NominationID int32  `json:"nomination_id"`
	Statement    string `json:"statement"`
}

type CreateEventInput struct {
	ClubID           int32     `json:"club_id"`
	Position         string    `json:"position"`
	CandidateUserIDs []int32   `json:"candidate_user_ids"`
	EventDate        time.Time `json:"event_date"`
}

type CastVoteInput struct {
	EventID     int32 `json:"event_id"`
	CandidateID int32 `json:"candidate_id"`
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type UserService interface {
	GetProfile(ctx context.Context, p *security.Principal) (*domain.User, []domain.Club, error)
	// PromoteToCandidate adds the CANDIDATE role. Promotion is one-way
	// and deliberately not idempotent: re-promoting is a Conflict.
	PromoteToCandidate(ctx context.Context, p *security.Principal, userID int32) (*domain.User, error)
}

type ClubService interface {
	CreateClub(ctx context.Context, p *security.Principal, name, description string) (*domain.Club, error)
	GetClub(ctx context.Context, id int32) (*domain.Club, error)
	ListClubs(ctx context.Context) ([]domain.Club, error)
	JoinClub(ctx context.Context, p *security.Principal, clubID, userID int32) error

	// Membership registry
	IsMember(ctx context.Context, userID, clubID int32) (bool, error)
	ClubsOf(ctx context.Context, userID int32) ([]domain.Club, error)
}

type NominationService interface {
	Open(ctx context.Context, p *security.Principal, in OpenNominationInput) (*domain.Nomination, error)
	Close(ctx context.Context, p *security.Principal, id int32) (*domain.Nomination, error)
	Get(ctx context.Context, id int32) (*domain.Nomination, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Nomination, error)
	IsOpenForApplication(ctx context.Context, id int32, now time.Time) (bool, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, p *security.Principal, in ApplyInput) (*domain.Application, error)
	Review(ctx context.Context, p *security.Principal, applicationID int32, decision domain.ReviewDecision) (*domain.Application, error)
	ListByNomination(ctx context.Context, p *security.Principal, nominationID int32) ([]domain.Application, error)
	MyApplications(ctx context.Context, p *security.Principal) ([]domain.Application, error)
}

type ElectionService interface {
	CreateEvent(ctx context.Context, p *security.Principal, in CreateEventInput) (*domain.Event, error)
	StartEvent(ctx context.Context, p *security.Principal, eventID int32) (*domain.Event, error)
	CastVote(ctx context.Context, p *security.Principal, in CastVoteInput) (*domain.Vote, error)
	CompleteEvent(ctx context.Context, p *security.Principal, eventID int32) (*domain.Event, error)
	CancelEvent(ctx context.Context, p *security.Principal, eventID int32) (*domain.Event, error)
	GetEvent(ctx context.Context, id int32) (*domain.Event, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error)
	Results(ctx context.Context, eventID int32) ([]domain.TallyEntry, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, p *security.Principal, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, p *security.Principal, notificationID int32) error
}
