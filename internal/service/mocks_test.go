package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"clubelect-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) AddRole(ctx context.Context, userID int32, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

// MockClubRepo
type MockClubRepo struct {
	mock.Mock
}

func (m *MockClubRepo) Create(ctx context.Context, club *domain.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}
func (m *MockClubRepo) GetByID(ctx context.Context, id int32) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) AddMember(ctx context.Context, member *domain.ClubMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockClubRepo) IsMember(ctx context.Context, userID, clubID int32) (bool, error) {
	args := m.Called(ctx, userID, clubID)
	return args.Bool(0), args.Error(1)
}
func (m *MockClubRepo) ListClubsByUser(ctx context.Context, userID int32) ([]domain.Club, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) ListMemberIDs(ctx context.Context, clubID int32) ([]int32, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]int32), args.Error(1)
}

// MockNominationRepo
type MockNominationRepo struct {
	mock.Mock
}

func (m *MockNominationRepo) Create(ctx context.Context, nom *domain.Nomination) error {
	args := m.Called(ctx, nom)
	return args.Error(0)
}
func (m *MockNominationRepo) GetByID(ctx context.Context, id int32) (*domain.Nomination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Nomination), args.Error(1)
}
func (m *MockNominationRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Nomination, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Nomination), args.Error(1)
}
func (m *MockNominationRepo) TransitionStatus(ctx context.Context, id int32, from, to domain.NominationStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockNominationRepo) ListEndingBetween(ctx context.Context, from, to time.Time) ([]domain.Nomination, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Nomination), args.Error(1)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByNomination(ctx context.Context, nominationID int32) ([]domain.Application, error) {
	args := m.Called(ctx, nominationID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Review(ctx context.Context, id int32, status domain.ApplicationStatus, reviewedBy int32) (bool, error) {
	args := m.Called(ctx, id, status, reviewedBy)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) HasApproved(ctx context.Context, userID, clubID int32, position string) (bool, error) {
	args := m.Called(ctx, userID, clubID, position)
	return args.Bool(0), args.Error(1)
}

// MockEventRepo. Complete feeds the resolver with CompleteTally so
// tests can drive the winner computation through the real callback.
type MockEventRepo struct {
	mock.Mock
	CompleteTally []domain.TallyEntry
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) TransitionStatus(ctx context.Context, id int32, from, to domain.EventStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockEventRepo) Complete(ctx context.Context, id int32, resolve func(tally []domain.TallyEntry) (*int32, bool)) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	event := args.Get(0).(*domain.Event)
	winnerID, tie := resolve(m.CompleteTally)
	event.Status = domain.EventStatusCompleted
	event.WinnerID = winnerID
	event.Tie = tie
	return event, args.Error(1)
}
func (m *MockEventRepo) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockVoteRepo
type MockVoteRepo struct {
	mock.Mock
}

func (m *MockVoteRepo) Create(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}
func (m *MockVoteRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.Vote, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Vote), args.Error(1)
}
func (m *MockVoteRepo) TallyByEvent(ctx context.Context, eventID int32) ([]domain.TallyEntry, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.TallyEntry), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
