package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
	"clubelect-backend/internal/security"
)

type electionService struct {
	eventRepo repository.EventRepository
	voteRepo  repository.VoteRepository
	appRepo   repository.ApplicationRepository
	clubRepo  repository.ClubRepository
	noteRepo  repository.NotificationRepository
	now       Clock
}

func NewElectionService(
	eventRepo repository.EventRepository,
	voteRepo repository.VoteRepository,
	appRepo repository.ApplicationRepository,
	clubRepo repository.ClubRepository,
	noteRepo repository.NotificationRepository,
	now Clock,
) ElectionService {
	if now == nil {
		now = time.Now
	}
	return &electionService{
		eventRepo: eventRepo,
		voteRepo:  voteRepo,
		appRepo:   appRepo,
		clubRepo:  clubRepo,
		noteRepo:  noteRepo,
		now:       now,
	}
}

func (s *electionService) CreateEvent(ctx context.Context, p *security.Principal, in CreateEventInput) (*domain.Event, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if len(in.CandidateUserIDs) == 0 {
		return nil, domain.InvalidInput("candidate list must not be empty")
	}
	if _, err := s.clubRepo.GetByID(ctx, in.ClubID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("club %d not found", in.ClubID)
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	// Every roster entry must hold an approved application for this
	// club and position.
	for _, candidateID := range in.CandidateUserIDs {
		approved, err := s.appRepo.HasApproved(ctx, candidateID, in.ClubID, in.Position)
		if err != nil {
			return nil, fmt.Errorf("failed to check candidate %d: %w", candidateID, err)
		}
		if !approved {
			return nil, domain.PreconditionFailed(
				"user %d has no approved application for %s in club %d", candidateID, in.Position, in.ClubID)
		}
	}

	event := &domain.Event{
		ClubID:     in.ClubID,
		Position:   in.Position,
		Status:     domain.EventStatusUpcoming,
		EventDate:  in.EventDate,
		Candidates: in.CandidateUserIDs,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *electionService) StartEvent(ctx context.Context, p *security.Principal, eventID int32) (*domain.Event, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}
	changed, err := s.eventRepo.TransitionStatus(ctx, eventID, domain.EventStatusUpcoming, domain.EventStatusOngoing)
	if err != nil {
		return nil, fmt.Errorf("failed to start event: %w", err)
	}
	if !changed {
		event, err := s.GetEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return nil, domain.Conflict("event %d is %s, not UPCOMING", eventID, event.Status)
	}
	return s.GetEvent(ctx, eventID)
}

func (s *electionService) CastVote(ctx context.Context, p *security.Principal, in CastVoteInput) (*domain.Vote, error) {
	if err := security.AuthorizeAny(p, domain.RoleUser, domain.RoleCandidate); err != nil {
		return nil, err
	}

	event, err := s.GetEvent(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventStatusOngoing {
		return nil, domain.PreconditionFailed("event %d is not ongoing", event.ID)
	}
	if !event.HasCandidate(in.CandidateID) {
		return nil, domain.PreconditionFailed("user %d is not a candidate in event %d", in.CandidateID, event.ID)
	}

	vote := &domain.Vote{
		EventID:     event.ID,
		VoterID:     p.UserID,
		CandidateID: in.CandidateID,
	}
	// The insert is the duplicate check: a racing double-submission
	// from the same voter loses on the unique constraint instead of
	// producing two ballots.
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict("user %d has already voted in event %d", p.UserID, event.ID)
		}
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}
	return vote, nil
}

func (s *electionService) CompleteEvent(ctx context.Context, p *security.Principal, eventID int32) (*domain.Event, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.Complete(ctx, eventID, resolveWinner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("event %d not found", eventID)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict("event %d is already completed or cancelled", eventID)
		}
		return nil, fmt.Errorf("failed to complete event: %w", err)
	}

	if event.WinnerID != nil {
		note := &domain.Notification{
			UserID:  *event.WinnerID,
			Title:   "Election won",
			Message: fmt.Sprintf("You won the election for %s", event.Position),
			Attributes: map[string]string{
				"type":     "ELECTION_WON",
				"event_id": fmt.Sprintf("%d", event.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
	}
	return event, nil
}

// resolveWinner picks the candidate with the strictly highest count.
// A shared maximum is reported as a tie with no winner; breaking it is
// the admin's call, not ours. Zero votes complete with no winner and
// no tie.
func resolveWinner(tally []domain.TallyEntry) (*int32, bool) {
	if len(tally) == 0 {
		return nil, false
	}
	var best domain.TallyEntry
	tied := false
	for _, entry := range tally {
		switch {
		case entry.Votes > best.Votes:
			best = entry
			tied = false
		case entry.Votes == best.Votes && best.Votes > 0:
			tied = true
		}
	}
	if tied {
		return nil, true
	}
	winner := best.CandidateID
	return &winner, false
}

func (s *electionService) CancelEvent(ctx context.Context, p *security.Principal, eventID int32) (*domain.Event, error) {
	if err := security.Authorize(p, domain.RoleAdmin); err != nil {
		return nil, err
	}

	// Cancellation is legal from either non-terminal state.
	for _, from := range []domain.EventStatus{domain.EventStatusUpcoming, domain.EventStatusOngoing} {
		changed, err := s.eventRepo.TransitionStatus(ctx, eventID, from, domain.EventStatusCancelled)
		if err != nil {
			return nil, fmt.Errorf("failed to cancel event: %w", err)
		}
		if changed {
			return s.GetEvent(ctx, eventID)
		}
	}

	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return nil, domain.Conflict("event %d is already %s", eventID, event.Status)
}

func (s *electionService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound("event %d not found", id)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *electionService) ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error) {
	return s.eventRepo.ListByClub(ctx, clubID)
}

func (s *electionService) Results(ctx context.Context, eventID int32) ([]domain.TallyEntry, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	// Results exist only for completed events; a cancelled event is
	// never tallied even though its votes are retained for audit.
	if event.Status != domain.EventStatusCompleted {
		return nil, domain.PreconditionFailed("event %d is not completed", eventID)
	}
	return s.voteRepo.TallyByEvent(ctx, eventID)
}
