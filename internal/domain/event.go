package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "UPCOMING"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// Terminal reports whether the status admits no further transitions.
func (s EventStatus) Terminal() bool {
	return s == EventStatusCompleted || s == EventStatusCancelled
}

type Event struct {
	ID         int32       `json:"id"`
	ClubID     int32       `json:"club_id"`
	Position   string      `json:"position"`
	Status     EventStatus `json:"status"`
	EventDate  time.Time   `json:"event_date"`
	WinnerID   *int32      `json:"winner_id,omitempty"` // set iff Status == COMPLETED and there was a single strict winner
	Tie        bool        `json:"tie"`
	Candidates []int32     `json:"candidates,omitempty"` // roster of candidate user ids, fixed at creation
	CreatedOn  time.Time   `json:"created_on"`
}

// HasCandidate reports whether userID is on the event's roster.
func (e *Event) HasCandidate(userID int32) bool {
	for _, id := range e.Candidates {
		if id == userID {
			return true
		}
	}
	return false
}

// TallyEntry is one candidate's vote count for a completed event.
type TallyEntry struct {
	CandidateID int32 `json:"candidate_id"`
	Votes       int32 `json:"votes"`
}
