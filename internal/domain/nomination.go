package domain

import "time"

type NominationStatus string

const (
	NominationStatusActive   NominationStatus = "ACTIVE"
	NominationStatusInactive NominationStatus = "INACTIVE"
	NominationStatusClosed   NominationStatus = "CLOSED"
)

type Nomination struct {
	ID          int32            `json:"id"`
	ClubID      int32            `json:"club_id"`
	Position    string           `json:"position"`
	Description string           `json:"description"`
	Status      NominationStatus `json:"status"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	CreatedOn   time.Time        `json:"created_on"`
}

// OpenForApplication is the single predicate deciding whether the
// nomination accepts applications at the given instant. Every caller
// must go through it; the stored status alone is never trusted, so an
// expired window rejects applications even if no one flipped the
// status to CLOSED yet.
func (n *Nomination) OpenForApplication(now time.Time) bool {
	if n.Status != NominationStatusActive {
		return false
	}
	return !now.Before(n.StartDate) && !now.After(n.EndDate)
}
