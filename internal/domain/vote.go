package domain

import "time"

// Vote is a single immutable ballot. The (EventID, VoterID) pair is
// unique in storage; votes are never updated or deleted.
type Vote struct {
	ID          int32     `json:"id"`
	EventID     int32     `json:"event_id"`
	VoterID     int32     `json:"voter_id"`
	CandidateID int32     `json:"candidate_id"`
	CreatedOn   time.Time `json:"created_on"`
}
