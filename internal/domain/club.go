package domain

import "time"

type ClubStatus string

const (
	ClubStatusActive   ClubStatus = "ACTIVE"
	ClubStatusInactive ClubStatus = "INACTIVE"
	ClubStatusPending  ClubStatus = "PENDING"
)

type Club struct {
	ID          int32      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      ClubStatus `json:"status"`
	OpenDate    *time.Time `json:"open_date,omitempty"`
	MemberCount int32      `json:"member_count"`
	CreatedOn   time.Time  `json:"created_on"`
}

// ClubMember is one row of a club's member set. The (ClubID, UserID)
// pair is unique in storage, so membership is a set relationship.
type ClubMember struct {
	ClubID   int32     `json:"club_id"`
	UserID   int32     `json:"user_id"`
	JoinedOn time.Time `json:"joined_on"`
}
