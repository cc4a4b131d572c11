package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

type ReviewDecision string

const (
	ReviewDecisionApprove ReviewDecision = "APPROVE"
	ReviewDecisionReject  ReviewDecision = "REJECT"
)

// MinStatementLength is the minimum length of an application statement.
const MinStatementLength = 10

type Application struct {
	ID           int32             `json:"id"`
	NominationID int32             `json:"nomination_id"`
	UserID       int32             `json:"user_id"`
	Statement    string            `json:"statement"`
	Status       ApplicationStatus `json:"status"`
	ReviewedBy   *int32            `json:"reviewed_by,omitempty"`
	CreatedOn    time.Time         `json:"created_on"`
}
