package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) repository.VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(ctx context.Context, vote *domain.Vote) error {
	// One ballot per voter per event, enforced by the unique
	// (event_id, voter_id) index; the ledger is append-only.
	query := `INSERT INTO votes (event_id, voter_id, candidate_id, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, vote.EventID, vote.VoterID, vote.CandidateID, time.Now()).Scan(&vote.ID)
	return mapError(err)
}

func (r *voteRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Vote, error) {
	query := `SELECT id, event_id, voter_id, candidate_id, created_on
	          FROM votes WHERE event_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var vote domain.Vote
		if err := rows.Scan(&vote.ID, &vote.EventID, &vote.VoterID, &vote.CandidateID, &vote.CreatedOn); err != nil {
			return nil, err
		}
		votes = append(votes, vote)
	}
	return votes, rows.Err()
}

func (r *voteRepository) TallyByEvent(ctx context.Context, eventID int32) ([]domain.TallyEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT candidate_id, COUNT(*) FROM votes WHERE event_id = $1 GROUP BY candidate_id`, eventID)
	if err != nil {
		return nil, err
	}
	return scanTally(rows)
}
