package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO events (club_id, position, status, event_date, tie, created_on)
	          VALUES ($1, $2, $3, $4, false, $5) RETURNING id`
	err = tx.QueryRowContext(ctx, query, event.ClubID, event.Position, event.Status,
		event.EventDate, time.Now()).Scan(&event.ID)
	if err != nil {
		return mapError(err)
	}

	for _, candidateID := range event.Candidates {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO event_candidates (event_id, user_id) VALUES ($1, $2)`,
			event.ID, candidateID)
		if err != nil {
			return mapError(err)
		}
	}

	return tx.Commit()
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	event := &domain.Event{}
	query := `SELECT id, club_id, position, status, event_date, winner_id, tie, created_on
	          FROM events WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&event.ID, &event.ClubID, &event.Position,
		&event.Status, &event.EventDate, &event.WinnerID, &event.Tie, &event.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	if event.Candidates, err = r.listCandidates(ctx, r.db, id); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error) {
	query := `SELECT id, club_id, position, status, event_date, winner_id, tie, created_on
	          FROM events WHERE club_id = $1 ORDER BY event_date DESC`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *eventRepository) TransitionStatus(ctx context.Context, id int32, from, to domain.EventStatus) (bool, error) {
	query := `UPDATE events SET status = $1 WHERE id = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Complete runs the whole seal-and-tally step in one transaction. The
// FOR UPDATE lock on the event row serializes concurrent completions
// and keeps the tally a consistent snapshot of this event's votes.
func (r *eventRepository) Complete(ctx context.Context, id int32, resolve func(tally []domain.TallyEntry) (*int32, bool)) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	event := &domain.Event{}
	query := `SELECT id, club_id, position, status, event_date, winner_id, tie, created_on
	          FROM events WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, id).Scan(&event.ID, &event.ClubID, &event.Position,
		&event.Status, &event.EventDate, &event.WinnerID, &event.Tie, &event.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	if event.Status.Terminal() {
		return nil, repository.ErrDuplicate
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT candidate_id, COUNT(*) FROM votes WHERE event_id = $1 GROUP BY candidate_id`, id)
	if err != nil {
		return nil, err
	}
	tally, err := scanTally(rows)
	if err != nil {
		return nil, err
	}

	winnerID, tie := resolve(tally)
	_, err = tx.ExecContext(ctx,
		`UPDATE events SET status = $1, winner_id = $2, tie = $3 WHERE id = $4`,
		domain.EventStatusCompleted, winnerID, tie, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	event.Status = domain.EventStatusCompleted
	event.WinnerID = winnerID
	event.Tie = tie
	if event.Candidates, err = r.listCandidates(ctx, r.db, id); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	query := `SELECT id, club_id, position, status, event_date, winner_id, tie, created_on
	          FROM events WHERE status = $1 AND event_date > $2 AND event_date <= $3`
	rows, err := r.db.QueryContext(ctx, query, domain.EventStatusUpcoming, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *eventRepository) listCandidates(ctx context.Context, q querier, eventID int32) ([]int32, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT user_id FROM event_candidates WHERE event_id = $1 ORDER BY user_id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(&event.ID, &event.ClubID, &event.Position, &event.Status,
			&event.EventDate, &event.WinnerID, &event.Tie, &event.CreatedOn); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func scanTally(rows *sql.Rows) ([]domain.TallyEntry, error) {
	defer rows.Close()
	var tally []domain.TallyEntry
	for rows.Next() {
		var entry domain.TallyEntry
		if err := rows.Scan(&entry.CandidateID, &entry.Votes); err != nil {
			return nil, err
		}
		tally = append(tally, entry)
	}
	return tally, rows.Err()
}
