package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	// The unique (nomination_id, user_id) index makes this the atomic
	// check-and-insert; a concurrent duplicate surfaces as ErrDuplicate.
	query := `INSERT INTO applications (nomination_id, user_id, statement, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, app.NominationID, app.UserID, app.Statement,
		app.Status, time.Now()).Scan(&app.ID)
	return mapError(err)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	app := &domain.Application{}
	query := `SELECT id, nomination_id, user_id, statement, status, reviewed_by, created_on
	          FROM applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&app.ID, &app.NominationID, &app.UserID,
		&app.Statement, &app.Status, &app.ReviewedBy, &app.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return app, nil
}

func (r *applicationRepository) ListByNomination(ctx context.Context, nominationID int32) ([]domain.Application, error) {
	query := `SELECT id, nomination_id, user_id, statement, status, reviewed_by, created_on
	          FROM applications WHERE nomination_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, nominationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Application, error) {
	query := `SELECT id, nomination_id, user_id, statement, status, reviewed_by, created_on
	          FROM applications WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepository) Review(ctx context.Context, id int32, status domain.ApplicationStatus, reviewedBy int32) (bool, error) {
	// Review is one-shot: the WHERE clause only matches PENDING rows,
	// so a racing second review loses with zero rows affected.
	query := `UPDATE applications SET status = $1, reviewed_by = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, status, reviewedBy, id, domain.ApplicationStatusPending)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *applicationRepository) HasApproved(ctx context.Context, userID, clubID int32, position string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	            SELECT 1 FROM applications a
	            JOIN nominations n ON n.id = a.nomination_id
	            WHERE a.user_id = $1 AND a.status = $2 AND n.club_id = $3 AND n.position = $4)`
	err := r.db.QueryRowContext(ctx, query, userID, domain.ApplicationStatusApproved, clubID, position).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanApplications(rows *sql.Rows) ([]domain.Application, error) {
	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.NominationID, &app.UserID, &app.Statement,
			&app.Status, &app.ReviewedBy, &app.CreatedOn); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
