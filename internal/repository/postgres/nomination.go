package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
)

type nominationRepository struct {
	db *sql.DB
}

func NewNominationRepository(db *sql.DB) repository.NominationRepository {
	return &nominationRepository{db: db}
}

func (r *nominationRepository) Create(ctx context.Context, nom *domain.Nomination) error {
	query := `INSERT INTO nominations (club_id, position, description, status, start_date, end_date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, nom.ClubID, nom.Position, nom.Description,
		nom.Status, nom.StartDate, nom.EndDate, time.Now()).Scan(&nom.ID)
	return mapError(err)
}

func (r *nominationRepository) GetByID(ctx context.Context, id int32) (*domain.Nomination, error) {
	nom := &domain.Nomination{}
	query := `SELECT id, club_id, position, description, status, start_date, end_date, created_on
	          FROM nominations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&nom.ID, &nom.ClubID, &nom.Position,
		&nom.Description, &nom.Status, &nom.StartDate, &nom.EndDate, &nom.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return nom, nil
}

func (r *nominationRepository) ListByClub(ctx context.Context, clubID int32) ([]domain.Nomination, error) {
	query := `SELECT id, club_id, position, description, status, start_date, end_date, created_on
	          FROM nominations WHERE club_id = $1 ORDER BY end_date DESC`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNominations(rows)
}

func (r *nominationRepository) TransitionStatus(ctx context.Context, id int32, from, to domain.NominationStatus) (bool, error) {
	query := `UPDATE nominations SET status = $1 WHERE id = $2 AND status = $3`
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

func (r *nominationRepository) ListEndingBetween(ctx context.Context, from, to time.Time) ([]domain.Nomination, error) {
	query := `SELECT id, club_id, position, description, status, start_date, end_date, created_on
	          FROM nominations WHERE status = $1 AND end_date > $2 AND end_date <= $3`
	rows, err := r.db.QueryContext(ctx, query, domain.NominationStatusActive, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNominations(rows)
}

func scanNominations(rows *sql.Rows) ([]domain.Nomination, error) {
	var noms []domain.Nomination
	for rows.Next() {
		var nom domain.Nomination
		if err := rows.Scan(&nom.ID, &nom.ClubID, &nom.Position, &nom.Description,
			&nom.Status, &nom.StartDate, &nom.EndDate, &nom.CreatedOn); err != nil {
			return nil, err
		}
		noms = append(noms, nom)
	}
	return noms, rows.Err()
}
