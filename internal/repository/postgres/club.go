package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
)

type clubRepository struct {
	db *sql.DB
}

func NewClubRepository(db *sql.DB) repository.ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	query := `INSERT INTO clubs (name, description, status, open_date, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, club.Name, club.Description, club.Status, club.OpenDate, time.Now()).Scan(&club.ID)
	return mapError(err)
}

func (r *clubRepository) GetByID(ctx context.Context, id int32) (*domain.Club, error) {
	club := &domain.Club{}
	query := `SELECT c.id, c.name, c.description, c.status, c.open_date, c.created_on,
	                 (SELECT COUNT(*) FROM club_members m WHERE m.club_id = c.id)
	          FROM clubs c WHERE c.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&club.ID, &club.Name, &club.Description, &club.Status, &club.OpenDate, &club.CreatedOn, &club.MemberCount)
	if err != nil {
		return nil, mapError(err)
	}
	return club, nil
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	query := `SELECT c.id, c.name, c.description, c.status, c.open_date, c.created_on,
	                 (SELECT COUNT(*) FROM club_members m WHERE m.club_id = c.id)
	          FROM clubs c ORDER BY c.name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClubs(rows)
}

func (r *clubRepository) AddMember(ctx context.Context, member *domain.ClubMember) error {
	query := `INSERT INTO club_members (club_id, user_id, joined_on) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, member.ClubID, member.UserID, time.Now())
	return mapError(err)
}

func (r *clubRepository) IsMember(ctx context.Context, userID, clubID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM club_members WHERE user_id = $1 AND club_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, userID, clubID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *clubRepository) ListClubsByUser(ctx context.Context, userID int32) ([]domain.Club, error) {
	query := `SELECT c.id, c.name, c.description, c.status, c.open_date, c.created_on,
	                 (SELECT COUNT(*) FROM club_members m WHERE m.club_id = c.id)
	          FROM clubs c
	          JOIN club_members cm ON cm.club_id = c.id
	          WHERE cm.user_id = $1 ORDER BY c.name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClubs(rows)
}

func (r *clubRepository) ListMemberIDs(ctx context.Context, clubID int32) ([]int32, error) {
	query := `SELECT user_id FROM club_members WHERE club_id = $1`
	rows, err := r.db.QueryContext(ctx, query, clubID)
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

func scanClubs(rows *sql.Rows) ([]domain.Club, error) {
	var clubs []domain.Club
	for rows.Next() {
		var club domain.Club
		if err := rows.Scan(&club.ID, &club.Name, &club.Description, &club.Status,
			&club.OpenDate, &club.CreatedOn, &club.MemberCount); err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, rows.Err()
}
