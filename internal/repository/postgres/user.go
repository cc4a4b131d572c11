package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash, name, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash, user.Name, time.Now()).Scan(&user.ID)
	if err != nil {
		return mapError(err)
	}

	// New users always start with the USER role.
	if len(user.Roles) == 0 {
		user.Roles = []domain.Role{domain.RoleUser}
	}
	for _, role := range user.Roles {
		if err := r.AddRole(ctx, user.ID, role); err != nil {
			return err
		}
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, email, password_hash, name, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	if user.Roles, err = r.listRoles(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, email, password_hash, name, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	if user.Roles, err = r.listRoles(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) AddRole(ctx context.Context, userID int32, role domain.Role) error {
	query := `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, userID, role)
	return mapError(err)
}

func (r *userRepository) listRoles(ctx context.Context, userID int32) ([]domain.Role, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
