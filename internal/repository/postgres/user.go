package postgres

import (
	"context"
	"database/sql"
	"strings"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	logger.EnterMethod("userRepository.Create", "email", u.Email)
	query := `INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(u.Email), u.PasswordHash).Scan(&u.ID)
	if err != nil {
		err = mapError("create user", err)
		logger.ExitMethodWithError("userRepository.Create", err, "email", u.Email)
		return err
	}
	logger.ExitMethod("userRepository.Create", "userID", u.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password FROM users WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		return nil, mapError("get user", err)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password FROM users WHERE email = $1`
	if err := r.db.QueryRowContext(ctx, query, strings.ToLower(email)).Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		return nil, mapError("get user by email", err)
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, password FROM users ORDER BY email`)
	if err != nil {
		return nil, mapError("list users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
			return nil, mapError("scan user", err)
		}
		users = append(users, u)
	}
	return users, mapError("list users", rows.Err())
}
