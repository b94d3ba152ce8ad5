package postgres

import (
	"context"
	"database/sql"
	"time"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, name, nim, faculty, program, device_token, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Email, u.Name, u.NIM, u.Faculty, u.Program, u.DeviceToken, time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, name, nim, faculty, program, COALESCE(device_token, ''), created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.NIM, &u.Faculty, &u.Program, &u.DeviceToken, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, name, nim, faculty, program, COALESCE(device_token, ''), created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.NIM, &u.Faculty, &u.Program, &u.DeviceToken, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}
