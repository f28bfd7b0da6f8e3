package repository

import (
	"context"
	"errors"

	"workspark/internal/database"
	"workspark/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts the account and its profile atomically.
func (r *PostgresUserRepository) Create(ctx context.Context, u user.User, p user.Profile) error {
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
			u.ID, u.Email, u.PasswordHash,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO profiles (id, user_id, email, user_type, full_name, company_name, location)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, u.ID, u.Email, string(p.UserType), p.FullName, p.CompanyName, p.Location,
		)
		return err
	})
	if errors.Is(err, database.ErrUniqueViolation) {
		return user.ErrEmailTaken
	}
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	var p user.Profile
	var userType string
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, email, user_type, full_name, company_name, location, is_verified, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Email, &userType, &p.FullName, &p.CompanyName, &p.Location,
		&p.IsVerified, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	p.UserType = user.Type(userType)
	return p, nil
}
