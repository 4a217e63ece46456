package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskdeck/internal/core/domain"
	"taskdeck/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

const insertUserQuery = `
INSERT INTO users (id, email, username, password_hash)
VALUES (?, ?, ?, ?);
`

const getUserByEmailQuery = `
SELECT id, email, username, password_hash, created_at, updated_at
FROM users
WHERE email = ?;
`

const getUserByIDQuery = `
SELECT id, email, username, password_hash, created_at, updated_at
FROM users
WHERE id = ?;
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	_, err := r.db.ExecContext(ctx, insertUserQuery,
		user.ID, user.Email, user.Username, user.PasswordHash)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	return r.GetByID(ctx, user.ID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
