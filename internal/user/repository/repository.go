package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/yongjunp/miniter/internal/common/db"
	"github.com/yongjunp/miniter/internal/user/domain"
)

type Repository interface {
	Create(ctx context.Context, user domain.User) (domain.ID, error)
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
	FindByEmailWithHash(ctx context.Context, email string) (domain.Credentials, error)
	Exists(ctx context.Context, id domain.ID) (bool, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

// Create relies on the users.email unique constraint as the sole guard
// against duplicate registrations; there is no check-then-insert.
func (r *PgRepository) Create(ctx context.Context, user domain.User) (domain.ID, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO users (name, email, profile, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		user.Name,
		user.Email,
		user.Profile,
		user.PasswordHash,
	)

	var id int64
	err := row.Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		db.MeasureQueryDuration("create user", start)
		return 0, ErrEmailAlreadyExists
	}
	if err := db.HandleExecError(err, "create user", start); err != nil {
		return 0, err
	}

	return domain.ID(id), nil
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, name, email, profile FROM users WHERE id = $1`,
		int64(id),
	)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Profile)
	if err := db.HandleQueryError(err, ErrUserNotFound, "find user by id", start); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (r *PgRepository) FindByEmailWithHash(ctx context.Context, email string) (domain.Credentials, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, password_hash FROM users WHERE email = $1`,
		email,
	)

	var creds domain.Credentials
	err := row.Scan(&creds.ID, &creds.PasswordHash)
	if err := db.HandleQueryError(err, ErrUserNotFound, "find user by email", start); err != nil {
		return domain.Credentials{}, err
	}

	return creds, nil
}

func (r *PgRepository) Exists(ctx context.Context, id domain.ID) (bool, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`,
		int64(id),
	)

	var exists bool
	err := row.Scan(&exists)
	if err := db.HandleExecError(err, "check user existence", start); err != nil {
		return false, err
	}

	return exists, nil
}

var ErrUserNotFound = pgx.ErrNoRows

var ErrEmailAlreadyExists = errors.New("email already exists")
