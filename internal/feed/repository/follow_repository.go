package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/yongjunp/miniter/internal/common/db"
)

type FollowRepository interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	FolloweesOf(ctx context.Context, userID int64) ([]int64, error)
}

type PgFollowRepository struct {
	pool *pgxpool.Pool
}

func NewPgFollowRepository(pool *pgxpool.Pool) *PgFollowRepository {
	return &PgFollowRepository{pool: pool}
}

// Follow is idempotent: a second insert of the same edge is a no-op, handled
// by the primary key rather than an application-level check.
func (r *PgFollowRepository) Follow(ctx context.Context, followerID, followeeID int64) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users_follow_list (user_id, follow_user_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		followerID,
		followeeID,
	)
	return db.HandleExecError(err, "insert follow edge", start)
}

// Unfollow is idempotent: deleting an absent edge is not an error.
func (r *PgFollowRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`DELETE FROM users_follow_list WHERE user_id = $1 AND follow_user_id = $2`,
		followerID,
		followeeID,
	)
	return db.HandleExecError(err, "delete follow edge", start)
}

func (r *PgFollowRepository) FolloweesOf(ctx context.Context, userID int64) ([]int64, error) {
	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT follow_user_id FROM users_follow_list WHERE user_id = $1`,
		userID,
	)
	if err := db.HandleExecError(err, "query followees", start); err != nil {
		return nil, err
	}
	defer rows.Close()

	var followees []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan followee: %w", err)
		}
		followees = append(followees, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return followees, nil
}
