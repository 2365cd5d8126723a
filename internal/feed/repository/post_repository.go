package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/yongjunp/miniter/internal/common/db"
	"github.com/yongjunp/miniter/internal/feed/domain"
)

type PostRepository interface {
	Append(ctx context.Context, authorID int64, text string) (int64, error)
	PostsByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Post, error)
}

type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

func (r *PgPostRepository) Append(ctx context.Context, authorID int64, text string) (int64, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO tweets (user_id, tweet) VALUES ($1, $2) RETURNING id`,
		authorID,
		text,
	)

	var id int64
	err := row.Scan(&id)
	if err := db.HandleExecError(err, "append tweet", start); err != nil {
		return 0, err
	}

	return id, nil
}

// PostsByAuthors returns matching posts in insertion order.
func (r *PgPostRepository) PostsByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Post, error) {
	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, user_id, tweet FROM tweets WHERE user_id = ANY($1) ORDER BY id`,
		authorIDs,
	)
	if err := db.HandleExecError(err, "query tweets", start); err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Text); err != nil {
			return nil, fmt.Errorf("failed to scan tweet: %w", err)
		}
		posts = append(posts, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return posts, nil
}
