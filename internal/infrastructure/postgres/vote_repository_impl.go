package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voteboard/voteboard/internal/domain/repository"
)

// VoteRepository keeps the votes table and the posts.votes counter in
// lockstep. Both statements of Add/Remove run on one transaction; concurrent
// votes on the same post serialize on the posts row lock taken by the UPDATE.
type VoteRepository struct {
	pool *pgxpool.Pool
}

func NewVoteRepository(pool *pgxpool.Pool) *VoteRepository {
	return &VoteRepository{pool: pool}
}

func (r *VoteRepository) Add(ctx context.Context, userID, postID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO votes (user_id, post_id)
			VALUES ($1, $2)
		`, userID, postID); err != nil {
			// Duplicate PK -> already voted; FK violation -> post gone.
			return translateErr(err)
		}
		_, err := tx.Exec(ctx, `
			UPDATE posts SET votes = votes + 1 WHERE id = $1
		`, postID)
		return err
	})
}

func (r *VoteRepository) Remove(ctx context.Context, userID, postID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, `
			DELETE FROM votes WHERE user_id = $1 AND post_id = $2
		`, userID, postID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		_, err = tx.Exec(ctx, `
			UPDATE posts SET votes = votes - 1 WHERE id = $1 AND votes > 0
		`, postID)
		return err
	})
}

func (r *VoteRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ repository.VoteRepository = (*VoteRepository)(nil)
