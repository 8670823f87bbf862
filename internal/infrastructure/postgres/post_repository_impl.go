package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voteboard/voteboard/internal/domain/entity"
	"github.com/voteboard/voteboard/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `
	p.id, p.title, p.content, p.published, p.votes, p.owner_id, p.created_at,
	u.id, u.email, u.created_at
`

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{Owner: &entity.User{}}
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Published, &p.Votes, &p.OwnerID, &p.CreatedAt,
		&p.Owner.ID, &p.Owner.Email, &p.Owner.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, published, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, votes, created_at
	`, p.Title, p.Content, p.Published, p.OwnerID)

	if err := row.Scan(&p.ID, &p.Votes, &p.CreatedAt); err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1
	`, id)

	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context, f repository.PostFilter) ([]*entity.Post, error) {
	// ILIKE keeps the title filter case-insensitive; an empty search
	// degenerates to '%%' which matches every row.
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.owner_id
		WHERE p.title ILIKE '%' || $1 || '%'
		ORDER BY p.id
		LIMIT $2 OFFSET $3
	`, f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, published = $3
		WHERE id = $4
	`, p.Title, p.Content, p.Published, p.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
