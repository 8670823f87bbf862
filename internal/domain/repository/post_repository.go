package repository

import (
	"context"

	"github.com/voteboard/voteboard/internal/domain/entity"
)

// PostFilter narrows List results. Search matches the title as a
// case-insensitive substring; an empty Search matches everything.
type PostFilter struct {
	Search string
	Limit  int
	Offset int
}

// PostRepository defines the interface for post-related database operations.
// Reads embed the owner; mutations operate on the post row only.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context, f PostFilter) ([]*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
}
