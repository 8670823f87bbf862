package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/voteboard/voteboard/internal/domain/entity"
	repo "github.com/voteboard/voteboard/internal/domain/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// PostService enforces the ownership rule: a post is mutable and deletable
// only by the user it references as owner.
type PostService struct {
	Posts  repo.PostRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Logger: logger}
}

type PostInput struct {
	Title     string
	Content   string
	Published bool
}

// List returns posts matching the optional title filter, with clamped
// pagination. An empty result is not an error.
func (s *PostService) List(ctx context.Context, search string, limit, offset int) ([]*entity.Post, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.Posts.List(ctx, repo.PostFilter{Search: search, Limit: limit, Offset: offset})
}

func (s *PostService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, owner *entity.User, in PostInput) (*entity.Post, error) {
	p := &entity.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: in.Published,
		OwnerID:   owner.ID,
		Owner:     owner,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update overwrites title/content/published after the ownership check.
func (s *PostService) Update(ctx context.Context, callerID, postID int64, in PostInput) (*entity.Post, error) {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != callerID {
		return nil, ErrNotOwner
	}
	p.Title = in.Title
	p.Content = in.Content
	p.Published = in.Published
	if err := s.Posts.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, callerID, postID int64) error {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if p.OwnerID != callerID {
		return ErrNotOwner
	}
	if err := s.Posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
