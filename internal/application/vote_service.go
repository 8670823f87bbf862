package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	repo "github.com/voteboard/voteboard/internal/domain/repository"
)

// VoteService adds and retracts votes. The row mutation and the post counter
// adjustment commit together in the repository's transaction.
type VoteService struct {
	Posts  repo.PostRepository
	Votes  repo.VoteRepository
	Logger *logrus.Logger
}

func NewVoteService(posts repo.PostRepository, votes repo.VoteRepository, logger *logrus.Logger) *VoteService {
	return &VoteService{Posts: posts, Votes: votes, Logger: logger}
}

// Add records userID's vote on postID and bumps the counter.
func (s *VoteService) Add(ctx context.Context, userID, postID int64) error {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if err := s.Votes.Add(ctx, userID, postID); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicate):
			return ErrAlreadyVoted
		case errors.Is(err, repo.ErrNotFound):
			// Post deleted between the existence check and the insert.
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// Remove retracts userID's vote on postID and decrements the counter.
func (s *VoteService) Remove(ctx context.Context, userID, postID int64) error {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if err := s.Votes.Remove(ctx, userID, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrVoteNotFound
		}
		return err
	}
	return nil
}
