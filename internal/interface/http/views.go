package handlers

import (
	"time"

	"github.com/voteboard/voteboard/internal/domain/entity"
)

// Public wire views. The password hash never appears here.

type userView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type postView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Owner     *userView `json:"owner,omitempty"`
}

func toUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}
	return &userView{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toPostView(p *entity.Post) *postView {
	return &postView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		Votes:     p.Votes,
		CreatedAt: p.CreatedAt,
		Owner:     toUserView(p.Owner),
	}
}

func toPostViews(posts []*entity.Post) []*postView {
	out := make([]*postView, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostView(p))
	}
	return out
}
