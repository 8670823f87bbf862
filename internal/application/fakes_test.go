package application_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/voteboard/voteboard/internal/domain/entity"
	repo "github.com/voteboard/voteboard/internal/domain/repository"
)

// In-memory fakes mirroring the Postgres repositories' contracts, including
// the sentinel errors and the vote/counter coupling.

type fakeUserRepo struct {
	nextID int64
	byID   map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) count() int { return len(f.byID) }

type fakePostRepo struct {
	nextID     int64
	byID       map[int64]*entity.Post
	users      *fakeUserRepo
	lastFilter repo.PostFilter
}

func newFakePostRepo(users *fakeUserRepo) *fakePostRepo {
	return &fakePostRepo{byID: make(map[int64]*entity.Post), users: users}
}

func (f *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	if owner, err := f.users.GetByID(ctx, p.OwnerID); err == nil {
		cp.Owner = owner
	}
	return &cp, nil
}

// List applies the same semantics as the SQL implementation:
// case-insensitive title substring, ordered by id, limit/offset.
func (f *fakePostRepo) List(ctx context.Context, flt repo.PostFilter) ([]*entity.Post, error) {
	f.lastFilter = flt
	ids := make([]int64, 0, len(f.byID))
	for id, p := range f.byID {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(flt.Search)) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*entity.Post, 0)
	for i, id := range ids {
		if i < flt.Offset {
			continue
		}
		if len(out) >= flt.Limit {
			break
		}
		p, _ := f.GetByID(ctx, id)
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	stored, ok := f.byID[p.ID]
	if !ok {
		return repo.ErrNotFound
	}
	stored.Title = p.Title
	stored.Content = p.Content
	stored.Published = p.Published
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePostRepo) votes(id int64) int { return f.byID[id].Votes }

type voteKey struct{ userID, postID int64 }

type fakeVoteRepo struct {
	posts *fakePostRepo
	rows  map[voteKey]struct{}
}

func newFakeVoteRepo(posts *fakePostRepo) *fakeVoteRepo {
	return &fakeVoteRepo{posts: posts, rows: make(map[voteKey]struct{})}
}

func (f *fakeVoteRepo) Add(_ context.Context, userID, postID int64) error {
	p, ok := f.posts.byID[postID]
	if !ok {
		return repo.ErrNotFound
	}
	key := voteKey{userID, postID}
	if _, exists := f.rows[key]; exists {
		return repo.ErrDuplicate
	}
	f.rows[key] = struct{}{}
	p.Votes++
	return nil
}

func (f *fakeVoteRepo) Remove(_ context.Context, userID, postID int64) error {
	key := voteKey{userID, postID}
	if _, exists := f.rows[key]; !exists {
		return repo.ErrNotFound
	}
	delete(f.rows, key)
	if p, ok := f.posts.byID[postID]; ok && p.Votes > 0 {
		p.Votes--
	}
	return nil
}

var (
	_ repo.UserRepository = (*fakeUserRepo)(nil)
	_ repo.PostRepository = (*fakePostRepo)(nil)
	_ repo.VoteRepository = (*fakeVoteRepo)(nil)
)
