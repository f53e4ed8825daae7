package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"crudboard/internal/models"
	"crudboard/internal/pagination"
)

// In-memory repositories backing the router tests. They mirror the query
// semantics of the GORM implementations closely enough for the handler layer:
// compound-key lookups, newest-first listings and the keyword/date filters.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

func (r *fakeUserRepo) List(_ context.Context, page pagination.Request) ([]models.User, int64, error) {
	all := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return paginate(all, page), int64(len(all)), nil
}

type fakePostRepo struct {
	nextID uint
	posts  map[uint]models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1, posts: map[uint]models.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	post.ID = r.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	r.nextID++
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id uint) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePostRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.posts[id]
	return ok, nil
}

func (r *fakePostRepo) Save(_ context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uint) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) Search(_ context.Context, cond models.PostSearchCondition, page pagination.Request) ([]models.Post, int64, error) {
	var matched []models.Post
	for _, p := range r.posts {
		if matchesCondition(p, cond) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return paginate(matched, page), int64(len(matched)), nil
}

func matchesCondition(p models.Post, cond models.PostSearchCondition) bool {
	if keyword := strings.TrimSpace(cond.Keyword); keyword != "" {
		kw := strings.ToLower(keyword)
		inTitle := strings.Contains(strings.ToLower(p.Title), kw)
		inContent := strings.Contains(strings.ToLower(p.Content), kw)
		switch cond.Type {
		case models.SearchTitle:
			if !inTitle {
				return false
			}
		case models.SearchContent:
			if !inContent {
				return false
			}
		default:
			if !inTitle && !inContent {
				return false
			}
		}
	}
	if cond.CreatedFrom != nil && p.CreatedAt.Before(*cond.CreatedFrom) {
		return false
	}
	if cond.CreatedTo != nil && p.CreatedAt.After(*cond.CreatedTo) {
		return false
	}
	return true
}

type fakeCommentRepo struct {
	nextID   uint
	comments map[uint]models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1, comments: map[uint]models.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = r.nextID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	r.nextID++
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) FindByIDAndPostID(_ context.Context, id, postID uint) (*models.Comment, error) {
	c, ok := r.comments[id]
	if !ok || c.PostID != postID {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCommentRepo) ExistsByIDAndPostID(ctx context.Context, id, postID uint) (bool, error) {
	c, err := r.FindByIDAndPostID(ctx, id, postID)
	return c != nil, err
}

func (r *fakeCommentRepo) Save(_ context.Context, comment *models.Comment) error {
	comment.UpdatedAt = time.Now()
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) DeleteByIDAndPostID(ctx context.Context, id, postID uint) error {
	if ok, _ := r.ExistsByIDAndPostID(ctx, id, postID); ok {
		delete(r.comments, id)
	}
	return nil
}

func (r *fakeCommentRepo) FindByPostID(_ context.Context, postID uint, page pagination.Request) ([]models.Comment, int64, error) {
	var matched []models.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return paginate(matched, page), int64(len(matched)), nil
}

func paginate[T any](items []T, page pagination.Request) []T {
	start := page.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
