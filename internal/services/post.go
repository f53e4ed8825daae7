package services

import (
	"context"
	"time"

	"crudboard/internal/apperror"
	"crudboard/internal/models"
	"crudboard/internal/pagination"
	"crudboard/internal/repository"
)

const defaultPostPageSize = 5

// PostCreateRequest is the creation payload. Content is capped tighter on
// create than on update, mirroring the board's validation profile.
type PostCreateRequest struct {
	Title   string `json:"title" binding:"required,notblank,max=100"`
	Content string `json:"content" binding:"required,notblank,max=2000"`
}

// PostUpdateRequest is the update payload.
type PostUpdateRequest struct {
	Title   string `json:"title" binding:"required,notblank,max=100"`
	Content string `json:"content" binding:"required,notblank,max=5000"`
}

// PostResponse is the post's public projection.
type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func postResponseFrom(p models.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PostService reads and mutates posts. Posts carry no author link: any
// authenticated caller may mutate any post.
type PostService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create persists a new post and returns its id. Content is stored verbatim
// so a fetch echoes exactly what was submitted.
func (s *PostService) Create(ctx context.Context, req PostCreateRequest) (uint, error) {
	post := models.Post{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.posts.Create(ctx, &post); err != nil {
		return 0, apperror.Internal(err)
	}
	return post.ID, nil
}

// Get returns the post's current projection.
func (s *PostService) Get(ctx context.Context, id uint) (PostResponse, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return PostResponse{}, apperror.Internal(err)
	}
	if post == nil {
		return PostResponse{}, apperror.PostNotFound(id)
	}
	return postResponseFrom(*post), nil
}

// List runs the predicate-based paged search. The requested size is silently
// clamped so response cost stays bounded regardless of the client's ask.
func (s *PostService) List(ctx context.Context, cond models.PostSearchCondition, page pagination.Request) (pagination.Page[PostResponse], error) {
	page = page.Normalize(defaultPostPageSize)

	posts, total, err := s.posts.Search(ctx, cond, page)
	if err != nil {
		return pagination.Page[PostResponse]{}, apperror.Internal(err)
	}

	content := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		content = append(content, postResponseFrom(p))
	}
	return pagination.NewPage(content, total, page), nil
}

// Update loads the post, mutates title and content and persists the write
// explicitly. UpdatedAt is bumped by the persistence layer.
func (s *PostService) Update(ctx context.Context, id uint, req PostUpdateRequest) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if post == nil {
		return apperror.PostNotFound(id)
	}

	post.Title = req.Title
	post.Content = req.Content
	if err := s.posts.Save(ctx, post); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Delete removes the post. Existence is checked up front rather than
// inferred from the delete, so a repeat delete fails cleanly with NotFound.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	exists, err := s.posts.Exists(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !exists {
		return apperror.PostNotFound(id)
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
