package services

import (
	"context"
	"time"

	"crudboard/internal/apperror"
	"crudboard/internal/models"
	"crudboard/internal/pagination"
	"crudboard/internal/repository"
)

const defaultCommentPageSize = 10

// CommentCreateRequest is the creation payload.
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,notblank,max=1000"`
}

// CommentUpdateRequest is the update payload.
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,notblank,max=1000"`
}

// CommentResponse is the comment's public projection. The parent post id is
// echoed on every item.
type CommentResponse struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func commentResponseFrom(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CommentService reads and mutates comments. Every mutation addresses a
// comment by its (postId, commentId) compound key; a comment whose stored
// post id differs from the path's is treated as absent, never as forbidden.
type CommentService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewCommentService(posts repository.PostRepository, comments repository.CommentRepository) *CommentService {
	return &CommentService{posts: posts, comments: comments}
}

// List returns a page of the post's comments, newest first.
func (s *CommentService) List(ctx context.Context, postID uint, page pagination.Request) (pagination.Page[CommentResponse], error) {
	page = page.Normalize(defaultCommentPageSize)

	comments, total, err := s.comments.FindByPostID(ctx, postID, page)
	if err != nil {
		return pagination.Page[CommentResponse]{}, apperror.Internal(err)
	}

	content := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		content = append(content, commentResponseFrom(c))
	}
	return pagination.NewPage(content, total, page), nil
}

// Create persists a new comment bound to the post and returns its
// projection. The parent post must exist.
func (s *CommentService) Create(ctx context.Context, postID uint, req CommentCreateRequest) (CommentResponse, error) {
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return CommentResponse{}, apperror.Internal(err)
	}
	if !exists {
		return CommentResponse{}, apperror.PostNotFound(postID)
	}

	comment := models.Comment{
		PostID:  postID,
		Content: req.Content,
	}
	if err := s.comments.Create(ctx, &comment); err != nil {
		return CommentResponse{}, apperror.Internal(err)
	}
	return commentResponseFrom(comment), nil
}

// Update mutates the comment's content after verifying it belongs to the
// path's post.
func (s *CommentService) Update(ctx context.Context, postID, commentID uint, req CommentUpdateRequest) (CommentResponse, error) {
	comment, err := s.comments.FindByIDAndPostID(ctx, commentID, postID)
	if err != nil {
		return CommentResponse{}, apperror.Internal(err)
	}
	if comment == nil {
		return CommentResponse{}, apperror.CommentNotFound(commentID)
	}

	comment.Content = req.Content
	if err := s.comments.Save(ctx, comment); err != nil {
		return CommentResponse{}, apperror.Internal(err)
	}
	return commentResponseFrom(*comment), nil
}

// Delete removes the comment after the same existence and ownership check
// as Update.
func (s *CommentService) Delete(ctx context.Context, postID, commentID uint) error {
	exists, err := s.comments.ExistsByIDAndPostID(ctx, commentID, postID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !exists {
		return apperror.CommentNotFound(commentID)
	}
	if err := s.comments.DeleteByIDAndPostID(ctx, commentID, postID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
