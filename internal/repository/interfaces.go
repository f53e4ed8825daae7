// Package repository persists the board's entities behind narrow interfaces
// so services stay independent of the storage engine. The concrete
// implementations are GORM on PostgreSQL.
package repository

import (
	"context"

	"crudboard/internal/models"
	"crudboard/internal/pagination"
)

// UserRepository persists user records.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// FindByEmail returns (nil, nil) when no user has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByID returns (nil, nil) when the id is unknown.
	FindByID(ctx context.Context, id uint) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, page pagination.Request) ([]models.User, int64, error)
}

// PostRepository persists post records.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	// FindByID returns (nil, nil) when the id is unknown.
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	// Search runs the predicate-based paged query and reports the total
	// number of matching rows alongside the page slice.
	Search(ctx context.Context, cond models.PostSearchCondition, page pagination.Request) ([]models.Post, int64, error)
}

// CommentRepository persists comment records scoped to their parent post.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// FindByIDAndPostID returns (nil, nil) when no comment matches the
	// compound key, including when the comment exists under another post.
	FindByIDAndPostID(ctx context.Context, id, postID uint) (*models.Comment, error)
	ExistsByIDAndPostID(ctx context.Context, id, postID uint) (bool, error)
	Save(ctx context.Context, comment *models.Comment) error
	DeleteByIDAndPostID(ctx context.Context, id, postID uint) error
	FindByPostID(ctx context.Context, postID uint, page pagination.Request) ([]models.Comment, int64, error)
}
