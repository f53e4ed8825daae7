package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"crudboard/internal/models"
	"crudboard/internal/pagination"
)

type gormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns the GORM-backed comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &gormCommentRepository{db: db}
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *gormCommentRepository) FindByIDAndPostID(ctx context.Context, id, postID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", id, postID).
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *gormCommentRepository) ExistsByIDAndPostID(ctx context.Context, id, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND post_id = ?", id, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormCommentRepository) Save(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *gormCommentRepository) DeleteByIDAndPostID(ctx context.Context, id, postID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", id, postID).
		Delete(&models.Comment{}).Error
}

func (r *gormCommentRepository) FindByPostID(ctx context.Context, postID uint, page pagination.Request) ([]models.Comment, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := base.
		Order(orderClause(page.Sort, "created_at DESC")).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&comments).Error
	return comments, total, err
}
