package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"crudboard/internal/models"
	"crudboard/internal/pagination"
)

type gormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository returns the GORM-backed post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

func (r *gormPostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *gormPostRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *gormPostRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *gormPostRepository) Save(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *gormPostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

func (r *gormPostRepository) Search(ctx context.Context, cond models.PostSearchCondition, page pagination.Request) ([]models.Post, int64, error) {
	// Session makes the scoped query reusable for both Count and Find.
	scoped := r.db.WithContext(ctx).Model(&models.Post{}).
		Scopes(postSearchScope(cond)).
		Session(&gorm.Session{})

	var total int64
	if err := scoped.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := scoped.
		Order(orderClause(page.Sort, "created_at DESC")).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&posts).Error
	return posts, total, err
}
