package services

import (
	"context"

	"crudboard/internal/models"
	"crudboard/internal/pagination"
)

// Function-field mocks so each test wires only the calls it expects.
// A nil field means the test does not expect that call.

type mockUserRepo struct {
	CreateFn        func(ctx context.Context, user *models.User) error
	FindByEmailFn   func(ctx context.Context, email string) (*models.User, error)
	FindByIDFn      func(ctx context.Context, id uint) (*models.User, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
	ListFn          func(ctx context.Context, page pagination.Request) ([]models.User, int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.CreateFn(ctx, user)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.FindByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.ExistsByEmailFn(ctx, email)
}

func (m *mockUserRepo) List(ctx context.Context, page pagination.Request) ([]models.User, int64, error) {
	return m.ListFn(ctx, page)
}

type mockPostRepo struct {
	CreateFn   func(ctx context.Context, post *models.Post) error
	FindByIDFn func(ctx context.Context, id uint) (*models.Post, error)
	ExistsFn   func(ctx context.Context, id uint) (bool, error)
	SaveFn     func(ctx context.Context, post *models.Post) error
	DeleteFn   func(ctx context.Context, id uint) error
	SearchFn   func(ctx context.Context, cond models.PostSearchCondition, page pagination.Request) ([]models.Post, int64, error)
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	return m.CreateFn(ctx, post)
}

func (m *mockPostRepo) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockPostRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return m.ExistsFn(ctx, id)
}

func (m *mockPostRepo) Save(ctx context.Context, post *models.Post) error {
	return m.SaveFn(ctx, post)
}

func (m *mockPostRepo) Delete(ctx context.Context, id uint) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockPostRepo) Search(ctx context.Context, cond models.PostSearchCondition, page pagination.Request) ([]models.Post, int64, error) {
	return m.SearchFn(ctx, cond, page)
}

type mockCommentRepo struct {
	CreateFn              func(ctx context.Context, comment *models.Comment) error
	FindByIDAndPostIDFn   func(ctx context.Context, id, postID uint) (*models.Comment, error)
	ExistsByIDAndPostIDFn func(ctx context.Context, id, postID uint) (bool, error)
	SaveFn                func(ctx context.Context, comment *models.Comment) error
	DeleteByIDAndPostIDFn func(ctx context.Context, id, postID uint) error
	FindByPostIDFn        func(ctx context.Context, postID uint, page pagination.Request) ([]models.Comment, int64, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return m.CreateFn(ctx, comment)
}

func (m *mockCommentRepo) FindByIDAndPostID(ctx context.Context, id, postID uint) (*models.Comment, error) {
	return m.FindByIDAndPostIDFn(ctx, id, postID)
}

func (m *mockCommentRepo) ExistsByIDAndPostID(ctx context.Context, id, postID uint) (bool, error) {
	return m.ExistsByIDAndPostIDFn(ctx, id, postID)
}

func (m *mockCommentRepo) Save(ctx context.Context, comment *models.Comment) error {
	return m.SaveFn(ctx, comment)
}

func (m *mockCommentRepo) DeleteByIDAndPostID(ctx context.Context, id, postID uint) error {
	return m.DeleteByIDAndPostIDFn(ctx, id, postID)
}

func (m *mockCommentRepo) FindByPostID(ctx context.Context, postID uint, page pagination.Request) ([]models.Comment, int64, error) {
	return m.FindByPostIDFn(ctx, postID, page)
}
