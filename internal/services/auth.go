// Package services holds the board's domain services. Services validate
// against the repositories, raise apperror failures, and map entities into
// the response DTOs; they never touch HTTP or session state themselves.
package services

import (
	"context"
	"time"

	"crudboard/internal/apperror"
	"crudboard/internal/models"
	"crudboard/internal/pagination"
	"crudboard/internal/repository"
	"crudboard/internal/utils"
)

const defaultUserPageSize = 20

// SignupRequest is the signup payload.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest is the login payload. Same shape as signup, kept separate so
// the two can diverge.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// MeResponse is the session owner's projection.
type MeResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserResponse is the admin-facing user projection.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthService validates credentials against the user repository.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup registers a new user and returns its id. The password is hashed
// before storage; the plaintext is never persisted or logged.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (uint, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if exists {
		return 0, apperror.DuplicateEmail()
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return 0, apperror.Internal(err)
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return 0, apperror.Internal(err)
	}
	return user.ID, nil
}

// Login checks the credentials and returns the authenticated user. An
// unregistered email and a wrong password both fail with the identical
// BadCredentials error so the response never reveals which one was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.BadCredentials()
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperror.BadCredentials()
	}
	return user, nil
}

// Me resolves a session-bound user id to its projection. A stale id whose
// user no longer exists is treated as no session at all.
func (s *AuthService) Me(ctx context.Context, userID uint) (MeResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return MeResponse{}, apperror.Internal(err)
	}
	if user == nil {
		return MeResponse{}, apperror.Unauthorized()
	}
	return MeResponse{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// ListUsers returns a page of registered users, newest first.
func (s *AuthService) ListUsers(ctx context.Context, page pagination.Request) (pagination.Page[UserResponse], error) {
	page = page.Normalize(defaultUserPageSize)

	users, total, err := s.users.List(ctx, page)
	if err != nil {
		return pagination.Page[UserResponse]{}, apperror.Internal(err)
	}

	content := make([]UserResponse, 0, len(users))
	for _, u := range users {
		content = append(content, UserResponse{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt})
	}
	return pagination.NewPage(content, total, page), nil
}
