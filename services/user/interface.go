package user

import (
	"context"

	userRepo "staybook/database/repository/user"
	"staybook/models"
)

// AuthResponse is returned after a successful registration or sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService manages accounts and authentication.
type UserService interface {
	Register(ctx context.Context, req models.User) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	RevokeToken(ctx context.Context, id string) error
	UpdateFCMToken(ctx context.Context, id, fcmToken string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
