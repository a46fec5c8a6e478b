package user

import (
	"context"

	"staybook/models"
)

// UserRepository defines persistence operations for platform users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	UpdateFCMToken(ctx context.Context, id, fcmToken string) error
}
