package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"staybook/models"
	"staybook/utils"
)

const tokenLifetime = 72 * time.Hour

// Register validates basic data, hashes the password, persists the user and
// returns an auth token.
func (s *DefaultUserService) Register(ctx context.Context, req models.User) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashedPassword),
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.Name,
		Email: userObj.Email,
	}, nil
}

// Authenticate verifies credentials and rotates the auth token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(ctx, u.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	// Refresh the auth cache so the middleware sees the new token at once.
	utils.GetAuthCacheClient().Set(ctx, "auth:"+u.ID, tokenHash, tokenLifetime)

	return &AuthResponse{
		ID:    u.ID,
		Token: token,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}

// GetUserByID fetches one user record.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// RevokeToken invalidates the user's current auth token.
func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	if err := s.Repo.UpdateTokenHash(ctx, id, ""); err != nil {
		return err
	}
	utils.GetAuthCacheClient().Del(ctx, "auth:"+id)
	return nil
}

// UpdateFCMToken stores the device push token for confirmation pushes.
func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, id, fcmToken string) error {
	return s.Repo.UpdateFCMToken(ctx, id, fcmToken)
}
