package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glowbook/config"
	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a customer account and returns it with a signed token.
func (s *DefaultUserService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("register: failed to check email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("register: failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         models.RoleCustomer,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, "", fmt.Errorf("register: failed to create user: %w", err)
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Authenticate verifies credentials and returns the user with a signed token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", fmt.Errorf("authenticate: failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// GetUserByID retrieves a user record.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// UpdateFCMToken stores the device push token on the user record.
func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	update := bson.M{"fcm_token": token, "updated_at": time.Now()}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}

func (s *DefaultUserService) issueToken(usr *models.User) (string, error) {
	ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	token, err := utils.GenerateToken(usr.ID, usr.Email, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
