package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/room-booking/internal/logger"
	"github.com/sbilibin2017/room-booking/internal/models"
	"github.com/sbilibin2017/room-booking/internal/repositories"
	"github.com/sbilibin2017/room-booking/internal/validators"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=user_mock_test.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	ListActive(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id int64) error
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, username string) (string, error)
}

// UserService manages users and their credentials.
type UserService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, tokens TokenGenerator) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Create validates the user, hashes the raw password and stores the user.
func (svc *UserService) Create(ctx context.Context, user *models.UserDB, password string) error {
	if err := validators.ValidateUser(*user, password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}
	user.Password = string(hash)

	if err := svc.writer.Create(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "username", user.Username, "err", err)
		return err
	}
	return nil
}

// Get returns a user by id.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	return svc.reader.GetByID(ctx, id)
}

// List returns all users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.List(ctx)
}

// Update overwrites a user. An empty password keeps the stored hash.
func (svc *UserService) Update(ctx context.Context, user *models.UserDB, password string) error {
	if password == "" {
		if err := validators.ValidateUsername(user.Username); err != nil {
			return err
		}
		existing, err := svc.reader.GetByID(ctx, user.ID)
		if err != nil {
			return err
		}
		user.Password = existing.Password
	} else {
		if err := validators.ValidateUser(*user, password); err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return err
		}
		user.Password = string(hash)
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "id", user.ID, "err", err)
		return err
	}
	return nil
}

// Delete removes a user together with their reservations and payments.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	return nil
}

// ActiveUsers returns every user flagged active.
func (svc *UserService) ActiveUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active users", "err", err)
		return nil, &RetrievalError{Err: err}
	}
	return users, nil
}

// Authenticate checks the credentials and returns a signed token.
func (svc *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Warnw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.Log.Warnw("inactive user tried to log in", "username", username)
		return "", ErrInactiveUser
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}
