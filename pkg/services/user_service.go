package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/conclave-ai/conclave/ent"
	userent "github.com/conclave-ai/conclave/ent/user"
	"github.com/conclave-ai/conclave/pkg/models"
)

// ErrInvalidCredentials is returned for unknown emails or wrong
// passwords, without distinguishing the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService manages accounts when auth is enabled
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// Register creates a new user with a hashed password
func (s *UserService) Register(ctx context.Context, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, NewValidationError("email", "must be a valid address")
	}
	if len(password) < 8 {
		return models.User{}, NewValidationError("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return models.User{}, ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return toUser(created), nil
}

// Authenticate verifies credentials and returns the user
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	found, err := s.client.User.Query().
		Where(userent.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return toUser(found), nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	found, err := s.client.User.Query().
		Where(userent.IDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return toUser(found), nil
}

func toUser(e *ent.User) models.User {
	return models.User{
		ID:        e.ID,
		Email:     e.Email,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
	}
}
