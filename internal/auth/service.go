package auth

import (
	"context"
	"errors"
	"fmt"

	"go-resto-manager/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials means the email/password pair matched no user.
// It is a normal outcome, not a transport failure.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// ErrUserExists means registration hit an already-taken email.
var ErrUserExists = errors.New("auth: user already exists")

// Users is the slice of the record store the credential service needs.
type Users interface {
	ListBy(ctx context.Context, field string, value any) ([]models.User, error)
	Create(ctx context.Context, item models.User) (models.User, error)
}

// Service authenticates against the users collection. Passwords are
// stored bcrypt-hashed; the stored field keeps the legacy name.
type Service struct {
	users Users
}

func NewService(users Users) *Service {
	return &Service{users: users}
}

// Login finds the user by email and verifies the password. A store
// failure comes back as-is so callers can tell it from a bad password.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	matches, err := s.users.ListBy(ctx, "email", email)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	for _, user := range matches {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
			return user, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Register creates a new user unless the email is already taken.
func (s *Service) Register(ctx context.Context, name, email, password, role string) (models.User, error) {
	existing, err := s.users.ListBy(ctx, "email", email)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	if len(existing) > 0 {
		return models.User{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("register: hash password: %w", err)
	}

	if role == "" {
		role = "staff"
	}
	created, err := s.users.Create(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	return created, nil
}
