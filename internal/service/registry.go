package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/qa-board/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// RegistryService owns user accounts: registration, lookup, and the
// role facts the content services consult for authorization decisions.
type RegistryService struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(users domain.UserRepository, bcryptCost int) *RegistryService {
	return &RegistryService{users: users, bcryptCost: bcryptCost}
}

// Register creates a new account. Usernames are unique and
// case-sensitive; a taken username fails with ErrDuplicateUsername and
// leaves the registry unchanged.
func (s *RegistryService) Register(ctx context.Context, username, password string, role domain.Role, email, displayName string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: role must be %q or %q", domain.ErrInvalidInput, domain.RoleUser, domain.RoleAdmin)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Email:        email,
		DisplayName:  displayName,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// FindByUsername returns the user or ErrNotFound. No side effects.
func (s *RegistryService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// IsAdmin reports whether the named user holds the admin role. An
// unknown user is not an admin rather than an error: an actor the
// registry has never seen has no elevated rights.
func (s *RegistryService) IsAdmin(ctx context.Context, username string) (bool, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get user: %w", err)
	}
	return user.IsAdmin(), nil
}

// Authenticate checks an opaque credential against the stored hash and
// returns the account on success. Unknown users and wrong passwords
// both fail with ErrNotAuthorized. No token is issued.
func (s *RegistryService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAuthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrNotAuthorized
	}
	return user, nil
}
