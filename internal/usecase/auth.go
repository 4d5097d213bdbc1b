package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and session tokens.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates an account and returns a session token. Admin
// accounts are provisioned out of band, not through registration.
func (u *AuthUseCase) Register(ctx context.Context, email, password string, role model.Role) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if role == model.RoleAdmin {
		return nil, "", domainErrors.ErrForbidden
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash, role)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(pkgAuth.Session{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns a session token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Session{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken decodes the session carried by a token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Session, error) {
	if token == "" {
		return pkgAuth.Session{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches an account by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
