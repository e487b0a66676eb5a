package auth

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/membership"
)

// Memberships is the part of the membership service auth depends on.
type Memberships interface {
	ListForUser(ctx context.Context, userID uint64) ([]membership.DTO, error)
	HasRole(ctx context.Context, userID, clubID uint64, role models.Role) (bool, error)
}

// Service provides authentication and authorization functionality.
type Service struct {
	local       *LocalProvider
	tokens      *Tokens
	memberships Memberships
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, tokens *Tokens, memberships Memberships) *Service {
	return &Service{
		local:       NewLocalProvider(db),
		tokens:      tokens,
		memberships: memberships,
	}
}

// Local returns the local account provider.
func (s *Service) Local() *LocalProvider {
	return s.local
}

// LoginUser is the user part of a login response.
type LoginUser struct {
	ID          uint64           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	IsAdmin     bool             `json:"isAdmin"`
	Memberships []membership.DTO `json:"memberships"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      LoginUser `json:"user"`
}

// Login authenticates email and password and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.local.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	ms, err := s.memberships.ListForUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	name := u.FullName
	if name == "" {
		name = u.Username
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: exp.UTC(),
		User: LoginUser{
			ID:          u.ID,
			Name:        name,
			Email:       u.Email,
			IsAdmin:     u.IsAdmin,
			Memberships: ms,
		},
	}, nil
}

// ParseToken verifies a bearer token and returns its principal.
func (s *Service) ParseToken(token string) (Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return Principal{}, err
	}

	id, err := claims.UserID()
	if err != nil {
		return Principal{}, err
	}

	return Principal{UserID: id, IsAdmin: claims.Admin}, nil
}
