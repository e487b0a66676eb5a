package auth

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/reconcile"
)

const whereID = "id = ?"

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{db: db}
}

// NewUser holds the fields of an account to create.
type NewUser struct {
	Username string
	Email    string
	Password string
	FullName string
	IsAdmin  bool
}

// Authenticate checks email and password against the live users.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (p *LocalProvider) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var rows []models.User

	err := p.db.WithContext(ctx).
		Scopes(models.Alive(false)).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user")
	}

	if len(rows) == 0 {
		return nil, ErrInvalidCredentials
	}

	user := &rows[0]

	if !user.IsActive {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// CreateUser creates a new local user with a hashed password.
func (p *LocalProvider) CreateUser(ctx context.Context, in NewUser) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var n int64

	err := p.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? OR email = ?", in.Username, email).
		Count(&n).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	if n > 0 {
		return nil, ErrUserNameOrEmailExists
	}

	hash, err := models.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Base:     models.Base{IsActive: true},
		Username: in.Username,
		Email:    email,
		Password: hash,
		FullName: in.FullName,
		IsAdmin:  in.IsAdmin,
	}

	if err = p.db.WithContext(ctx).Create(user).Error; err != nil {
		if reconcile.IsUniqueViolation(err) {
			return nil, ErrUserNameOrEmailExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// ChangePassword replaces the password of userID after checking the old one.
func (p *LocalProvider) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error {
	var rows []models.User

	if err := p.db.WithContext(ctx).Scopes(models.Alive(false)).Where(whereID, userID).Limit(1).Find(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to query user")
	}

	if len(rows) == 0 {
		return ErrUserNotFound
	}

	if !rows[0].VerifyPassword(oldPassword) {
		return ErrInvalidOldPassword
	}

	hash, err := models.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = p.db.WithContext(ctx).Model(&models.User{}).Where(whereID, userID).
		Updates(map[string]any{"password": hash, "updated_at": time.Now().UTC()}).Error

	return errors.Wrap(err, "failed to update password")
}
