package store

import (
	"context"
	"errors"
	"strings"

	"github.com/Gong130/Server-of-iNews/models"
	"gorm.io/gorm"
)

// UserStore persists credentials. It exposes create and lookup only; users
// are never updated or deleted.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. The unique index on username is the final
// arbiter for duplicates: a constraint violation comes back as
// ErrDuplicateUsername regardless of any earlier lookup.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateError(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// FindByUsername returns ErrNotFound when no such user exists.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// isDuplicateError recognizes a unique-constraint violation. GORM's error
// translation covers the Postgres driver; the string check catches drivers
// that don't translate (e.g. test doubles).
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "SQLSTATE 23505")
}
