package postgres

import (
	"context"
	"time"

	"github.com/dom/garden-manager/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByResetToken matches only tokens that have not yet expired.
func (r *userRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		First(&user, "reset_token = ? AND reset_token_expiry > ?", token, now).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	// Save writes all fields so cleared reset-token columns go back to NULL.
	return r.db.WithContext(ctx).Save(user).Error
}
