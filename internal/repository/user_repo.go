package repository

import (
	"context"

	"gorm.io/gorm"

	"stillmind/backend/internal/model"
)

// UserRepository is the data-access interface for user profiles.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdatePreferences(ctx context.Context, id string, prefs *model.Preferences) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the UserRepository implementation.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdatePreferences(ctx context.Context, id string, prefs *model.Preferences) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", id).
		Update("preferences", prefs)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
