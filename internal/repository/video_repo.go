package repository

import (
	"context"

	"gorm.io/gorm"

	"stillmind/backend/internal/model"
)

// FavoriteRepository is the data-access interface for bookmarked videos.
type FavoriteRepository interface {
	Create(ctx context.Context, fav *model.FavoriteVideo) error
	GetByUserAndVideo(ctx context.Context, userID, videoID string) (*model.FavoriteVideo, error)
	ListByUser(ctx context.Context, userID string) ([]model.FavoriteVideo, error)
	Delete(ctx context.Context, id string) error
}

type favoriteRepo struct {
	db *gorm.DB
}

// NewFavoriteRepo creates the FavoriteRepository implementation.
func NewFavoriteRepo(db *gorm.DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) Create(ctx context.Context, fav *model.FavoriteVideo) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

func (r *favoriteRepo) GetByUserAndVideo(ctx context.Context, userID, videoID string) (*model.FavoriteVideo, error) {
	var fav model.FavoriteVideo
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		First(&fav).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID string) ([]model.FavoriteVideo, error) {
	var favs []model.FavoriteVideo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&favs).Error
	return favs, err
}

func (r *favoriteRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("favorite_id = ?", id).
		Delete(&model.FavoriteVideo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
