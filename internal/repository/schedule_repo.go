package repository

import (
	"context"

	"gorm.io/gorm"

	"stillmind/backend/internal/model"
)

// ScheduleRepository is the data-access interface over the schedules
// document table. Each method is a single statement against the store;
// concurrent writes on the same id are last-write-wins.
type ScheduleRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.ScheduleRecord, error)
	GetByID(ctx context.Context, id string) (*model.ScheduleRecord, error)
	Create(ctx context.Context, record *model.ScheduleRecord) error
	Replace(ctx context.Context, id string, doc model.ScheduleDocument) error
	Delete(ctx context.Context, id string) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates the ScheduleRepository implementation.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) ListByUser(ctx context.Context, userID string) ([]model.ScheduleRecord, error) {
	var records []model.ScheduleRecord
	err := r.db.WithContext(ctx).
		Where("value->>'userId' = ?", userID).
		Find(&records).Error
	return records, err
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.ScheduleRecord, error) {
	var record model.ScheduleRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *scheduleRepo) Create(ctx context.Context, record *model.ScheduleRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Replace overwrites the whole document. No merge: the stored value
// becomes exactly doc.
func (r *scheduleRepo) Replace(ctx context.Context, id string, doc model.ScheduleDocument) error {
	result := r.db.WithContext(ctx).
		Model(&model.ScheduleRecord{}).
		Where("id = ?", id).
		Update("value", doc)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ScheduleRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
