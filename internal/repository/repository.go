package repository

import "gorm.io/gorm"

// Repository aggregates every repository behind one injection point.
type Repository struct {
	Schedule ScheduleRepository
	User     UserRepository
	Session  SessionRepository
	Favorite FavoriteRepository
}

// NewRepository wires the repositories over a shared gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Schedule: NewScheduleRepo(db),
		User:     NewUserRepo(db),
		Session:  NewSessionRepo(db),
		Favorite: NewFavoriteRepo(db),
	}
}
