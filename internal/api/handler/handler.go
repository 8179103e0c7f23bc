package handler

import "stillmind/backend/internal/service"

// Handler aggregates every handler behind one injection point.
type Handler struct {
	Schedule *ScheduleHandler
	Session  *SessionHandler
	Favorite *FavoriteHandler
	Progress *ProgressHandler
	User     *UserHandler
	Export   *ExportHandler
}

// NewHandler wires the handlers over the service aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Schedule: NewScheduleHandler(svc.Schedule),
		Session:  NewSessionHandler(svc.Session),
		Favorite: NewFavoriteHandler(svc.Favorite),
		Progress: NewProgressHandler(svc.Progress),
		User:     NewUserHandler(svc.User),
		Export:   NewExportHandler(svc.Export),
	}
}
