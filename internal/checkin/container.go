package checkin

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
	Repo    ProgressRepository
}

func NewContainer(db *gorm.DB, goals GoalFinder) *Container {
	repo := NewRepository(db)
	service := NewService(repo, goals)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
