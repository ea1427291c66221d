package settlement

import "time"

type Container struct {
	Service Service
	Sweeper *Sweeper
}

func NewContainer(goals GoalStore, progress ProgressCounter) *Container {
	service := NewService(goals, progress)
	sweeper := NewSweeper(service, time.Hour)

	return &Container{
		Service: service,
		Sweeper: sweeper,
	}
}
