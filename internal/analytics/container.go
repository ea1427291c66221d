package analytics

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(goals GoalSource, txns TransactionSource) *Container {
	service := NewService(goals, txns)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
