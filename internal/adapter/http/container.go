package http

import (
	"todoweb/internal/adapter/http/handler"
	"todoweb/internal/adapter/telemetry"
	"todoweb/internal/core/port"
	"todoweb/internal/core/service"
)

type Container struct {
	TodoRepo    port.TodoRepository
	TodoService port.TodoService
	TodoHandler *handler.TodoHandler
}

func NewContainer(repo port.TodoRepository, metrics *telemetry.AppMetrics) *Container {
	todoSvc := service.NewTodoService(repo)
	todoHandler := handler.NewTodoHandler(todoSvc, metrics)

	return &Container{
		TodoRepo:    repo,
		TodoService: todoSvc,
		TodoHandler: todoHandler,
	}
}
