package todos

import (
	"context"

	apperrors "github.com/louisbranch/todolist/internal/services/web/platform/errors"
)

// unavailableGateway fails closed when the remote API is not configured.
type unavailableGateway struct{}

func (unavailableGateway) ListTodos(context.Context, int) ([]Todo, error) {
	return nil, errNotConfigured()
}

func (unavailableGateway) CreateTodo(context.Context, int, string) (Todo, error) {
	return Todo{}, errNotConfigured()
}

func (unavailableGateway) UpdateTodo(context.Context, int, int, TodoPatch) (Todo, error) {
	return Todo{}, errNotConfigured()
}

func (unavailableGateway) DeleteTodo(context.Context, int, int) error {
	return errNotConfigured()
}

func errNotConfigured() error {
	return apperrors.E(apperrors.KindUnavailable, "todos service is not configured")
}
