package modules

import (
	"github.com/louisbranch/todolist/internal/services/web/modules/health"
	"github.com/louisbranch/todolist/internal/services/web/modules/todos"
	"github.com/louisbranch/todolist/internal/services/web/platform/modulehandler"
)

// DefaultModules returns the feature modules followed by the health module
// reporting on them.
func DefaultModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.Module)
	features := []Module{
		todos.NewWithGateway(deps.TodoGateway, base, deps.Module.Logger),
		todos.NewAPIWithGateway(deps.TodoGateway, base, deps.AllowedOrigins),
	}
	return append(features, health.New(features...))
}
