package todos

import (
	"log"
	"net/http"

	"github.com/louisbranch/todolist/internal/services/web/module"
	"github.com/louisbranch/todolist/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/todolist/internal/services/web/routepath"
)

// Module provides the server-rendered todo list routes.
type Module struct {
	gateway TodoGateway
	base    modulehandler.Base
	logger  *log.Logger
}

// New returns a todos module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a todos module with explicit gateway and handler dependencies.
func NewWithGateway(gateway TodoGateway, base modulehandler.Base, logger *log.Logger) Module {
	return Module{gateway: gateway, base: base, logger: logger}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "todos" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	return gatewayHealthy(m.gateway)
}

// Mount wires todo route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base, m.logger))
	return module.Mount{Prefix: routepath.Todos, Handler: mux}, nil
}

// APIModule provides the read-only JSON view of the todo list.
type APIModule struct {
	gateway        TodoGateway
	base           modulehandler.Base
	allowedOrigins []string
}

// NewAPIWithGateway returns the JSON API module. Cross-origin reads are
// allowed only from allowedOrigins.
func NewAPIWithGateway(gateway TodoGateway, base modulehandler.Base, allowedOrigins []string) APIModule {
	return APIModule{gateway: gateway, base: base, allowedOrigins: allowedOrigins}
}

// ID returns a stable module identifier.
func (APIModule) ID() string { return "todos-api" }

// Healthy reports whether the module has an operational gateway.
func (m APIModule) Healthy() bool {
	return gatewayHealthy(m.gateway)
}

// Mount wires the JSON API handler.
func (m APIModule) Mount() (module.Mount, error) {
	h := apiHandlers{Base: m.base, service: newService(m.gateway)}
	return module.Mount{Prefix: routepath.APITodos, Handler: newAPIHandler(h, m.allowedOrigins)}, nil
}

func gatewayHealthy(gateway TodoGateway) bool {
	if gateway == nil {
		return false
	}
	_, unavailable := gateway.(unavailableGateway)
	return !unavailable
}
