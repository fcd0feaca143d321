// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/todolist/internal/services/web/module"
	"github.com/louisbranch/todolist/internal/services/web/modules/todos"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the gateways and shared config required to compose
// the web module registry. Modules receive the gateway already built, so they
// never decide how upstream clients are dialed or cached.
type Dependencies struct {
	Module module.Dependencies

	// TodoGateway backs both the HTML and JSON todo modules.
	TodoGateway todos.TodoGateway

	// AllowedOrigins lists origins allowed to read the JSON API cross-origin.
	AllowedOrigins []string
}
