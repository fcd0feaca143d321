// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"

	"github.com/louisbranch/todolist/internal/services/web/platform/requestmeta"
)

// ResolveUserID resolves the user whose todos a request operates on.
// Zero means no user is configured.
type ResolveUserID func(*http.Request) int

// Dependencies carries the request-scoped resolvers shared by modules.
type Dependencies struct {
	ResolveUserID ResolveUserID
	SchemePolicy  requestmeta.SchemePolicy
	Logger        *log.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
