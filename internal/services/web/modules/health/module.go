// Package health serves the process liveness probe.
package health

import (
	"io"
	"net/http"
	"strings"

	"github.com/louisbranch/todolist/internal/services/web/module"
	"github.com/louisbranch/todolist/internal/services/web/platform/httpx"
	"github.com/louisbranch/todolist/internal/services/web/routepath"
)

// Module answers liveness probes and, for JSON clients, reports which
// modules are degraded.
type Module struct {
	modules []module.Module
}

// New returns a health module that reports on the given modules.
func New(modules ...module.Module) Module {
	return Module{modules: modules}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "health" }

// Mount wires the probe handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, m.handleUp)
	mux.HandleFunc(routepath.Health, httpx.MethodNotAllowed(http.MethodGet))
	return module.Mount{Prefix: routepath.Health, Handler: mux}, nil
}

type report struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

func (m Module) handleUp(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
		return
	}
	body := report{Status: "ok", Modules: map[string]bool{}}
	for _, feature := range m.modules {
		if feature == nil {
			continue
		}
		reporter, ok := feature.(module.HealthReporter)
		if !ok {
			continue
		}
		healthy := reporter.Healthy()
		body.Modules[feature.ID()] = healthy
		if !healthy {
			body.Status = "degraded"
		}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, body)
}
