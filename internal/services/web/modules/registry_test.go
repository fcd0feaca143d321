package modules

import (
	"testing"

	"github.com/louisbranch/todolist/internal/services/web/module"
	"github.com/louisbranch/todolist/internal/services/web/modules/todos"
)

func TestDefaultModulesOrder(t *testing.T) {
	t.Parallel()

	all := DefaultModules(Dependencies{})
	want := []string{"todos", "todos-api", "health"}
	if len(all) != len(want) {
		t.Fatalf("module count = %d, want %d", len(all), len(want))
	}
	for idx, id := range want {
		if got := all[idx].ID(); got != id {
			t.Fatalf("module[%d] id = %q, want %q", idx, got, id)
		}
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	seen := map[string]struct{}{}
	for _, feature := range DefaultModules(Dependencies{}) {
		mount, err := feature.Mount()
		if err != nil {
			t.Fatalf("module %q mount error = %v", feature.ID(), err)
		}
		if mount.Prefix == "" {
			t.Fatalf("module %q prefix is empty", feature.ID())
		}
		if _, ok := seen[mount.Prefix]; ok {
			t.Fatalf("duplicate mount prefix %q", mount.Prefix)
		}
		seen[mount.Prefix] = struct{}{}
	}
}

func TestDefaultModulesHealthFollowsGateway(t *testing.T) {
	t.Parallel()

	unconfigured := DefaultModules(Dependencies{TodoGateway: todos.NewHTTPGateway("", nil)})
	configured := DefaultModules(Dependencies{TodoGateway: todos.NewHTTPGateway("http://todos.test", nil)})
	for idx := range 2 {
		if unconfigured[idx].(module.HealthReporter).Healthy() {
			t.Fatalf("module %q should be unhealthy without an api base url", unconfigured[idx].ID())
		}
		if !configured[idx].(module.HealthReporter).Healthy() {
			t.Fatalf("module %q should be healthy with an api base url", configured[idx].ID())
		}
	}
}
