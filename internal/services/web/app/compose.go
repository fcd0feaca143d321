package app

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"

	module "github.com/louisbranch/todolist/internal/services/web/module"
	"github.com/louisbranch/todolist/internal/services/web/platform/httpx"
	"github.com/louisbranch/todolist/internal/services/web/platform/observability"
	"github.com/louisbranch/todolist/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/todolist/internal/services/web/platform/weberror"
	"github.com/louisbranch/todolist/internal/services/web/routepath"
)

// ComposeInput carries modules and shared composition contracts.
type ComposeInput struct {
	Modules             []module.Module
	StaticFS            fs.FS
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *log.Logger
}

// Compose builds the root HTTP handler: module mounts, the root redirect,
// static assets and the not-found fallback, wrapped in the shared middleware.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := map[string]string{
		routepath.Root:   "root",
		routepath.Static: "static",
	}

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(root, feature, seen); err != nil {
			return nil, err
		}
	}

	root.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.Todos, http.StatusFound)
	})
	if input.StaticFS != nil {
		root.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(input.StaticFS))))
	}
	root.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteAppError(w, r, http.StatusNotFound)
	})

	logger := input.Logger
	if logger == nil {
		logger = log.Default()
	}
	return httpx.Chain(root,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RequireSameOrigin(input.RequestSchemePolicy),
	), nil
}

func mountModule(root *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, mount.Handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

// validatePrefix accepts subtree prefixes ("/todos/") and exact paths ("/up").
func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if prefix == routepath.Root {
		return fmt.Errorf("prefix must not claim the root path")
	}
	if strings.ContainsAny(prefix, "{} ") {
		return fmt.Errorf("prefix must be a literal path")
	}
	return nil
}
