package todos

import (
	"net/http"

	"github.com/louisbranch/todolist/internal/services/web/platform/httpx"
	"github.com/louisbranch/todolist/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	index := routepath.Todos + "{$}"
	mux.HandleFunc(http.MethodGet+" "+index, h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+index, h.handleCreate)
	mux.HandleFunc(index, httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodPost))

	postOnly := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{routepath.TodosToggleAll, h.handleToggleAll},
		{routepath.TodosClearCompleted, h.handleClearCompleted},
		{routepath.TodoToggle, h.handleToggle},
		{routepath.TodoRename, h.handleRename},
		{routepath.TodoDelete, h.handleDelete},
	}
	for _, route := range postOnly {
		mux.HandleFunc(http.MethodPost+" "+route.pattern, route.handler)
		mux.HandleFunc(route.pattern, httpx.MethodNotAllowed(http.MethodPost))
	}

	mux.HandleFunc(routepath.Todos, h.WriteNotFound)
}
