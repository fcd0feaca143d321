package todos

import (
	"net/http"
	"strings"

	"github.com/rs/cors"

	apperrors "github.com/louisbranch/todolist/internal/services/web/platform/errors"
	"github.com/louisbranch/todolist/internal/services/web/platform/httpx"
	"github.com/louisbranch/todolist/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/todolist/internal/services/web/platform/weberror"
	"github.com/louisbranch/todolist/internal/services/web/routepath"
)

// listResponse is the JSON body of GET /api/todos.
type listResponse struct {
	Todos          []Todo `json:"todos"`
	Filter         string `json:"filter"`
	ActiveCount    int    `json:"active_count"`
	CompletedCount int    `json:"completed_count"`
	Total          int    `json:"total"`
}

type apiHandlers struct {
	modulehandler.Base
	service todoService
}

func (h apiHandlers) handleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.loadPage(r.Context(), h.RequestUserID(r), ParseFilter(r.URL.Query().Get(routepath.FilterQueryKey)))
	if err != nil {
		loc := h.PageLocalizer(w, r)
		_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), weberror.PublicMessage(loc, err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, listResponse{
		Todos:          page.Visible,
		Filter:         string(page.Filter),
		ActiveCount:    page.Summary.ActiveCount,
		CompletedCount: page.Summary.CompletedCount,
		Total:          page.Summary.Total,
	})
}

func newAPIHandler(h apiHandlers, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.APITodos, h.handleList)
	mux.HandleFunc(routepath.APITodos, httpx.MethodNotAllowed(http.MethodGet))

	options := cors.Options{
		AllowedOrigins: normalizeOrigins(allowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}
	// An empty origin list means "allow all" to cors; deny instead.
	if len(options.AllowedOrigins) == 0 {
		options.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(options).Handler(mux)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}
