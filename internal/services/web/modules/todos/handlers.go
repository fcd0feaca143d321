package todos

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/todolist/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/todolist/internal/services/web/platform/flash"
	"github.com/louisbranch/todolist/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/todolist/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/todolist/internal/services/web/templates"
)

// todoService defines the service operations used by todo handlers.
type todoService interface {
	loadPage(ctx context.Context, userID int, filter Filter) (Page, error)
	addTodo(ctx context.Context, userID int, rawTitle string) (Todo, error)
	deleteTodo(ctx context.Context, userID int, todoID int) error
	toggleTodo(ctx context.Context, userID int, todoID int) (Todo, error)
	renameTodo(ctx context.Context, userID int, todoID int, rawTitle string) error
	toggleAll(ctx context.Context, userID int) error
	clearCompleted(ctx context.Context, userID int) error
}

type handlers struct {
	modulehandler.Base
	service todoService
	logger  *log.Logger
}

func newHandlers(s todoService, base modulehandler.Base, logger *log.Logger) handlers {
	if logger == nil {
		logger = log.Default()
	}
	return handlers{Base: base, service: s, logger: logger}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, "todos.page_title")
	userID := h.RequestUserID(r)
	if userID <= 0 {
		h.WritePage(w, r, title, webtemplates.UserWarning(loc), nil)
		return
	}

	page, err := h.service.loadPage(r.Context(), userID, requestFilter(r))
	var banner *webtemplates.Banner
	if err != nil {
		h.logger.Printf("todos load failed user_id=%d err=%v", userID, err)
		banner = &webtemplates.Banner{Kind: string(flashnotice.KindError), Message: webtemplates.T(loc, noticeKey(err, keyLoadFailed))}
	}
	h.WritePage(w, r, title, webtemplates.TodoApp(todoAppView(page), loc), banner)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.addTodo(r.Context(), h.RequestUserID(r), r.FormValue("title"))
	h.finishMutation(w, r, "create", err, keyAddFailed)
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	todoID, ok := h.todoID(w, r)
	if !ok {
		return
	}
	_, err := h.service.toggleTodo(r.Context(), h.RequestUserID(r), todoID)
	h.finishMutation(w, r, "toggle", err, keyUpdateFailed)
}

func (h handlers) handleRename(w http.ResponseWriter, r *http.Request) {
	todoID, ok := h.todoID(w, r)
	if !ok {
		return
	}
	err := h.service.renameTodo(r.Context(), h.RequestUserID(r), todoID, r.FormValue("title"))
	h.finishMutation(w, r, "rename", err, keyUpdateFailed)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	todoID, ok := h.todoID(w, r)
	if !ok {
		return
	}
	err := h.service.deleteTodo(r.Context(), h.RequestUserID(r), todoID)
	h.finishMutation(w, r, "delete", err, keyDeleteFailed)
}

func (h handlers) handleToggleAll(w http.ResponseWriter, r *http.Request) {
	err := h.service.toggleAll(r.Context(), h.RequestUserID(r))
	h.finishMutation(w, r, "toggle_all", err, keyUpdateFailed)
}

func (h handlers) handleClearCompleted(w http.ResponseWriter, r *http.Request) {
	err := h.service.clearCompleted(r.Context(), h.RequestUserID(r))
	h.finishMutation(w, r, "clear_completed", err, keyDeleteFailed)
}

// finishMutation records a failure as a one-time notice and redirects back to
// the list with the current filter.
func (h handlers) finishMutation(w http.ResponseWriter, r *http.Request, action string, err error, fallbackKey string) {
	if err != nil {
		h.logger.Printf("todos %s failed user_id=%d err=%v", action, h.RequestUserID(r), err)
		h.WriteNotice(w, r, flashnotice.NoticeError(noticeKey(err, fallbackKey)))
	}
	h.WriteRedirect(w, r, routepath.WithFilter(routepath.Todos, string(requestFilter(r))))
}

func (h handlers) todoID(w http.ResponseWriter, r *http.Request) (int, bool) {
	todoID, err := strconv.Atoi(strings.TrimSpace(r.PathValue(routepath.TodoIDParam)))
	if err != nil || todoID <= 0 {
		h.WriteNotFound(w, r)
		return 0, false
	}
	return todoID, true
}

func requestFilter(r *http.Request) Filter {
	if raw := r.URL.Query().Get(routepath.FilterQueryKey); raw != "" {
		return ParseFilter(raw)
	}
	if r.Method == http.MethodPost {
		return ParseFilter(r.PostFormValue(routepath.FilterQueryKey))
	}
	return FilterAll
}

func noticeKey(err error, fallback string) string {
	if key := apperrors.LocalizationKey(err); key != "" {
		return key
	}
	return fallback
}
