package todos

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/todolist/internal/services/web/platform/errors"
)

const (
	keyLoadFailed   = "todos.error.load"
	keyAddFailed    = "todos.error.add"
	keyDeleteFailed = "todos.error.delete"
	keyUpdateFailed = "todos.error.update"
	keyEmptyTitle   = "todos.error.empty_title"
	keyNotFound     = "todos.error.not_found"
	keyUserRequired = "todos.error.user_id_required"
)

// Page is the loaded collection plus the derived view of it.
type Page struct {
	All     []Todo
	Visible []Todo
	Filter  Filter
	Summary Summary
}

// requireUserID rejects requests without a configured user.
func requireUserID(userID int) error {
	if userID <= 0 {
		return apperrors.EK(apperrors.KindUnauthorized, keyUserRequired, "user id is required")
	}
	return nil
}

type service struct {
	gateway TodoGateway
}

func newService(gateway TodoGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadPage(ctx context.Context, userID int, filter Filter) (Page, error) {
	page := Page{All: []Todo{}, Visible: []Todo{}, Filter: filter}
	if err := requireUserID(userID); err != nil {
		return page, err
	}
	items, err := s.gateway.ListTodos(ctx, userID)
	if err != nil {
		return page, apperrors.Wrap(err, keyLoadFailed, "load todos")
	}
	if items == nil {
		items = []Todo{}
	}
	page.All = items
	page.Visible = FilterTodos(items, filter)
	page.Summary = Summarize(items)
	return page, nil
}

func (s service) addTodo(ctx context.Context, userID int, rawTitle string) (Todo, error) {
	if err := requireUserID(userID); err != nil {
		return Todo{}, err
	}
	title := strings.TrimSpace(rawTitle)
	if title == "" {
		return Todo{}, apperrors.EK(apperrors.KindInvalidInput, keyEmptyTitle, "title should not be empty")
	}
	created, err := s.gateway.CreateTodo(ctx, userID, title)
	if err != nil {
		return Todo{}, apperrors.Wrap(err, keyAddFailed, "add todo")
	}
	return created, nil
}

func (s service) deleteTodo(ctx context.Context, userID int, todoID int) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	if todoID <= 0 {
		return apperrors.EK(apperrors.KindNotFound, keyNotFound, "todo not found")
	}
	if err := s.gateway.DeleteTodo(ctx, userID, todoID); err != nil {
		return apperrors.Wrap(err, keyDeleteFailed, "delete todo")
	}
	return nil
}

func (s service) toggleTodo(ctx context.Context, userID int, todoID int) (Todo, error) {
	current, err := s.find(ctx, userID, todoID)
	if err != nil {
		return Todo{}, apperrors.Wrap(err, keyUpdateFailed, "toggle todo")
	}
	completed := !current.Completed
	updated, err := s.gateway.UpdateTodo(ctx, userID, todoID, TodoPatch{Completed: &completed})
	if err != nil {
		return Todo{}, apperrors.Wrap(err, keyUpdateFailed, "toggle todo")
	}
	return updated, nil
}

// renameTodo deletes the todo when the new title is blank and does nothing
// when the title is unchanged.
func (s service) renameTodo(ctx context.Context, userID int, todoID int, rawTitle string) error {
	current, err := s.find(ctx, userID, todoID)
	if err != nil {
		return apperrors.Wrap(err, keyUpdateFailed, "rename todo")
	}
	title := strings.TrimSpace(rawTitle)
	switch title {
	case "":
		return s.deleteTodo(ctx, userID, todoID)
	case current.Title:
		return nil
	}
	if _, err := s.gateway.UpdateTodo(ctx, userID, todoID, TodoPatch{Title: &title}); err != nil {
		return apperrors.Wrap(err, keyUpdateFailed, "rename todo")
	}
	return nil
}

// toggleAll completes every active todo, or reopens all of them when every
// todo is already completed. Calls run one at a time and stop at the first
// failure.
func (s service) toggleAll(ctx context.Context, userID int) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	items, err := s.gateway.ListTodos(ctx, userID)
	if err != nil {
		return apperrors.Wrap(err, keyUpdateFailed, "toggle all todos")
	}
	target := !Summarize(items).AllCompleted
	for _, item := range items {
		if item.Completed == target {
			continue
		}
		completed := target
		if _, err := s.gateway.UpdateTodo(ctx, userID, item.ID, TodoPatch{Completed: &completed}); err != nil {
			return apperrors.Wrap(err, keyUpdateFailed, "toggle all todos")
		}
	}
	return nil
}

func (s service) clearCompleted(ctx context.Context, userID int) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	items, err := s.gateway.ListTodos(ctx, userID)
	if err != nil {
		return apperrors.Wrap(err, keyDeleteFailed, "clear completed todos")
	}
	for _, item := range FilterTodos(items, FilterCompleted) {
		if err := s.gateway.DeleteTodo(ctx, userID, item.ID); err != nil {
			return apperrors.Wrap(err, keyDeleteFailed, "clear completed todos")
		}
	}
	return nil
}

func (s service) find(ctx context.Context, userID int, todoID int) (Todo, error) {
	if err := requireUserID(userID); err != nil {
		return Todo{}, err
	}
	items, err := s.gateway.ListTodos(ctx, userID)
	if err != nil {
		return Todo{}, err
	}
	current, ok := findTodo(items, todoID)
	if !ok {
		return Todo{}, apperrors.EK(apperrors.KindNotFound, keyNotFound, "todo not found")
	}
	return current, nil
}
