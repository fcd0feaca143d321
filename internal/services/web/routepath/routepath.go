// Package routepath defines the URL paths served by the web service.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"
	Static = "/static/"

	Todos               = "/todos/"
	TodosToggleAll      = "/todos/toggle-all"
	TodosClearCompleted = "/todos/clear-completed"

	TodoToggle = "/todos/{todoID}/toggle"
	TodoRename = "/todos/{todoID}/rename"
	TodoDelete = "/todos/{todoID}/delete"

	APITodos = "/api/todos"

	// FilterQueryKey carries the selected list filter across redirects.
	FilterQueryKey = "filter"
	// TodoIDParam is the path wildcard carrying a todo id.
	TodoIDParam = "todoID"
)

// TodoToggleFor returns the toggle action path for a todo.
func TodoToggleFor(id int) string {
	return todoAction(id, "toggle")
}

// TodoRenameFor returns the rename action path for a todo.
func TodoRenameFor(id int) string {
	return todoAction(id, "rename")
}

// TodoDeleteFor returns the delete action path for a todo.
func TodoDeleteFor(id int) string {
	return todoAction(id, "delete")
}

func todoAction(id int, action string) string {
	return Todos + strconv.Itoa(id) + "/" + action
}

// WithFilter appends the filter query to path. The default filter is omitted.
func WithFilter(path string, filter string) string {
	filter = strings.TrimSpace(filter)
	if filter == "" || filter == "all" {
		return path
	}
	return path + "?" + url.Values{FilterQueryKey: {filter}}.Encode()
}
