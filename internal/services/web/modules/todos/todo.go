package todos

import (
	"context"
	"strings"
)

// Todo is one task as stored by the remote todos API.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoPatch carries the fields of a partial update. Nil fields are left as is.
type TodoPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TodoGateway reaches the remote todos collection of one user.
type TodoGateway interface {
	ListTodos(ctx context.Context, userID int) ([]Todo, error)
	CreateTodo(ctx context.Context, userID int, title string) (Todo, error)
	UpdateTodo(ctx context.Context, userID int, todoID int, patch TodoPatch) (Todo, error)
	DeleteTodo(ctx context.Context, userID int, todoID int) error
}

// Filter selects which todos are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter maps raw input onto a Filter. Unknown values mean FilterAll.
func ParseFilter(raw string) Filter {
	switch Filter(strings.ToLower(strings.TrimSpace(raw))) {
	case FilterActive:
		return FilterActive
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// FilterTodos returns the todos matching f in their original order.
func FilterTodos(items []Todo, f Filter) []Todo {
	out := make([]Todo, 0, len(items))
	for _, item := range items {
		switch f {
		case FilterActive:
			if item.Completed {
				continue
			}
		case FilterCompleted:
			if !item.Completed {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// ReplaceTodo returns a copy of items with the todo sharing updated's ID
// replaced.
func ReplaceTodo(items []Todo, updated Todo) []Todo {
	out := make([]Todo, len(items))
	copy(out, items)
	for idx := range out {
		if out[idx].ID == updated.ID {
			out[idx] = updated
			break
		}
	}
	return out
}

// RemoveTodo returns a copy of items without the todo with id.
func RemoveTodo(items []Todo, id int) []Todo {
	out := make([]Todo, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// AppendTodo returns a copy of items with created at the end.
func AppendTodo(items []Todo, created Todo) []Todo {
	out := make([]Todo, len(items), len(items)+1)
	copy(out, items)
	return append(out, created)
}

// Summary holds the collection counters shown in the footer.
type Summary struct {
	Total          int
	ActiveCount    int
	CompletedCount int
	AllCompleted   bool
}

// Summarize counts items by status.
func Summarize(items []Todo) Summary {
	summary := Summary{Total: len(items)}
	for _, item := range items {
		if item.Completed {
			summary.CompletedCount++
		} else {
			summary.ActiveCount++
		}
	}
	summary.AllCompleted = summary.Total > 0 && summary.ActiveCount == 0
	return summary
}

func findTodo(items []Todo, id int) (Todo, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Todo{}, false
}
