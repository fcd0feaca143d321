package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if Todos != "/todos/" {
		t.Fatalf("Todos = %q", Todos)
	}
	if APITodos != "/api/todos" {
		t.Fatalf("APITodos = %q", APITodos)
	}
	if TodosToggleAll != "/todos/toggle-all" {
		t.Fatalf("TodosToggleAll = %q", TodosToggleAll)
	}
	if TodosClearCompleted != "/todos/clear-completed" {
		t.Fatalf("TodosClearCompleted = %q", TodosClearCompleted)
	}
}

func TestTodoRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := TodoToggleFor(7); got != "/todos/7/toggle" {
		t.Fatalf("TodoToggleFor() = %q", got)
	}
	if got := TodoRenameFor(7); got != "/todos/7/rename" {
		t.Fatalf("TodoRenameFor() = %q", got)
	}
	if got := TodoDeleteFor(7); got != "/todos/7/delete" {
		t.Fatalf("TodoDeleteFor() = %q", got)
	}
}

func TestWithFilter(t *testing.T) {
	t.Parallel()

	if got := WithFilter(Todos, ""); got != "/todos/" {
		t.Fatalf("WithFilter(empty) = %q", got)
	}
	if got := WithFilter(Todos, "all"); got != "/todos/" {
		t.Fatalf("WithFilter(all) = %q", got)
	}
	if got := WithFilter(Todos, "active"); got != "/todos/?filter=active" {
		t.Fatalf("WithFilter(active) = %q", got)
	}
	if got := WithFilter(TodosToggleAll, "completed"); got != "/todos/toggle-all?filter=completed" {
		t.Fatalf("WithFilter(completed) = %q", got)
	}
}
