package todos

import (
	"reflect"
	"testing"
)

func sampleTodos() []Todo {
	return []Todo{
		{ID: 1, UserID: 7, Title: "Buy milk"},
		{ID: 2, UserID: 7, Title: "Walk dog", Completed: true},
		{ID: 3, UserID: 7, Title: "Write tests"},
	}
}

func ids(items []Todo) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := map[string]Filter{
		"":            FilterAll,
		"all":         FilterAll,
		" Active ":    FilterActive,
		"COMPLETED":   FilterCompleted,
		"done":        FilterAll,
		"completed\n": FilterCompleted,
	}
	for raw, want := range tests {
		if got := ParseFilter(raw); got != want {
			t.Fatalf("ParseFilter(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestFilterTodosKeepsOrderAndPartitions(t *testing.T) {
	t.Parallel()

	items := sampleTodos()
	if got := ids(FilterTodos(items, FilterAll)); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("all = %v", got)
	}
	active := FilterTodos(items, FilterActive)
	completed := FilterTodos(items, FilterCompleted)
	if got := ids(active); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("active = %v", got)
	}
	if got := ids(completed); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("completed = %v", got)
	}
	if len(active)+len(completed) != len(items) {
		t.Fatalf("active and completed should partition the collection")
	}
	if got := FilterTodos(nil, FilterActive); got == nil || len(got) != 0 {
		t.Fatalf("FilterTodos(nil) = %#v, want empty slice", got)
	}
}

func TestFilterTodosDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := sampleTodos()
	before := sampleTodos()
	_ = FilterTodos(items, FilterCompleted)
	if !reflect.DeepEqual(items, before) {
		t.Fatalf("input mutated: %+v", items)
	}
}

func TestReplaceTodo(t *testing.T) {
	t.Parallel()

	items := sampleTodos()
	updated := ReplaceTodo(items, Todo{ID: 2, UserID: 7, Title: "Walk dog"})
	if updated[1].Completed {
		t.Fatalf("expected replaced todo to be active")
	}
	if !items[1].Completed {
		t.Fatalf("input mutated")
	}
	missing := ReplaceTodo(items, Todo{ID: 99, Title: "ghost"})
	if !reflect.DeepEqual(missing, items) {
		t.Fatalf("unknown id should leave a plain copy: %+v", missing)
	}
	missing[0].Title = "changed"
	if items[0].Title != "Buy milk" {
		t.Fatalf("copy shares storage with input")
	}
}

func TestRemoveTodo(t *testing.T) {
	t.Parallel()

	items := sampleTodos()
	if got := ids(RemoveTodo(items, 2)); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("RemoveTodo() = %v", got)
	}
	if len(items) != 3 {
		t.Fatalf("input mutated")
	}
	if got := ids(RemoveTodo(items, 42)); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("RemoveTodo(missing) = %v", got)
	}
}

func TestAppendTodo(t *testing.T) {
	t.Parallel()

	items := sampleTodos()[:2]
	got := AppendTodo(items, Todo{ID: 9, Title: "New"})
	if !reflect.DeepEqual(ids(got), []int{1, 2, 9}) {
		t.Fatalf("AppendTodo() = %v", ids(got))
	}
	if len(items) != 2 {
		t.Fatalf("input mutated")
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("Summarize(nil) = %+v", got)
	}
	got := Summarize(sampleTodos())
	want := Summary{Total: 3, ActiveCount: 2, CompletedCount: 1}
	if got != want {
		t.Fatalf("Summarize() = %+v, want %+v", got, want)
	}
	done := Summarize([]Todo{{ID: 1, Completed: true}})
	if !done.AllCompleted {
		t.Fatalf("expected AllCompleted")
	}
}
