package todos

import (
	"github.com/louisbranch/todolist/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/todolist/internal/services/web/templates"
)

func todoAppView(page Page) webtemplates.TodoAppView {
	filter := string(page.Filter)
	items := make([]webtemplates.TodoItemView, 0, len(page.Visible))
	for _, item := range page.Visible {
		items = append(items, webtemplates.TodoItemView{
			ID:        item.ID,
			Title:     item.Title,
			Completed: item.Completed,
			ToggleURL: routepath.WithFilter(routepath.TodoToggleFor(item.ID), filter),
			RenameURL: routepath.WithFilter(routepath.TodoRenameFor(item.ID), filter),
			DeleteURL: routepath.WithFilter(routepath.TodoDeleteFor(item.ID), filter),
		})
	}
	return webtemplates.TodoAppView{
		Items:             items,
		Filters:           filterLinks(page.Filter),
		ItemsLeft:         page.Summary.ActiveCount,
		HasTodos:          page.Summary.Total > 0,
		HasCompleted:      page.Summary.CompletedCount > 0,
		AllCompleted:      page.Summary.AllCompleted,
		CreateURL:         routepath.WithFilter(routepath.Todos, filter),
		ToggleAllURL:      routepath.WithFilter(routepath.TodosToggleAll, filter),
		ClearCompletedURL: routepath.WithFilter(routepath.TodosClearCompleted, filter),
	}
}

func filterLinks(selected Filter) []webtemplates.FilterLinkView {
	links := make([]webtemplates.FilterLinkView, 0, len(Filters))
	for _, filter := range Filters {
		links = append(links, webtemplates.FilterLinkView{
			Value:    string(filter),
			LabelKey: "todos.filter." + string(filter),
			URL:      routepath.WithFilter(routepath.Todos, string(filter)),
			Selected: filter == selected,
		})
	}
	return links
}
