package templates

// TodoAppView is the render model of the todo application.
type TodoAppView struct {
	Items             []TodoItemView
	Filters           []FilterLinkView
	ItemsLeft         int
	HasTodos          bool
	HasCompleted      bool
	AllCompleted      bool
	CreateURL         string
	ToggleAllURL      string
	ClearCompletedURL string
}

// TodoItemView is one rendered todo row.
type TodoItemView struct {
	ID        int
	Title     string
	Completed bool
	ToggleURL string
	RenameURL string
	DeleteURL string
}

// FilterLinkView is one footer filter link.
type FilterLinkView struct {
	Value    string
	LabelKey string
	URL      string
	Selected bool
}

func filterCyName(value string) string {
	switch value {
	case "active":
		return "Active"
	case "completed":
		return "Completed"
	default:
		return "All"
	}
}
