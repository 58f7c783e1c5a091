package todo

// Category is a named grouping bucket for todos.
type Category struct {
	// ID is a unique identifier, assigned at creation.
	ID string `json:"id"`

	// Name is the display key todos join against.
	Name string `json:"name"`

	// Color is a hex color used by frontends.
	Color string `json:"color"`

	// Count is the number of todos whose category equals Name. It is
	// derived after every mutation and never settable directly.
	Count int `json:"count"`
}

// DefaultCategories returns the categories seeded into an empty store.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Work", Color: "#3B82F6"},
		{ID: "2", Name: "Personal", Color: "#10B981"},
		{ID: "3", Name: "Shopping", Color: "#F59E0B"},
		{ID: "4", Name: "Health", Color: "#EF4444"},
	}
}

// CloneCategories returns a copy of a category slice.
func CloneCategories(categories []Category) []Category {
	if categories == nil {
		return nil
	}
	return append([]Category(nil), categories...)
}
