package todo

import (
	"sort"
	"strings"
)

// StatusFilter selects todos by completion state.
type StatusFilter string

const (
	// StatusAll keeps every todo.
	StatusAll StatusFilter = "all"

	// StatusActive keeps incomplete todos.
	StatusActive StatusFilter = "active"

	// StatusCompleted keeps completed todos.
	StatusCompleted StatusFilter = "completed"
)

// PriorityAll keeps every priority when used in Filters.Priority.
const PriorityAll Priority = "all"

// Filters are ephemeral query parameters applied at read time. They are
// never persisted.
type Filters struct {
	// Status filters by completion state.
	Status StatusFilter

	// Priority filters by exact priority, or PriorityAll for any.
	Priority Priority

	// Category filters by exact category name; empty matches any.
	Category string

	// Search is a case-insensitive substring matched against the title,
	// the description, and every tag.
	Search string
}

// DefaultFilters returns the filter set that matches everything.
func DefaultFilters() Filters {
	return Filters{Status: StatusAll, Priority: PriorityAll}
}

// ApplyFilters returns a filtered and sorted copy of todos. The input slice
// is not modified.
func ApplyFilters(todos []Todo, filters Filters) []Todo {
	filtered := make([]Todo, 0, len(todos))
	search := strings.ToLower(filters.Search)

	for _, t := range todos {
		switch filters.Status {
		case StatusActive:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if filters.Priority != "" && filters.Priority != PriorityAll && t.Priority != filters.Priority {
			continue
		}
		if filters.Category != "" && t.Category != filters.Category {
			continue
		}
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		filtered = append(filtered, t.Clone())
	}

	sortTodos(filtered)
	return filtered
}

func matchesSearch(t Todo, search string) bool {
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), search) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// sortTodos orders todos by priority descending, then by due date ascending
// with due-date-bearing todos before due-date-less ones, then by creation
// time descending.
func sortTodos(todos []Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]

		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}

		if a.DueDate != nil && b.DueDate != nil {
			if !a.DueDate.Equal(*b.DueDate) {
				return a.DueDate.Before(*b.DueDate)
			}
		} else if a.DueDate != nil {
			return true
		} else if b.DueDate != nil {
			return false
		}

		return a.CreatedAt.After(b.CreatedAt)
	})
}
