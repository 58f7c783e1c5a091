// Package todo implements the task model and the persistence engine for a
// single-user task tracker.
//
// Todos and categories live in memory and are written through to a local
// key-value store on every mutation: the full todo collection under one
// slot, the full category collection under another. The engine is the
// canonical source of truth; the store package layers optimistic UI state
// on top of it.
package todo

// Priority represents the importance of a todo.
type Priority string

const (
	// PriorityLow indicates the todo can wait.
	PriorityLow Priority = "low"

	// PriorityMedium is the default importance level.
	PriorityMedium Priority = "medium"

	// PriorityHigh indicates the todo should be handled first.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Higher ranks sort first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

const (
	// MaxTitleLength is the maximum allowed length for a todo title.
	MaxTitleLength = 100

	// MaxDescriptionLength is the maximum allowed length for a description.
	MaxDescriptionLength = 500

	// MaxTags is the maximum number of tags a todo may carry.
	MaxTags = 5
)

// DefaultFallbackCategory is the category that adopts todos orphaned by
// category deletion, unless the engine is configured otherwise.
const DefaultFallbackCategory = "Personal"
