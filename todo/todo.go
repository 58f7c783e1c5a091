package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is a unique identifier, assigned at creation and never changed.
	ID string `json:"id"`

	// Title is the short summary of the todo (max 100 chars, enforced by
	// callers rather than the engine).
	Title string `json:"title"`

	// Description provides additional context (max 500 chars).
	Description string `json:"description,omitempty"`

	// Completed reports whether the todo is done.
	Completed bool `json:"completed"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// Category names the Category this todo belongs to. The join is by
	// category name, not category ID.
	Category string `json:"category"`

	// DueDate is when the todo is due (nil when it has no due date).
	// Day granularity: it is compared against the start of today.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// CreatedAt is when the todo was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the todo was last modified. Refreshed on every
	// mutation, including completion toggles and bulk operations.
	UpdatedAt time.Time `json:"updatedAt"`

	// Tags is an ordered list of unique labels, at most MaxTags long.
	Tags []string `json:"tags"`
}

// Clone returns a deep copy of the todo. Mutating the copy never affects
// engine state.
func (t Todo) Clone() Todo {
	clone := t
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	if t.Tags != nil {
		clone.Tags = append([]string(nil), t.Tags...)
	}
	return clone
}

// CloneTodos returns a deep copy of a todo slice.
func CloneTodos(todos []Todo) []Todo {
	if todos == nil {
		return nil
	}
	clones := make([]Todo, len(todos))
	for i, t := range todos {
		clones[i] = t.Clone()
	}
	return clones
}
