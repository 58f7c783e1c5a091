package todo

import (
	"encoding/json"
	"fmt"
)

// Slot keys in the durable store. Each slot holds one collection serialized
// as a single JSON document.
const (
	// TodosSlot is the key holding the todo collection.
	TodosSlot = "todos"

	// CategoriesSlot is the key holding the category collection.
	CategoriesSlot = "categories"
)

// decodeTodos reconstitutes the todo collection from its stored form,
// checking shape rather than trusting it. Date fields round-trip as
// RFC 3339 strings via encoding/json.
func decodeTodos(data []byte) ([]Todo, error) {
	var todos []Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("unmarshal todos: %w", err)
	}

	for i := range todos {
		if todos[i].ID == "" {
			return nil, fmt.Errorf("todo %d: %w", i, ErrMissingID)
		}
		if todos[i].Priority == "" {
			todos[i].Priority = PriorityMedium
		}
		if err := ValidatePriority(todos[i].Priority); err != nil {
			return nil, fmt.Errorf("todo %s: %w", todos[i].ID, err)
		}
		todos[i].Tags = NormalizeTags(todos[i].Tags)
	}

	return todos, nil
}

// decodeCategories reconstitutes the category collection from its stored
// form.
func decodeCategories(data []byte) ([]Category, error) {
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}

	for i, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("category %d: %w", i, ErrMissingID)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("category %s: %w", c.ID, ErrEmptyCategoryName)
		}
	}

	return categories, nil
}

func encodeCollection(value any) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal collection: %w", err)
	}
	return data, nil
}
