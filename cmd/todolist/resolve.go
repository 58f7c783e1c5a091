package main

import (
	"fmt"
	"strings"

	"github.com/amonks/todolist/todo"
)

// resolveTodoID resolves an exact ID or a unique case-insensitive ID prefix
// to a full todo ID.
func resolveTodoID(db *todo.Database, arg string) (string, error) {
	todos, err := db.All()
	if err != nil {
		return "", fmt.Errorf("read todos: %w", err)
	}

	prefix := strings.ToLower(arg)
	var matches []string
	for _, t := range todos {
		id := strings.ToLower(t.ID)
		if id == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("todo not found: %s", arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous todo ID prefix %q matches %d todos", arg, len(matches))
	}
}

// resolveCategory resolves a category name or ID to its ID and name.
func resolveCategory(db *todo.Database, arg string) (id, name string, err error) {
	categories, err := db.Categories()
	if err != nil {
		return "", "", fmt.Errorf("read categories: %w", err)
	}

	for _, c := range categories {
		if c.ID == arg || strings.EqualFold(c.Name, arg) {
			return c.ID, c.Name, nil
		}
	}
	return "", "", fmt.Errorf("category not found: %s", arg)
}
