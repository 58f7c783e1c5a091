package todo

import (
	"errors"
	"testing"
)

func TestDecodeTodosDefaultsPriority(t *testing.T) {
	todos, err := decodeTodos([]byte(`[{"id": "1", "title": "x"}]`))
	if err != nil {
		t.Fatalf("decodeTodos: %v", err)
	}
	if todos[0].Priority != PriorityMedium {
		t.Errorf("priority = %q, want %q", todos[0].Priority, PriorityMedium)
	}
}

func TestDecodeTodosRejectsMissingID(t *testing.T) {
	if _, err := decodeTodos([]byte(`[{"title": "x"}]`)); !errors.Is(err, ErrMissingID) {
		t.Fatalf("err = %v, want ErrMissingID", err)
	}
}

func TestDecodeTodosRejectsUnknownPriority(t *testing.T) {
	if _, err := decodeTodos([]byte(`[{"id": "1", "priority": "urgent"}]`)); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("err = %v, want ErrInvalidPriority", err)
	}
}

func TestDecodeCategoriesRejectsMissingName(t *testing.T) {
	if _, err := decodeCategories([]byte(`[{"id": "1"}]`)); !errors.Is(err, ErrEmptyCategoryName) {
		t.Fatalf("err = %v, want ErrEmptyCategoryName", err)
	}
}
