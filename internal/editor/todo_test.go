package editor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/amonks/todolist/todo"
)

func TestRenderTodoFileCreate(t *testing.T) {
	content, err := RenderTodoFile(DefaultCreateData("Personal"))
	if err != nil {
		t.Fatalf("RenderTodoFile: %v", err)
	}

	if !strings.Contains(content, `title = ""`) {
		t.Errorf("missing empty title: %s", content)
	}
	if !strings.Contains(content, `priority = "medium"`) {
		t.Errorf("missing default priority: %s", content)
	}
	if !strings.Contains(content, `category = "Personal"`) {
		t.Errorf("missing fallback category: %s", content)
	}
	if strings.Contains(content, "completed") {
		t.Errorf("create template shows completed: %s", content)
	}
	if !strings.Contains(content, "---") {
		t.Errorf("missing frontmatter separator: %s", content)
	}
}

func TestRenderTodoFileUpdate(t *testing.T) {
	due := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)
	data := DataFromTodo(&todo.Todo{
		ID:          "abc",
		Title:       "publish post",
		Priority:    todo.PriorityHigh,
		Category:    "Work",
		Completed:   true,
		DueDate:     &due,
		Tags:        []string{"writing", "blog"},
		Description: "Needs a final proofread.",
	})

	content, err := RenderTodoFile(data)
	if err != nil {
		t.Fatalf("RenderTodoFile: %v", err)
	}

	for _, want := range []string{
		`title = "publish post"`,
		`priority = "high"`,
		`due = "2030-01-15"`,
		`tags = ["writing", "blog"]`,
		`completed = true`,
		"Needs a final proofread.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("missing %q in:\n%s", want, content)
		}
	}
}

func TestParseTodoFileRoundTrip(t *testing.T) {
	due := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)
	data := DataFromTodo(&todo.Todo{
		ID:          "abc",
		Title:       "publish post",
		Priority:    todo.PriorityHigh,
		Category:    "Work",
		DueDate:     &due,
		Tags:        []string{"writing"},
		Description: "The body.",
	})

	content, err := RenderTodoFile(data)
	if err != nil {
		t.Fatalf("RenderTodoFile: %v", err)
	}

	parsed, err := ParseTodoFile(content)
	if err != nil {
		t.Fatalf("ParseTodoFile: %v", err)
	}
	if parsed.Title != "publish post" || parsed.Priority != "high" || parsed.Category != "Work" {
		t.Fatalf("parsed = %+v", parsed)
	}
	if parsed.Due != "2030-01-15" {
		t.Errorf("due = %q", parsed.Due)
	}
	if len(parsed.Tags) != 1 || parsed.Tags[0] != "writing" {
		t.Errorf("tags = %v", parsed.Tags)
	}
	if parsed.Completed == nil || *parsed.Completed != false {
		t.Errorf("completed = %v", parsed.Completed)
	}
	if parsed.Description != "The body." {
		t.Errorf("description = %q", parsed.Description)
	}
}

func TestParseTodoFileValidation(t *testing.T) {
	if _, err := ParseTodoFile("title = \"\"\npriority = \"medium\"\n---\n"); !errors.Is(err, todo.ErrEmptyTitle) {
		t.Errorf("empty title: err = %v", err)
	}
	if _, err := ParseTodoFile("title = \"x\"\npriority = \"urgent\"\n---\n"); !errors.Is(err, todo.ErrInvalidPriority) {
		t.Errorf("bad priority: err = %v", err)
	}
	if _, err := ParseTodoFile("title = [broken"); err == nil {
		t.Error("malformed TOML accepted")
	}
}

func TestParseTodoFileNoSeparator(t *testing.T) {
	parsed, err := ParseTodoFile("title = \"x\"\npriority = \"low\"\n")
	if err != nil {
		t.Fatalf("ParseTodoFile: %v", err)
	}
	if parsed.Description != "" {
		t.Errorf("description = %q without a body", parsed.Description)
	}
}
