package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"github.com/amonks/todolist/todo"
)

// TodoData is the data used to render the editable todo file: a TOML
// frontmatter block, a "---" separator, and the markdown description body.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID string
	// Title is the todo title.
	Title string
	// Priority is the todo priority (low, medium, high).
	Priority string
	// Category is the category name.
	Category string
	// Completed marks the todo done (only for updates).
	Completed bool
	// Due is the due date as YYYY-MM-DD, or empty for none.
	Due string
	// Tags is the tag list.
	Tags []string
	// Description is the markdown body.
	Description string
}

// DefaultCreateData returns TodoData with default values for a new todo.
func DefaultCreateData(fallbackCategory string) TodoData {
	return TodoData{
		Priority: string(todo.PriorityMedium),
		Category: fallbackCategory,
	}
}

// DataFromTodo creates TodoData from an existing todo for editing.
func DataFromTodo(t *todo.Todo) TodoData {
	data := TodoData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Completed:   t.Completed,
		Tags:        t.Tags,
		Description: t.Description,
	}
	if t.DueDate != nil {
		data.Due = t.DueDate.Format("2006-01-02")
	}
	return data
}

var todoTemplate = template.Must(template.New("todo").Parse(`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # low, medium, high
category = {{ printf "%q" .Category }}
due = {{ printf "%q" .Due }} # YYYY-MM-DD, or empty for none
tags = [{{ range $i, $tag := .Tags }}{{ if $i }}, {{ end }}{{ printf "%q" $tag }}{{ end }}]
{{- if .IsUpdate }}
completed = {{ .Completed }}
{{- end }}
---
{{ .Description }}
`))

// RenderTodoFile renders the todo data as an editable file.
func RenderTodoFile(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo is the parsed result from the editor output. Due stays a
// string; callers own due-date parsing.
type ParsedTodo struct {
	Title       string   `toml:"title"`
	Priority    string   `toml:"priority"`
	Category    string   `toml:"category"`
	Due         string   `toml:"due"`
	Tags        []string `toml:"tags"`
	Completed   *bool    `toml:"completed"`
	Description string
}

// ParseTodoFile parses the edited file content.
func ParseTodoFile(content string) (*ParsedTodo, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTodo
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Title = strings.TrimSpace(parsed.Title)
	parsed.Priority = strings.ToLower(strings.TrimSpace(parsed.Priority))
	parsed.Category = strings.TrimSpace(parsed.Category)
	parsed.Due = strings.TrimSpace(parsed.Due)
	parsed.Description = strings.TrimSpace(body)

	if err := todo.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := todo.ValidatePriority(todo.Priority(parsed.Priority)); err != nil {
		return nil, err
	}
	if err := todo.ValidateDescription(parsed.Description); err != nil {
		return nil, err
	}
	if err := todo.ValidateTags(parsed.Tags); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditTodo opens the editor with pre-populated data and returns the parsed
// result.
func EditTodo(data TodoData) (*ParsedTodo, error) {
	content, err := RenderTodoFile(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "todolist-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoFile(string(edited))
}
