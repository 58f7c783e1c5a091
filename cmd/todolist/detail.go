package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/amonks/todolist/internal/markdown"
	"github.com/amonks/todolist/internal/ui"
	"github.com/amonks/todolist/todo"
)

const detailFallbackWidth = 80

// printTodoDetail prints detailed information about a todo.
func printTodoDetail(t todo.Todo, now time.Time) {
	fmt.Printf("ID:        %s\n", t.ID)
	fmt.Printf("Title:     %s\n", t.Title)
	fmt.Printf("Status:    %s\n", statusName(t.Completed))
	fmt.Printf("Priority:  %s\n", t.Priority)
	fmt.Printf("Category:  %s\n", t.Category)
	if t.DueDate != nil {
		fmt.Printf("Due:       %s\n", ui.FormatDueDate(*t.DueDate, now))
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:      %s\n", strings.Join(t.Tags, ", "))
	}
	fmt.Printf("Created:   %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:   %s\n", t.UpdatedAt.Format("2006-01-02 15:04:05"))

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", formatDescription(t.Description))
	}
}

func statusName(completed bool) string {
	if completed {
		return "completed"
	}
	return "active"
}

// formatDescription renders the description as markdown on a terminal, or
// word-wrapped plain text otherwise.
func formatDescription(value string) string {
	width := detailWidth()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if rendered := markdown.Render(width, value); rendered != "" {
			return rendered
		}
	}
	return wordwrap.String(value, width)
}

func detailWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 1 {
		return detailFallbackWidth
	}
	if width > detailFallbackWidth {
		width = detailFallbackWidth
	}
	return width
}
