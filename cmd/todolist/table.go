package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/todolist/internal/ui"
	"github.com/amonks/todolist/todo"
)

// printTodoTable prints todos in a table format.
func printTodoTable(todos []todo.Todo, now time.Time) {
	if len(todos) == 0 {
		fmt.Println("No todos found.")
		return
	}

	fmt.Print(formatTodoTable(todos, ui.HighlightID, now))
}

func formatTodoTable(todos []todo.Todo, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "", "PRI", "CATEGORY", "DUE", "AGE", "TITLE"}, len(todos))

	prefixLengths := todoIDPrefixLengths(todos)
	for _, t := range todos {
		row := []string{
			highlight(shortID(t.ID), prefixLengths[strings.ToLower(t.ID)]),
			completedMark(t.Completed),
			priorityShort(t.Priority),
			t.Category,
			formatDue(t, now),
			ui.FormatDurationShort(now.Sub(t.CreatedAt)),
			ui.TruncateTableCell(t.Title),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

// printCategoryTable prints categories in a table format.
func printCategoryTable(categories []todo.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}

	builder := ui.NewTableBuilder([]string{"NAME", "COLOR", "TODOS"}, len(categories))
	for _, c := range categories {
		builder.AddRow([]string{c.Name, c.Color, fmt.Sprintf("%d", c.Count)})
	}
	fmt.Print(builder.String())
}

func todoIDPrefixLengths(todos []todo.Todo) map[string]int {
	ids := make([]string, 0, len(todos))
	for _, t := range todos {
		ids = append(ids, t.ID)
	}
	return ui.UniqueIDPrefixLengths(ids)
}

// shortID truncates a UUID for table display. Prefix resolution accepts it
// as long as it stays unique.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func completedMark(completed bool) string {
	if completed {
		return "x"
	}
	return " "
}

func formatDue(t todo.Todo, now time.Time) string {
	if t.DueDate == nil {
		return "-"
	}
	return ui.FormatDueDate(*t.DueDate, now)
}

// priorityShort returns a short representation of priority.
func priorityShort(p todo.Priority) string {
	switch p {
	case todo.PriorityHigh:
		return "high"
	case todo.PriorityMedium:
		return "med"
	case todo.PriorityLow:
		return "low"
	default:
		return string(p)
	}
}
