package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/todolist/todo"
)

func plainHighlight(id string, prefixLen int) string { return id }

func TestFormatTodoTable(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	todos := []todo.Todo{
		{
			ID:        "11111111-aaaa-bbbb-cccc-dddddddddddd",
			Title:     "ship the release",
			Priority:  todo.PriorityHigh,
			Category:  "Work",
			DueDate:   &due,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "22222222-aaaa-bbbb-cccc-dddddddddddd",
			Title:     "water plants",
			Completed: true,
			Priority:  todo.PriorityLow,
			Category:  "Personal",
			CreatedAt: now.Add(-26 * time.Hour),
		},
	}

	got := formatTodoTable(todos, plainHighlight, now)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("header = %q", lines[0])
	}

	first := lines[1]
	if !strings.Contains(first, "11111111") {
		t.Errorf("row lacks short ID: %q", first)
	}
	if strings.Contains(first, "11111111-") {
		t.Errorf("row shows full UUID: %q", first)
	}
	if !strings.Contains(first, "high") || !strings.Contains(first, "Tomorrow") || !strings.Contains(first, "2h") {
		t.Errorf("row = %q", first)
	}

	second := lines[2]
	if !strings.Contains(second, "x") || !strings.Contains(second, "low") || !strings.Contains(second, "1d") {
		t.Errorf("row = %q", second)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("11111111-aaaa"); got != "11111111" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID of short input = %q", got)
	}
}

func TestPriorityShort(t *testing.T) {
	tests := []struct {
		in   todo.Priority
		want string
	}{
		{todo.PriorityHigh, "high"},
		{todo.PriorityMedium, "med"},
		{todo.PriorityLow, "low"},
	}
	for _, tt := range tests {
		if got := priorityShort(tt.in); got != tt.want {
			t.Errorf("priorityShort(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
