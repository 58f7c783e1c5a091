package todo

import (
	"testing"
	"time"
)

func queryFixture(now time.Time) []Todo {
	tomorrow := now.AddDate(0, 0, 1)
	today := now

	return []Todo{
		{
			ID:        "a",
			Title:     "prepare launch",
			Priority:  PriorityHigh,
			Category:  "Work",
			DueDate:   &tomorrow,
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID:        "b",
			Title:     "call dentist",
			Priority:  PriorityHigh,
			Category:  "Health",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "c",
			Title:     "buy milk",
			Priority:  PriorityMedium,
			Category:  "Shopping",
			DueDate:   &today,
			CreatedAt: now.Add(-1 * time.Hour),
			Tags:      []string{"groceries"},
		},
	}
}

func assertOrder(t *testing.T, got []Todo, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d todos, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			ids := make([]string, len(got))
			for j := range got {
				ids[j] = got[j].ID
			}
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}

func TestSortPriorityBeforeDueDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// The high-priority todo without a due date still outranks the
	// medium-priority todo that is due first.
	got := ApplyFilters(queryFixture(now), DefaultFilters())
	assertOrder(t, got, "a", "b", "c")
}

func TestSortDueDateAscendingWithinPriority(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 1)
	later := now.AddDate(0, 0, 5)

	todos := []Todo{
		{ID: "later", Priority: PriorityHigh, DueDate: &later, CreatedAt: now},
		{ID: "soon", Priority: PriorityHigh, DueDate: &soon, CreatedAt: now},
	}
	assertOrder(t, ApplyFilters(todos, DefaultFilters()), "soon", "later")
}

func TestSortNewestFirstOnFullTie(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	todos := []Todo{
		{ID: "old", Priority: PriorityLow, CreatedAt: now.Add(-time.Hour)},
		{ID: "new", Priority: PriorityLow, CreatedAt: now},
	}
	assertOrder(t, ApplyFilters(todos, DefaultFilters()), "new", "old")
}

func TestFilterStatus(t *testing.T) {
	todos := []Todo{
		{ID: "open", Priority: PriorityMedium},
		{ID: "done", Priority: PriorityMedium, Completed: true},
	}

	got := ApplyFilters(todos, Filters{Status: StatusActive, Priority: PriorityAll})
	assertOrder(t, got, "open")

	got = ApplyFilters(todos, Filters{Status: StatusCompleted, Priority: PriorityAll})
	assertOrder(t, got, "done")

	got = ApplyFilters(todos, DefaultFilters())
	if len(got) != 2 {
		t.Fatalf("StatusAll kept %d todos, want 2", len(got))
	}
}

func TestFilterPriorityAndCategory(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	todos := queryFixture(now)

	got := ApplyFilters(todos, Filters{Status: StatusAll, Priority: PriorityHigh})
	assertOrder(t, got, "a", "b")

	got = ApplyFilters(todos, Filters{Status: StatusAll, Priority: PriorityAll, Category: "Shopping"})
	assertOrder(t, got, "c")
}

func TestFilterSearchMatchesTags(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	todos := queryFixture(now)

	// "groceries" appears only in a tag, not in any title or description.
	got := ApplyFilters(todos, Filters{Status: StatusAll, Priority: PriorityAll, Search: "GROCER"})
	assertOrder(t, got, "c")
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	todos := queryFixture(now)

	got := ApplyFilters(todos, Filters{Status: StatusAll, Priority: PriorityAll, Search: "DENTIST"})
	assertOrder(t, got, "b")
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	todos := queryFixture(now)

	got := ApplyFilters(todos, DefaultFilters())
	got[0].Title = "mutated"

	if todos[0].Title == "mutated" || todos[1].Title == "mutated" || todos[2].Title == "mutated" {
		t.Fatal("ApplyFilters result shares memory with the input")
	}
	if todos[0].ID != "a" || todos[1].ID != "b" || todos[2].ID != "c" {
		t.Fatal("ApplyFilters reordered the input slice")
	}
}
