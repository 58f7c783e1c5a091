package todo

import "time"

// Stats is a derived aggregate over the todo collection, recomputed on
// demand and never cached.
type Stats struct {
	// Total is the number of todos.
	Total int `json:"total"`

	// Completed is the number of completed todos.
	Completed int `json:"completed"`

	// Active is the number of incomplete todos.
	Active int `json:"active"`

	// Overdue counts incomplete todos due strictly before the start of
	// today.
	Overdue int `json:"overdue"`

	// DueToday counts incomplete todos due within today.
	DueToday int `json:"dueToday"`
}

// computeStats derives stats from todos relative to now. Two calls
// straddling midnight may classify the same todo differently.
func computeStats(todos []Todo, now time.Time) Stats {
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	var stats Stats
	stats.Total = len(todos)
	for _, t := range todos {
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Active++
		if t.DueDate == nil {
			continue
		}
		if t.DueDate.Before(today) {
			stats.Overdue++
		} else if t.DueDate.Before(tomorrow) {
			stats.DueToday++
		}
	}
	return stats
}

func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
