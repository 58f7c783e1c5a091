package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/todolist/internal/editor"
	"github.com/amonks/todolist/todo"
)

// todolist add
var addCmd = &cobra.Command{
	Use:     "add [title]",
	Short:   "Add a new todo",
	Aliases: []string{"create"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runAdd,
}

var (
	addDescription string
	addPriority    string
	addCategory    string
	addDue         string
	addTags        []string
	addEdit        bool
	addNoEdit      bool
)

// todolist list
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List todos, filtered and sorted",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listStatus   string
	listPriority string
	listCategory string
	listSearch   string
	listJSON     bool
)

// todolist show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full details of a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// todolist edit
var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Short:   "Edit fields of a todo",
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runEdit,
}

var (
	editTitle       string
	editDescription string
	editPriority    string
	editCategory    string
	editDue         string
	editClearDue    bool
	editTags        []string
	editEdit        bool
	editNoEdit      bool
)

// todolist done / undone
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark one or more todos as completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

var undoneCmd = &cobra.Command{
	Use:     "undone <id>...",
	Short:   "Mark one or more todos as active again",
	Aliases: []string{"reopen"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runUndone,
}

// todolist rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Short:   "Delete one or more todos",
	Aliases: []string{"delete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRm,
}

// todolist toggle-all
var toggleAllCmd = &cobra.Command{
	Use:   "toggle-all",
	Short: "Mark every todo completed (or active with --active)",
	Args:  cobra.NoArgs,
	RunE:  runToggleAll,
}

var toggleAllActive bool

// todolist clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every completed todo",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

// todolist stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

func init() {
	addCmd.Flags().StringVar(&addDescription, "description", "", "Longer description (markdown)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: low, medium, or high")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category name")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD, today, or tomorrow)")
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag (repeatable, max 5)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Compose the todo in $EDITOR")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Never open $EDITOR")

	listCmd.Flags().StringVar(&listStatus, "status", "all", "Status filter: all, active, or completed")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "all", "Priority filter: all, low, medium, or high")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Category filter")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search titles, descriptions, and tags")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD, today, or tomorrow)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "Remove the due date")
	editCmd.Flags().StringArrayVarP(&editTags, "tag", "t", nil, "Replace the tag list (repeatable)")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Edit the todo in $EDITOR")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Never open $EDITOR")

	toggleAllCmd.Flags().BoolVar(&toggleAllActive, "active", false, "Mark every todo active instead")

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")

	addDescriptionFlagAliases(addCmd, editCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	var title string
	if len(args) > 0 {
		title = strings.TrimSpace(args[0])
	}

	opts := todo.CreateOptions{
		Description: addDescription,
		Priority:    todo.Priority(addPriority),
		Category:    addCategory,
		Tags:        addTags,
	}

	useEditor := addEdit || (title == "" && !addNoEdit && editor.IsInteractive())
	if useEditor {
		data := editor.DefaultCreateData(db.FallbackCategory())
		data.Title = title
		if addPriority != "" {
			data.Priority = addPriority
		}
		if addCategory != "" {
			data.Category = addCategory
		}
		data.Due = addDue
		data.Tags = addTags
		data.Description = addDescription

		parsed, err := editor.EditTodo(data)
		if err != nil {
			return err
		}
		title = parsed.Title
		opts.Description = parsed.Description
		opts.Priority = todo.Priority(parsed.Priority)
		opts.Category = parsed.Category
		opts.Tags = parsed.Tags
		addDue = parsed.Due
	}

	if err := todo.ValidateTitle(title); err != nil {
		return err
	}
	if err := todo.ValidateDescription(opts.Description); err != nil {
		return err
	}
	if err := todo.ValidateTags(opts.Tags); err != nil {
		return err
	}
	due, err := parseDueDate(addDue)
	if err != nil {
		return err
	}
	opts.DueDate = due

	created, err := db.Create(title, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s: %s\n", created.ID, created.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	filters, err := buildFilters()
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}

	todos, err := db.Query(filters)
	if err != nil {
		return fmt.Errorf("query todos: %w", err)
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(todos)
	}

	printTodoTable(todos, time.Now())
	return nil
}

func buildFilters() (todo.Filters, error) {
	filters := todo.DefaultFilters()

	switch todo.StatusFilter(listStatus) {
	case todo.StatusAll, todo.StatusActive, todo.StatusCompleted:
		filters.Status = todo.StatusFilter(listStatus)
	default:
		return filters, fmt.Errorf("invalid status filter %q", listStatus)
	}

	priority := todo.Priority(listPriority)
	if priority != todo.PriorityAll {
		if err := todo.ValidatePriority(priority); err != nil {
			return filters, err
		}
	}
	filters.Priority = priority
	filters.Category = listCategory
	filters.Search = listSearch
	return filters, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	id, err := resolveTodoID(db, args[0])
	if err != nil {
		return err
	}

	t := db.Get(id)
	if t == nil {
		return fmt.Errorf("todo not found: %s", args[0])
	}

	printTodoDetail(*t, time.Now())
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	id, err := resolveTodoID(db, args[0])
	if err != nil {
		return err
	}

	var opts todo.UpdateOptions
	flags := cmd.Flags()

	hasFieldFlags := flags.Changed("title") || flags.Changed("description") ||
		flags.Changed("priority") || flags.Changed("category") ||
		flags.Changed("due") || editClearDue || flags.Changed("tag")
	useEditor := editEdit || (!hasFieldFlags && !editNoEdit && editor.IsInteractive())
	if useEditor {
		existing := db.Get(id)
		if existing == nil {
			return fmt.Errorf("todo not found: %s", args[0])
		}

		parsed, err := editor.EditTodo(editor.DataFromTodo(existing))
		if err != nil {
			return err
		}

		priority := todo.Priority(parsed.Priority)
		opts = todo.UpdateOptions{
			Title:       &parsed.Title,
			Description: &parsed.Description,
			Priority:    &priority,
			Category:    &parsed.Category,
			Completed:   parsed.Completed,
			Tags:        parsed.Tags,
		}
		if parsed.Tags == nil {
			opts.Tags = []string{}
		}
		if parsed.Due == "" {
			opts.ClearDueDate = true
		} else {
			due, err := parseDueDate(parsed.Due)
			if err != nil {
				return err
			}
			opts.DueDate = due
		}

		updated, err := db.Update(id, opts)
		if err != nil {
			return err
		}
		if updated == nil {
			return fmt.Errorf("todo not found: %s", args[0])
		}
		fmt.Printf("Updated %s: %s\n", updated.ID, updated.Title)
		return nil
	}

	if flags.Changed("title") {
		title := strings.TrimSpace(editTitle)
		if err := todo.ValidateTitle(title); err != nil {
			return err
		}
		opts.Title = &title
	}
	if flags.Changed("description") {
		if err := todo.ValidateDescription(editDescription); err != nil {
			return err
		}
		opts.Description = &editDescription
	}
	if flags.Changed("priority") {
		priority := todo.Priority(editPriority)
		opts.Priority = &priority
	}
	if flags.Changed("category") {
		opts.Category = &editCategory
	}
	if flags.Changed("due") {
		due, err := parseDueDate(editDue)
		if err != nil {
			return err
		}
		opts.DueDate = due
	}
	opts.ClearDueDate = editClearDue
	if flags.Changed("tag") {
		if err := todo.ValidateTags(editTags); err != nil {
			return err
		}
		opts.Tags = editTags
	}

	updated, err := db.Update(id, opts)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("todo not found: %s", args[0])
	}

	fmt.Printf("Updated %s: %s\n", updated.ID, updated.Title)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	return setCompleted(args, true)
}

func runUndone(cmd *cobra.Command, args []string) error {
	return setCompleted(args, false)
}

func setCompleted(args []string, completed bool) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveTodoID(db, arg)
		if err != nil {
			return err
		}

		updated, err := db.Update(id, todo.UpdateOptions{Completed: &completed})
		if err != nil {
			return err
		}
		if updated == nil {
			return fmt.Errorf("todo not found: %s", arg)
		}

		state := "active"
		if completed {
			state = "done"
		}
		fmt.Printf("Marked %s %s: %s\n", updated.ID, state, updated.Title)
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveTodoID(db, arg)
		if err != nil {
			return err
		}

		removed, err := db.Delete(id)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("todo not found: %s", arg)
		}
		fmt.Printf("Deleted %s\n", id)
	}
	return nil
}

func runToggleAll(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	if err := db.ToggleAll(!toggleAllActive); err != nil {
		return err
	}

	if toggleAllActive {
		fmt.Println("Marked every todo active.")
	} else {
		fmt.Println("Marked every todo completed.")
	}
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	if err := db.DeleteCompleted(); err != nil {
		return err
	}

	fmt.Println("Deleted completed todos.")
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	stats, err := db.Stats()
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("Total:     %d\n", stats.Total)
	fmt.Printf("Active:    %d\n", stats.Active)
	fmt.Printf("Completed: %d\n", stats.Completed)
	fmt.Printf("Overdue:   %d\n", stats.Overdue)
	fmt.Printf("Due today: %d\n", stats.DueToday)
	return nil
}

// parseDueDate parses a --due flag value. Empty means no due date.
func parseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return nil, nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch value {
	case "today":
		return &today, nil
	case "tomorrow":
		tomorrow := today.AddDate(0, 0, 1)
		return &tomorrow, nil
	}

	due, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: expected YYYY-MM-DD, today, or tomorrow", value)
	}
	return &due, nil
}
