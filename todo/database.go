package todo

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Slots is the durable key-value store backing the engine. Get returns
// (nil, nil) when the key has never been written.
type Slots interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

// Options configures the persistence engine.
type Options struct {
	// FallbackCategory is the category name that adopts todos orphaned by
	// category deletion. Defaults to DefaultFallbackCategory.
	FallbackCategory string

	// Logf receives load-failure diagnostics. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// Database is the persistence engine: the durable, canonical collection of
// todos and categories. Every mutating call writes the full collections
// through to the underlying slots. All returned records and slices are
// independent copies.
//
// Mutations that persist report the write error alongside their result; the
// in-memory mutation is kept even when the write fails, and there is no
// retry.
type Database struct {
	mu         sync.Mutex
	slots      Slots
	fallback   string
	logf       func(format string, args ...any)
	todos      []Todo
	categories []Category
}

// Open loads both slots and returns a ready engine. Malformed stored data
// is logged and degrades to an empty in-memory state; Open never fails. An
// absent category slot seeds the default categories.
func Open(slots Slots, opts Options) *Database {
	if opts.FallbackCategory == "" {
		opts.FallbackCategory = DefaultFallbackCategory
	}
	if opts.Logf == nil {
		opts.Logf = log.Printf
	}

	db := &Database{
		slots:    slots,
		fallback: opts.FallbackCategory,
		logf:     opts.Logf,
	}
	db.loadFromStorage()
	return db
}

func (d *Database) loadFromStorage() {
	data, err := d.slots.Get(TodosSlot)
	if err != nil {
		d.logf("todolist: load todos slot: %v", err)
		return
	}
	if data != nil {
		todos, err := decodeTodos(data)
		if err != nil {
			d.logf("todolist: decode todos: %v", err)
			return
		}
		d.todos = todos
	}

	data, err = d.slots.Get(CategoriesSlot)
	if err != nil {
		d.logf("todolist: load categories slot: %v", err)
		return
	}
	if data == nil {
		d.categories = DefaultCategories()
	} else {
		categories, err := decodeCategories(data)
		if err != nil {
			d.logf("todolist: decode categories: %v", err)
			return
		}
		d.categories = categories
	}

	d.recount()
}

// recount recomputes every category count from the live todo collection.
// Callers must hold d.mu (or be inside Open).
func (d *Database) recount() {
	for i := range d.categories {
		count := 0
		for _, t := range d.todos {
			if t.Category == d.categories[i].Name {
				count++
			}
		}
		d.categories[i].Count = count
	}
}

// persist writes both collections through to their slots. Callers must
// hold d.mu.
func (d *Database) persist() error {
	todosData, err := encodeCollection(d.todos)
	if err != nil {
		return err
	}
	categoriesData, err := encodeCollection(d.categories)
	if err != nil {
		return err
	}
	if err := d.slots.Set(TodosSlot, todosData); err != nil {
		return err
	}
	return d.slots.Set(CategoriesSlot, categoriesData)
}

// FallbackCategory returns the configured fallback category name.
func (d *Database) FallbackCategory() string {
	return d.fallback
}

// CreateOptions configures a new todo.
type CreateOptions struct {
	// Description provides additional context.
	Description string

	// Completed marks the todo done at creation.
	Completed bool

	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	// Category defaults to the fallback category when empty.
	Category string

	// DueDate is when the todo is due.
	DueDate *time.Time

	// Tags are deduplicated and capped at MaxTags.
	Tags []string
}

// Create creates a new todo with a fresh unique ID and both timestamps set
// to now, appends it, recomputes category counts, and persists.
func (d *Database) Create(title string, opts CreateOptions) (*Todo, error) {
	if opts.Priority == "" {
		opts.Priority = PriorityMedium
	}
	if err := ValidatePriority(opts.Priority); err != nil {
		return nil, err
	}
	if opts.Category == "" {
		opts.Category = d.fallback
	}

	now := time.Now()
	t := Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: opts.Description,
		Completed:   opts.Completed,
		Priority:    opts.Priority,
		Category:    opts.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        NormalizeTags(opts.Tags),
	}
	if opts.DueDate != nil {
		due := *opts.DueDate
		t.DueDate = &due
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.todos = append(d.todos, t)
	d.recount()
	err := d.persist()

	created := t.Clone()
	return &created, err
}

// UpdateOptions configures fields to update on a todo. Nil pointers mean
// "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	Category    *string
	DueDate     *time.Time

	// ClearDueDate removes the due date. Takes precedence over DueDate.
	ClearDueDate bool

	// Tags replaces the tag list when non-nil.
	Tags []string
}

// ApplyUpdate merges the given fields into a todo. The ID, CreatedAt, and
// UpdatedAt fields are never touched; the store package reuses this for its
// optimistic local patches.
func ApplyUpdate(t *Todo, opts UpdateOptions) {
	if opts.Title != nil {
		t.Title = *opts.Title
	}
	if opts.Description != nil {
		t.Description = *opts.Description
	}
	if opts.Completed != nil {
		t.Completed = *opts.Completed
	}
	if opts.Priority != nil {
		t.Priority = *opts.Priority
	}
	if opts.Category != nil {
		t.Category = *opts.Category
	}
	if opts.ClearDueDate {
		t.DueDate = nil
	} else if opts.DueDate != nil {
		due := *opts.DueDate
		t.DueDate = &due
	}
	if opts.Tags != nil {
		t.Tags = NormalizeTags(opts.Tags)
	}
}

// Update merges the given fields into the todo with the given ID, refreshes
// its UpdatedAt, recomputes category counts, and persists. The ID and
// CreatedAt of a todo can never be overwritten.
//
// Returns (nil, nil) when no todo has the given ID.
func (d *Database) Update(id string, opts UpdateOptions) (*Todo, error) {
	if opts.Priority != nil {
		if err := ValidatePriority(*opts.Priority); err != nil {
			return nil, err
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	index := d.indexOf(id)
	if index < 0 {
		return nil, nil
	}

	t := &d.todos[index]
	ApplyUpdate(t, opts)
	t.UpdatedAt = time.Now()

	d.recount()
	err := d.persist()

	updated := t.Clone()
	return &updated, err
}

// Delete removes the todo with the given ID, recomputes category counts,
// and persists. Reports whether a todo was removed.
func (d *Database) Delete(id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := d.indexOf(id)
	if index < 0 {
		return false, nil
	}

	d.todos = append(d.todos[:index], d.todos[index+1:]...)
	d.recount()
	return true, d.persist()
}

// Get returns a copy of the todo with the given ID, or nil when absent.
// Get never mutates engine state.
func (d *Database) Get(id string) *Todo {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := d.indexOf(id)
	if index < 0 {
		return nil
	}
	t := d.todos[index].Clone()
	return &t
}

// All returns every todo in insertion order as an independent copy.
func (d *Database) All() ([]Todo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return CloneTodos(d.todos), nil
}

// Query returns a filtered and sorted independent copy of the todo
// collection.
func (d *Database) Query(filters Filters) ([]Todo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ApplyFilters(d.todos, filters), nil
}

// Stats computes aggregate statistics relative to now at call time.
func (d *Database) Stats() (Stats, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return computeStats(d.todos, time.Now()), nil
}

// Categories returns every category as an independent copy.
func (d *Database) Categories() ([]Category, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return CloneCategories(d.categories), nil
}

// AddCategory creates a category with a fresh ID and a zero count and
// persists. The count catches up on the next todo mutation.
func (d *Database) AddCategory(name, color string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyCategoryName
	}

	c := Category{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.categories = append(d.categories, c)
	err := d.persist()

	created := c
	return &created, err
}

// DeleteCategory removes the category with the given ID. Every todo in that
// category is first reassigned to the fallback category, with its UpdatedAt
// refreshed, so the name join never dangles in persisted state. Reports
// whether the category existed.
func (d *Database) DeleteCategory(id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := -1
	for i := range d.categories {
		if d.categories[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return false, nil
	}

	name := d.categories[index].Name
	now := time.Now()
	for i := range d.todos {
		if d.todos[i].Category == name {
			d.todos[i].Category = d.fallback
			d.todos[i].UpdatedAt = now
		}
	}

	d.categories = append(d.categories[:index], d.categories[index+1:]...)
	d.recount()
	return true, d.persist()
}

// ToggleAll sets every todo's completion to the given value and refreshes
// every UpdatedAt, persisting once.
func (d *Database) ToggleAll(completed bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	for i := range d.todos {
		d.todos[i].Completed = completed
		d.todos[i].UpdatedAt = now
	}
	return d.persist()
}

// DeleteCompleted removes every completed todo, recomputes category counts,
// and persists.
func (d *Database) DeleteCompleted() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	remaining := d.todos[:0]
	for _, t := range d.todos {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}
	d.todos = remaining
	d.recount()
	return d.persist()
}

// indexOf returns the position of the todo with the given ID, or -1.
// Callers must hold d.mu.
func (d *Database) indexOf(id string) int {
	for i := range d.todos {
		if d.todos[i].ID == id {
			return i
		}
	}
	return -1
}
