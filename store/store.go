// Package store implements the synchronization store: the single state
// container frontends read and mutate.
//
// Every write action runs in two phases. Phase one applies an optimistic
// local patch so the UI reflects the change immediately; phase two replaces
// the local mirrors with the engine's canonical snapshot, reconciling
// stats, category counts, and sort order. Phase two installs full
// snapshots, so it is idempotent and safe against overlapping phase-one
// patches from rapid user actions.
//
// Engine failures never propagate to callers; they are captured as a
// human-readable message readable via Err.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amonks/todolist/todo"
)

// Database is the persistence engine the store synchronizes against.
// *todo.Database implements it; tests substitute failing fakes.
type Database interface {
	All() ([]todo.Todo, error)
	Stats() (todo.Stats, error)
	Categories() ([]todo.Category, error)
	Create(title string, opts todo.CreateOptions) (*todo.Todo, error)
	Update(id string, opts todo.UpdateOptions) (*todo.Todo, error)
	Delete(id string) (bool, error)
	ToggleAll(completed bool) error
	DeleteCompleted() error
	AddCategory(name, color string) (*todo.Category, error)
	DeleteCategory(id string) (bool, error)
}

// Store mirrors the engine's todos, categories, and stats, and owns the
// ephemeral filter state that never reaches persistence.
type Store struct {
	mu         sync.Mutex
	db         Database
	todos      []todo.Todo
	categories []todo.Category
	stats      todo.Stats
	filters    todo.Filters
	isLoading  bool
	errMsg     string
	nextSub    int
	subs       map[int]func()
}

// New creates a store backed by the given engine. Call Initialize to load
// the canonical collections.
func New(db Database) *Store {
	return &Store{
		db:      db,
		filters: todo.DefaultFilters(),
		subs:    make(map[int]func()),
	}
}

// Subscribe registers fn to run after every state change. The returned
// function cancels the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
	s.notify()
}

// Initialize loads all three canonical collections concurrently. Any
// failure is captured in Err and clears the loading flag.
func (s *Store) Initialize() {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()

	todos, categories, stats, err := s.fetchAll()

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.errMsg = fmt.Sprintf("initialize: %v", err)
	} else {
		s.todos = todos
		s.categories = categories
		s.stats = stats
	}
	s.mu.Unlock()
	s.notify()
}

// RefreshData re-fetches the canonical collections and replaces the local
// mirrors. On failure the error is captured and existing data is kept.
func (s *Store) RefreshData() {
	todos, categories, stats, err := s.fetchAll()

	s.mu.Lock()
	if err != nil {
		s.errMsg = fmt.Sprintf("refresh data: %v", err)
	} else {
		s.todos = todos
		s.categories = categories
		s.stats = stats
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) fetchAll() ([]todo.Todo, []todo.Category, todo.Stats, error) {
	var (
		wg         sync.WaitGroup
		todos      []todo.Todo
		categories []todo.Category
		stats      todo.Stats

		todosErr, categoriesErr, statsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		todos, todosErr = s.db.All()
	}()
	go func() {
		defer wg.Done()
		categories, categoriesErr = s.db.Categories()
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = s.db.Stats()
	}()
	wg.Wait()

	return todos, categories, stats, errors.Join(todosErr, categoriesErr, statsErr)
}

// AddTodo creates a todo, applies an optimistic prepend and stats patch,
// then refreshes to reconcile with canonical state.
func (s *Store) AddTodo(title string, opts todo.CreateOptions) {
	created, err := s.db.Create(title, opts)
	if err != nil {
		s.setError(fmt.Sprintf("add todo: %v", err))
		return
	}

	s.mu.Lock()
	s.todos = append([]todo.Todo{*created}, s.todos...)
	s.stats.Total++
	s.stats.Active++
	s.mu.Unlock()
	s.notify()

	s.RefreshData()
}

// UpdateTodo applies the patch optimistically to the local mirror, then
// delegates to the engine and refreshes when the engine found the record.
// Unknown IDs are ignored.
func (s *Store) UpdateTodo(id string, opts todo.UpdateOptions) {
	s.mu.Lock()
	index := indexOf(s.todos, id)
	if index < 0 {
		s.mu.Unlock()
		return
	}
	todo.ApplyUpdate(&s.todos[index], opts)
	s.todos[index].UpdatedAt = time.Now()
	s.mu.Unlock()
	s.notify()

	updated, err := s.db.Update(id, opts)
	if err != nil {
		s.setError(fmt.Sprintf("update todo: %v", err))
		return
	}
	if updated != nil {
		s.RefreshData()
	}
}

// ToggleTodo inverts the completion of the todo relative to the locally
// held value.
func (s *Store) ToggleTodo(id string) {
	s.mu.Lock()
	index := indexOf(s.todos, id)
	if index < 0 {
		s.mu.Unlock()
		return
	}
	completed := !s.todos[index].Completed
	s.mu.Unlock()

	s.UpdateTodo(id, todo.UpdateOptions{Completed: &completed})
}

// DeleteTodo removes a todo through the engine, refreshing on success.
func (s *Store) DeleteTodo(id string) {
	removed, err := s.db.Delete(id)
	if err != nil {
		s.setError(fmt.Sprintf("delete todo: %v", err))
		return
	}
	if removed {
		s.RefreshData()
	}
}

// ToggleAll sets every todo's completion through the engine, then refreshes.
func (s *Store) ToggleAll(completed bool) {
	if err := s.db.ToggleAll(completed); err != nil {
		s.setError(fmt.Sprintf("toggle all: %v", err))
		return
	}
	s.RefreshData()
}

// DeleteCompleted removes completed todos through the engine, then
// refreshes.
func (s *Store) DeleteCompleted() {
	if err := s.db.DeleteCompleted(); err != nil {
		s.setError(fmt.Sprintf("delete completed: %v", err))
		return
	}
	s.RefreshData()
}

// AddCategory creates a category and appends it locally without a full
// refresh.
func (s *Store) AddCategory(name, color string) {
	created, err := s.db.AddCategory(name, color)
	if err != nil {
		s.setError(fmt.Sprintf("add category: %v", err))
		return
	}

	s.mu.Lock()
	s.categories = append(s.categories, *created)
	s.mu.Unlock()
	s.notify()
}

// DeleteCategory removes a category through the engine, refreshing on
// success so repointed todos are reflected.
func (s *Store) DeleteCategory(id string) {
	removed, err := s.db.DeleteCategory(id)
	if err != nil {
		s.setError(fmt.Sprintf("delete category: %v", err))
		return
	}
	if removed {
		s.RefreshData()
	}
}

// FilterPatch updates a subset of the filter state. Nil pointers mean
// "leave this filter alone".
type FilterPatch struct {
	Status   *todo.StatusFilter
	Priority *todo.Priority
	Category *string
	Search   *string
}

// SetFilters merges the patch into the filter state. Purely local, no
// persistence call.
func (s *Store) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	if patch.Status != nil {
		s.filters.Status = *patch.Status
	}
	if patch.Priority != nil {
		s.filters.Priority = *patch.Priority
	}
	if patch.Category != nil {
		s.filters.Category = *patch.Category
	}
	if patch.Search != nil {
		s.filters.Search = *patch.Search
	}
	s.mu.Unlock()
	s.notify()
}

// ClearFilters resets the filter state to match everything.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.filters = todo.DefaultFilters()
	s.mu.Unlock()
	s.notify()
}

// Todos returns a copy of the local todo mirror.
func (s *Store) Todos() []todo.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return todo.CloneTodos(s.todos)
}

// Visible returns the local todo mirror with the current filters applied.
func (s *Store) Visible() []todo.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return todo.ApplyFilters(s.todos, s.filters)
}

// Categories returns a copy of the local category mirror.
func (s *Store) Categories() []todo.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return todo.CloneCategories(s.categories)
}

// Stats returns the locally mirrored stats.
func (s *Store) Stats() todo.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Filters returns the current filter state.
func (s *Store) Filters() todo.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// IsLoading reports whether Initialize is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Err returns the last captured failure message, or empty.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func indexOf(todos []todo.Todo, id string) int {
	for i := range todos {
		if todos[i].ID == id {
			return i
		}
	}
	return -1
}
