// Package tui implements the interactive dashboard on top of the
// synchronization store. The store is the only state it reads; every
// keystroke maps to a store action and the view re-renders when the store
// notifies.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amonks/todolist/internal/ui"
	"github.com/amonks/todolist/store"
	"github.com/amonks/todolist/todo"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeSearch
)

type storeChangedMsg struct{}

// Run starts the dashboard and blocks until the user quits.
func Run(st *store.Store) error {
	if st == nil {
		return fmt.Errorf("store is required")
	}

	program := tea.NewProgram(newModel(st), tea.WithAltScreen())

	unsubscribe := st.Subscribe(func() {
		go program.Send(storeChangedMsg{})
	})
	defer unsubscribe()

	_, err := program.Run()
	return err
}

type model struct {
	store  *store.Store
	list   list.Model
	input  textinput.Model
	mode   inputMode
	width  int
	height int
}

func newModel(st *store.Store) model {
	todoList := list.New(nil, newItemDelegate(), 0, 0)
	todoList.Title = "Todos"
	todoList.SetShowStatusBar(false)
	todoList.SetFilteringEnabled(false)
	todoList.SetShowHelp(false)

	input := textinput.New()
	input.CharLimit = todo.MaxTitleLength

	return model{
		store: st,
		list:  todoList,
		input: input,
		mode:  modeBrowse,
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		m.store.Initialize()
		return storeChangedMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case storeChangedMsg:
		m.reloadItems()
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ", "enter":
		if item, ok := m.list.SelectedItem().(todoItem); ok {
			m.store.ToggleTodo(item.todo.ID)
		}
		return m, nil

	case "d":
		if item, ok := m.list.SelectedItem().(todoItem); ok {
			m.store.DeleteTodo(item.todo.ID)
		}
		return m, nil

	case "n":
		m.mode = modeAdd
		m.input.Placeholder = "New todo title"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "Search"
		m.input.SetValue(m.store.Filters().Search)
		m.input.Focus()
		return m, textinput.Blink

	case "tab":
		status := nextStatusFilter(m.store.Filters().Status)
		m.store.SetFilters(store.FilterPatch{Status: &status})
		return m, nil

	case "c":
		m.store.ClearFilters()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeBrowse
		m.input.Blur()

		switch mode {
		case modeAdd:
			if err := todo.ValidateTitle(value); err == nil {
				m.store.AddTodo(value, todo.CreateOptions{})
			}
		case modeSearch:
			m.store.SetFilters(store.FilterPatch{Search: &value})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) reloadItems() {
	now := time.Now()
	visible := m.store.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, todoItem{todo: t, now: now})
	}
	m.list.SetItems(items)
}

func (m model) View() string {
	var builder strings.Builder

	builder.WriteString(m.list.View())
	builder.WriteByte('\n')

	if m.mode != modeBrowse {
		builder.WriteString(m.input.View())
		builder.WriteByte('\n')
	} else {
		builder.WriteString(m.statusLine())
		builder.WriteByte('\n')
	}

	builder.WriteString(helpStyle.Render("space toggle · d delete · n new · / search · tab status · c clear · q quit"))
	return builder.String()
}

func (m model) statusLine() string {
	stats := m.store.Stats()
	filters := m.store.Filters()

	line := fmt.Sprintf("%d active · %d completed · %d overdue · %d due today",
		stats.Active, stats.Completed, stats.Overdue, stats.DueToday)
	if filters.Status != todo.StatusAll {
		line += fmt.Sprintf(" · showing %s", filters.Status)
	}
	if filters.Search != "" {
		line += fmt.Sprintf(" · search %q", filters.Search)
	}
	if errMsg := m.store.Err(); errMsg != "" {
		return statusErrorStyle.Render(errMsg)
	}
	return statusStyle.Render(line)
}

func nextStatusFilter(current todo.StatusFilter) todo.StatusFilter {
	switch current {
	case todo.StatusAll:
		return todo.StatusActive
	case todo.StatusActive:
		return todo.StatusCompleted
	default:
		return todo.StatusAll
	}
}

type todoItem struct {
	todo todo.Todo
	now  time.Time
}

func (i todoItem) Title() string {
	mark := "[ ]"
	if i.todo.Completed {
		mark = "[x]"
	}
	return mark + " " + i.todo.Title
}

func (i todoItem) Description() string {
	parts := []string{string(i.todo.Priority), i.todo.Category}
	if i.todo.DueDate != nil {
		parts = append(parts, "due "+ui.FormatDueDate(*i.todo.DueDate, i.now))
	}
	if len(i.todo.Tags) > 0 {
		parts = append(parts, strings.Join(i.todo.Tags, ","))
	}
	return strings.Join(parts, " · ")
}

func (i todoItem) FilterValue() string {
	return i.todo.Title
}

func newItemDelegate() list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	return delegate
}
