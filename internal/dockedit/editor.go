package dockedit

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/broomlabs/wloverview/internal/dock"
)

// entryItem adapts a dock entry to the list widget.
type entryItem struct {
	entry dock.Entry
}

func (i entryItem) Title() string {
	return i.entry.Tooltip()
}

func (i entryItem) Description() string {
	desc := i.entry.Exec
	if i.entry.AppID != "" {
		desc += "  [" + i.entry.AppID + "]"
	}
	return desc
}

func (i entryItem) FilterValue() string { return i.entry.Tooltip() }

// model is the root bubbletea model for the dock editor.
type model struct {
	store   *Store
	entries []dock.Entry
	list    list.Model

	// Edit mode
	editing  bool
	adding   bool
	form     *huh.Form
	editIdx  int
	fTitle   string
	fIcon    string
	fExec    string
	fAppID   string
	dirty    bool
	saveNote string

	width  int
	height int
}

func newModel(store *Store) model {
	entries := store.Load()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("15")).
		BorderForeground(lipgloss.Color("62"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("250")).
		BorderForeground(lipgloss.Color("62"))

	l := list.New(buildItems(entries), delegate, 0, 0)
	l.Title = "Dock"
	l.Styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)

	return model{
		store:   store,
		entries: entries,
		list:    l,
	}
}

func buildItems(entries []dock.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}
	return items
}

func (m *model) refreshItems(selected int) {
	m.list.SetItems(buildItems(m.entries))
	if selected >= 0 && selected < len(m.entries) {
		m.list.Select(selected)
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateList(msg)
}

func (m model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-3)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "a":
			m.startEditing(-1)
			return m, m.form.Init()

		case "e", "enter":
			if idx := m.list.Index(); idx >= 0 && idx < len(m.entries) {
				m.startEditing(idx)
				return m, m.form.Init()
			}
			return m, nil

		case "d":
			idx := m.list.Index()
			if idx >= 0 && idx < len(m.entries) {
				m.entries = Delete(m.entries, idx)
				if idx >= len(m.entries) {
					idx = len(m.entries) - 1
				}
				m.refreshItems(idx)
				m.dirty = true
				m.saveNote = ""
			}
			return m, nil

		case "J", "shift+down":
			newIdx := Move(m.entries, m.list.Index(), 1)
			m.refreshItems(newIdx)
			m.dirty = true
			m.saveNote = ""
			return m, nil

		case "K", "shift+up":
			newIdx := Move(m.entries, m.list.Index(), -1)
			m.refreshItems(newIdx)
			m.dirty = true
			m.saveNote = ""
			return m, nil

		case "s":
			if err := m.store.Save(m.entries); err != nil {
				m.saveNote = err.Error()
				return m, nil
			}
			NotifyReload()
			m.dirty = false
			m.saveNote = "saved"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.editing = false
			m.form = nil
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.applyForm()
		m.editing = false
		m.form = nil
		return m, nil
	}

	return m, cmd
}

// startEditing opens the entry form. index -1 adds a new entry.
func (m *model) startEditing(index int) {
	m.editing = true
	m.adding = index < 0
	m.editIdx = index

	if m.adding {
		m.fTitle, m.fIcon, m.fExec, m.fAppID = "", "", "", ""
	} else {
		e := m.entries[index]
		m.fTitle, m.fIcon, m.fExec, m.fAppID = e.Title, e.Icon, e.Exec, e.AppID
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Tooltip text (optional)").
				Value(&m.fTitle),
			huh.NewInput().
				Title("Icon").
				Description("Icon theme name").
				Value(&m.fIcon),
			huh.NewInput().
				Title("Command").
				Description("Launch command").
				Value(&m.fExec),
			huh.NewInput().
				Title("App ID").
				Description("Wayland app id, when it differs from the icon name").
				Value(&m.fAppID),
		),
	)
}

func (m *model) applyForm() {
	entry := dock.Entry{
		Title: m.fTitle,
		Icon:  m.fIcon,
		Exec:  m.fExec,
		AppID: m.fAppID,
	}
	if entry.Icon == "" && entry.Exec == "" {
		return
	}

	if m.adding {
		m.entries = append(m.entries, entry)
		m.refreshItems(len(m.entries) - 1)
	} else {
		m.entries[m.editIdx] = entry
		m.refreshItems(m.editIdx)
	}
	m.dirty = true
	m.saveNote = ""
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.editing {
		header := "Edit entry"
		if m.adding {
			header = "New entry"
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(header),
			m.form.View(),
		)
	}

	status := m.store.Path()
	if m.dirty {
		status += "  (unsaved)"
	}
	if m.saveNote != "" {
		status += "  " + m.saveNote
	}

	help := "a add · e edit · d delete · K/J move · s save · q quit"

	return lipgloss.JoinVertical(lipgloss.Left,
		m.list.View(),
		lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(status),
		lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(help),
	)
}

// Run opens the editor over the dock file at path.
func Run(path string) error {
	p := tea.NewProgram(newModel(NewStore(path)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dock editor failed: %w", err)
	}
	return nil
}
