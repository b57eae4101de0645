package wizard

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wolftech/enrollkiosk/internal/catalog"
	"github.com/wolftech/enrollkiosk/internal/enroll"
)

// screen identifies which wizard page is active. Flow is strictly forward:
// acknowledge → name entry → department/building → done.
type screen string

const (
	screenAcknowledge screen = "acknowledge"
	screenNameEntry   screen = "nameEntry"
	screenSelection   screen = "departmentBuilding"
	screenDone        screen = "done"
)

const acknowledgeMessage = "Please answer a few quick questions to get this workstation properly enrolled with management."

// Saver is the terminal save operation. Satisfied by *enroll.Service.
type Saver interface {
	Save(enroll.Record) error
}

// Model is the wizard controller state. It owns everything the screens
// collect; there are no ambient globals and no back-navigation.
type Model struct {
	catalog *catalog.Catalog
	saver   Saver
	keys    keyMap

	screen    screen
	firstName textinput.Model
	lastName  textinput.Model
	nameFocus int // 0 = first name, 1 = last name

	departments    []string
	deptCursor     int
	options        []string // building options for the selected department
	filtered       []string // options narrowed by the typed query
	buildingCursor int
	query          string

	hint   string
	saving bool
	saved  bool
	err    error

	width  int
	height int
}

type saveDoneMsg struct {
	err error
}

// New builds the wizard in the acknowledge state over the given catalog.
func New(cat *catalog.Catalog, saver Saver) Model {
	first := textinput.New()
	first.Placeholder = "First name"
	first.Prompt = "> "
	first.CharLimit = 64
	first.Focus()

	last := textinput.New()
	last.Placeholder = "Last name"
	last.Prompt = "> "
	last.CharLimit = 64

	m := Model{
		catalog:     cat,
		saver:       saver,
		keys:        newKeyMap(),
		screen:      screenAcknowledge,
		firstName:   first,
		lastName:    last,
		departments: cat.Departments(),
	}
	m.setDepartment(0)
	return m
}

// Saved reports whether a record was appended this run.
func (m Model) Saved() bool { return m.saved }

// Err returns the fatal save error, if any, for main to report.
func (m Model) Err() error { return m.err }

// Department returns the currently selected department.
func (m Model) Department() string {
	if len(m.departments) == 0 {
		return ""
	}
	return m.departments[m.deptCursor]
}

// Building returns the currently selected building, or "" when the
// selector has no options to offer.
func (m Model) Building() string {
	if len(m.filtered) == 0 {
		return ""
	}
	return m.filtered[m.buildingCursor]
}

// BuildingOptions returns the options the building selector currently offers.
func (m Model) BuildingOptions() []string {
	return append([]string(nil), m.filtered...)
}

// setDepartment moves the department cursor and synchronously recomputes the
// building options, resetting filter and cursor to the first entry.
func (m *Model) setDepartment(idx int) {
	if idx < 0 || idx >= len(m.departments) {
		return
	}
	m.deptCursor = idx
	m.options = m.catalog.BuildingOptionsFor(m.departments[idx])
	m.query = ""
	m.filtered = m.options
	m.buildingCursor = 0
}

// setQuery refilters the current options and clamps the building cursor.
func (m *Model) setQuery(q string) {
	m.query = q
	m.filtered = filterOptions(m.options, q)
	m.buildingCursor = 0
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.saved = true
		m.screen = screenDone
		return m, tea.Quit
	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		// Kiosk mode: no quit binding. The only way out is a completed
		// enrollment, matching the close-disabled window of the original.
		switch m.screen {
		case screenAcknowledge:
			return m.updateAcknowledge(msg)
		case screenNameEntry:
			return m.updateNameEntry(msg)
		case screenSelection:
			return m.updateSelection(msg)
		}
	}
	return m, nil
}

func (m Model) updateAcknowledge(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.screen = screenNameEntry
		m.hint = ""
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateNameEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.nameFocus = 1 - m.nameFocus
		if m.nameFocus == 0 {
			m.firstName.Focus()
			m.lastName.Blur()
		} else {
			m.lastName.Focus()
			m.firstName.Blur()
		}
		return m, textinput.Blink
	case "enter":
		// Empty-string check only; entries are carried forward unmodified.
		if m.firstName.Value() == "" || m.lastName.Value() == "" {
			m.hint = "Both names are required."
			return m, nil
		}
		m.hint = ""
		m.screen = screenSelection
		return m, nil
	}

	var cmd tea.Cmd
	if m.nameFocus == 0 {
		m.firstName, cmd = m.firstName.Update(msg)
	} else {
		m.lastName, cmd = m.lastName.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left":
		if m.deptCursor > 0 {
			m.setDepartment(m.deptCursor - 1)
		}
		return m, nil
	case "right":
		if m.deptCursor < len(m.departments)-1 {
			m.setDepartment(m.deptCursor + 1)
		}
		return m, nil
	case "up":
		if m.buildingCursor > 0 {
			m.buildingCursor--
		}
		return m, nil
	case "down":
		if m.buildingCursor < len(m.filtered)-1 {
			m.buildingCursor++
		}
		return m, nil
	case "esc":
		m.setQuery("")
		return m, nil
	case "backspace":
		if len(m.query) > 0 {
			m.setQuery(m.query[:len(m.query)-1])
		}
		return m, nil
	case "enter":
		return m.submit()
	}

	if msg.Type == tea.KeyRunes {
		m.setQuery(m.query + string(msg.Runes))
		return m, nil
	}
	if msg.Type == tea.KeySpace {
		m.setQuery(m.query + " ")
		return m, nil
	}
	return m, nil
}

// submit runs the advance guard for the selection screen and issues the
// save command. An empty building (selector yielded no options) blocks the
// transition; the screen stays put.
func (m Model) submit() (tea.Model, tea.Cmd) {
	record := enroll.Record{
		FirstName:  m.firstName.Value(),
		LastName:   m.lastName.Value(),
		Department: m.Department(),
		Building:   m.Building(),
	}
	if record.Department == "" || record.Building == "" {
		m.hint = "Select a department and building."
		return m, nil
	}
	m.hint = ""
	m.saving = true
	saver := m.saver
	return m, func() tea.Msg {
		return saveDoneMsg{err: saver.Save(record)}
	}
}
