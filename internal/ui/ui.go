package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/abook/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ContactsView ViewState = iota
	BirthdaysView
	DetailView
)

// Model represents the TUI application state.
type Model struct {
	store        models.Store
	today        time.Time
	view         ViewState
	width        int
	height       int
	book         *models.AddressBook
	contactList  list.Model
	birthdayList list.Model
	selected     *models.Record
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model that reads the book from store and computes birthdays relative to today.
func NewModel(store models.Store, today time.Time) *Model {
	return &Model{
		store:        store,
		today:        today,
		view:         ContactsView,
		contactList:  newList("Contacts", nil),
		birthdayList: newList("Upcoming Birthdays", nil),
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	return l
}

// Init loads the book from the store.
func (m *Model) Init() tea.Cmd {
	return m.loadBook()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contactList.SetSize(msg.Width-4, msg.Height-8)
		m.birthdayList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ContactsView:
			return m.handleContactKeys(msg)
		case BirthdaysView:
			return m.handleBirthdayKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case Msg:
		if msg.kind == MsgBookLoaded {
			loaded := msg.data.(bookLoaded)
			if loaded.err != nil {
				m.err = loaded.err
				return m, nil
			}
			m.setBook(loaded.book)
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.failure.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case ContactsView:
		return m.renderContacts()
	case BirthdaysView:
		return m.renderBirthdays()
	case DetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) setBook(book *models.AddressBook) {
	m.book = book

	records := book.Records()
	contacts := make([]list.Item, len(records))
	for i, r := range records {
		contacts[i] = contactItem{record: r}
	}
	m.contactList.SetItems(contacts)

	upcoming := book.UpcomingBirthdays(m.today)
	birthdays := make([]list.Item, len(upcoming))
	for i, c := range upcoming {
		birthdays[i] = birthdayItem{congratulation: c}
	}
	m.birthdayList.SetItems(birthdays)
}

func (m *Model) handleContactKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.contactList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.contactList, cmd = m.contactList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.tab):
		m.view = BirthdaysView
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.contactList.SelectedItem().(contactItem); ok {
			m.selected = item.record
			m.view = DetailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	return m, cmd
}

func (m *Model) handleBirthdayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.birthdayList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.birthdayList, cmd = m.birthdayList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.tab):
		m.view = ContactsView
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.birthdayList.SelectedItem().(birthdayItem); ok && m.book != nil {
			if r, found := m.book.Find(item.congratulation.Name); found {
				m.selected = r
				m.view = DetailView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.birthdayList, cmd = m.birthdayList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.selected = nil
		m.view = ContactsView
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ContactsView:
		m.contactList, cmd = m.contactList.Update(msg)
	case BirthdaysView:
		m.birthdayList, cmd = m.birthdayList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadBook() tea.Cmd {
	return func() tea.Msg {
		book, err := m.store.Load()
		return bookLoadedMsg(book, err)
	}
}

func (m *Model) renderContacts() string {
	helpKeys := []key.Binding{m.keys.filter, m.keys.enter, m.keys.tab, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.contactList.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderBirthdays() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.tab, m.keys.quit}
	body := m.birthdayList.View()
	if len(m.birthdayList.Items()) == 0 {
		body = styles.heading.Render("Upcoming Birthdays") + "\n" + styles.missing.Render("No upcoming birthdays.")
	}
	return fmt.Sprintf("%s\n\n%s", body, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return styles.failure.Render("No contact selected\n\nPress esc to go back")
	}

	var b strings.Builder
	b.WriteString(styles.heading.Render(m.selected.Name().Value()))
	b.WriteString("\n")

	phones := m.selected.Phones()
	if len(phones) == 0 {
		b.WriteString(styles.missing.Render("No phones"))
		b.WriteString("\n")
	}
	for i, p := range phones {
		b.WriteString(fmt.Sprintf("Phone %d: %s\n", i+1, p))
	}

	if bd := m.selected.Birthday(); bd != nil {
		b.WriteString(styles.birthday.Render(fmt.Sprintf("Birthday: %s", bd)))
	} else {
		b.WriteString(styles.muted.Render("Birthday: Not specified"))
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", b.String(), m.help.ShortHelpView(helpKeys))
}
