package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	th "github.com/desertthunder/abook/internal/testing"
)

func loadedModel(t *testing.T, store *th.MemoryStore) *Model {
	t.Helper()
	m := NewModel(store, th.Date(2024, time.June, 10))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected Init to return a command")
	}
	m.Update(cmd())
	return m
}

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestModel(t *testing.T) {
	store := &th.MemoryStore{Book: th.MustBook(t,
		th.Contact{Name: "Anna", Phones: []string{"1111111111"}, Birthday: "12.06.1990"},
		th.Contact{Name: "Bob", Phones: []string{"2222222222", "3333333333"}, Birthday: "15.06.1985"},
		th.Contact{Name: "Cara"},
	)}

	t.Run("Init loads the book", func(t *testing.T) {
		m := loadedModel(t, store)

		if got := len(m.contactList.Items()); got != 3 {
			t.Errorf("expected 3 contacts, got %d", got)
		}
		if got := len(m.birthdayList.Items()); got != 2 {
			t.Errorf("expected 2 upcoming birthdays, got %d", got)
		}
		if m.view != ContactsView {
			t.Errorf("expected contacts view, got %v", m.view)
		}
	})

	t.Run("tab switches between contacts and birthdays", func(t *testing.T) {
		m := loadedModel(t, store)

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.view != BirthdaysView {
			t.Fatalf("expected birthdays view, got %v", m.view)
		}

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.view != ContactsView {
			t.Errorf("expected contacts view, got %v", m.view)
		}
	})

	t.Run("enter opens details and esc returns", func(t *testing.T) {
		m := loadedModel(t, store)

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.view != DetailView {
			t.Fatalf("expected detail view, got %v", m.view)
		}
		if m.selected == nil || m.selected.Name().Value() != "Anna" {
			t.Fatalf("expected Anna to be selected, got %v", m.selected)
		}
		if view := m.View(); !strings.Contains(view, "1111111111") || !strings.Contains(view, "12.06.1990") {
			t.Errorf("detail view missing contact data:\n%s", view)
		}

		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if m.view != ContactsView || m.selected != nil {
			t.Errorf("expected to return to contacts view")
		}
	})

	t.Run("enter on a birthday opens the contact", func(t *testing.T) {
		m := loadedModel(t, store)

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if m.view != DetailView || m.selected.Name().Value() != "Anna" {
			t.Errorf("expected Anna's details, got view %v", m.view)
		}
	})

	t.Run("q quits", func(t *testing.T) {
		m := loadedModel(t, store)

		_, cmd := m.Update(keyRune('q'))
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})

	t.Run("load error is rendered", func(t *testing.T) {
		m := loadedModel(t, &th.MemoryStore{LoadErr: errors.New("disk on fire")})

		if view := m.View(); !strings.Contains(view, "disk on fire") {
			t.Errorf("expected error in view, got:\n%s", view)
		}
	})

	t.Run("empty birthdays view", func(t *testing.T) {
		m := loadedModel(t, &th.MemoryStore{})
		m.Update(tea.KeyMsg{Type: tea.KeyTab})

		if view := m.View(); !strings.Contains(view, "No upcoming birthdays.") {
			t.Errorf("expected empty notice, got:\n%s", view)
		}
	})
}

func TestItems(t *testing.T) {
	book := th.MustBook(t,
		th.Contact{Name: "Anna", Phones: []string{"1111111111", "2222222222"}, Birthday: "12.06.1990"},
		th.Contact{Name: "Cara"},
	)

	anna, _ := book.Find("Anna")
	item := contactItem{record: anna}
	if item.Title() != "Anna" || item.FilterValue() != "Anna" {
		t.Errorf("unexpected title %q", item.Title())
	}
	if want := "1111111111, 2222222222 • born 12.06.1990"; item.Description() != want {
		t.Errorf("expected %q, got %q", want, item.Description())
	}

	cara, _ := book.Find("Cara")
	if got := (contactItem{record: cara}).Description(); got != "no phones" {
		t.Errorf("expected 'no phones', got %q", got)
	}

	upcoming := book.UpcomingBirthdays(th.Date(2024, time.June, 10))
	if len(upcoming) != 1 {
		t.Fatalf("expected 1 upcoming birthday, got %d", len(upcoming))
	}
	if want := "congratulate on 12.06.2024 (Wednesday)"; (birthdayItem{congratulation: upcoming[0]}).Description() != want {
		t.Errorf("expected %q", want)
	}
}
