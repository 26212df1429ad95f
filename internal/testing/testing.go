// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/desertthunder/abook/internal/models"
)

var _ models.Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory test double for [models.Store]
type MemoryStore struct {
	Book    *models.AddressBook
	LoadErr error
	SaveErr error
	Loads   int
	Saves   int
}

func (m *MemoryStore) Load() (*models.AddressBook, error) {
	m.Loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Book == nil {
		return models.NewAddressBook(), nil
	}
	return m.Book, nil
}

func (m *MemoryStore) Save(book *models.AddressBook) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Book = book
	return nil
}

// Contact describes a record to seed with [MustBook]
type Contact struct {
	Name     string
	Phones   []string
	Birthday string
}

// MustBook builds an [models.AddressBook] from contacts, failing the test on invalid input
func MustBook(t *testing.T, contacts ...Contact) *models.AddressBook {
	t.Helper()
	book := models.NewAddressBook()
	for _, c := range contacts {
		r, err := models.NewRecord(c.Name)
		if err != nil {
			t.Fatalf("invalid contact name %q: %v", c.Name, err)
		}
		for _, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				t.Fatalf("invalid phone %q for %s: %v", p, c.Name, err)
			}
		}
		if c.Birthday != "" {
			if err := r.AddBirthday(c.Birthday); err != nil {
				t.Fatalf("invalid birthday %q for %s: %v", c.Birthday, c.Name, err)
			}
		}
		book.AddRecord(r)
	}
	return book
}

// Date returns midnight UTC of the given day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
