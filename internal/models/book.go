package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/desertthunder/abook/internal/shared"
)

// AddressBook owns every [Record], keyed by the record's name.
//
// Iteration order of the underlying map is not stable; [AddressBook.Records] sorts by name.
type AddressBook struct {
	records map[string]*Record
}

// NewAddressBook creates an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts r, replacing any record with the same name.
func (b *AddressBook) AddRecord(r *Record) {
	b.records[r.name.value] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("contact %s %w", name, shared.ErrNotFound)
	}
	delete(b.records, name)
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.records) }

// Records returns all records sorted by name.
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.records))
	for _, r := range b.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].name.value < records[j].name.value
	})
	return records
}

// UpcomingBirthdays lists contacts to congratulate within [UpcomingWindow] days of today.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Congratulation {
	return UpcomingBirthdays(b.Records(), today)
}

// AddContact creates a record with a single phone and stores it, replacing any contact with the same name.
//
// Nothing is stored when name or phone is invalid.
func (b *AddressBook) AddContact(name, phone string) (*Record, error) {
	r, err := NewRecord(name)
	if err != nil {
		return nil, err
	}
	if err := r.AddPhone(phone); err != nil {
		return nil, err
	}
	b.AddRecord(r)
	return r, nil
}

// ChangePhone replaces the first phone of the named contact with newPhone.
func (b *AddressBook) ChangePhone(name, newPhone string) error {
	r, err := b.mustFind(name)
	if err != nil {
		return err
	}

	first, ok := r.FirstPhone()
	if !ok {
		return fmt.Errorf("phone of contact %s %w", name, shared.ErrNotFound)
	}
	return r.EditPhone(first.value, newPhone)
}

// Phone returns the first phone of the named contact.
func (b *AddressBook) Phone(name string) (Phone, error) {
	r, err := b.mustFind(name)
	if err != nil {
		return Phone{}, err
	}

	phone, ok := r.FirstPhone()
	if !ok {
		return Phone{}, fmt.Errorf("phone of contact %s %w", name, shared.ErrNotFound)
	}
	return phone, nil
}

// AddBirthday sets the birthday of the named contact.
func (b *AddressBook) AddBirthday(name, date string) error {
	r, err := b.mustFind(name)
	if err != nil {
		return err
	}
	return r.AddBirthday(date)
}

// Birthday returns the birthday of the named contact, nil when none is set.
func (b *AddressBook) Birthday(name string) (*Birthday, error) {
	r, err := b.mustFind(name)
	if err != nil {
		return nil, err
	}
	return r.Birthday(), nil
}

func (b *AddressBook) mustFind(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("contact %s %w", name, shared.ErrNotFound)
	}
	return r, nil
}
