package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/abook/internal/shared"
)

// Record is a single contact: an immutable [Name], phones in insertion order and an optional [Birthday].
//
// Phones are not deduplicated.
type Record struct {
	id       string
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a contact with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// ID returns the storage identifier, empty until the record has been saved.
func (r *Record) ID() string          { return r.id }
func (r *Record) SetID(id string)     { r.id = id }
func (r *Record) Name() Name          { return r.name }
func (r *Record) Birthday() *Birthday { return r.birthday }

// Phones returns a copy of the phone list.
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// FirstPhone returns the earliest stored phone. ok is false when the record has none.
func (r *Record) FirstPhone() (phone Phone, ok bool) {
	if len(r.phones) == 0 {
		return Phone{}, false
	}
	return r.phones[0], true
}

// AddPhone validates s and appends it.
func (r *Record) AddPhone(s string) error {
	phone, err := NewPhone(s)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone drops the first phone equal to s. Missing phones are ignored.
func (r *Record) RemovePhone(s string) {
	for i, p := range r.phones {
		if p.value == s {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces every phone equal to oldPhone with newPhone.
//
// The lookup happens before validation, so a missing oldPhone is reported as not found
// even when newPhone is malformed.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if _, ok := r.FindPhone(oldPhone); !ok {
		return fmt.Errorf("phone %s of contact %s %w", oldPhone, r.name, shared.ErrNotFound)
	}

	phone, err := NewPhone(newPhone)
	if err != nil {
		return err
	}

	for i, p := range r.phones {
		if p.value == oldPhone {
			r.phones[i] = phone
		}
	}
	return nil
}

// FindPhone returns the first phone equal to s.
func (r *Record) FindPhone(s string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == s {
			return p, true
		}
	}
	return Phone{}, false
}

// AddBirthday parses s and sets it as the birthday, replacing any earlier one.
func (r *Record) AddBirthday(s string) error {
	b, err := NewBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}

	birthday := "Not specified"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.name, strings.Join(values, "; "), birthday)
}
