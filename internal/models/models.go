// package models defines the data model for the contact book
package models

// Store loads and saves a complete [AddressBook].
//
// Implementations treat the book as a single unit: Load of a missing store yields an empty book,
// and Save replaces whatever was stored before.
type Store interface {
	Load() (*AddressBook, error)  // Load reads the whole book, returning an empty one if nothing was saved yet
	Save(book *AddressBook) error // Save atomically replaces the stored book
}
