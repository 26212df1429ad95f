// Package models defines the contact book domain for abook.
//
// The package contains three layers of types:
//
// 1. Field values: validated scalars that can only be built through their constructors
//   - [Name] : non-empty contact name
//   - [Phone] : exactly ten ASCII digits
//   - [Birthday] : calendar date parsed from DD.MM.YYYY
//
// 2. [Record] : one contact with an immutable name, an ordered list of phones and an optional birthday
//
// 3. [AddressBook] : records keyed by name, with the upcoming birthday query backed by [UpcomingBirthdays]
//
// Constructors and mutators return errors wrapping the sentinels in the shared package
// (ErrValidation, ErrNotFound) so callers can branch with [errors.Is].
// Nothing in this package prints or logs; turning errors into user text is the caller's job.
//
// The [Store] interface describes whole-book persistence.
package models
