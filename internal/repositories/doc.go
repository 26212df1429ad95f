// Package repositories implements SQLite persistence for the address book.
//
// [BookRepository] implements [models.Store]: the whole book is read on Load and written back in a single
// transaction on Save. Each contact row carries a UUID assigned on its first save so that later saves update
// the row in place and keep its created_at timestamp. Phones live in their own table with an explicit
// position column, which preserves their order and allows duplicates.
package repositories
