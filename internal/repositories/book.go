package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/desertthunder/abook/internal/models"
	"github.com/desertthunder/abook/internal/shared"
)

var _ models.Store = (*BookRepository)(nil)

// BookRepository implements [models.Store] on a single SQLite file.
type BookRepository struct {
	config shared.StorageConfig
	now    func() time.Time
}

// NewBookRepository creates a [BookRepository] for the database file in config.Path.
//
// The file is not touched until Load or Save is called.
func NewBookRepository(config shared.StorageConfig) *BookRepository {
	return &BookRepository{config: config, now: time.Now}
}

// Path returns the database file path.
func (r *BookRepository) Path() string { return r.config.Path }

// Init creates the database file if needed and applies pending migrations.
func (r *BookRepository) Init() error {
	db, err := r.open()
	if err != nil {
		return storageError(err)
	}
	return db.Close()
}

// Load reads every contact with its phones and birthday.
//
// A missing database file yields an empty book and is not created.
func (r *BookRepository) Load() (*models.AddressBook, error) {
	if _, err := os.Stat(r.config.Path); errors.Is(err, os.ErrNotExist) {
		return models.NewAddressBook(), nil
	}

	db, err := r.open()
	if err != nil {
		return nil, storageError(err)
	}
	defer db.Close()

	book, err := r.load(db)
	if err != nil {
		return nil, storageError(err)
	}
	return book, nil
}

// Save replaces the stored book with book in one transaction.
//
// Contacts missing from book are removed, existing ones are updated in place and new ones get an ID.
func (r *BookRepository) Save(book *models.AddressBook) error {
	db, err := r.open()
	if err != nil {
		return storageError(err)
	}
	defer db.Close()

	if err := r.save(db, book); err != nil {
		return storageError(err)
	}
	return nil
}

func (r *BookRepository) open() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.MaxOpenConns, r.config.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func (r *BookRepository) load(db *sql.DB) (*models.AddressBook, error) {
	book := models.NewAddressBook()
	byID := make(map[string]*models.Record)

	rows, err := db.Query("SELECT id, name, birthday FROM contacts ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       string
			name     string
			birthday sql.NullString
		)
		if err := rows.Scan(&id, &name, &birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}

		record, err := models.NewRecord(name)
		if err != nil {
			return nil, fmt.Errorf("stored contact %s: %w", id, err)
		}
		record.SetID(id)

		if birthday.Valid {
			if err := record.AddBirthday(birthday.String); err != nil {
				return nil, fmt.Errorf("stored contact %s: %w", name, err)
			}
		}

		byID[id] = record
		book.AddRecord(record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	phoneRows, err := db.Query("SELECT contact_id, value FROM phones ORDER BY contact_id, position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query phones: %w", err)
	}
	defer phoneRows.Close()

	for phoneRows.Next() {
		var contactID, value string
		if err := phoneRows.Scan(&contactID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}

		record, ok := byID[contactID]
		if !ok {
			continue
		}
		if err := record.AddPhone(value); err != nil {
			return nil, fmt.Errorf("stored contact %s: %w", record.Name(), err)
		}
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return book, nil
}

func (r *BookRepository) save(db *sql.DB, book *models.AddressBook) error {
	records := book.Records()
	for _, record := range records {
		if record.ID() == "" {
			record.SetID(shared.GenerateID())
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteStale(tx, records); err != nil {
		return err
	}

	now := r.now()
	upsert := `
		INSERT INTO contacts (id, name, birthday, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, birthday = excluded.birthday, updated_at = excluded.updated_at
	`

	for _, record := range records {
		var birthday sql.NullString
		if b := record.Birthday(); b != nil {
			birthday = sql.NullString{String: b.String(), Valid: true}
		}

		if _, err := tx.Exec(upsert, record.ID(), record.Name().Value(), birthday, now, now); err != nil {
			return fmt.Errorf("failed to upsert contact %s: %w", record.Name(), err)
		}

		if _, err := tx.Exec("DELETE FROM phones WHERE contact_id = ?", record.ID()); err != nil {
			return fmt.Errorf("failed to clear phones for %s: %w", record.Name(), err)
		}

		for position, phone := range record.Phones() {
			_, err := tx.Exec("INSERT INTO phones (contact_id, position, value) VALUES (?, ?, ?)", record.ID(), position, phone.Value())
			if err != nil {
				return fmt.Errorf("failed to insert phone for %s: %w", record.Name(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// deleteStale removes contacts whose ID is not among records. It runs before the upserts so that a
// contact re-added under an existing name does not collide with the old row.
func deleteStale(tx *sql.Tx, records []*models.Record) error {
	keep := make(map[string]struct{}, len(records))
	for _, record := range records {
		keep[record.ID()] = struct{}{}
	}

	rows, err := tx.Query("SELECT id FROM contacts")
	if err != nil {
		return fmt.Errorf("failed to query contact ids: %w", err)
	}
	var stale []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan contact id: %w", err)
		}
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("failed to close contact ids: %w", err)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row iteration error: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	stmt, err := tx.Prepare("DELETE FROM contacts WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete: %w", err)
	}
	defer stmt.Close()

	for _, id := range stale {
		if _, err := stmt.Exec(id); err != nil {
			return fmt.Errorf("failed to delete stale contact %s: %w", id, err)
		}
	}
	return nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", shared.ErrStorage, err)
}
