// package formatter exports the address book to various formats (CSV, Markdown, JSON, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/desertthunder/abook/internal/models"
	"github.com/desertthunder/abook/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
	FormatJSON     Format = "json"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatCSV, FormatMarkdown, FormatText, FormatJSON}

// ParseFormat accepts a format name or a common alias ("markdown", "text").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: unsupported export format %q", shared.ErrValidation, name)
}

// Contact is the serializable view of a [models.Record].
type Contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// ToContacts converts every record of book, sorted by name.
func ToContacts(book *models.AddressBook) []Contact {
	contacts := make([]Contact, 0, book.Len())
	for _, r := range book.Records() {
		c := Contact{Name: r.Name().Value(), Phones: []string{}}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.Value())
		}
		if b := r.Birthday(); b != nil {
			c.Birthday = b.String()
		}
		contacts = append(contacts, c)
	}
	return contacts
}

// ExportToCSV converts the book to CSV with columns: Name, Phones, Birthday.
//
// Multiple phones share one cell, separated by "; ".
func ExportToCSV(book *models.AddressBook) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Name", "Phones", "Birthday"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, c := range ToContacts(book) {
		if err := writer.Write([]string{c.Name, strings.Join(c.Phones, "; "), c.Birthday}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders the book as a contact table followed by the birthdays upcoming from today.
func ExportToMarkdown(book *models.AddressBook, today time.Time) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Address Book\n\n")
	buf.WriteString(fmt.Sprintf("**Contacts**: %d\n\n", book.Len()))

	buf.WriteString("| Name | Phones | Birthday |\n")
	buf.WriteString("| --- | --- | --- |\n")
	for _, c := range ToContacts(book) {
		birthday := c.Birthday
		if birthday == "" {
			birthday = "-"
		}
		buf.WriteString(fmt.Sprintf("| %s | %s | %s |\n", escapeCell(c.Name), strings.Join(c.Phones, ", "), birthday))
	}

	buf.WriteString("\n## Upcoming Birthdays\n\n")
	upcoming := book.UpcomingBirthdays(today)
	if len(upcoming) == 0 {
		buf.WriteString("No upcoming birthdays.\n")
	}
	for _, c := range upcoming {
		buf.WriteString(fmt.Sprintf("- %s: %s\n", c.Name, c.CongratulationDate()))
	}

	return buf.Bytes(), nil
}

// ExportToText writes one rendered record per line.
func ExportToText(book *models.AddressBook) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range book.Records() {
		buf.WriteString(r.String())
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// ExportToJSON converts the book to an indented JSON array of [Contact].
func ExportToJSON(book *models.AddressBook) ([]byte, error) {
	data, err := json.MarshalIndent(ToContacts(book), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Export renders book in the given format.
func Export(book *models.AddressBook, format Format, today time.Time) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(book)
	case FormatMarkdown:
		return ExportToMarkdown(book, today)
	case FormatText:
		return ExportToText(book)
	case FormatJSON:
		return ExportToJSON(book)
	}
	return nil, fmt.Errorf("%w: unsupported export format %q", shared.ErrValidation, format)
}

// WriteExport renders book and writes it to path.
//
// Defaults to addressbook.{format} as the filename.
func WriteExport(book *models.AddressBook, format Format, path string, today time.Time) (string, error) {
	if path == "" {
		path = fmt.Sprintf("addressbook.%s", format)
	}

	data, err := Export(book, format, today)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
