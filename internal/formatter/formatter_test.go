package formatter

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/abook/internal/models"
	"github.com/desertthunder/abook/internal/shared"
	th "github.com/desertthunder/abook/internal/testing"
	"github.com/google/go-cmp/cmp"
)

func sampleBook(t *testing.T) *models.AddressBook {
	return th.MustBook(t,
		th.Contact{Name: "Bob", Phones: []string{"3333333333"}, Birthday: "15.06.1985"},
		th.Contact{Name: "Anna", Phones: []string{"1111111111", "2222222222"}, Birthday: "12.06.1990"},
		th.Contact{Name: "Cara|Lee"},
	)
}

var today = th.Date(2024, time.June, 10)

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleBook(t))
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		want := strings.Join([]string{
			"Name,Phones,Birthday",
			"Anna,1111111111; 2222222222,12.06.1990",
			"Bob,3333333333,15.06.1985",
			"Cara|Lee,,",
			"",
		}, "\n")
		if diff := cmp.Diff(want, string(data)); diff != "" {
			t.Errorf("CSV mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleBook(t), today)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Address Book",
			"**Contacts**: 3",
			"| Anna | 1111111111, 2222222222 | 12.06.1990 |",
			`| Cara\|Lee |  | - |`,
			"## Upcoming Birthdays",
			"- Anna: 12.06.2024",
			"- Bob: 17.06.2024",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("ExportToMarkdown without upcoming birthdays", func(t *testing.T) {
		data, err := ExportToMarkdown(models.NewAddressBook(), today)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		if !strings.Contains(string(data), "No upcoming birthdays.") {
			t.Errorf("expected empty notice, got:\n%s", data)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleBook(t))
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		want := "Contact name: Anna, phones: 1111111111; 2222222222, birthday: 12.06.1990"
		if lines[0] != want {
			t.Errorf("expected %q, got %q", want, lines[0])
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(sampleBook(t))
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var got []Contact
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}

		want := []Contact{
			{Name: "Anna", Phones: []string{"1111111111", "2222222222"}, Birthday: "12.06.1990"},
			{Name: "Bob", Phones: []string{"3333333333"}, Birthday: "15.06.1985"},
			{Name: "Cara|Lee", Phones: []string{}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("JSON mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParseFormat(t *testing.T) {
	tc := []struct {
		input string
		want  Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"md", FormatMarkdown},
		{"markdown", FormatMarkdown},
		{"txt", FormatText},
		{"text", FormatText},
		{"json", FormatJSON},
	}

	for _, tt := range tc {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseFormat("pdf"); !errors.Is(err, shared.ErrValidation) {
		t.Errorf("expected ErrValidation for pdf, got %v", err)
	}
}

func TestWriteExport(t *testing.T) {
	t.Run("writes to the given path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.csv")
		written, err := WriteExport(sampleBook(t), FormatCSV, path, today)
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if written != path {
			t.Errorf("expected %s, got %s", path, written)
		}
		if !strings.HasPrefix(th.MustReadFile(t, path), "Name,Phones,Birthday") {
			t.Error("expected CSV content")
		}
	})

	t.Run("defaults the filename", func(t *testing.T) {
		oldWd := th.MustGetwd(t)
		th.MustChdir(t, t.TempDir())
		defer th.MustChdir(t, oldWd)

		written, err := WriteExport(sampleBook(t), FormatMarkdown, "", today)
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if written != "addressbook.md" {
			t.Errorf("expected addressbook.md, got %s", written)
		}
		th.AssertFileExists(t, written)
	})

	t.Run("unknown format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.pdf")
		if _, err := WriteExport(sampleBook(t), Format("pdf"), path, today); err == nil {
			t.Error("expected error for unsupported format")
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "contacts.txt")
		if _, err := WriteExport(sampleBook(t), FormatText, path, today); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
