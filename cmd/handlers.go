package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/desertthunder/abook/internal/formatter"
	"github.com/desertthunder/abook/internal/models"
	"github.com/desertthunder/abook/internal/shared"
)

// bookCommand is one address book operation, shared by the interactive loop and the one-shot subcommands.
type bookCommand struct {
	name    string
	params  []string // positional parameter names; the argument count must match exactly
	usage   string
	mutates bool // the book must be saved afterwards
	run     func(r *Runner, book *models.AddressBook, args []string) error
	json    func(r *Runner, book *models.AddressBook) any // optional --json payload
}

func (c bookCommand) synopsis() string {
	parts := []string{c.name}
	for _, p := range c.params {
		parts = append(parts, "<"+p+">")
	}
	return strings.Join(parts, " ")
}

func (c bookCommand) checkArgs(args []string) error {
	if len(args) != len(c.params) {
		return fmt.Errorf("%w: %s expects %d, got %d", shared.ErrInvalidArgument, c.synopsis(), len(c.params), len(args))
	}
	return nil
}

// bookCommands lists the operations in the order shown by help.
func bookCommands() []bookCommand {
	return []bookCommand{
		{name: "hello", usage: "Greet the assistant", run: (*Runner).hello},
		{name: "add", params: []string{"name", "phone"}, usage: "Add a new contact", mutates: true, run: (*Runner).addContact},
		{name: "change", params: []string{"name", "new_phone"}, usage: "Change phone number of a contact", mutates: true, run: (*Runner).changePhone},
		{name: "phone", params: []string{"name"}, usage: "Show phone number of a contact", run: (*Runner).showPhone},
		{name: "all", usage: "Show all contacts", run: (*Runner).showAll, json: (*Runner).allJSON},
		{name: "delete", params: []string{"name"}, usage: "Delete a contact", mutates: true, run: (*Runner).deleteContact},
		{name: "add-birthday", params: []string{"name", "birthday"}, usage: "Add birthday to a contact (format DD.MM.YYYY)", mutates: true, run: (*Runner).addBirthday},
		{name: "show-birthday", params: []string{"name"}, usage: "Show birthday of a contact", run: (*Runner).showBirthday},
		{name: "birthdays", usage: "Show upcoming birthdays", run: (*Runner).birthdays, json: (*Runner).birthdaysJSON},
		{name: "help", usage: "Show this help message", run: (*Runner).help},
	}
}

func lookupCommand(name string) (bookCommand, bool) {
	for _, c := range bookCommands() {
		if c.name == name {
			return c, true
		}
	}
	return bookCommand{}, false
}

// dispatch validates the argument count and runs the named command against book.
func (r *Runner) dispatch(book *models.AddressBook, name string, args []string) (bookCommand, error) {
	c, ok := lookupCommand(name)
	if !ok {
		return c, fmt.Errorf("%w: %s", shared.ErrUnknownCommand, name)
	}
	if err := c.checkArgs(args); err != nil {
		return c, err
	}

	r.logger.Debug("dispatching command", "command", name, "args", len(args))
	return c, c.run(r, book, args)
}

func (r *Runner) hello(_ *models.AddressBook, _ []string) error {
	return r.writeLine("How can I help you?")
}

func (r *Runner) addContact(book *models.AddressBook, args []string) error {
	name, phone := args[0], args[1]
	if _, err := book.AddContact(name, phone); err != nil {
		return err
	}
	return r.writeLine("Added new contact: %s - %s", name, phone)
}

func (r *Runner) changePhone(book *models.AddressBook, args []string) error {
	name, phone := args[0], args[1]
	if err := book.ChangePhone(name, phone); err != nil {
		return err
	}
	return r.writeLine("Phone number changed for %s.", name)
}

func (r *Runner) showPhone(book *models.AddressBook, args []string) error {
	phone, err := book.Phone(args[0])
	if err != nil {
		return err
	}
	return r.writeLine("Phone number for %s: %s", args[0], phone)
}

func (r *Runner) showAll(book *models.AddressBook, _ []string) error {
	if err := r.writeLine("All contacts:"); err != nil {
		return err
	}
	for _, record := range book.Records() {
		if err := r.writeLine("%s", record); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) allJSON(book *models.AddressBook) any {
	return formatter.ToContacts(book)
}

func (r *Runner) deleteContact(book *models.AddressBook, args []string) error {
	if err := book.Delete(args[0]); err != nil {
		return err
	}
	return r.writeLine("Contact %s deleted.", args[0])
}

func (r *Runner) addBirthday(book *models.AddressBook, args []string) error {
	name, date := args[0], args[1]
	if err := book.AddBirthday(name, date); err != nil {
		return err
	}
	return r.writeLine("Birthday added for %s.", name)
}

func (r *Runner) showBirthday(book *models.AddressBook, args []string) error {
	name := args[0]
	birthday, err := book.Birthday(name)
	if err != nil {
		return err
	}
	if birthday == nil {
		return r.writeLine("%s does not have a birthday specified.", name)
	}
	return r.writeLine("%s's birthday: %s", name, birthday)
}

func (r *Runner) birthdays(book *models.AddressBook, _ []string) error {
	upcoming := book.UpcomingBirthdays(r.now())
	if len(upcoming) == 0 {
		return r.writeLine("No upcoming birthdays.")
	}

	if err := r.writeLine("Upcoming birthdays:"); err != nil {
		return err
	}
	for _, c := range upcoming {
		if err := r.writeLine("The congratulation date for %s is %s", c.Name, c.CongratulationDate()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) birthdaysJSON(book *models.AddressBook) any {
	return book.UpcomingBirthdays(r.now())
}

func (r *Runner) help(_ *models.AddressBook, _ []string) error {
	if err := r.writeLine("Available commands:"); err != nil {
		return err
	}
	for _, c := range bookCommands() {
		if err := r.writeLine("  %-32s - %s", c.synopsis(), c.usage); err != nil {
			return err
		}
	}
	return r.writeLine("  %-32s - %s", "close/exit", "Save and exit the program")
}

// describeError turns a command error into the sentence shown to the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, shared.ErrUnknownCommand):
		return "Invalid command. Type 'help' to see available commands."
	case errors.Is(err, shared.ErrInvalidArgument):
		return "Invalid number of arguments."
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrNotFound):
		return sentence(strings.TrimPrefix(err.Error(), shared.ErrValidation.Error()+": "))
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// sentence capitalizes the first letter of s and ends it with a period.
func sentence(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(first)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
