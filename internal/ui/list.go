package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/abook/internal/models"
)

var (
	_ list.Item = contactItem{}
	_ list.Item = birthdayItem{}
)

// contactItem wraps [models.Record] to implement [list.Item].
type contactItem struct {
	record *models.Record
}

func (i contactItem) FilterValue() string { return i.record.Name().Value() }
func (i contactItem) Title() string       { return i.record.Name().Value() }
func (i contactItem) Description() string {
	phones := i.record.Phones()
	values := make([]string, len(phones))
	for j, p := range phones {
		values[j] = p.Value()
	}

	desc := "no phones"
	if len(values) > 0 {
		desc = strings.Join(values, ", ")
	}
	if b := i.record.Birthday(); b != nil {
		desc = fmt.Sprintf("%s • born %s", desc, b)
	}
	return desc
}

// birthdayItem wraps [models.Congratulation] to implement [list.Item].
type birthdayItem struct {
	congratulation models.Congratulation
}

func (i birthdayItem) FilterValue() string { return i.congratulation.Name }
func (i birthdayItem) Title() string       { return i.congratulation.Name }
func (i birthdayItem) Description() string {
	return fmt.Sprintf("congratulate on %s (%s)", i.congratulation.CongratulationDate(), i.congratulation.Date.Weekday())
}
