package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/abook/internal/shared"
)

// DateLayout is the DD.MM.YYYY layout used for birthdays and congratulation dates.
const DateLayout = "02.01.2006"

// PhoneLength is the number of digits in a valid phone number.
const PhoneLength = 10

// Name is a non-empty contact name.
type Name struct {
	value string
}

// NewName validates s and wraps it as a [Name].
func NewName(s string) (Name, error) {
	if s == "" {
		return Name{}, fmt.Errorf("%w: name must not be empty", shared.ErrValidation)
	}
	return Name{value: s}, nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }

// Phone is a phone number made of exactly [PhoneLength] ASCII digits.
type Phone struct {
	value string
}

// NewPhone validates s and wraps it as a [Phone].
func NewPhone(s string) (Phone, error) {
	if !isPhoneNumber(s) {
		return Phone{}, fmt.Errorf("%w: phone number must have %d digits, got %q", shared.ErrValidation, PhoneLength, s)
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }

// isPhoneNumber reports whether s is exactly PhoneLength bytes in '0'..'9'.
// Unicode digits such as Arabic-Indic numerals are rejected.
func isPhoneNumber(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date. The time of day is always midnight UTC.
type Birthday struct {
	date time.Time
}

// NewBirthday parses s in DD.MM.YYYY form.
//
// Impossible dates (31.04.2020, 29.02.2023) are rejected.
func NewBirthday(s string) (Birthday, error) {
	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: invalid date %q, use DD.MM.YYYY", shared.ErrValidation, s)
	}
	return Birthday{date: date}, nil
}

func (b Birthday) Date() time.Time   { return b.date }
func (b Birthday) Day() int          { return b.date.Day() }
func (b Birthday) Month() time.Month { return b.date.Month() }
func (b Birthday) Year() int         { return b.date.Year() }

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(DateLayout) }
