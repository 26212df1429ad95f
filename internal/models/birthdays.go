package models

import (
	"encoding/json"
	"sort"
	"time"
)

// UpcomingWindow is the number of days, starting today, in which a birthday counts as upcoming.
const UpcomingWindow = 7

// Congratulation pairs a contact with the day their birthday should be acknowledged.
type Congratulation struct {
	Name string    `json:"name"`
	Date time.Time `json:"-"`
}

// CongratulationDate formats Date as DD.MM.YYYY.
func (c Congratulation) CongratulationDate() string { return c.Date.Format(DateLayout) }

// MarshalJSON emits {"name": ..., "congratulation_date": "DD.MM.YYYY"}.
func (c Congratulation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name               string `json:"name"`
		CongratulationDate string `json:"congratulation_date"`
	}{c.Name, c.CongratulationDate()})
}

// UpcomingBirthdays computes congratulation dates for records whose birthday falls
// in the [UpcomingWindow] days starting today (inclusive).
//
// Only this year's occurrence is considered: a birthday earlier in the year than today is skipped,
// not rolled over to next year. A 29 February birthday falls on 1 March in non-leap years.
// Saturdays move to the following Monday (+2), Sundays to the following Monday (+1).
// Results are ordered by date, then name.
func UpcomingBirthdays(records []*Record, today time.Time) []Congratulation {
	today = dateOf(today)
	upcoming := []Congratulation{}

	for _, r := range records {
		if r.birthday == nil {
			continue
		}

		candidate := occurrenceIn(*r.birthday, today.Year())
		if candidate.Before(today) {
			continue
		}
		if daysBetween(today, candidate) >= UpcomingWindow {
			continue
		}

		upcoming = append(upcoming, Congratulation{Name: r.name.value, Date: shiftWeekend(candidate)})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if !upcoming[i].Date.Equal(upcoming[j].Date) {
			return upcoming[i].Date.Before(upcoming[j].Date)
		}
		return upcoming[i].Name < upcoming[j].Name
	})
	return upcoming
}

// dateOf drops the clock part of t, keeping its calendar date, at midnight UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func occurrenceIn(b Birthday, year int) time.Time {
	if b.Month() == time.February && b.Day() == 29 && !isLeap(year) {
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
}

func shiftWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	default:
		return t
	}
}

// daysBetween counts whole days from a to b, both at midnight UTC.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
