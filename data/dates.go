package data

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout   = "2006-01-02"
	dateLayoutUS = "01/02/2006"
)

// Date is a calendar date without a time component, as the API returns
// for trade dates, expiration dates and similar fields. The zero value
// marks an absent date; the API encodes absence as "0000-00-00".
type Date struct {
	time.Time
}

// NewDate builds a Date from a year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// UnmarshalJSON parses "2006-01-02" dates. The sentinel "0000-00-00"
// and empty strings decode to the zero value.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" || s == "0000-00-00" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`"0000-00-00"`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// DateUS is a calendar date in the "01/02/2006" form the core data
// resource uses for its earnings date columns.
type DateUS struct {
	time.Time
}

func (d DateUS) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayoutUS)
}

func (d *DateUS) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayoutUS, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d DateUS) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayoutUS) + `"`), nil
}
