// Package datetime holds calendar-date handling for fields the store
// serializes without a time component.
package datetime

import (
	"bytes"
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar date with no time of day attached.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func Parse(value string) (Date, error) {
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return Date{t: parsed}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(layout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || len(trimmed) == 0 {
		*d = Date{}
		return nil
	}
	if len(trimmed) < 2 || trimmed[0] != '"' || trimmed[len(trimmed)-1] != '"' {
		return fmt.Errorf("date must be a JSON string, got %s", trimmed)
	}
	parsed, err := Parse(string(trimmed[1 : len(trimmed)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
