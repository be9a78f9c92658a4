package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	// ISODateLayout is the storage format for dates
	ISODateLayout = "2006-01-02"
	// DisplayDateLayout is the day-first format users type and read
	DisplayDateLayout = "02/01/2006"
)

// Date is a calendar day without a time-of-day or location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalizing out-of-range values the way time.Date does
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate accepts either dd/MM/yyyy or yyyy-MM-dd
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{DisplayDateLayout, ISODateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q (expected dd/mm/yyyy or yyyy-mm-dd)", s)
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Format renders the date with a time layout
func (d Date) Format(layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(layout)
}

func (d Date) String() string {
	return d.Format(ISODateLayout)
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(ISODateLayout), nil
}

// Scan implements sql.Scanner. Drivers hand DATE columns back either as
// time.Time or as text depending on the declared column type.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) >= len(ISODateLayout) {
		if t, err := time.Parse(ISODateLayout, s[:len(ISODateLayout)]); err == nil {
			*d = DateOf(t)
			return nil
		}
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler (used by JSON and YAML)
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Format(ISODateLayout)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
