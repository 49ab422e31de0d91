package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar date read from a Postgres DATE column. It serializes as
// "YYYY-MM-DD" with no time or zone component.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) parse(s string) error {
	// drivers may hand back a full timestamp for DATE columns
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Decimal holds a Postgres NUMERIC without loss. It serializes as a JSON
// number using the nearest float64, so precision beyond float64 is not kept
// on the wire.
type Decimal struct {
	decimal.Decimal
}

func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.InexactFloat64())
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.Decimal.UnmarshalJSON(b)
}

func (d *Decimal) Scan(src any) error {
	return d.Decimal.Scan(src)
}

func (d Decimal) Value() (driver.Value, error) {
	return d.Decimal.Value()
}
