// Package types implements special types for finboard.
package types

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrMonthFormat is returned when a month key is not in YYYY-MM format.
var ErrMonthFormat = errors.New("month must be in YYYY-MM format")

var monthPattern = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})$`)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Unpadded returns the month formatted as YYYY-M, which is what the
// income endpoint of the finance backend expects.
func (m Month) Unpadded() string {
	return fmt.Sprintf("%d-%d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalText implements the encoding.TextMarshaler interface.
// This allows Months to be used as JSON object keys.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Month) UnmarshalText(data []byte) error {
	parsed, err := ParseMonth(string(data))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the YYYY-MM representation of the month.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepted are YYYY-MM, full dates and RFC3339 timestamps. From the parsed
// string, everything is then ignored except the year and month.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	if monthPattern.MatchString(value) {
		return m.UnmarshalText([]byte(value))
	}

	// This allows to parse strings in the "2006-01-02" format
	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value)
	if err != nil {
		return err
	}

	// This is the default pattern
	pattern := time.RFC3339
	if match {
		pattern = time.DateOnly
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = MonthOf(t)
	return nil
}

// MonthOf returns the Month in which a time occurs in that time's location.
//
// The calendar date is never shifted to another timezone: a transaction
// dated 2024-03-31T23:30:00-05:00 belongs to March.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
//
// Anything else, including "0", "2024-1" and "2024-13", is rejected with
// an error wrapping ErrMonthFormat.
func ParseMonth(s string) (Month, error) {
	parts := monthPattern.FindStringSubmatch(s)
	if parts == nil {
		return Month{}, fmt.Errorf("%w, got %q", ErrMonthFormat, s)
	}

	year, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("%w, month %d is out of range", ErrMonthFormat, month)
	}

	return NewMonth(year, time.Month(month)), nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	year, month, _ := t.Date()
	return year == time.Time(m).Year() && month == time.Time(m).Month()
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Time(m).AddDate(0, 1, -1).Day()
}

// Start returns the first instant of the month in UTC.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End returns the first instant of the following month in UTC.
func (m Month) End() time.Time {
	return time.Time(m).AddDate(0, 1, 0)
}

// Range returns all months from start to end, both inclusive, in ascending order.
// If end is before start, the result is empty.
func Range(start, end Month) []Month {
	months := make([]Month, 0)
	for m := start; !m.After(end); m = m.AddDate(0, 1) {
		months = append(months, m)
	}
	return months
}

// Span returns the number of months from start to end, both inclusive.
// If end is before start, it is 0.
func Span(start, end Month) int {
	s, e := time.Time(start), time.Time(end)
	n := (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month()) + 1
	if n < 0 {
		return 0
	}
	return n
}

// Last returns the n months ending with (and including) the month m,
// in ascending order. For n < 1, the result is empty.
func Last(m Month, n int) []Month {
	if n < 1 {
		return []Month{}
	}

	return Range(m.AddDate(0, -(n - 1)), m)
}

// Keys returns the YYYY-MM representation of all months.
func Keys(months []Month) []string {
	keys := make([]string, 0, len(months))
	for _, m := range months {
		keys = append(keys, m.String())
	}
	return keys
}
