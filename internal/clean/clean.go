// Package clean converts human-entered inventory fields (dates, prices, ids,
// quantities) into their stored forms, and back into display strings.
package clean

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// StampLayout is the full timestamp form used in backup files.
const StampLayout = "2006-01-02 15:04:05"

// FormatError reports input that could not be parsed into the expected form.
// Callers are expected to re-prompt the same field.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// RangeError reports a well-formed id that is not in the live id set.
type RangeError struct {
	Value   int
	Options []int
}

func (e *RangeError) Error() string {
	opts := make([]string, len(e.Options))
	for i, id := range e.Options {
		opts[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("id %d not found, options are: %s", e.Value, strings.Join(opts, ", "))
}

// Date parses a month/day/year string with /-separated unpadded numeric
// fields, e.g. "1/5/2024". Fields beyond the first three are ignored.
func Date(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 3 {
		return time.Time{}, &FormatError{Field: "date", Value: s}
	}
	nums := make([]int, 3)
	for i := range nums {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return time.Time{}, &FormatError{Field: "date", Value: s}
		}
		nums[i] = n
	}
	month, day, year := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (2/30 becomes 3/1), so
	// anything that did not survive intact was not a real calendar date.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, &FormatError{Field: "date", Value: s}
	}
	return t, nil
}

// HumanDate renders a date as "January 05, 2024".
func HumanDate(t time.Time) string {
	return t.Format("January 02, 2006")
}

// Stamp renders a timestamp in the backup file form.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// Price parses a dollar amount such as "12.99" or "$12.99" into integer
// cents, rounded to the nearest cent.
func Price(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil {
		return 0, &FormatError{Field: "price", Value: s}
	}
	return int(math.Round(f * 100)), nil
}

// HumanPrice renders integer cents as "$12.99".
func HumanPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// HumanPriceFloat renders a fractional cent amount, such as an average
// price, the same way.
func HumanPriceFloat(cents float64) string {
	return fmt.Sprintf("$%.2f", cents/100)
}

// ID parses a product id and checks it against the set of known ids.
func ID(s string, options []int) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Field: "id", Value: s}
	}
	for _, opt := range options {
		if opt == id {
			return id, nil
		}
	}
	return 0, &RangeError{Value: id, Options: options}
}

// Quantity parses a unit count. Any integer is accepted, including negative
// ones; no lower bound is enforced here.
func Quantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Field: "quantity", Value: s}
	}
	return n, nil
}
