// Package dateutil parses the day/month/year date literals used by fixtures.
package dateutil

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// Parse reads a day-first date such as "13/11/2016" and returns midnight UTC of that day.
func Parse(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, fmt.Errorf("dateutil.Parse %q: %w", s, err)
	}
	return t, nil
}

// ParsePtr is Parse returning a pointer, for optional timestamp fields.
func ParsePtr(s string) (*time.Time, error) {
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
