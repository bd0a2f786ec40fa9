package domain

import "time"

// DateLayout is the wire and storage format for calendar dates. Dates
// carry no time component; the calendar is civil, not instant-based.
const DateLayout = "2006-01-02"

// Date is a validated YYYY-MM-DD calendar date.
type Date string

// ParseDate validates a raw date string. Malformed input returns
// ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

// ParseDates validates a list of raw date strings. An empty list returns
// ErrEmptyDates; the first malformed entry aborts with ErrInvalidDate.
func ParseDates(raw []string) ([]Date, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDates
	}
	dates := make([]Date, 0, len(raw))
	seen := make(map[Date]struct{}, len(raw))
	for _, s := range raw {
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	return dates, nil
}

// Time returns the date as a UTC midnight instant.
func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}

// DateOf truncates an instant to its civil date in the instant's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}
