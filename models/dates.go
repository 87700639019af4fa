package models

import "time"

// DateLayout is the wire and storage format for stay dates. Dates in this
// format compare correctly as plain strings, which the Mongo overlap filters
// rely on.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Nights returns the number of nights between check-in and check-out.
// A same-day or inverted range yields zero or a negative count.
func Nights(checkIn, checkOut string) (int, error) {
	ci, err := ParseDate(checkIn)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	co, err := ParseDate(checkOut)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	return int(co.Sub(ci).Hours() / 24), nil
}

// RangesOverlap reports whether two half-open stay intervals [aStart, aEnd)
// and [bStart, bEnd) conflict. A checkout on another stay's check-in day is
// not a conflict: the room turns over the same calendar day.
func RangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}
