package domain

import "time"

// DayLayout is the wire and storage format for booking days and
// owner-reservation boundaries. ISO dates compare correctly as strings,
// which the range queries rely on.
const DayLayout = "2006-01-02"

func ValidDay(s string) bool {
	_, err := time.Parse(DayLayout, s)
	return err == nil
}

// Today returns the current UTC day in DayLayout.
func Today() string {
	return time.Now().UTC().Format(DayLayout)
}
