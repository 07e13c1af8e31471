package hevyfit

import (
	"fmt"
	"strings"
	"time"
)

// FitEpoch is the FIT reference instant: UTC 00:00 Dec 31 1989. All
// emitted timestamps count whole seconds from here.
var FitEpoch = time.Date(1989, 12, 31, 0, 0, 0, 0, time.UTC)

// FormatError reports a malformed timestamp or malformed tabular
// structure. It is fatal to the affected activity and never retried.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Input, e.Reason)
}

var monthsByAbbrev = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ParseTimestamp parses a Hevy activity timestamp such as
// "5 Dec 2025, 11:37". The instant is taken as wall-clock time with zero
// UTC offset. Calendar overflow ("31 Feb") is normalized, not rejected;
// downstream arithmetic stays consistent either way.
func ParseTimestamp(s string) (time.Time, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return time.Time{}, &FormatError{Input: s, Reason: `expected "<day> <month> <year>, <hour>:<minute>"`}
	}
	datePart := strings.TrimSpace(parts[0])
	timePart := strings.TrimSpace(parts[1])

	dateFields := strings.Fields(datePart)
	if len(dateFields) != 3 {
		return time.Time{}, &FormatError{Input: s, Reason: "malformed date part"}
	}
	day, ok := parseDigits(dateFields[0])
	if !ok {
		return time.Time{}, &FormatError{Input: s, Reason: "malformed day"}
	}
	month, ok := monthsByAbbrev[dateFields[1]]
	if !ok {
		return time.Time{}, &FormatError{Input: s, Reason: fmt.Sprintf("unrecognized month %q", dateFields[1])}
	}
	year, ok := parseDigits(dateFields[2])
	if !ok {
		return time.Time{}, &FormatError{Input: s, Reason: "malformed year"}
	}

	clock := strings.Split(timePart, ":")
	if len(clock) != 2 {
		return time.Time{}, &FormatError{Input: s, Reason: "malformed time part"}
	}
	hour, ok := parseDigits(clock[0])
	if !ok {
		return time.Time{}, &FormatError{Input: s, Reason: "malformed hour"}
	}
	minute, ok := parseDigits(clock[1])
	if !ok {
		return time.Time{}, &FormatError{Input: s, Reason: "malformed minute"}
	}

	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC), nil
}

// FitTimestamp converts an instant to whole seconds since the FIT epoch,
// floored.
func FitTimestamp(t time.Time) uint32 {
	return uint32(t.Sub(FitEpoch) / time.Second)
}

// SessionDuration returns floor(end-start) in whole seconds. A negative
// span is a data quality error and is surfaced, not clamped.
func SessionDuration(start, end time.Time) (int, error) {
	d := int(end.Sub(start) / time.Second)
	if d < 0 {
		return 0, &FormatError{
			Input:  fmt.Sprintf("%s .. %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
			Reason: "end time before start time",
		}
	}
	return d, nil
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
