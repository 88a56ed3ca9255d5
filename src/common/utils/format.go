package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimePlaceholder is shown when a timestamp cannot be split into a clock time.
const TimePlaceholder = "--:--"

// genitive month names, indexed by time.Month
var monthNames = map[time.Month]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// SplitTimestamp splits an ISO 8601 timestamp into its date portion and an
// "HH:MM" clock time. A string without the date/time separator, or with fewer
// than five characters after it, yields the raw string and TimePlaceholder.
func SplitTimestamp(ts string) (date string, clock string) {
	datePart, timePart, found := strings.Cut(ts, "T")
	if !found || len(timePart) < 5 {
		return ts, TimePlaceholder
	}
	return datePart, timePart[:5]
}

// HourOf extracts the hour from an "HH:MM" string, 0 when unparseable.
func HourOf(clock string) int {
	hh, _, found := strings.Cut(clock, ":")
	if !found {
		return 0
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

// FormatTravelTime renders a duration in seconds as "Xч Yм", dropping the
// zero component; a sub-minute duration is shown in seconds.
func FormatTravelTime(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dч %dм", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dч", hours)
	case minutes > 0:
		return fmt.Sprintf("%dм", minutes)
	default:
		return fmt.Sprintf("%dс", seconds)
	}
}

// TravelTime computes the display travel time for a segment. An explicit
// positive duration wins; otherwise the delta between the parsed arrival and
// departure instants is used, and unparsable timestamps yield an empty string.
func TravelTime(departure, arrival string, durationSeconds float64) string {
	if durationSeconds > 0 {
		return FormatTravelTime(int(durationSeconds))
	}

	dep, err := time.Parse(time.RFC3339, departure)
	if err != nil {
		return ""
	}
	arr, err := time.Parse(time.RFC3339, arrival)
	if err != nil {
		return ""
	}

	delta := arr.Sub(dep)
	if delta <= 0 {
		return ""
	}
	return FormatTravelTime(int(delta.Seconds()))
}

// LocalizeDate reformats "YYYY-MM-DD" into "day month-name" ("14 января"),
// keeping the raw string when it does not parse.
func LocalizeDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s", parsed.Day(), monthNames[parsed.Month()])
}
