package types

import "fmt"

// TimeOption is a fixed time-of-day bucket over departure hours.
type TimeOption int

const (
	Morning TimeOption = iota
	Afternoon
	Evening
	Night
)

// Contains reports whether the given departure hour falls in the bucket's
// half-open range: morning [6,12), afternoon [12,18), evening [18,24), night [0,6).
func (t TimeOption) Contains(hour int) bool {
	switch t {
	case Morning:
		return hour >= 6 && hour < 12
	case Afternoon:
		return hour >= 12 && hour < 18
	case Evening:
		return hour >= 18 && hour < 24
	case Night:
		return hour >= 0 && hour < 6
	}
	return false
}

func (t TimeOption) String() string {
	switch t {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	case Night:
		return "night"
	}
	return "unknown"
}

func ParseTimeOption(s string) (TimeOption, error) {
	switch s {
	case "morning":
		return Morning, nil
	case "afternoon":
		return Afternoon, nil
	case "evening":
		return Evening, nil
	case "night":
		return Night, nil
	}
	return 0, fmt.Errorf("unknown time option: %q", s)
}

// CarrierFilter is the user-selected predicate over a carrier list.
// ShowTransfers is three-state: nil means no preference, false keeps only
// direct routes, true leaves the list as is.
type CarrierFilter struct {
	TimeOptions   []TimeOption
	ShowTransfers *bool
}

func (f CarrierFilter) IsEmpty() bool {
	return len(f.TimeOptions) == 0 && f.ShowTransfers == nil
}
