package carriers

import "github.com/tripboard/tripboard/src/common/types"

// ApplyFilter returns the carriers matching the filter, in their original
// order. An empty filter returns the input unchanged.
func ApplyFilter(carriers []types.Carrier, filter types.CarrierFilter) []types.Carrier {
	if filter.IsEmpty() {
		return carriers
	}

	visible := make([]types.Carrier, 0, len(carriers))
	for _, carrier := range carriers {
		if matchesFilter(carrier, filter) {
			visible = append(visible, carrier)
		}
	}
	return visible
}

func matchesFilter(carrier types.Carrier, filter types.CarrierFilter) bool {
	// Only the "hide transfers" direction excludes anything: asking for
	// routes with transfers does not hide the direct ones.
	if filter.ShowTransfers != nil && !*filter.ShowTransfers && carrier.HasTransfer {
		return false
	}

	if len(filter.TimeOptions) > 0 {
		inBucket := false
		for _, option := range filter.TimeOptions {
			if option.Contains(carrier.DepartureHour) {
				inBucket = true
				break
			}
		}
		if !inBucket {
			return false
		}
	}

	return true
}
