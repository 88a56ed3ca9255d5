package carriers

import (
	"strconv"
	"strings"

	"github.com/tripboard/tripboard/src/common/types"
	"github.com/tripboard/tripboard/src/common/utils"
)

const (
	fallbackName = "Перевозчик"
	transferNote = "С пересадкой"
)

// Carriers whose routes are known to involve a change of vehicle. This is a
// heuristic over titles, not an authoritative flag from the upstream.
var transferCarriers = []string{
	"ЦППК",
	"МТ ППК",
	"СЗППК",
	"Аэроэкспресс",
}

// Normalize converts one raw segment into a display-ready Carrier. It never
// fails: each field degrades on its own when the input is malformed.
func Normalize(segment types.RawSegment) types.Carrier {
	departureDate, departureTime := utils.SplitTimestamp(segment.Departure)
	_, arrivalTime := utils.SplitTimestamp(segment.Arrival)

	name := resolveName(segment.Thread)

	carrier := types.Carrier{
		Name:          name,
		Logo:          resolveLogo(segment.Thread),
		Date:          utils.LocalizeDate(departureDate),
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		DepartureHour: utils.HourOf(departureTime),
		TravelTime:    utils.TravelTime(segment.Departure, segment.Arrival, segment.Duration),
		Code:          resolveCode(segment.Thread, name),
	}

	if requiresTransfer(segment.Thread) {
		carrier.HasTransfer = true
		carrier.TransferInfo = transferNote
	}

	return carrier
}

// NormalizeAll maps a segment batch, one Carrier per segment, same order.
func NormalizeAll(segments []types.RawSegment) []types.Carrier {
	carriers := make([]types.Carrier, 0, len(segments))
	for _, segment := range segments {
		carriers = append(carriers, Normalize(segment))
	}
	return carriers
}

func resolveName(thread types.Thread) string {
	if thread.Carrier != nil && thread.Carrier.Title != "" {
		return thread.Carrier.Title
	}
	if thread.Title != "" {
		return thread.Title
	}
	return fallbackName
}

func resolveLogo(thread types.Thread) string {
	if thread.Carrier == nil {
		return ""
	}
	if thread.Carrier.LogoSVG != "" {
		return thread.Carrier.LogoSVG
	}
	return thread.Carrier.Logo
}

// resolveCode picks the key used later to fetch extended carrier details:
// numeric carrier code, else the IATA code, else the display name itself.
func resolveCode(thread types.Thread, name string) string {
	if thread.Carrier != nil {
		if thread.Carrier.Code > 0 {
			return strconv.Itoa(thread.Carrier.Code)
		}
		if thread.Carrier.Codes.IATA != "" {
			return thread.Carrier.Codes.IATA
		}
	}
	return name
}

// requiresTransfer matches carrier and thread titles against the transfer
// allow-list. An unmatched title means direct.
func requiresTransfer(thread types.Thread) bool {
	title := thread.Title
	if thread.Carrier != nil && thread.Carrier.Title != "" {
		title = thread.Carrier.Title + " " + title
	}
	for _, known := range transferCarriers {
		if strings.Contains(title, known) {
			return true
		}
	}
	return false
}
