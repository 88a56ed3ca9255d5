package types

// SearchResponse is the raw payload of the schedule-between-stations endpoint.
type SearchResponse struct {
	Segments   []RawSegment `json:"segments"`
	Pagination Pagination   `json:"pagination"`
}

type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// RawSegment is one itinerary leg exactly as the upstream API reports it.
type RawSegment struct {
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"`
	Duration  float64 `json:"duration"`
	Thread    Thread  `json:"thread"`
}

// Thread identifies the physical scheduled run behind a segment.
type Thread struct {
	UID           string      `json:"uid"`
	Number        string      `json:"number"`
	Title         string      `json:"title"`
	TransportType string      `json:"transport_type"`
	Carrier       *CarrierRef `json:"carrier"`
}

// CarrierRef is the operating company reference embedded in a thread.
type CarrierRef struct {
	Code    int          `json:"code"`
	Title   string       `json:"title"`
	Logo    string       `json:"logo"`
	LogoSVG string       `json:"logo_svg"`
	Codes   CarrierCodes `json:"codes"`
}

type CarrierCodes struct {
	IATA   string `json:"iata"`
	Sirena string `json:"sirena"`
}
